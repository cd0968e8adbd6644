package correction

import (
	"time"

	"github.com/AlexandreDecan/pcorr/domain/core"
)

// Family is a named group of p-values corrected together
type Family struct {
	Name    core.FamilyName `json:"name"`
	PValues []float64       `json:"p_values"`
}

// Row is one method's outcome within a report
type Row struct {
	Method      string    `json:"method"`
	Threshold   Threshold `json:"threshold"`
	Significant int       `json:"significant"`
}

// Report compares every method over the same family and alpha
type Report struct {
	ID          core.ReportID   `json:"id"`
	Family      core.FamilyName `json:"family,omitempty"`
	Alpha       float64         `json:"alpha"`
	Count       int             `json:"count"`
	Fingerprint core.Hash       `json:"fingerprint"`
	Summary     *Summary        `json:"summary,omitempty"`
	Rows        []Row           `json:"rows"`
	ComputedAt  time.Time       `json:"computed_at"`
}

// Row returns the row for a method display name
func (r *Report) Row(method string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Method == method {
			return row, true
		}
	}
	return Row{}, false
}
