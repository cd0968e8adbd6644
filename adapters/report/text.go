package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlexandreDecan/pcorr/domain/correction"
)

// Text renders the fixed-width comparison printed by the CLI
type Text struct{}

// ContentType implements ports.ReportRenderer
func (Text) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes the context line followed by one line per method
func (Text) Render(w io.Writer, r *correction.Report) error {
	if _, err := fmt.Fprintf(w, "Context: alpha=%s, %d p-values\n", FormatAlpha(r.Alpha), r.Count); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "%-20s\tp-value=%s\t%3d significant p-values\n",
			row.Method, row.Threshold, row.Significant); err != nil {
			return err
		}
	}
	return nil
}

// FormatAlpha prints the shortest round-trip form of alpha, always with a
// decimal point or exponent (1 prints as 1.0).
func FormatAlpha(alpha float64) string {
	s := strconv.FormatFloat(alpha, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
