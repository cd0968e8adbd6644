package app

import (
	"io"
	"time"

	"github.com/AlexandreDecan/pcorr/domain/core"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/errors"
	"github.com/AlexandreDecan/pcorr/ports"
)

// ReportService evaluates every correction method over one family
type ReportService struct {
	text   ports.ReportRenderer
	logger *internal.Logger
}

// NewReportService creates a report service; text renders MaximalPValue output
func NewReportService(text ports.ReportRenderer, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{
		text:   text,
		logger: logger,
	}
}

// Evaluate sorts pv once (when sortInput is set), runs the five methods in
// report order over the same sequence and counts the entries each admits.
func (s *ReportService) Evaluate(pv []float64, alpha float64, sortInput bool) (*correction.Report, error) {
	if err := correction.ValidateAlpha(alpha); err != nil {
		return nil, errors.InvalidInput("cannot evaluate family", err)
	}

	sorted := correction.Prepare(pv, sortInput)
	report := &correction.Report{
		ID:          core.NewReportID(),
		Alpha:       alpha,
		Count:       len(sorted),
		Fingerprint: core.FamilyHash(sorted, alpha),
		Summary:     correction.Summarize(sorted),
		Rows:        make([]correction.Row, 0, len(correction.Names())),
		ComputedAt:  time.Now().UTC(),
	}

	for _, m := range correction.Methods() {
		threshold, err := m.Fn(sorted, alpha, false)
		if err != nil {
			return nil, errors.Wrapf(err, "%s correction failed", m.Name)
		}
		report.Rows = append(report.Rows, correction.Row{
			Method:      m.Name,
			Threshold:   threshold,
			Significant: correction.CountSignificant(sorted, threshold),
		})
		s.logger.Trace("report %s: %s threshold=%s", report.ID, m.Name, threshold)
	}

	s.logger.Debug("evaluated %d p-values at alpha=%v (report %s)", report.Count, alpha, report.ID)
	return report, nil
}

// EvaluateFamily evaluates a named family
func (s *ReportService) EvaluateFamily(f correction.Family, alpha float64, sortInput bool) (*correction.Report, error) {
	report, err := s.Evaluate(f.PValues, alpha, sortInput)
	if err != nil {
		return nil, errors.Wrapf(err, "family %s", f.Name)
	}
	report.Family = f.Name
	return report, nil
}

// MaximalPValue writes the text comparison of all methods to w
func (s *ReportService) MaximalPValue(w io.Writer, pv []float64, alpha float64, sortInput bool) error {
	report, err := s.Evaluate(pv, alpha, sortInput)
	if err != nil {
		return err
	}
	if err := s.text.Render(w, report); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}

// Threshold evaluates a single method by name
func (s *ReportService) Threshold(method string, pv []float64, alpha float64, sortInput bool) (correction.Row, error) {
	m, err := correction.Lookup(method)
	if err != nil {
		return correction.Row{}, errors.Wrap(err, "cannot resolve method")
	}
	sorted := correction.Prepare(pv, sortInput)
	threshold, err := m.Fn(sorted, alpha, false)
	if err != nil {
		return correction.Row{}, errors.Wrapf(err, "%s correction failed", m.Name)
	}
	return correction.Row{
		Method:      m.Name,
		Threshold:   threshold,
		Significant: correction.CountSignificant(sorted, threshold),
	}, nil
}

// Adjust returns adjusted p-values for a method, in input order
func (s *ReportService) Adjust(method string, pv []float64) (string, []float64, error) {
	m, err := correction.Lookup(method)
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot resolve method")
	}
	return m.Name, m.Adjust(pv), nil
}
