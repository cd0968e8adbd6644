package ports

import (
	"context"
	"io"

	"github.com/AlexandreDecan/pcorr/domain/correction"
)

// ReportRenderer writes a report in one output format
type ReportRenderer interface {
	Render(w io.Writer, r *correction.Report) error
	ContentType() string
}

// FamilyReader loads p-value families from an external source
type FamilyReader interface {
	ReadFamilies(ctx context.Context) ([]correction.Family, error)
}
