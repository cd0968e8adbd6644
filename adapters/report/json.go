package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal/errors"
	"github.com/AlexandreDecan/pcorr/ports"
)

// JSON renders the report structure; absent thresholds encode as null
type JSON struct{}

func (JSON) ContentType() string { return "application/json" }

func (JSON) Render(w io.Writer, r *correction.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ForFormat returns the renderer for text, markdown, json or html
func ForFormat(format string) (ports.ReportRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return Text{}, nil
	case "markdown", "md":
		return Markdown{}, nil
	case "json":
		return JSON{}, nil
	case "html":
		return HTML{}, nil
	}
	return nil, errors.UnsupportedFormat(format)
}
