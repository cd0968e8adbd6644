package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/AlexandreDecan/pcorr/domain/correction"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown renders a report as a pipe table
type Markdown struct{}

func (Markdown) ContentType() string { return "text/markdown; charset=utf-8" }

func (Markdown) Render(w io.Writer, r *correction.Report) error {
	var buf bytes.Buffer
	if r.Family != "" {
		fmt.Fprintf(&buf, "### %s\n\n", r.Family)
	}
	fmt.Fprintf(&buf, "alpha = %s, %d p-values\n\n", FormatAlpha(r.Alpha), r.Count)
	if r.Summary != nil {
		fmt.Fprintf(&buf, "min %.6f, median %.6f, max %.6f\n\n", r.Summary.Min, r.Summary.Median, r.Summary.Max)
	}
	buf.WriteString("| Method | Threshold | Significant |\n")
	buf.WriteString("|:---|---:|---:|\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&buf, "| %s | %s | %d |\n", row.Method, row.Threshold, row.Significant)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// HTML renders the markdown table through gomarkdown
type HTML struct{}

func (HTML) ContentType() string { return "text/html; charset=utf-8" }

func (HTML) Render(w io.Writer, r *correction.Report) error {
	var md bytes.Buffer
	if err := (Markdown{}).Render(&md, r); err != nil {
		return err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	_, err := w.Write(markdown.ToHTML(md.Bytes(), p, renderer))
	return err
}
