package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth = 277.0
	pdfMaxCell   = 40
)

// PDFExporter renders datasets into a landscape tabular PDF. Wide datasets
// are split into column pages so every header stays legible.
type PDFExporter struct {
	columnsPerPage int
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{columnsPerPage: 8}
}

// ContentType is the MIME type of rendered output.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Extension is the file extension of rendered output.
func (e *PDFExporter) Extension() string { return "pdf" }

// Render creates a PDF document with an optional title and table body.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for from := 0; from < len(data.Headers); from += e.columnsPerPage {
		to := from + e.columnsPerPage
		if to > len(data.Headers) {
			to = len(data.Headers)
		}
		pdf.AddPage()
		if title != "" {
			pdf.SetFont("Arial", "B", 13)
			pdf.CellFormat(0, 9, strings.ToUpper(title), "", 1, "C", false, 0, "")
			pdf.Ln(3)
		}

		colWidth := pdfPageWidth / float64(to-from)
		pdf.SetFont("Arial", "B", 8)
		for _, header := range data.Headers[from:to] {
			pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 7)
		for _, row := range data.Rows {
			for i := from; i < to; i++ {
				value := ""
				if i < len(row) {
					value = truncate(row[i], pdfMaxCell)
				}
				pdf.CellFormat(colWidth, 6, tr(value), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
