package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth = 277.0 // A4 landscape minus margins
	pdfRowHeight = 7.0
	pdfEllipsis  = "..."
)

// PDFRenderer renders a Table as a landscape A4 document.
type PDFRenderer struct {
	Title string
}

// NewPDFRenderer constructs a PDF renderer with an optional title.
func NewPDFRenderer(title string) *PDFRenderer {
	return &PDFRenderer{Title: title}
}

// ContentType implements Renderer.
func (r *PDFRenderer) ContentType() string { return "application/pdf" }

// Render lays the table out with columns sized to their content and repeats
// the header on every page. Cells too wide for their column are truncated.
func (r *PDFRenderer) Render(t Table) ([]byte, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("pdf requires at least one column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.SetFont("Arial", "", 9)
	widths := columnWidths(pdf, t, tr)

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range t.Columns {
			pdf.CellFormat(widths[i], 8, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.AddPage()
	if r.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(r.Title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
		if pdf.GetY()+pdfRowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], pdfRowHeight, fit(pdf, tr(cell), widths[j]-2), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths shares the page width between columns in proportion to their
// widest cell, with a floor so short columns stay legible.
func columnWidths(pdf *gofpdf.Fpdf, t Table, tr func(string) string) []float64 {
	const minWidth = 18.0
	want := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		want[i] = pdf.GetStringWidth(tr(col)) + 4
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(want) {
				break
			}
			if w := pdf.GetStringWidth(tr(cell)) + 4; w > want[i] {
				want[i] = w
			}
		}
	}

	var total float64
	for i := range want {
		if want[i] < minWidth {
			want[i] = minWidth
		}
		total += want[i]
	}
	for i := range want {
		want[i] = want[i] / total * pdfPageWidth
	}
	return want
}

// fit truncates text, already translated to the single-byte font encoding,
// to width.
func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	for n := len(text) - 1; n > 0; n-- {
		candidate := text[:n] + pdfEllipsis
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
