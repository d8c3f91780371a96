package report

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// RGB is a color triple for fills, text and rules.
type RGB struct {
	R, G, B int
}

var (
	colorWhite = RGB{255, 255, 255}
	colorBlack = RGB{0, 0, 0}
	colorGrey  = RGB{128, 128, 128}
)

// TableStyle controls how AddTable renders a table.
type TableStyle struct {
	ColWidths  []float64 // mm; equal widths when empty
	HeaderFill RGB
	HeaderText RGB
	BodyFill   RGB
	AltFill    RGB  // shading for even body rows
	Shaded     bool // apply AltFill to even rows (1-indexed from first data row)
	FontSize   float64
}

// DocBuilder renders ordered blocks of text and tables into a paginated
// document. Layouts only drive this interface, so the underlying engine can
// be swapped without touching the aggregation logic.
type DocBuilder interface {
	AddTitle(text string, size float64, color RGB)
	AddParagraph(text string)
	AddSpacer(height float64)
	AddDivider(color RGB)
	AddTable(headers []string, rows [][]string, style TableStyle)
	AddPageBreak()
	Output() ([]byte, error)
}

// pdfBuilder implements DocBuilder on top of gofpdf, A4 portrait with
// Helvetica core fonts.
type pdfBuilder struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	width     float64 // usable width between margins
}

func newPDFBuilder() *pdfBuilder {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	return &pdfBuilder{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		width:     pageWidth - 30,
	}
}

func (b *pdfBuilder) AddTitle(text string, size float64, color RGB) {
	b.pdf.SetFont("Helvetica", "B", size)
	b.pdf.SetTextColor(color.R, color.G, color.B)
	b.pdf.CellFormat(b.width, size*0.6, b.translate(text), "", 1, "C", false, 0, "")
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.Ln(2)
}

func (b *pdfBuilder) AddParagraph(text string) {
	b.pdf.SetFont("Helvetica", "", 10)
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.CellFormat(b.width, 6, b.translate(text), "", 1, "L", false, 0, "")
}

func (b *pdfBuilder) AddSpacer(height float64) {
	b.pdf.Ln(height)
}

func (b *pdfBuilder) AddDivider(color RGB) {
	b.pdf.SetDrawColor(color.R, color.G, color.B)
	b.pdf.SetLineWidth(1)
	y := b.pdf.GetY()
	b.pdf.Line(15, y, 15+b.width, y)
	b.pdf.SetLineWidth(0.2)
	b.pdf.SetDrawColor(0, 0, 0)
	b.pdf.Ln(4)
}

func (b *pdfBuilder) AddTable(headers []string, rows [][]string, style TableStyle) {
	fontSize := style.FontSize
	if fontSize == 0 {
		fontSize = 9
	}

	cols := len(headers)
	if cols == 0 && len(rows) > 0 {
		cols = len(rows[0])
	}
	widths := style.ColWidths
	if len(widths) != cols {
		widths = make([]float64, cols)
		for i := range widths {
			widths[i] = b.width / float64(cols)
		}
	}

	rowHeight := fontSize * 0.65

	if len(headers) > 0 {
		b.pdf.SetFont("Helvetica", "B", fontSize)
		b.pdf.SetFillColor(style.HeaderFill.R, style.HeaderFill.G, style.HeaderFill.B)
		b.pdf.SetTextColor(style.HeaderText.R, style.HeaderText.G, style.HeaderText.B)
		for i, h := range headers {
			b.pdf.CellFormat(widths[i], rowHeight+2, b.translate(h), "1", 0, "C", true, 0, "")
		}
		b.pdf.Ln(-1)
	}

	body := style.BodyFill
	if body == (RGB{}) {
		body = colorWhite
	}

	b.pdf.SetFont("Helvetica", "", fontSize)
	b.pdf.SetTextColor(0, 0, 0)
	for r, row := range rows {
		fill := body
		// even body rows, 1-indexed from the first data row
		if style.Shaded && (r+1)%2 == 0 {
			fill = style.AltFill
		}
		b.pdf.SetFillColor(fill.R, fill.G, fill.B)
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.pdf.CellFormat(widths[i], rowHeight, b.translate(cell), "1", 0, "L", true, 0, "")
		}
		b.pdf.Ln(-1)
	}
	b.pdf.Ln(2)
}

func (b *pdfBuilder) AddPageBreak() {
	b.pdf.AddPage()
}

func (b *pdfBuilder) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
