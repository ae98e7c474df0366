package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin    = 10.0
	pdfPageWidth = 297.0 // A4 landscape
	pdfRowHeight = 7.0
)

func writePDF(w io.Writer, t Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	if t.Title != "" {
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, t.Title)
		pdf.Ln(12)
	}

	pdf.SetFont("Arial", "", 10)
	for _, line := range t.Subtitle {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	if len(t.Subtitle) > 0 {
		pdf.Ln(4)
	}

	if len(t.Headers) > 0 {
		colWidth := (pdfPageWidth - 2*pdfMargin) / float64(len(t.Headers))

		header := func() {
			pdf.SetFont("Arial", "B", 8)
			pdf.SetFillColor(68, 114, 196)
			pdf.SetTextColor(255, 255, 255)
			for _, h := range t.Headers {
				pdf.CellFormat(colWidth, pdfRowHeight, h, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Arial", "", 8)
		}

		header()
		_, pageHeight := pdf.GetPageSize()
		for _, row := range t.Rows {
			if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
				pdf.AddPage()
				header()
			}
			for i := range t.Headers {
				value := ""
				if i < len(row) {
					value = row[i]
				}
				pdf.CellFormat(colWidth, pdfRowHeight, value, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.Output(w)
}
