package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// column widths in mm for the landscape segment table, matching SegmentHeader
var pdfWidths = []float64{8, 26, 12, 18, 18, 28, 18, 16, 16, 16, 14, 20, 20, 16, 16, 15}

// WritePDF writes r as a single-document PDF: title, metadata, the
// segment table and the totals table.
func WritePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Report ID: %s", r.ID),
		fmt.Sprintf("Date: %s", r.Generated.Format("2006-01-02 15:04")),
		fmt.Sprintf("Units: %s", r.System.Label()),
	} {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 230, 245)
	for i, h := range SegmentHeader(r.System) {
		pdf.CellFormat(pdfWidths[i], 10, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for i := range r.Segments {
		for j, v := range r.segmentValues(i) {
			align := "L"
			text := formatValue(v)
			if f, ok := v.(float64); ok {
				align = "R"
				text = fmt.Sprintf("%.5g", f)
			}
			pdf.CellFormat(pdfWidths[j], 6, tr(text), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range r.totalsValues() {
		pdf.CellFormat(70, 6, tr(formatValue(kv[0])), "1", 0, "L", false, 0, "")
		text := formatValue(kv[1])
		if f, ok := kv[1].(float64); ok {
			text = fmt.Sprintf("%.6g", f)
		}
		pdf.CellFormat(40, 6, text, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
