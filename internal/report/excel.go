package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	segmentsSheet = "Segments"
	totalsSheet   = "Totals"
)

// WriteExcel writes r as a workbook with a Segments and a Totals sheet
func WriteExcel(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", segmentsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := SegmentHeader(r.System)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(segmentsSheet, "A1", &headerRow); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(segmentsSheet, "A1", last, bold); err != nil {
		return err
	}

	for i := range r.Segments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r.segmentValues(i)
		if err := f.SetSheetRow(segmentsSheet, cell, &row); err != nil {
			return err
		}
	}

	rows := [][]interface{}{
		{"Report", r.Title},
		{"Report ID", r.ID.String()},
		{"Generated", r.Generated.Format("2006-01-02 15:04:05")},
		{"Units", r.System.Label()},
		{},
	}
	for _, kv := range r.totalsValues() {
		rows = append(rows, []interface{}{kv[0], kv[1]})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(totalsSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(totalsSheet, "A", "A", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(segmentsSheet, "B", "B", 24); err != nil {
		return err
	}

	return f.Write(w)
}
