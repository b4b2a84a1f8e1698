package report

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the segment table of r, one row per segment
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SegmentHeader(r.System)); err != nil {
		return err
	}

	for i := range r.Segments {
		values := r.segmentValues(i)
		record := make([]string, len(values))
		for j, v := range values {
			record[j] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
