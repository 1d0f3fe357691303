package plate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseGridCSV reads a plate-reader CSV export laid out as a grid: one
// row per plate row, first cell the row letter ("A".."P"), remaining
// cells OD readings in column order. An optional header row of column
// numbers is skipped. Empty cells become missing readings.
//
//	,1,2,3
//	A,0.101,0.099,0.912
//	B,0.845,,0.433
//
// The parser owns no analysis semantics; it only produces a Dataset for
// assay.Analyze.
func ParseGridCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // plate exports often have ragged rows

	ds := NewDataset()
	rows := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read plate grid: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		label := strings.TrimSpace(record[0])
		if label == "" && rows == 0 {
			continue // header row of column numbers
		}
		if !isRowLabel(label) {
			if rows == 0 {
				continue // e.g. instrument metadata line
			}

			return nil, fmt.Errorf("invalid plate row label %q", label)
		}

		for col, cell := range record[1:] {
			id := WellID(fmt.Sprintf("%s%d", strings.ToUpper(label), col+1))
			cell = strings.TrimSpace(cell)
			if cell == "" {
				ds.SetMissing(id)
				continue
			}
			od, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("well %s: invalid OD %q: %w", id, cell, err)
			}
			ds.SetOD(id, od)
		}
		rows++
	}

	if ds.Len() == 0 {
		return nil, errors.New("plate grid contains no wells")
	}

	return ds, nil
}

// isRowLabel reports whether s is a single plate row letter (A-P covers
// plates up to 384 wells).
func isRowLabel(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]

	return (c >= 'A' && c <= 'P') || (c >= 'a' && c <= 'p')
}
