package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the rows of the first sheet of the workbook. Rows are padded
// to the header width because excelize drops trailing empty cells.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSource, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrReadingSource, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingSource, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s of %s is empty", ErrReadingSource, sheets[0], path)
	}

	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > width {
			row = row[:width]
		}
		record := make([]string, width)
		copy(record, row)
		records = append(records, record)
	}
	return records, nil
}
