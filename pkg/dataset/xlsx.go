package dataset

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads the first sheet of an Excel workbook. The first row is the
// header. Cells are read as their formatted text, like a CSV export would
// show them. ReadOptions.Delimiter is ignored.
func ReadXLSX(path string, opts ReadOptions) (*Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("failed to read %s: %w", path, ErrEmptyData)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}

	// excelize trims trailing empty cells and keeps empty rows; drop the
	// empty rows the way the CSV reader skips blank lines.
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		records = append(records, row)
	}

	f, err := fromRecords(records, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Debug("Loaded Excel sheet",
		slog.String("path", path),
		slog.String("sheet_name", sheets[0]),
		slog.Int("rows", f.Len()),
		slog.Int("columns", f.Width()))

	return f, nil
}
