package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NoIndex disables the index column when set as ReadOptions.IndexCol
const NoIndex = -1

// ErrEmptyData is returned when a source holds no header row
var ErrEmptyData = errors.New("no columns to parse")

// DefaultNAValues are the cell texts read as missing when ReadOptions.NAValues is nil
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

// ReadOptions controls how a tabular file is turned into a Frame.
// The zero value reads comma-separated data with the first column as index.
type ReadOptions struct {
	// Delimiter separates fields; 0 means ','.
	Delimiter rune
	// IndexCol is the position of the index column, or NoIndex.
	IndexCol int
	// NAValues lists cell texts read as missing. nil uses DefaultNAValues;
	// an empty non-nil slice disables missing-value detection.
	NAValues []string
}

// DefaultReadOptions reads comma-separated data without an index column
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: ',', IndexCol: NoIndex}
}

func (o ReadOptions) naSet() map[string]struct{} {
	values := o.NAValues
	if values == nil {
		values = DefaultNAValues
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ReadCSV loads a CSV file. Every cell is kept as text.
func ReadCSV(path string, opts ReadOptions) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	f, err := ParseCSV(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Debug("Loaded CSV file",
		slog.String("path", path),
		slog.Int("rows", f.Len()),
		slog.Int("columns", f.Width()))

	return f, nil
}

// ParseCSV reads CSV data from r
func ParseCSV(r io.Reader, opts ReadOptions) (*Frame, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return fromRecords(records, opts)
}

// fromRecords builds a frame from a header row followed by data rows
func fromRecords(records [][]string, opts ReadOptions) (*Frame, error) {
	if len(records) == 0 {
		return nil, ErrEmptyData
	}

	header := records[0]
	width := len(header)
	if opts.IndexCol != NoIndex && (opts.IndexCol < 0 || opts.IndexCol >= width) {
		return nil, fmt.Errorf("index column %d out of range for %d columns", opts.IndexCol, width)
	}

	names := columnNames(header, opts.IndexCol)
	data := records[1:]
	na := opts.naSet()

	values := make([][]string, width)
	missing := make([][]bool, width)
	for c := range values {
		values[c] = make([]string, len(data))
		missing[c] = make([]bool, len(data))
	}

	for r, row := range data {
		if len(row) > width {
			return nil, fmt.Errorf("row %d: expected %d fields, saw %d", r+2, width, len(row))
		}
		for c := 0; c < width; c++ {
			if c >= len(row) {
				missing[c][r] = true
				continue
			}
			values[c][r] = row[c]
			if _, isNA := na[row[c]]; isNA {
				missing[c][r] = true
			}
		}
	}

	cols := make([]*Series, 0, width)
	for c := 0; c < width; c++ {
		if c == opts.IndexCol {
			continue
		}
		cols = append(cols, NewSeries(names[c], values[c], missing[c]))
	}

	if opts.IndexCol == NoIndex {
		return New(cols...)
	}
	return NewIndexed(names[opts.IndexCol], values[opts.IndexCol], cols...)
}

// columnNames fills blank headers with "Unnamed: i" and suffixes repeated
// names with the lowest free ".1", ".2", ... so every column can be
// addressed by name, even when the header already holds a suffixed name.
func columnNames(header []string, indexCol int) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if i != indexCol && h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		names[i] = h
		if i != indexCol {
			used[h] = true
		}
	}

	// first occurrences keep their name, later repeats take a free suffix
	first := make(map[string]bool, len(header))
	for i, name := range names {
		if i == indexCol {
			continue
		}
		if !first[name] {
			first[name] = true
			continue
		}
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s.%d", name, n)
			if !used[candidate] {
				names[i] = candidate
				used[candidate] = true
				break
			}
		}
	}
	return names
}
