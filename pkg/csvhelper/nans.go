package csvhelper

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	apperrors "csvfleet/internal/errors"
)

// ValueSet is a set of distinct strings
type ValueSet map[string]struct{}

// Add inserts v
func (s ValueSet) Add(v string) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set
func (s ValueSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order
func (s ValueSet) Sorted() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// FindNaNs reads the file as CSV and collects every field that does not parse
// as a floating point number. Stray quotes stay part of their field. The
// header row and the first column are skipped when the options say so. The
// result is meant to be used as the missing-value list of a later read.
func FindNaNs(path string, opts NaNOptions) (ValueSet, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIOError("failed to open "+path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	skipCols := 0
	if opts.SkipIndexCol {
		skipCols = 1
	}

	found := make(ValueSet)
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to parse "+path, err)
		}
		if first {
			first = false
			if opts.SkipHeader {
				continue
			}
		}
		if len(record) <= skipCols {
			continue
		}
		for _, field := range record[skipCols:] {
			if !isNumber(field) {
				found.Add(field)
			}
		}
	}

	slog.Debug("Collected non-numeric values",
		slog.String("file_path", path),
		slog.Int("distinct", len(found)))
	return found, nil
}

// isNumber accepts anything ParseFloat reads, surrounding blanks and values
// too large for a float64 included
func isNumber(field string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
