package csvhelper

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	apperrors "csvfleet/internal/errors"
	"csvfleet/internal/exporter"
	"csvfleet/internal/files"
	"csvfleet/internal/validation"
	"csvfleet/pkg/dataset"
)

// ErrNoColumnsMatched is returned by ColSubset when nothing would be written
var ErrNoColumnsMatched = errors.New("no columns matched")

// ColSubset copies the columns of src whose name contains any of patterns to
// dst. Columns are taken pattern by pattern, each pattern in file order, and
// a column matched twice is written once. With IncludeFirst the first column
// of src leads the output. Every cell is read as text, so values such as "01"
// survive; missing cells are written as NARep and no index column is added.
// It returns the names of the written columns.
func ColSubset(src, dst string, patterns []string, opts SubsetOptions) ([]string, error) {
	if err := validateOptions(subsetArgs{Src: src, Dst: dst, Patterns: patterns, Options: opts}); err != nil {
		return nil, err
	}

	frame, err := dataset.ReadCSV(src, dataset.ReadOptions{
		Delimiter: opts.Delimiter,
		IndexCol:  dataset.NoIndex,
	})
	if err != nil {
		return nil, apperrors.NewParsingError("failed to load "+src, err)
	}

	selected := subsetColumns(frame.Columns(), patterns, opts.IncludeFirst)
	if len(selected) == 0 {
		return nil, apperrors.NewValidationError(
			"no column of "+src+" contains "+strings.Join(patterns, ", "), ErrNoColumnsMatched)
	}

	subset, err := frame.Select(selected...)
	if err != nil {
		return nil, err
	}

	if err := validation.NewFileValidator(nil).ValidateOutputDirectory(filepath.Dir(dst)); err != nil {
		return nil, err
	}

	naRep := opts.NARep
	if naRep == "" {
		naRep = DefaultNARep
	}
	writer := exporter.NewCSVWriter(files.NewManager(""))
	err = writer.WriteFrame(dst, subset, exporter.FrameOptions{
		NARep:     naRep,
		BOMPrefix: opts.BOMPrefix,
	})
	if err != nil {
		return nil, apperrors.NewIOError("failed to write "+dst, err)
	}

	slog.Info("Wrote column subset",
		slog.String("source", src),
		slog.String("destination", dst),
		slog.Int("columns", len(selected)),
		slog.Int("rows", subset.Len()))
	return selected, nil
}

func subsetColumns(columns, patterns []string, includeFirst bool) []string {
	seen := make(map[string]bool, len(columns))
	selected := make([]string, 0, len(columns))
	if includeFirst && len(columns) > 0 {
		selected = append(selected, columns[0])
		seen[columns[0]] = true
	}
	for _, pattern := range patterns {
		for _, col := range columns {
			if !seen[col] && strings.Contains(col, pattern) {
				selected = append(selected, col)
				seen[col] = true
			}
		}
	}
	return selected
}
