package csvhelper

import (
	"fmt"
	"log/slog"

	"csvfleet/internal/files"
	"csvfleet/internal/validation"
	"csvfleet/pkg/dataset"
)

// ReadFiles loads every file addressed by path and joins them into one frame
// on the index. path may name a file, a directory or a glob pattern. Files
// with an Excel extension are read from their first sheet, everything else
// as CSV. The files must not share column names.
func ReadFiles(path string, opts dataset.ReadOptions) (*dataset.Frame, error) {
	paths, err := files.NewDiscovery("").Iterate(path)
	if err != nil {
		return nil, err
	}

	combined, err := dataset.New()
	if err != nil {
		return nil, err
	}

	loaded := 0
	for _, p := range paths {
		if validation.IsTempExcelFile(p) {
			slog.Debug("Skipping temporary Excel file", slog.String("file_path", p))
			continue
		}

		var frame *dataset.Frame
		if validation.IsExcelFile(p) {
			frame, err = dataset.ReadXLSX(p, opts)
		} else {
			frame, err = dataset.ReadCSV(p, opts)
		}
		if err != nil {
			return nil, err
		}

		combined, err = combined.JoinOuter(frame)
		if err != nil {
			return nil, fmt.Errorf("failed to join %s: %w", p, err)
		}
		loaded++
	}

	slog.Info("Loaded files",
		slog.String("path", path),
		slog.Int("files", loaded),
		slog.Int("rows", combined.Len()),
		slog.Int("columns", combined.Width()))
	return combined, nil
}
