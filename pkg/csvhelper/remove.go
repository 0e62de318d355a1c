package csvhelper

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	apperrors "csvfleet/internal/errors"
	"csvfleet/internal/files"
)

// RemoveRow rewrites the file without line n, counting from 0. A negative n
// counts from the end, so -1 is the last line. When n is out of range the
// file is rewritten unchanged. Every other line keeps its bytes, terminator
// included. The new content replaces the file atomically.
func RemoveRow(path string, n int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewIOError("failed to read "+path, err)
	}

	var lines [][]byte
	scanner := newLineScanner(bytes.NewReader(data), true)
	for scanner.Scan() {
		lines = append(lines, scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewIOError("failed to read "+path, err)
	}

	target := n
	if target < 0 {
		target += len(lines)
	}

	if target >= 0 && target < len(lines) {
		slog.Info("Removing row",
			slog.String("file_path", path),
			slog.Int("row", target),
			slog.String("content", string(bytes.TrimRight(lines[target], "\r\n"))))
	} else {
		slog.Warn("Row out of range, file left unchanged",
			slog.String("file_path", path),
			slog.Int("row", n),
			slog.Int("total_rows", len(lines)))
	}

	return files.NewManager("").WriteAtomic(path, func(w io.Writer) error {
		for i, line := range lines {
			if i == target {
				continue
			}
			if _, err := w.Write(line); err != nil {
				return err
			}
		}
		return nil
	})
}
