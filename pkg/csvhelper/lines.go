package csvhelper

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	apperrors "csvfleet/internal/errors"
)

const maxLineSize = 64 * 1024 * 1024

// splitLines is a bufio.SplitFunc that accepts \n, \r\n and a lone \r as line
// terminators. A final line without terminator is still a line. With keepEnds
// the terminator stays on the token.
func splitLines(keepEnds bool) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
			end := i + 1
			if data[i] == '\r' {
				if end == len(data) && !atEOF {
					// need one more byte to tell \r from \r\n
					return 0, nil, nil
				}
				if end < len(data) && data[end] == '\n' {
					end++
				}
			}
			if keepEnds {
				return end, data[:end], nil
			}
			return end, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

func newLineScanner(r io.Reader, keepEnds bool) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(splitLines(keepEnds))
	return scanner
}

// eachLine calls fn with every line of the file at path until fn returns false
func eachLine(path string, fn func(i int, line []byte) bool) error {
	file, err := os.Open(path)
	if err != nil {
		return apperrors.NewIOError("failed to open "+path, err)
	}
	defer file.Close()

	scanner := newLineScanner(file, false)
	for i := 0; scanner.Scan(); i++ {
		if !fn(i, scanner.Bytes()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewIOError("failed to read "+path, err)
	}
	return nil
}

// truncate keeps the first n runes of line; negative n keeps everything
func truncate(line []byte, n int) string {
	if n < 0 {
		return string(line)
	}
	runes := bytes.Runes(line)
	if len(runes) <= n {
		return string(line)
	}
	return string(runes[:n])
}

// NumRows returns the number of lines in the file, blank lines included
func NumRows(path string) (int, error) {
	rows := 0
	err := eachLine(path, func(int, []byte) bool {
		rows++
		return true
	})
	if err != nil {
		return 0, err
	}

	slog.Debug("Counted rows",
		slog.String("file_path", path),
		slog.Int("rows", rows))
	return rows, nil
}

// Head returns the first NRows lines, header included
func Head(path string, opts PreviewOptions) ([]string, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	head := make([]string, 0, opts.NRows)
	err := eachLine(path, func(i int, line []byte) bool {
		if i >= opts.NRows {
			return false
		}
		head = append(head, truncate(line, opts.NChars))
		return true
	})
	if err != nil {
		return nil, err
	}
	return head, nil
}

// Tail returns the last NRows lines. The file is read twice: once to count
// the lines and once to collect them.
func Tail(path string, opts PreviewOptions) ([]string, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	total, err := NumRows(path)
	if err != nil {
		return nil, err
	}

	first := total - opts.NRows
	tail := make([]string, 0, min(opts.NRows, total))
	err = eachLine(path, func(i int, line []byte) bool {
		if i >= first {
			tail = append(tail, truncate(line, opts.NChars))
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return tail, nil
}

// RandomRows draws NRows line numbers uniformly, with replacement, from 1 to
// the number of lines and returns the drawn lines in file order. A line drawn
// twice is returned once. Line 0, the header, is never drawn. Drawing the
// number of lines itself matches no line, so fewer rows than requested may
// come back.
func RandomRows(path string, opts PreviewOptions) ([]string, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	total, err := NumRows(path)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return []string{}, nil
	}

	intN := rand.IntN
	if opts.Rand != nil {
		intN = opts.Rand.IntN
	}
	drawn := make(map[int]struct{}, opts.NRows)
	for range opts.NRows {
		drawn[intN(total)+1] = struct{}{}
	}

	rows := make([]string, 0, len(drawn))
	err = eachLine(path, func(i int, line []byte) bool {
		if _, ok := drawn[i]; ok {
			rows = append(rows, truncate(line, opts.NChars))
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Sampled random rows",
		slog.String("file_path", path),
		slog.Int("requested", opts.NRows),
		slog.Int("returned", len(rows)))
	return rows, nil
}
