package csvhelper

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	apperrors "csvfleet/internal/errors"
)

// sniffCandidates are tried in order; an earlier candidate wins a tie
var sniffCandidates = []rune{',', '\t', ';', ' ', ':', '|'}

// minConsistency is the share of lines that must agree on a candidate's count
const minConsistency = 0.9

// Delimiter infers the field delimiter from the first DefaultSniffBytes bytes
func Delimiter(path string) (rune, error) {
	return DelimiterN(path, DefaultSniffBytes)
}

// DelimiterN infers the field delimiter from the first n bytes of the file.
//
// For every candidate the number of occurrences outside quotes is counted on
// each non-blank line. The most frequent count is the candidate's mode and the
// share of lines having that count its consistency. The most consistent
// candidate with a non-zero mode wins, provided at least 90% of the lines
// agree on its count.
func DelimiterN(path string, n int) (rune, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, apperrors.NewIOError("failed to open "+path, err)
	}
	defer file.Close()

	sample, err := io.ReadAll(io.LimitReader(file, int64(n)))
	if err != nil {
		return 0, apperrors.NewIOError("failed to read "+path, err)
	}

	lines := sampleLines(sample, len(sample) == n)
	best, bestScore := rune(0), 0.0
	for _, candidate := range sniffCandidates {
		mode, consistency := delimiterScore(lines, candidate)
		if mode == 0 || consistency < minConsistency {
			continue
		}
		if consistency > bestScore {
			best, bestScore = candidate, consistency
		}
	}

	if best == 0 {
		return 0, apperrors.NewParsingError("could not determine delimiter", nil).
			WithContext("file_path", path)
	}

	slog.Debug("Sniffed delimiter",
		slog.String("file_path", path),
		slog.String("delimiter", string(best)),
		slog.Float64("consistency", bestScore))
	return best, nil
}

// sampleLines splits the sample into non-blank lines. When the sample was cut
// short the last line is probably partial and is dropped, unless it is the
// only one.
func sampleLines(sample []byte, truncated bool) [][]byte {
	var lines [][]byte
	scanner := newLineScanner(bytes.NewReader(sample), false)
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), scanner.Bytes()...))
	}
	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// delimiterScore returns the modal per-line count of r and the fraction of
// lines with exactly that count. Ties between counts go to the larger count.
func delimiterScore(lines [][]byte, r rune) (int, float64) {
	if len(lines) == 0 {
		return 0, 0
	}
	freq := make(map[int]int)
	for _, line := range lines {
		freq[countOutsideQuotes(line, r)]++
	}
	mode, modeFreq := 0, 0
	for count, f := range freq {
		if f > modeFreq || (f == modeFreq && count > mode) {
			mode, modeFreq = count, f
		}
	}
	return mode, float64(modeFreq) / float64(len(lines))
}

func countOutsideQuotes(line []byte, r rune) int {
	count, quoted := 0, false
	for _, c := range string(line) {
		switch {
		case c == '"':
			quoted = !quoted
		case c == r && !quoted:
			count++
		}
	}
	return count
}
