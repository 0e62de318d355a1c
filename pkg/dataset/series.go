package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Series is a named column of text cells. A cell flagged in na is missing.
type Series struct {
	Name   string
	values []string
	na     []bool
}

// NewSeries builds a series from raw values. na may be nil, meaning no cell
// is missing; otherwise it must have the same length as values.
func NewSeries(name string, values []string, na []bool) *Series {
	s := &Series{
		Name:   name,
		values: append([]string(nil), values...),
		na:     make([]bool, len(values)),
	}
	copy(s.na, na)
	return s
}

// NewFloatSeries builds a series from numbers. NaN values become missing cells.
func NewFloatSeries(name string, values []float64) *Series {
	s := &Series{
		Name:   name,
		values: make([]string, len(values)),
		na:     make([]bool, len(values)),
	}
	for i, v := range values {
		if math.IsNaN(v) {
			s.na[i] = true
			continue
		}
		s.values[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return s
}

// naSeries returns a series of n missing cells
func naSeries(name string, n int) *Series {
	s := &Series{Name: name, values: make([]string, n), na: make([]bool, n)}
	for i := range s.na {
		s.na[i] = true
	}
	return s
}

// Len returns the number of cells
func (s *Series) Len() int {
	return len(s.values)
}

// At returns the text of cell i and whether it is present
func (s *Series) At(i int) (string, bool) {
	if s.na[i] {
		return "", false
	}
	return s.values[i], true
}

// IsNA reports whether cell i is missing
func (s *Series) IsNA(i int) bool {
	return s.na[i]
}

// Float returns cell i as a number, NaN when missing or not numeric
func (s *Series) Float(i int) float64 {
	if s.na[i] {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s.values[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Floats returns every cell as a number
func (s *Series) Floats() []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = s.Float(i)
	}
	return out
}

// Strings returns the cells as text with missing cells replaced by naRep
func (s *Series) Strings(naRep string) []string {
	out := make([]string, s.Len())
	for i, v := range s.values {
		if s.na[i] {
			out[i] = naRep
			continue
		}
		out[i] = v
	}
	return out
}

// take builds a new series from the given row positions; -1 yields a missing cell
func (s *Series) take(rows []int) *Series {
	out := &Series{Name: s.Name, values: make([]string, len(rows)), na: make([]bool, len(rows))}
	for i, r := range rows {
		if r < 0 {
			out.na[i] = true
			continue
		}
		out.values[i] = s.values[r]
		out.na[i] = s.na[r]
	}
	return out
}
