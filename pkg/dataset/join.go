package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrColumnOverlap is returned when two joined frames share a column name
	ErrColumnOverlap = errors.New("columns overlap")
	// ErrDuplicateIndex is returned when a joined frame repeats an index value
	ErrDuplicateIndex = errors.New("duplicate index value")
)

// JoinOuter combines two frames on their index. The result holds every key
// of either frame, sorted, with missing cells where a frame has no row for a
// key. Frames without an index join on row position. Column names must not
// collide and index values must be unique within each frame.
func (f *Frame) JoinOuter(other *Frame) (*Frame, error) {
	if f.Width() == 0 && f.Len() == 0 {
		return other, nil
	}
	if other.Width() == 0 && other.Len() == 0 {
		return f, nil
	}

	var overlap []string
	for _, name := range other.Columns() {
		if _, ok := f.pos[name]; ok {
			overlap = append(overlap, name)
		}
	}
	if len(overlap) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnOverlap, strings.Join(overlap, ", "))
	}

	leftKeys, rightKeys := f.Index(), other.Index()
	leftPos, err := keyPositions(leftKeys)
	if err != nil {
		return nil, err
	}
	rightPos, err := keyPositions(rightKeys)
	if err != nil {
		return nil, err
	}

	union := make([]string, 0, len(leftKeys)+len(rightKeys))
	union = append(union, leftKeys...)
	for _, k := range rightKeys {
		if _, ok := leftPos[k]; !ok {
			union = append(union, k)
		}
	}
	sort.SliceStable(union, func(i, j int) bool { return lessKey(union[i], union[j]) })

	leftRows := make([]int, len(union))
	rightRows := make([]int, len(union))
	for i, k := range union {
		leftRows[i] = lookup(leftPos, k)
		rightRows[i] = lookup(rightPos, k)
	}

	cols := make([]*Series, 0, f.Width()+other.Width())
	for _, c := range f.columns {
		cols = append(cols, c.take(leftRows))
	}
	for _, c := range other.columns {
		cols = append(cols, c.take(rightRows))
	}

	if !f.hasIndex && !other.hasIndex {
		return New(cols...)
	}
	indexName := f.indexName
	if !f.hasIndex {
		indexName = other.indexName
	}
	return NewIndexed(indexName, union, cols...)
}

func keyPositions(keys []string) (map[string]int, error) {
	pos := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := pos[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIndex, k)
		}
		pos[k] = i
	}
	return pos, nil
}

func lookup(pos map[string]int, key string) int {
	if i, ok := pos[key]; ok {
		return i
	}
	return -1
}

// lessKey orders numerically when both keys are numbers, lexically otherwise.
// Numbers sort before text.
func lessKey(a, b string) bool {
	fa, numA := numericKey(a)
	fb, numB := numericKey(b)
	switch {
	case numA && numB:
		return fa < fb
	case numA:
		return true
	case numB:
		return false
	default:
		return a < b
	}
}

// numericKey parses key as a float. NaN has no order so it counts as text.
func numericKey(key string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
