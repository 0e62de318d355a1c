package dataset

import (
	"errors"
	"fmt"

	apperrors "csvfleet/internal/errors"
)

var (
	// ErrColumnNotFound is returned when a named column is absent from a frame
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateColumn is returned when a frame would hold two columns with one name
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrLengthMismatch is returned when columns of different lengths are combined
	ErrLengthMismatch = errors.New("column length mismatch")
)

// Frame is an ordered collection of equally long text columns with an
// optional index. Frames are treated as immutable: every transform returns
// a new Frame.
type Frame struct {
	indexName string
	index     []string
	hasIndex  bool
	columns   []*Series
	pos       map[string]int
	rows      int
}

// New builds an unindexed frame from the given columns
func New(columns ...*Series) (*Frame, error) {
	rows := 0
	if len(columns) > 0 {
		rows = columns[0].Len()
	}
	return build("", nil, false, rows, columns)
}

// NewIndexed builds a frame whose rows are keyed by index
func NewIndexed(indexName string, index []string, columns ...*Series) (*Frame, error) {
	return build(indexName, append([]string(nil), index...), true, len(index), columns)
}

func build(indexName string, index []string, hasIndex bool, rows int, columns []*Series) (*Frame, error) {
	f := &Frame{
		indexName: indexName,
		index:     index,
		hasIndex:  hasIndex,
		columns:   make([]*Series, 0, len(columns)),
		pos:       make(map[string]int, len(columns)),
		rows:      rows,
	}
	for _, c := range columns {
		if c.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrLengthMismatch, c.Name, c.Len(), rows)
		}
		if _, dup := f.pos[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		f.pos[c.Name] = len(f.columns)
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return f.rows
}

// Width returns the number of columns, not counting the index
func (f *Frame) Width() int {
	return len(f.columns)
}

// Columns returns the column names in order
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column
func (f *Frame) Column(name string) (*Series, bool) {
	i, ok := f.pos[name]
	if !ok {
		return nil, false
	}
	return f.columns[i], true
}

// HasIndex reports whether the frame carries an index column
func (f *Frame) HasIndex() bool {
	return f.hasIndex
}

// IndexName returns the header of the index column
func (f *Frame) IndexName() string {
	return f.indexName
}

// Index returns the row keys. Unindexed frames get positional keys "0".."n-1".
func (f *Frame) Index() []string {
	if f.hasIndex {
		return append([]string(nil), f.index...)
	}
	keys := make([]string, f.rows)
	for i := range keys {
		keys[i] = fmt.Sprint(i)
	}
	return keys
}

// Select returns a frame holding only the named columns, in the given order
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([]*Series, 0, len(names))
	for _, name := range names {
		c, ok := f.Column(name)
		if !ok {
			notFound := apperrors.NewNotFoundError(fmt.Sprintf("column %q", name))
			notFound.Cause = ErrColumnNotFound
			return nil, notFound
		}
		cols = append(cols, c)
	}
	return build(f.indexName, f.index, f.hasIndex, f.rows, cols)
}

// WithColumns returns a frame with the given series added. A series whose
// name already exists replaces that column in place.
func (f *Frame) WithColumns(series ...*Series) (*Frame, error) {
	cols := append([]*Series(nil), f.columns...)
	pos := make(map[string]int, len(f.pos))
	for k, v := range f.pos {
		pos[k] = v
	}
	for _, s := range series {
		if i, ok := pos[s.Name]; ok {
			cols[i] = s
			continue
		}
		pos[s.Name] = len(cols)
		cols = append(cols, s)
	}
	rows := f.rows
	if len(f.columns) == 0 && !f.hasIndex && len(series) > 0 {
		rows = series[0].Len()
	}
	return build(f.indexName, f.index, f.hasIndex, rows, cols)
}

// Records renders the frame as a header and rows of text. Missing cells are
// written as naRep. The index is emitted as the first column only when
// withIndex is set and the frame has one.
func (f *Frame) Records(naRep string, withIndex bool) ([]string, [][]string) {
	withIndex = withIndex && f.hasIndex

	header := make([]string, 0, len(f.columns)+1)
	if withIndex {
		header = append(header, f.indexName)
	}
	header = append(header, f.Columns()...)

	rows := make([][]string, f.rows)
	for r := 0; r < f.rows; r++ {
		row := make([]string, 0, len(header))
		if withIndex {
			row = append(row, f.index[r])
		}
		for _, c := range f.columns {
			if v, ok := c.At(r); ok {
				row = append(row, v)
			} else {
				row = append(row, naRep)
			}
		}
		rows[r] = row
	}
	return header, rows
}
