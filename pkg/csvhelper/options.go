package csvhelper

import (
	"math/rand/v2"

	"csvfleet/internal/validation"
)

const (
	// DefaultPreviewRows is the number of rows Head, Tail and RandomRows return
	DefaultPreviewRows = 5
	// DefaultPreviewChars is the number of characters kept from each previewed row
	DefaultPreviewChars = 70
	// DefaultSniffBytes is how much of a file Delimiter looks at
	DefaultSniffBytes = 9999
	// DefaultNARep marks missing cells in files written by ColSubset
	DefaultNARep = "NaN"
)

// PreviewOptions controls Head, Tail and RandomRows
type PreviewOptions struct {
	// NRows is the number of rows to return.
	NRows int `validate:"gte=0"`
	// NChars truncates each row to this many characters. Negative keeps the whole line.
	NChars int
	// Rand draws the rows for RandomRows. nil uses the global source.
	Rand *rand.Rand
}

// DefaultPreviewOptions returns 5 rows of at most 70 characters
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{NRows: DefaultPreviewRows, NChars: DefaultPreviewChars}
}

// NaNOptions controls FindNaNs
type NaNOptions struct {
	SkipHeader   bool
	SkipIndexCol bool
	Delimiter    rune `validate:"delimiter"`
}

// DefaultNaNOptions skips the header row and the index column of a comma separated file
func DefaultNaNOptions() NaNOptions {
	return NaNOptions{SkipHeader: true, SkipIndexCol: true, Delimiter: ','}
}

// SubsetOptions controls ColSubset
type SubsetOptions struct {
	// IncludeFirst puts the file's first column, usually the row key, first.
	IncludeFirst bool
	// NARep is written for missing cells. Empty means DefaultNARep.
	NARep string
	// Delimiter of the source file. 0 means ','.
	Delimiter rune `validate:"delimiter"`
	// BOMPrefix starts the output with a UTF-8 byte order mark.
	BOMPrefix bool
}

// DefaultSubsetOptions keeps the first column and writes NaN for missing cells
func DefaultSubsetOptions() SubsetOptions {
	return SubsetOptions{IncludeFirst: true, NARep: DefaultNARep}
}

type subsetArgs struct {
	Src      string   `validate:"required"`
	Dst      string   `validate:"required"`
	Patterns []string `validate:"min=1"`
	Options  SubsetOptions
}

func validateOptions(v any) error {
	return validation.Struct(v)
}
