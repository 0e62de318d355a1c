package fleet

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "csvfleet/internal/errors"
	"csvfleet/pkg/dataset"
)

// ErrMissingCounterpart is matched by every *MissingCounterpartError
var ErrMissingCounterpart = errors.New("missing counterpart column")

// RowFunc computes one output value from the values of one unit's columns,
// given in roots order. Missing or non-numeric cells arrive as NaN; a NaN
// result becomes a missing cell. args is reused between calls.
type RowFunc func(args []float64) float64

// MissingCounterpartError lists every column BuildCalculated needed but did
// not find
type MissingCounterpartError struct {
	Missing []string
}

func (e *MissingCounterpartError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCounterpart, strings.Join(e.Missing, ", "))
}

// Unwrap lets errors.Is match ErrMissingCounterpart
func (e *MissingCounterpartError) Unwrap() error {
	return ErrMissingCounterpart
}

// BuildCalculated derives a calculated variable for every unit of a fleet.
//
// Every column ending in roots[0] names a unit. Its counterparts are the same
// name with that trailing root replaced by each of the other roots. fn is
// applied row by row to the unit's columns and the result is named after the
// unit column with its trailing roots[0] replaced by output. For columns
// "GT01.a", "GT01.b", "GT02.a", "GT02.b", roots [".a", ".b"] and output ".c"
// the result holds "GT01.c" and "GT02.c".
//
// When any counterpart is absent nothing is built and a
// *MissingCounterpartError names all of them. frame is not modified; use
// frame.WithColumns to attach the result.
func BuildCalculated(frame *dataset.Frame, fn RowFunc, roots []string, output string) ([]*dataset.Series, error) {
	if frame == nil || fn == nil {
		return nil, apperrors.NewValidationError("frame and function are required", nil)
	}
	if len(roots) == 0 || roots[0] == "" {
		return nil, apperrors.NewValidationError("at least one non-empty root is required", nil)
	}
	if output == "" {
		return nil, apperrors.NewValidationError("output root is required", nil)
	}

	first := roots[0]
	type unit struct {
		output string
		inputs []*dataset.Series
	}

	var units []unit
	var missing []string
	for _, name := range frame.Columns() {
		if !strings.HasSuffix(name, first) {
			continue
		}
		base := strings.TrimSuffix(name, first)
		u := unit{output: base + output, inputs: make([]*dataset.Series, 0, len(roots))}
		for _, root := range roots {
			col, ok := frame.Column(base + root)
			if !ok {
				missing = append(missing, base+root)
				continue
			}
			u.inputs = append(u.inputs, col)
		}
		units = append(units, u)
	}

	if len(missing) > 0 {
		return nil, &MissingCounterpartError{Missing: missing}
	}

	result := make([]*dataset.Series, 0, len(units))
	args := make([]float64, len(roots))
	for _, u := range units {
		inputs := make([][]float64, len(u.inputs))
		for i, s := range u.inputs {
			inputs[i] = s.Floats()
		}
		values := make([]float64, frame.Len())
		for row := range values {
			for i := range inputs {
				args[i] = inputs[i][row]
			}
			values[row] = fn(args)
		}
		result = append(result, dataset.NewFloatSeries(u.output, values))
	}

	slog.Debug("Built calculated variables",
		slog.String("root", first),
		slog.String("output", output),
		slog.Int("units", len(result)))
	return result, nil
}
