package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "csvfleet/internal/errors"
)

type sampleOptions struct {
	Rows      int      `validate:"gte=0"`
	Delimiter rune     `validate:"delimiter"`
	Patterns  []string `validate:"min=1,dive,required"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		opts    sampleOptions
		wantErr string
	}{
		{name: "valid", opts: sampleOptions{Rows: 5, Delimiter: ';', Patterns: []string{"a"}}},
		{name: "default delimiter", opts: sampleOptions{Patterns: []string{"a"}}},
		{name: "tab delimiter", opts: sampleOptions{Delimiter: '\t', Patterns: []string{"a"}}},
		{name: "negative rows", opts: sampleOptions{Rows: -1, Patterns: []string{"a"}}, wantErr: "Rows failed on gte"},
		{name: "quote delimiter", opts: sampleOptions{Delimiter: '"', Patterns: []string{"a"}}, wantErr: "Delimiter failed on delimiter"},
		{name: "newline delimiter", opts: sampleOptions{Delimiter: '\n', Patterns: []string{"a"}}, wantErr: "Delimiter failed on delimiter"},
		{name: "no patterns", opts: sampleOptions{}, wantErr: "Patterns failed on min"},
		{name: "empty pattern", opts: sampleOptions{Patterns: []string{""}}, wantErr: "failed on required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.opts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
		})
	}
}
