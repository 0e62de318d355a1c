package csvhelper

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "csvfleet/internal/errors"
	"csvfleet/internal/shared/testutil"
)

func TestDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected rune
	}{
		{name: "sample file", content: testutil.SampleCSV, expected: ','},
		{name: "semicolon", content: "a;b;c\n1;2;3\n", expected: ';'},
		{name: "tab", content: "a\tb\n1\t2\n", expected: '\t'},
		{name: "pipe", content: "a|b\n1|2\n", expected: '|'},
		{name: "colon", content: "a:b\n1:2\n", expected: ':'},
		{name: "spaces inside comma fields", content: "a b,c d\n1,2\n", expected: ','},
		{name: "quoted commas ignored", content: "\"x,y\";z\n\"1,2\";3\n", expected: ';'},
		{name: "blank lines ignored", content: "a,b\n\n1,2\n\n", expected: ','},
		{name: "tie goes to earlier candidate", content: "a,b;c\n1,2;3\n", expected: ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "data.csv", tt.content)
			got, err := Delimiter(path)
			require.NoError(t, err)
			assert.Equal(t, string(tt.expected), string(got))
		})
	}
}

func TestDelimiter_Undetermined(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "single column", content: "abc\ndef\n"},
		{name: "inconsistent counts", content: "a,b\nc,d,e\nf,g,h,i\n"},
		{name: "header disagrees with short body", content: "a;b\n1,2,3\n4,5,6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "data.csv", tt.content)
			_, err := Delimiter(path)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
		})
	}
}

func TestDelimiterN_Truncated(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "data.csv", "a;b\n"+strings.Repeat("1,2,3\n", 10))

	got, err := DelimiterN(path, 4)
	require.NoError(t, err)
	assert.Equal(t, ';', got)

	got, err = DelimiterN(path, 1000)
	require.NoError(t, err)
	assert.Equal(t, ',', got)
}

func TestDelimiter_MissingFile(t *testing.T) {
	_, err := Delimiter(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeIO))
}
