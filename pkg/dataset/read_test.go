package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		opts      ReadOptions
		wantCols  []string
		wantIndex []string
		wantRows  [][]string
		wantErr   error
	}{
		{
			name:      "first column as index",
			input:     ",a,b\n0,01,02\n1,x,12\n",
			opts:      ReadOptions{IndexCol: 0},
			wantCols:  []string{"a", "b"},
			wantIndex: []string{"0", "1"},
			wantRows:  [][]string{{"01", "02"}, {"x", "12"}},
		},
		{
			name:      "no index keeps every column as text",
			input:     "id,val\n7,00.50\n8,NA\n",
			opts:      DefaultReadOptions(),
			wantCols:  []string{"id", "val"},
			wantIndex: []string{"0", "1"},
			wantRows:  [][]string{{"7", "00.50"}, {"8", "NaN"}},
		},
		{
			name:      "semicolon delimiter",
			input:     "a;b\n1;2\n",
			opts:      ReadOptions{Delimiter: ';', IndexCol: NoIndex},
			wantCols:  []string{"a", "b"},
			wantIndex: []string{"0"},
			wantRows:  [][]string{{"1", "2"}},
		},
		{
			name:      "short rows are padded with missing cells",
			input:     "a,b,c\n1\n",
			opts:      DefaultReadOptions(),
			wantCols:  []string{"a", "b", "c"},
			wantIndex: []string{"0"},
			wantRows:  [][]string{{"1", "NaN", "NaN"}},
		},
		{
			name:      "blank and repeated headers are renamed",
			input:     "a,,a,a\n1,2,3,4\n",
			opts:      DefaultReadOptions(),
			wantCols:  []string{"a", "Unnamed: 1", "a.1", "a.2"},
			wantIndex: []string{"0"},
			wantRows:  [][]string{{"1", "2", "3", "4"}},
		},
		{
			name:      "repeated header skips suffixes already taken",
			input:     "a,a.1,a\n1,2,3\n",
			opts:      DefaultReadOptions(),
			wantCols:  []string{"a", "a.1", "a.2"},
			wantIndex: []string{"0"},
			wantRows:  [][]string{{"1", "2", "3"}},
		},
		{
			name:      "custom NA values",
			input:     "a,b\n-,NA\n",
			opts:      ReadOptions{IndexCol: NoIndex, NAValues: []string{"-"}},
			wantCols:  []string{"a", "b"},
			wantIndex: []string{"0"},
			wantRows:  [][]string{{"NaN", "NA"}},
		},
		{
			name:      "byte order mark is stripped from the header",
			input:     "\ufeffkey,v\nk1,1\n",
			opts:      ReadOptions{IndexCol: 0},
			wantCols:  []string{"v"},
			wantIndex: []string{"k1"},
			wantRows:  [][]string{{"1"}},
		},
		{
			name:    "empty input",
			input:   "",
			opts:    DefaultReadOptions(),
			wantErr: ErrEmptyData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseCSV(strings.NewReader(tt.input), tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantCols, f.Columns())
			assert.Equal(t, tt.wantIndex, f.Index())
			_, rows := f.Records("NaN", false)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestParseCSV_TooManyFields(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b\n1,2,3\n"), DefaultReadOptions())
	assert.Error(t, err)
}

func TestParseCSV_IndexOutOfRange(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b\n1,2\n"), ReadOptions{IndexCol: 5})
	assert.Error(t, err)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"), DefaultReadOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("k,GT01.power\nr1,5\n"), 0644))

	f, err := ReadCSV(path, ReadOptions{IndexCol: 0})
	require.NoError(t, err)
	assert.Equal(t, "k", f.IndexName())
	assert.Equal(t, []string{"GT01.power"}, f.Columns())
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.xlsx")

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"idx", "GT01.a", "GT02.a"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"0", "1.5", "x"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]interface{}{"1", "2"}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	f, err := ReadXLSX(path, ReadOptions{IndexCol: 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"GT01.a", "GT02.a"}, f.Columns())
	assert.Equal(t, []string{"0", "1"}, f.Index())
	_, rows := f.Records("NaN", false)
	assert.Equal(t, [][]string{{"1.5", "x"}, {"2", "NaN"}}, rows)
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), DefaultReadOptions())
	assert.Error(t, err)
}
