package recordio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowDecoder(t *testing.T) {
	tests := []struct {
		name      string
		row       []string
		wantErr   bool
		wantLine  int
		wantField int
	}{
		{
			name: "valid row",
			row:  []string{"1", "Title", "2000", "8.8"},
		},
		{
			name:      "wrong field count",
			row:       []string{"1", "Title"},
			wantErr:   true,
			wantField: 2,
		},
		{
			name:      "non-numeric int",
			row:       []string{"1", "Title", "year", "8.8"},
			wantErr:   true,
			wantField: 2,
		},
		{
			name:      "non-numeric float",
			row:       []string{"1", "Title", "2000", "high"},
			wantErr:   true,
			wantField: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewRowDecoder(7, tt.row).Require(4)
			_ = d.Uint(0)
			_ = d.String(1)
			_ = d.Int(2)
			_ = d.Float(3)
			err := d.Err()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			decodeErr, ok := err.(*DecodeError)
			require.True(t, ok)
			assert.Equal(t, 7, decodeErr.Line)
			assert.Equal(t, tt.wantField, decodeErr.Field)
		})
	}
}

func TestRowDecoderKeepsFirstError(t *testing.T) {
	d := NewRowDecoder(1, []string{"x", "y"})
	_ = d.Int(0)
	_ = d.Float(1)
	decodeErr, ok := d.Err().(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, 0, decodeErr.Field)
}

func TestFormatFloatRoundTrips(t *testing.T) {
	for _, v := range []float64{0, 8.8, 9.95, 10, 7.123456789} {
		s := FormatFloat(v)
		assert.NotContains(t, s, "0000000")
		d := NewRowDecoder(1, []string{s})
		assert.Equal(t, v, d.Float(0))
		assert.NoError(t, d.Err())
	}
}

func TestWriteFileReadFileQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	rows := [][]string{
		{"1", `A "quoted" title, with commas`, "line\nbreak"},
		{"2", "plain"},
	}
	require.NoError(t, WriteFile(path, rows))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriteFileReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, WriteFile(path, [][]string{{"old", "row"}}))
	require.NoError(t, WriteFile(path, [][]string{{"new"}}))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"new"}}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, Missing(err))
}

func TestAppendRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	header := []string{"Username", "Password"}

	require.NoError(t, AppendRow(path, header, []string{"alice", "h1"}))
	require.NoError(t, AppendRow(path, header, []string{"bob", "h2"}))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{header, {"alice", "h1"}, {"bob", "h2"}}, got)
}
