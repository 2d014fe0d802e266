// Package recordio reads and writes the delimited-text rows backing every
// store. Field quoting and escaping follow RFC 4180 so free-text fields may
// contain the delimiter, quotes or newlines.
package recordio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// DecodeError reports a malformed row: a wrong field count or a field that
// failed numeric conversion. Line is 1-based, Field is 0-based.
type DecodeError struct {
	Line  int
	Field int
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("row %d, field %d: %v", e.Line, e.Field, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// RowDecoder extracts typed fields from one row, remembering the first
// failure. Callers check Err once after reading every field they need.
type RowDecoder struct {
	line int
	row  []string
	err  error
}

// NewRowDecoder creates a decoder for a single row. line is the 1-based
// position of the row in its file, used in error reports.
func NewRowDecoder(line int, row []string) *RowDecoder {
	return &RowDecoder{line: line, row: row}
}

// Require fails the decoder unless the row has exactly n fields.
func (d *RowDecoder) Require(n int) *RowDecoder {
	if d.err == nil && len(d.row) != n {
		d.err = &DecodeError{Line: d.line, Field: len(d.row), Cause: fmt.Errorf("expected %d fields, got %d", n, len(d.row))}
	}
	return d
}

func (d *RowDecoder) String(i int) string {
	if d.err != nil || i >= len(d.row) {
		return ""
	}
	return d.row[i]
}

func (d *RowDecoder) Int(i int) int {
	if d.err != nil || i >= len(d.row) {
		return 0
	}
	v, err := strconv.Atoi(d.row[i])
	if err != nil {
		d.err = &DecodeError{Line: d.line, Field: i, Cause: err}
		return 0
	}
	return v
}

func (d *RowDecoder) Uint(i int) uint64 {
	if d.err != nil || i >= len(d.row) {
		return 0
	}
	v, err := strconv.ParseUint(d.row[i], 10, 64)
	if err != nil {
		d.err = &DecodeError{Line: d.line, Field: i, Cause: err}
		return 0
	}
	return v
}

func (d *RowDecoder) Float(i int) float64 {
	if d.err != nil || i >= len(d.row) {
		return 0
	}
	v, err := strconv.ParseFloat(d.row[i], 64)
	if err != nil {
		d.err = &DecodeError{Line: d.line, Field: i, Cause: err}
		return 0
	}
	return v
}

// Err returns the first decode failure, or nil.
func (d *RowDecoder) Err() error {
	return d.err
}

// FormatFloat renders a float with the shortest representation that parses
// back to the same value, so encode/decode round-trips exactly.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ReadAll parses every row from r. Rows may have differing widths.
func ReadAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// ReadFile parses every row of the file at path. A missing file is reported
// as fs.ErrNotExist; callers that treat absence as an empty store check for
// it with errors.Is.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// WriteFile replaces the file at path with the given rows. The rewrite is
// atomic: rows are written to a temp file in the same directory which is
// renamed over the target, so a failed save never truncates existing data.
func WriteFile(path string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// AppendRow appends a single row to the file at path, writing header first
// when the file is new or empty.
func AppendRow(path string, header, row []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	cw := csv.NewWriter(f)
	if st.Size() == 0 && header != nil {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// Missing reports whether err means the backing file does not exist yet.
func Missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
