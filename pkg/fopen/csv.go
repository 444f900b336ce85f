package fopen

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/wscript-lang/runtime/pkg/werr"
)

func (f *File) delimiter() rune {
	if f.flag.Tab {
		return '\t'
	}
	return ','
}

// csvReadCell reads the col'th field (0-indexed) of the row'th line
// (0-indexed) as a CSV record. asIs disables quote interpretation: the
// line is simply split on the delimiter, matching the original's
// quote-byte-0 "as-is" reading mode.
func (f *File) csvReadCell(row, col int, asIs bool) (*string, error) {
	lines := f.lines()
	if row < 0 || row >= len(lines) {
		return nil, nil
	}
	line := lines[row]
	if asIs {
		fields := strings.Split(line, string(f.delimiter()))
		if col < 0 || col >= len(fields) {
			return nil, nil
		}
		v := strings.TrimSpace(fields[col])
		return &v, nil
	}
	record, err := parseCSVLine(line, f.delimiter())
	if err != nil {
		return nil, werr.NewBuiltinError(werr.KindFileIO, werr.MsgFileCsvError(err.Error()))
	}
	if col < 0 || col >= len(record) {
		return nil, nil
	}
	return &record[col], nil
}

func parseCSVLine(line string, delim rune) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	record, err := r.Read()
	if err != nil {
		return nil, err
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record, nil
}

func writeCSVLine(fields []string, delim rune) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delim
	if err := w.Write(fields); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}

// csvWriteCell rewrites lines[row] (already padded into existence by
// the caller) as a CSV record with its col'th field (1-indexed,
// matching the flag-level column numbering) set to value; other
// fields on that row are preserved, and any gap between the existing
// field count and col is filled with blanks.
func (f *File) csvWriteCell(lines []string, row, col int, value string) ([]string, error) {
	existing, _ := parseCSVLine(lines[row], f.delimiter())
	fields := make([]string, 0, col)
	if len(existing) > 0 {
		fields = append(fields, existing...)
	}
	for len(fields) < col {
		fields = append(fields, "")
	}
	fields[col-1] = value
	line, err := writeCSVLine(fields, f.delimiter())
	if err != nil {
		return nil, werr.NewBuiltinError(werr.KindFileIO, werr.MsgFileCsvError(err.Error()))
	}
	lines[row] = line
	return lines, nil
}

// csvAppendCell builds a brand-new CSV line with its col'th field
// (1-indexed) set to value and every field before it blank, and
// appends it to lines.
func (f *File) csvAppendCell(lines []string, col int, value string) ([]string, error) {
	fields := make([]string, col)
	fields[col-1] = value
	line, err := writeCSVLine(fields, f.delimiter())
	if err != nil {
		return nil, werr.NewBuiltinError(werr.KindFileIO, werr.MsgFileCsvError(err.Error()))
	}
	return append(lines, line), nil
}
