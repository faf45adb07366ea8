package sheet

import (
	"fmt"
	"io"
	"strings"
)

const (
	rowSeparator  = "\n"
	cellSeparator = "\t"
)

// Parse converts a TSV payload into records, in source row order.
//
// The whole payload is trimmed first, so leading and trailing blank lines are
// ignored. Header cells are trimmed and lowercased. Cells past the header
// width are dropped and missing trailing cells are left absent. An empty
// payload yields no records.
func Parse(payload string) []Record {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil
	}

	lines := strings.Split(payload, rowSeparator)
	headers := parseHeader(lines[0])

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		records = append(records, parseRow(headers, line))
	}
	return records
}

// ParseReader reads r to the end and parses the payload.
func ParseReader(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sheet payload: %w", err)
	}
	return Parse(string(data)), nil
}

// Headers returns the normalized field names of the payload's header row.
func Headers(payload string) []string {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil
	}
	first, _, _ := strings.Cut(payload, rowSeparator)
	return parseHeader(first)
}

func parseHeader(line string) []string {
	cells := strings.Split(line, cellSeparator)
	headers := make([]string, len(cells))
	for i, c := range cells {
		headers[i] = NormalizeName(c)
	}
	return headers
}

func parseRow(headers []string, line string) Record {
	cells := strings.Split(line, cellSeparator)
	n := min(len(cells), len(headers))

	fields := make([]Field, n)
	for i := range n {
		fields[i] = Field{Name: headers[i], Value: strings.TrimSpace(cells[i])}
	}
	return NewRecord(fields...)
}

// NormalizeName trims and lowercases a header cell.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
