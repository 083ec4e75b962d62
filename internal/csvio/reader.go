// Package csvio reads survey response exports. An export is a CSV with two
// header rows (column identifiers, then human-readable header text), an
// optional third metadata row emitted by some export pipelines, and one data
// row per respondent.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"qualreport/internal/logging"
)

// metadataColumns are the standard bookkeeping columns every export carries.
// They describe the response session, not survey answers.
var metadataColumns = map[string]struct{}{
	"StartDate":             {},
	"EndDate":               {},
	"Status":                {},
	"IPAddress":             {},
	"Progress":              {},
	"Duration (in seconds)": {},
	"Finished":              {},
	"RecordedDate":          {},
	"ResponseId":            {},
	"RecipientLastName":     {},
	"RecipientFirstName":    {},
	"RecipientEmail":        {},
	"ExternalReference":     {},
	"LocationLatitude":      {},
	"LocationLongitude":     {},
	"DistributionChannel":   {},
	"UserLanguage":          {},
	"Browser":               {},
	"Version":               {},
	"Operating System":      {},
	"Resolution":            {},
	"DeviceType":            {},
	"Q_TotalDuration":       {},
	"Q_URL":                 {},
	"Q_BallotBoxStuffing":   {},
	"Q_RelevantIDDuplicate": {},
}

// IsMetadataColumn reports whether the column identifier is session
// bookkeeping rather than an answer column.
func IsMetadataColumn(id string) bool {
	_, ok := metadataColumns[id]
	return ok
}

// Table is a parsed response export. Rows are padded to the column count so
// positional access never goes out of range on ragged exports.
type Table struct {
	ColumnIDs []string          // first header row
	Headers   map[string]string // column id -> header text
	Rows      [][]string        // one per respondent

	colIndex map[string]int
}

// ReadFile reads and parses a response export.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file: %w", err)
	}
	return Read(data)
}

// Read parses a response export from memory.
func Read(data []byte) (*Table, error) {
	log := logging.Get(logging.CategoryStructure)

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse response CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("response file has no header rows")
	}

	t := &Table{
		ColumnIDs: records[0],
		Headers:   make(map[string]string, len(records[0])),
		colIndex:  make(map[string]int, len(records[0])),
	}
	for i, id := range t.ColumnIDs {
		if _, seen := t.colIndex[id]; !seen {
			t.colIndex[id] = i
		}
		if i < len(records[1]) {
			t.Headers[id] = records[1][i]
		}
	}

	body := records[2:]
	if len(body) > 0 && isMetadataRow(body[0]) {
		body = body[1:]
	}

	t.Rows = make([][]string, 0, len(body))
	for _, row := range body {
		if len(row) < len(t.ColumnIDs) {
			padded := make([]string, len(t.ColumnIDs))
			copy(padded, row)
			row = padded
		}
		t.Rows = append(t.Rows, row)
	}

	log.Info("read response table: %d columns, %d respondents", len(t.ColumnIDs), len(t.Rows))
	return t, nil
}

// isMetadataRow detects the optional third header row some exports emit. Its
// cells hold JSON import descriptors rather than answers.
func isMetadataRow(row []string) bool {
	for _, cell := range row {
		if strings.Contains(cell, "ImportId") || strings.Contains(cell, "{") {
			return true
		}
	}
	return false
}

// Value returns the cell for the given respondent row and column identifier.
// Unknown columns yield "".
func (t *Table) Value(row int, colID string) string {
	i, ok := t.colIndex[colID]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	if i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Column returns every respondent's value for the given column identifier, in
// row order.
func (t *Table) Column(colID string) []string {
	i, ok := t.colIndex[colID]
	if !ok {
		return nil
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

// HasColumn reports whether the export contains the column.
func (t *Table) HasColumn(colID string) bool {
	_, ok := t.colIndex[colID]
	return ok
}
