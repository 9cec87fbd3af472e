package cfodash

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the functions that turn an exported management sheet
// into a ledger. Two export shapes are accepted: the CSV download and the
// Google Sheets API values JSON. Both reduce to the same list of raw
// records handed to NormalizeRecord; a blank or malformed row never fails
// an import, only a source that is not tabular at all does.

// ImportFile reads a ledger from a file. The extension selects the
// format: ".json" is a Sheets values response, everything else is CSV.
func ImportFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ImportValues(f)
	}
	return ImportCSV(f)
}

// ImportCSV reads a ledger from a CSV export.
//
// The first row is the header; the column separator is sniffed from it
// (comma or semicolon, the two variants spreadsheet tools produce).
func ImportCSV(r io.Reader) (*Ledger, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot read CSV source: %w", err)
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffSeparator(head)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse source as CSV: %w", err)
	}
	if len(rows) == 0 {
		return NewLedger(), nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var entries []Entry
	for _, row := range rows[1:] {
		rec := Record{}
		for i, cell := range row {
			if i < len(header) && header[i] != "" {
				rec[header[i]] = cell
			}
		}
		if e, ok := NormalizeRecord(rec); ok {
			entries = append(entries, e)
		}
	}
	return NewLedger(entries...), nil
}

// sniffSeparator picks the column separator from the header line.
func sniffSeparator(head []byte) rune {
	line := string(head)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// ImportValues reads a ledger from a Google Sheets API values response,
// the JSON document whose "values" property holds the rows of the sheet
// (header row first). Numeric cells are taken as numbers directly, so the
// European decimal convention only applies to string cells.
func ImportValues(r io.Reader) (*Ledger, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse source as JSON: %w", err)
	}

	jval, err := jsonpath.Get("$.values", jobj)
	if err != nil {
		return nil, fmt.Errorf("no values in sheet response: %w", err)
	}
	jrows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("sheet response values are not a row list")
	}
	if len(jrows) == 0 {
		return NewLedger(), nil
	}

	jheader, ok := jrows[0].([]any)
	if !ok {
		return nil, fmt.Errorf("sheet response header is not a cell list")
	}
	header := make([]string, len(jheader))
	for i, cell := range jheader {
		header[i] = strings.TrimSpace(cellString(cell))
	}

	var entries []Entry
	for _, jr := range jrows[1:] {
		cells, ok := jr.([]any)
		if !ok {
			continue
		}
		rec := Record{}
		for i, cell := range cells {
			if i < len(header) && header[i] != "" {
				rec[header[i]] = cell
			}
		}
		if e, ok := NormalizeRecord(rec); ok {
			entries = append(entries, e)
		}
	}
	return NewLedger(entries...), nil
}
