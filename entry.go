package cfodash

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one raw row as produced by the import boundary: an unordered,
// unbounded set of string-keyed cells. Cell values are strings for CSV
// sources, and may be numbers or nil for JSON sources.
type Record map[string]any

// Entry is one normalized accounting line of the reclassified P&L ledger.
// Entries are immutable once created; a new import replaces the whole set.
type Entry struct {
	Code        string
	Description string
	Amount      Money
	Category    string // management category label, as found in the sheet
	Year        string
	Period      string
}

// WholeYear is the sentinel period assigned to lines the sheet does not
// split by quarter ("ANNO" in the source management sheets).
const WholeYear = "ANNO"

// Column alias lists, in priority order: the first alias with a non-empty
// value wins. They cover the column names observed across the exported
// management sheets (and their lowercase variants).
var (
	codeAliases        = []string{"Codice CE", "Codice", "Codice_CE", "codice"}
	descriptionAliases = []string{"Descrizione CE", "Descrizione", "Descrizione_CE", "descrizione"}
	amountAliases      = []string{"Importo", "Valore", "Amount"}
	categoryAliases    = []string{"Voce gestionale", "Categoria", "Categoria CE", "categoria"}
	yearAliases        = []string{"Anno", "Year", "anno"}
	periodAliases      = []string{"Periodo", "Quarter", "periodo"}
)

// NormalizeRecord resolves a raw record into a ledger entry.
//
// The second return value reports whether the record holds an entry at all:
// a row with no code, no description and a zero amount is considered blank
// and is excluded from the ledger. Malformed cells never fail the row; an
// unparseable amount simply becomes zero.
func NormalizeRecord(rec Record) (Entry, bool) {
	e := Entry{
		Code:        firstCell(rec, codeAliases),
		Description: firstCell(rec, descriptionAliases),
		Amount:      ParseAmount(firstValue(rec, amountAliases)),
		Category:    firstCell(rec, categoryAliases),
		Year:        strings.TrimSpace(firstCell(rec, yearAliases)),
		Period:      strings.TrimSpace(firstCell(rec, periodAliases)),
	}
	if e.Category == "" {
		e.Category = "NON CLASSIFICATO"
	}
	if e.Period == "" {
		e.Period = WholeYear
	}
	if e.Code == "" && e.Description == "" && e.Amount.IsZero() {
		return Entry{}, false
	}
	return e, true
}

// firstValue returns the first non-empty cell among the aliases, raw.
func firstValue(rec Record, aliases []string) any {
	for _, key := range aliases {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

// firstCell is firstValue with the cell coerced to a string.
func firstCell(rec Record, aliases []string) string {
	v := firstValue(rec, aliases)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return cellString(v)
}

func cellString(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return decimal.NewFromFloat(c).String()
	case int:
		return decimal.NewFromInt(int64(c)).String()
	default:
		return fmt.Sprint(c)
	}
}

// ParseAmount turns a raw cell into a monetary amount.
//
// Numbers pass through untouched. Strings follow the European convention
// of the source sheets: "." is a thousands separator and "," the decimal
// mark, so "1.234,56" parses to 1234.56. Trailing noise after the number
// (a currency token, a unit) is ignored the way a sheet's lenient float
// parsing reads it. Anything else, including nil and blank cells, yields
// zero; the result is always a finite amount.
func ParseAmount(v any) Money {
	switch n := v.(type) {
	case nil:
		return M(0, ReportingCurrency)
	case float64:
		return M(n, ReportingCurrency)
	case int:
		return M(n, ReportingCurrency)
	}
	s := strings.TrimSpace(cellString(v))
	if s == "" {
		return M(0, ReportingCurrency)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	s = numericPrefix(s)
	if s == "" {
		return M(0, ReportingCurrency)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return M(0, ReportingCurrency)
	}
	return M(d, ReportingCurrency)
}

// numericPrefix returns the longest leading float literal of s, empty
// when s does not start with a number.
func numericPrefix(s string) string {
	e := 0
	if e < len(s) && (s[e] == '+' || s[e] == '-') {
		e++
	}
	start := e
	for e < len(s) && s[e] >= '0' && s[e] <= '9' {
		e++
	}
	if e < len(s) && s[e] == '.' {
		f := e + 1
		for f < len(s) && s[f] >= '0' && s[f] <= '9' {
			f++
		}
		if f > e+1 {
			e = f
		}
	}
	if e == start {
		return ""
	}
	return s[:e]
}

// ParseCount parses a count input (e.g. the number of clients) with the
// same conventions as amounts.
func ParseCount(v any) decimal.Decimal {
	return ParseAmount(v).value
}
