package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// ColumnMapping names the columns of an uploaded file that carry the fields
// the import pipeline needs. ReferenceKey is optional.
type ColumnMapping struct {
	NameKey      string
	ReferenceKey string
	QuantityKey  string
	UnitPriceKey string
}

// ItemRow is one parsed line of an uploaded item list.
type ItemRow struct {
	Description string
	Reference   string
	Quantity    float64
	UnitPrice   float64
}

// ToItemRows maps header-keyed records into item rows using the column
// mapping. Rows without a description are dropped.
func ToItemRows(records []map[string]string, mapping ColumnMapping) []ItemRow {
	rows := make([]ItemRow, 0, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec[resolveKey(rec, mapping.NameKey)])
		if name == "" {
			continue
		}
		row := ItemRow{
			Description: name,
			Reference:   strings.TrimSpace(rec[resolveKey(rec, mapping.ReferenceKey)]),
			Quantity:    parseNumber(rec[resolveKey(rec, mapping.QuantityKey)]),
			UnitPrice:   parseNumber(rec[resolveKey(rec, mapping.UnitPriceKey)]),
		}
		rows = append(rows, row)
	}
	return rows
}

var headerSeparators = regexp.MustCompile(`[^\pL\pN]+`)

// normHeaderKey canonicalizes a column header for comparison.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = headerSeparators.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the record key matching the wanted column name: exact
// first, then normalized equality, then containment either way.
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	if _, ok := rec[want]; ok {
		return want
	}

	nWant := normHeaderKey(want)
	bestKey := ""
	bestLen := 0
	for k := range rec {
		nk := normHeaderKey(k)
		if nk == nWant {
			return k
		}
		if strings.Contains(nk, nWant) || strings.Contains(nWant, nk) {
			// Prefer the longest overlapping header.
			if len(nk) > bestLen {
				bestKey, bestLen = k, len(nk)
			}
		}
	}
	return bestKey
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// parseNumber parses spreadsheet numbers tolerant of thousand separators,
// decimal commas and currency prefixes. Unparseable input yields 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.NewReplacer("\u00a0", "", "\u202f", "", " ", "").Replace(s)
	// "1.234,56" -> "1234.56"; a lone comma is a decimal separator.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
