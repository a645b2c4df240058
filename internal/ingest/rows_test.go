package ingest

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"12", 12},
		{"12.5", 12.5},
		{"12,5", 12.5},
		{"1.234,56", 1234.56},
		{"1 234,56", 1234.56},
		{"$12.50", 12.5},
		{"R$ 1.000,00", 1000},
		{"-3", -3},
		{"abc", 0},
		{"-", 0},
	}
	for _, tc := range cases {
		if got := parseNumber(tc.in); got != tc.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolveKeyExact(t *testing.T) {
	rec := map[string]string{"Description": "x", "Qty": "1"}
	if got := resolveKey(rec, "Description"); got != "Description" {
		t.Fatalf("resolveKey = %q, want Description", got)
	}
}

func TestResolveKeyNormalized(t *testing.T) {
	rec := map[string]string{"Unit_Price (USD)": "9"}
	if got := resolveKey(rec, "unit price usd"); got != "Unit_Price (USD)" {
		t.Fatalf("resolveKey = %q, want the original header", got)
	}
}

func TestResolveKeyContainment(t *testing.T) {
	rec := map[string]string{"Item Description": "x", "Qty": "1"}
	if got := resolveKey(rec, "description"); got != "Item Description" {
		t.Fatalf("resolveKey = %q, want Item Description", got)
	}
}

func TestResolveKeyMissing(t *testing.T) {
	rec := map[string]string{"Qty": "1"}
	if got := resolveKey(rec, "price"); got != "" {
		t.Fatalf("resolveKey = %q, want empty", got)
	}
}

func TestToItemRows(t *testing.T) {
	records := []map[string]string{
		{"description": "Urovo DT50", "reference": "DT50", "quantity": "2", "price": "1.500,00"},
		{"description": "   ", "reference": "", "quantity": "1", "price": "10"},
		{"description": "Honeywell EDA52", "reference": "", "quantity": "abc", "price": "$999.90"},
	}
	mapping := ColumnMapping{
		NameKey:      "description",
		ReferenceKey: "reference",
		QuantityKey:  "quantity",
		UnitPriceKey: "price",
	}

	rows := ToItemRows(records, mapping)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Description != "Urovo DT50" || rows[0].Reference != "DT50" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Quantity != 2 || rows[0].UnitPrice != 1500 {
		t.Errorf("unexpected first row numbers: %+v", rows[0])
	}
	if rows[1].Quantity != 0 || rows[1].UnitPrice != 999.9 {
		t.Errorf("unexpected second row numbers: %+v", rows[1])
	}
}

func TestPickHeaderFillsBlanks(t *testing.T) {
	rows := [][]string{{"Name", "", "Qty"}}
	h := pickHeader(rows, 1)
	if h[1] != "Column 2" {
		t.Fatalf("blank header = %q, want Column 2", h[1])
	}
}

func TestRowsToMapsSkipsEmptyRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Qty"},
		{"Widget", "3"},
		{"", " "},
		{"Gadget"},
	}
	out := rowsToMaps(rows, []string{"Name", "Qty"}, 1)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[1]["Name"] != "Gadget" || out[1]["Qty"] != "" {
		t.Errorf("short row not padded: %+v", out[1])
	}
}
