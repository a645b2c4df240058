package ingest

import (
	"io"
	"strings"
	"testing"
)

func TestDecodeCharsetWindows1252(t *testing.T) {
	raw := "caf\xe9,2\n"
	out, err := io.ReadAll(decodeCharset(strings.NewReader(raw), "windows-1252"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out) != "café,2\n" {
		t.Fatalf("decoded = %q, want café,2", string(out))
	}
}

func TestDecodeCharsetWindows1251(t *testing.T) {
	// "Привет" in cp1251.
	raw := "\xcf\xf0\xe8\xe2\xe5\xf2"
	out, err := io.ReadAll(decodeCharset(strings.NewReader(raw), "windows-1251"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out) != "Привет" {
		t.Fatalf("decoded = %q, want Привет", string(out))
	}
}

func TestDecodeCharsetUnknownPassesThrough(t *testing.T) {
	raw := "plain utf-8 café"
	out, err := io.ReadAll(decodeCharset(strings.NewReader(raw), "utf-8"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out) != raw {
		t.Fatalf("decoded = %q, want unchanged input", string(out))
	}
}

func TestReadCSV(t *testing.T) {
	data := "description,quantity,price\nUrovo DT50,2,100\nHoneywell EDA52,1,250.5\n"
	records, err := readCSV(strings.NewReader(data), 1)
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["description"] != "Urovo DT50" || records[0]["quantity"] != "2" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1]["price"] != "250.5" {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestReadCSVEmpty(t *testing.T) {
	records, err := readCSV(strings.NewReader(""), 1)
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %+v", records)
	}
}
