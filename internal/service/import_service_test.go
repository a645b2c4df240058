package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/ingest"
)

func TestImportItemsBands(t *testing.T) {
	svc := NewImportService(catalogFixture(), zap.NewNop())

	// One row per reconciliation band: exact catalog name, a close variant
	// that only fuzzy-matches, and a product the catalog does not carry.
	data := "description,reference,quantity,price\n" +
		"Urovo DT50,,2,100\n" +
		"Urovo DT50 Plus,,1,50\n" +
		"Zebra label printer,,3,10\n"
	mapping := ingest.ColumnMapping{
		NameKey:      "description",
		ReferenceKey: "reference",
		QuantityKey:  "quantity",
		UnitPriceKey: "price",
	}

	report, err := svc.ImportItems(context.Background(), strings.NewReader(data), "items.csv", mapping)
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}

	if report.TotalRows != 3 {
		t.Fatalf("TotalRows = %d, want 3", report.TotalRows)
	}
	if report.Matched != 1 || report.NeedsReview != 1 || report.Unmatched != 1 {
		t.Fatalf("counters = %d/%d/%d, want 1/1/1",
			report.Matched, report.NeedsReview, report.Unmatched)
	}

	matched := report.Rows[0]
	if matched.Status != ImportStatusMatched {
		t.Errorf("row 1 status = %q, want %q", matched.Status, ImportStatusMatched)
	}
	if matched.Best == nil {
		t.Fatal("matched row has no best match")
	}
	if matched.Best.ProductID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("matched row best product = %s", matched.Best.ProductID)
	}
	if matched.Best.Score != 1.0 || matched.Best.Kind != "exact" {
		t.Errorf("matched row best score/kind = %v/%s", matched.Best.Score, matched.Best.Kind)
	}
	if len(matched.Suggestions) != 0 {
		t.Errorf("matched row carries suggestions: %+v", matched.Suggestions)
	}
	if matched.Quantity != 2 || matched.UnitPrice != 100 {
		t.Errorf("matched row numbers: %+v", matched)
	}

	review := report.Rows[1]
	if review.Status != ImportStatusNeedsReview {
		t.Errorf("row 2 status = %q, want %q", review.Status, ImportStatusNeedsReview)
	}
	if review.Best != nil {
		t.Errorf("review row has a best match: %+v", review.Best)
	}
	if len(review.Suggestions) == 0 {
		t.Fatal("review row has no suggestions")
	}
	top := review.Suggestions[0]
	if top.ProductID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("review suggestion product = %s", top.ProductID)
	}
	if top.Score < 0.5 || top.Score >= 0.7 {
		t.Errorf("review suggestion score = %v, want in [0.5, 0.7)", top.Score)
	}

	unmatched := report.Rows[2]
	if unmatched.Status != ImportStatusUnmatched {
		t.Errorf("row 3 status = %q, want %q", unmatched.Status, ImportStatusUnmatched)
	}
	if unmatched.Best != nil || len(unmatched.Suggestions) != 0 {
		t.Errorf("unmatched row carries candidates: %+v", unmatched)
	}
}

func TestImportItemsReferenceMatch(t *testing.T) {
	svc := NewImportService(catalogFixture(), zap.NewNop())

	// The description alone is too far from the catalog name, but the
	// reference code resolves it confidently.
	data := "description,reference,quantity,price\n" +
		"handheld terminal,DT50-STD,1,100\n"
	mapping := ingest.ColumnMapping{
		NameKey:      "description",
		ReferenceKey: "reference",
		QuantityKey:  "quantity",
		UnitPriceKey: "price",
	}

	report, err := svc.ImportItems(context.Background(), strings.NewReader(data), "items.csv", mapping)
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	if report.Matched != 1 || report.TotalRows != 1 {
		t.Fatalf("counters = %+v", report)
	}
	row := report.Rows[0]
	if row.Best == nil || row.Best.Kind != "code" || row.Best.Score != 0.95 {
		t.Fatalf("best = %+v, want code tier at 0.95", row.Best)
	}
}

func TestImportItemsUnsupportedFile(t *testing.T) {
	svc := NewImportService(catalogFixture(), zap.NewNop())

	_, err := svc.ImportItems(context.Background(), strings.NewReader("x"), "items.pdf", ingest.ColumnMapping{})
	if err == nil {
		t.Fatal("expected an error for unsupported file type")
	}
}
