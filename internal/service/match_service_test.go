package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/repository"
)

type fakeProductRepo struct {
	products []*domain.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error { return nil }

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListActive(ctx context.Context) ([]*domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	return f.products, nil
}

func strPtr(s string) *string { return &s }

func catalogFixture() *repository.Repositories {
	return &repository.Repositories{
		Product: &fakeProductRepo{products: []*domain.Product{
			{
				ID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
				Name: "Urovo DT50",
				Code: strPtr("DT50-STD"),
			},
			{
				ID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
				Name: "Honeywell EDA52",
			},
		}},
	}
}

func TestMatchItemExactName(t *testing.T) {
	svc := NewMatchService(catalogFixture(), zap.NewNop())

	resp, err := svc.MatchItem(context.Background(), "urovo dt50", "", 0)
	if err != nil {
		t.Fatalf("MatchItem: %v", err)
	}
	if len(resp.Matches) == 0 {
		t.Fatal("expected at least one match")
	}
	top := resp.Matches[0]
	if top.ProductID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("top product = %s", top.ProductID)
	}
	if top.Score != 1.0 || top.Kind != "exact" {
		t.Errorf("top score/kind = %v/%s", top.Score, top.Kind)
	}
	if resp.Best == nil || resp.Best.ProductID != top.ProductID {
		t.Error("expected a confident best match")
	}
	if top.Code == nil || *top.Code != "DT50-STD" {
		t.Errorf("code not carried through: %v", top.Code)
	}
}

func TestMatchItemReferenceCode(t *testing.T) {
	svc := NewMatchService(catalogFixture(), zap.NewNop())

	resp, err := svc.MatchItem(context.Background(), "handheld terminal", "DT50-STD", 0)
	if err != nil {
		t.Fatalf("MatchItem: %v", err)
	}
	if len(resp.Matches) == 0 {
		t.Fatal("expected a code-tier match")
	}
	if resp.Matches[0].Kind != "code" || resp.Matches[0].Score != 0.95 {
		t.Errorf("got %s/%v, want code/0.95", resp.Matches[0].Kind, resp.Matches[0].Score)
	}
}

func TestBestMatchNilWhenUnconfident(t *testing.T) {
	svc := NewMatchService(catalogFixture(), zap.NewNop())

	best, err := svc.BestMatch(context.Background(), "urovo dt50 plus pro max", "")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if best != nil {
		t.Errorf("expected nil best match, got %+v", best)
	}
}
