package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/match"
	"github.com/veracrm/crmcore/internal/repository"
)

type matchService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewMatchService creates a new catalog match service
func NewMatchService(repos *repository.Repositories, logger *zap.Logger) *matchService {
	return &matchService{
		repos:  repos,
		logger: logger,
	}
}

// MatchItem ranks active catalog products against a free-text item name and
// optional reference. A threshold of zero keeps the default floor.
func (s *matchService) MatchItem(ctx context.Context, name, reference string, threshold float64) (*MatchItemResponse, error) {
	products, err := s.repos.Product.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	candidates := candidatesFromProducts(products)

	var results []match.Result
	if threshold > 0 {
		results = match.FindAllMatches(name, reference, candidates, threshold)
	} else {
		results = match.FindMatches(name, reference, candidates)
	}

	resp := &MatchItemResponse{Matches: make([]MatchedProduct, 0, len(results))}
	byID := productsByID(products)
	for _, r := range results {
		resp.Matches = append(resp.Matches, matchedProduct(r, byID))
	}
	if len(resp.Matches) > 0 && resp.Matches[0].Score >= match.BestMatchThreshold {
		resp.Best = &resp.Matches[0]
	}
	return resp, nil
}

// BestMatch returns the single confident match for an item, or nil when the
// top candidate needs human review.
func (s *matchService) BestMatch(ctx context.Context, name, reference string) (*MatchedProduct, error) {
	products, err := s.repos.Product.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	best := match.FindBestMatch(name, reference, candidatesFromProducts(products))
	if best == nil {
		return nil, nil
	}
	m := matchedProduct(*best, productsByID(products))
	return &m, nil
}

func candidatesFromProducts(products []*domain.Product) []match.CandidateProduct {
	out := make([]match.CandidateProduct, 0, len(products))
	for _, p := range products {
		out = append(out, match.CandidateProduct{
			ID:                     p.ID.String(),
			Name:                   p.Name,
			Code:                   deref(p.Code),
			InternalSKU:            deref(p.InternalSKU),
			ManufacturerPartNumber: deref(p.ManufacturerPartNumber),
		})
	}
	return out
}

func productsByID(products []*domain.Product) map[string]*domain.Product {
	m := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		m[p.ID.String()] = p
	}
	return m
}

func matchedProduct(r match.Result, byID map[string]*domain.Product) MatchedProduct {
	m := MatchedProduct{
		ProductID: r.Product.ID,
		Name:      r.Product.Name,
		Score:     r.Score,
		Kind:      string(r.Kind),
	}
	if p, ok := byID[r.Product.ID]; ok {
		m.Code = p.Code
	}
	return m
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
