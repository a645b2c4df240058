package service

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/ingest"
	"github.com/veracrm/crmcore/internal/match"
	"github.com/veracrm/crmcore/internal/repository"
)

// Row reconciliation outcomes.
const (
	ImportStatusMatched     = "matched"
	ImportStatusNeedsReview = "needs_review"
	ImportStatusUnmatched   = "unmatched"
)

type importService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(repos *repository.Repositories, logger *zap.Logger) *importService {
	return &importService{
		repos:  repos,
		logger: logger,
	}
}

// ImportItems parses an uploaded item list and reconciles each row against
// the active catalog. Rows with a confident best match are "matched"; rows
// with suggestions below the confidence bar are "needs_review"; rows with
// no suggestion at all are "unmatched".
func (s *importService) ImportItems(ctx context.Context, r io.Reader, filename string, mapping ingest.ColumnMapping) (*ImportReport, error) {
	records, err := ingest.ReadRows(r, filename, 1)
	if err != nil {
		return nil, err
	}
	rows := ingest.ToItemRows(records, mapping)

	products, err := s.repos.Product.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	candidates := candidatesFromProducts(products)
	byID := productsByID(products)

	report := &ImportReport{Rows: make([]ImportRowResult, 0, len(rows))}
	for i, row := range rows {
		result := ImportRowResult{
			Row:         i + 1,
			Description: row.Description,
			Reference:   row.Reference,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		}

		matches := match.FindMatches(row.Description, row.Reference, candidates)
		switch {
		case len(matches) == 0:
			result.Status = ImportStatusUnmatched
		case matches[0].Score >= match.BestMatchThreshold:
			result.Status = ImportStatusMatched
			best := matchedProduct(matches[0], byID)
			result.Best = &best
		default:
			result.Status = ImportStatusNeedsReview
			result.Suggestions = make([]MatchedProduct, 0, len(matches))
			for _, m := range matches {
				result.Suggestions = append(result.Suggestions, matchedProduct(m, byID))
			}
		}

		switch result.Status {
		case ImportStatusMatched:
			report.Matched++
		case ImportStatusNeedsReview:
			report.NeedsReview++
		default:
			report.Unmatched++
		}
		report.Rows = append(report.Rows, result)
	}
	report.TotalRows = len(report.Rows)

	s.logger.Info("Item import reconciled",
		zap.String("filename", filename),
		zap.Int("total", report.TotalRows),
		zap.Int("matched", report.Matched),
		zap.Int("needs_review", report.NeedsReview),
		zap.Int("unmatched", report.Unmatched),
	)

	return report, nil
}
