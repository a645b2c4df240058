package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/pkg/errors"
)

type proposalRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *sql.DB, logger *zap.Logger) *proposalRepository {
	return &proposalRepository{
		db:     db,
		logger: logger,
	}
}

const proposalColumns = `id, client_id, title, mode, status, total_value, total_cost,
	total_profit, margin_percent, rejection_reason, created_at, updated_at`

func (r *proposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	query := `
		INSERT INTO proposals (id, client_id, title, mode, status, total_value, total_cost,
			total_profit, margin_percent, rejection_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	now := time.Now()
	if proposal.ID == uuid.Nil {
		proposal.ID = uuid.New()
	}
	if proposal.CreatedAt.IsZero() {
		proposal.CreatedAt = now
	}
	if proposal.UpdatedAt.IsZero() {
		proposal.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, query,
		proposal.ID,
		proposal.ClientID,
		proposal.Title,
		proposal.Mode,
		proposal.Status,
		proposal.TotalValue,
		proposal.TotalCost,
		proposal.TotalProfit,
		proposal.MarginPercent,
		proposal.RejectionReason,
		proposal.CreatedAt,
		proposal.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create proposal", zap.Error(err))
		return err
	}

	return nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE id = $1`

	proposal, err := scanProposal(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "proposal", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get proposal by ID", zap.Error(err))
		return nil, err
	}

	return proposal, nil
}

func (r *proposalRepository) ListByClientID(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + `
		FROM proposals WHERE client_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, clientID, limit, offset)
	if err != nil {
		r.logger.Error("Failed to list proposals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var proposals []*domain.Proposal
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, rows.Err()
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProposalStatus, reason *string) error {
	query := `
		UPDATE proposals
		SET status = $2, rejection_reason = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, reason, time.Now())
	if err != nil {
		r.logger.Error("Failed to update proposal status", zap.Error(err))
		return err
	}

	return nil
}

func scanProposal(row rowScanner) (*domain.Proposal, error) {
	var proposal domain.Proposal
	var rejectionReason sql.NullString

	err := row.Scan(
		&proposal.ID,
		&proposal.ClientID,
		&proposal.Title,
		&proposal.Mode,
		&proposal.Status,
		&proposal.TotalValue,
		&proposal.TotalCost,
		&proposal.TotalProfit,
		&proposal.MarginPercent,
		&rejectionReason,
		&proposal.CreatedAt,
		&proposal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rejectionReason.Valid {
		proposal.RejectionReason = &rejectionReason.String
	}

	return &proposal, nil
}
