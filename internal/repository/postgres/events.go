package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
)

type proposalEventRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProposalEventRepository creates a new proposal event repository
func NewProposalEventRepository(db *sql.DB, logger *zap.Logger) *proposalEventRepository {
	return &proposalEventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *proposalEventRepository) Create(ctx context.Context, event *domain.ProposalEvent) error {
	query := `
		INSERT INTO proposal_events (id, proposal_id, event_type, event_data, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	eventData, err := json.Marshal(event.EventData)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		event.ID,
		event.ProposalID,
		event.EventType,
		eventData,
		event.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create proposal event", zap.Error(err))
		return err
	}

	return nil
}
