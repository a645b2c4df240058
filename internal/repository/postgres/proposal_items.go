package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
)

type proposalItemRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProposalItemRepository creates a new proposal item repository
func NewProposalItemRepository(db *sql.DB, logger *zap.Logger) *proposalItemRepository {
	return &proposalItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *proposalItemRepository) CreateBatch(ctx context.Context, items []*domain.ProposalItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO proposal_items (id, proposal_id, product_id, supplier_id, quantity,
			unit_cost, unit_price, commission_percent, rental_period_months,
			subtotal_value, subtotal_profit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	now := time.Now()
	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}

		_, err := tx.ExecContext(ctx, query,
			item.ID,
			item.ProposalID,
			item.ProductID,
			item.SupplierID,
			item.Quantity,
			item.UnitCost,
			item.UnitPrice,
			item.CommissionPercent,
			item.RentalPeriodMonths,
			item.SubtotalValue,
			item.SubtotalProfit,
			item.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to create proposal item", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *proposalItemRepository) GetByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalItem, error) {
	query := `
		SELECT id, proposal_id, product_id, supplier_id, quantity, unit_cost, unit_price,
			commission_percent, rental_period_months, subtotal_value, subtotal_profit, created_at
		FROM proposal_items
		WHERE proposal_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, proposalID)
	if err != nil {
		r.logger.Error("Failed to get proposal items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*domain.ProposalItem
	for rows.Next() {
		var item domain.ProposalItem
		var supplierID uuid.NullUUID
		var commission sql.NullFloat64
		var rentalMonths sql.NullInt64

		err := rows.Scan(
			&item.ID,
			&item.ProposalID,
			&item.ProductID,
			&supplierID,
			&item.Quantity,
			&item.UnitCost,
			&item.UnitPrice,
			&commission,
			&rentalMonths,
			&item.SubtotalValue,
			&item.SubtotalProfit,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if supplierID.Valid {
			id := supplierID.UUID
			item.SupplierID = &id
		}
		if commission.Valid {
			item.CommissionPercent = &commission.Float64
		}
		if rentalMonths.Valid {
			months := int(rentalMonths.Int64)
			item.RentalPeriodMonths = &months
		}

		items = append(items, &item)
	}
	return items, rows.Err()
}
