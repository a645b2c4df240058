package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog entry
type Product struct {
	ID                     uuid.UUID
	Name                   string
	Code                   *string
	InternalSKU            *string
	ManufacturerPartNumber *string
	UnitCost               float64
	UnitPrice              float64
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Proposal represents a commercial proposal owned by an API client
type Proposal struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	Title           string
	Mode            OperationMode
	Status          ProposalStatus
	TotalValue      float64
	TotalCost       float64
	TotalProfit     float64
	MarginPercent   float64
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProposalItem represents a line item in a proposal
type ProposalItem struct {
	ID                 uuid.UUID
	ProposalID         uuid.UUID
	ProductID          uuid.UUID
	SupplierID         *uuid.UUID
	Quantity           int
	UnitCost           float64
	UnitPrice          float64
	CommissionPercent  *float64
	RentalPeriodMonths *int
	SubtotalValue      float64
	SubtotalProfit     float64
	CreatedAt          time.Time
}

// Validate rejects line items the calculation engine treats as undefined.
func (i *ProposalItem) Validate() error {
	if i.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", i.Quantity)
	}
	if i.UnitCost < 0 {
		return fmt.Errorf("unit cost must not be negative, got %v", i.UnitCost)
	}
	if i.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative, got %v", i.UnitPrice)
	}
	if i.RentalPeriodMonths != nil && *i.RentalPeriodMonths <= 0 {
		return fmt.Errorf("rental period must be positive, got %d", *i.RentalPeriodMonths)
	}
	return nil
}

// ProposalEvent represents an audit event for a proposal
type ProposalEvent struct {
	ID         uuid.UUID
	ProposalID uuid.UUID
	EventType  string
	EventData  map[string]interface{} // JSONB
	CreatedAt  time.Time
}

// APIClient represents an authenticated caller of the API
type APIClient struct {
	ID         uuid.UUID
	Name       string
	APIKeyHash string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
