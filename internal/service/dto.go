package service

import "github.com/veracrm/crmcore/internal/domain"

// MatchItemRequest represents the catalog match payload
type MatchItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Reference string  `json:"reference"`
	Threshold float64 `json:"threshold" binding:"omitempty,min=0,max=1"`
}

// MatchedProduct is one ranked catalog candidate
type MatchedProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Code      *string `json:"code,omitempty"`
	Score     float64 `json:"score"`
	Kind      string  `json:"kind"`
}

// MatchItemResponse represents the catalog match response
type MatchItemResponse struct {
	Matches []MatchedProduct `json:"matches"`
	Best    *MatchedProduct  `json:"best,omitempty"`
}

// ProposalItemInput is one line item of a calculate or create request
type ProposalItemInput struct {
	ProductID          string   `json:"product_id" binding:"required,uuid"`
	SupplierID         *string  `json:"supplier_id,omitempty" binding:"omitempty,uuid"`
	Quantity           int      `json:"quantity" binding:"required,min=1"`
	UnitCost           float64  `json:"unit_cost" binding:"min=0"`
	UnitPrice          float64  `json:"unit_price" binding:"min=0"`
	CommissionPercent  *float64 `json:"commission_percent,omitempty" binding:"omitempty,min=0"`
	RentalPeriodMonths *int     `json:"rental_period_months,omitempty" binding:"omitempty,min=1"`
}

// CalculateProposalRequest represents the stateless calculation payload
type CalculateProposalRequest struct {
	Mode  domain.OperationMode `json:"mode" binding:"required"`
	Items []ProposalItemInput  `json:"items" binding:"required,min=1,dive"`
}

// ComputedItemResponse is one line item with derived subtotals
type ComputedItemResponse struct {
	ProductID      string  `json:"product_id"`
	Quantity       int     `json:"quantity"`
	SubtotalValue  float64 `json:"subtotal_value"`
	SubtotalProfit float64 `json:"subtotal_profit"`
}

// CalculateProposalResponse represents the calculation response
type CalculateProposalResponse struct {
	Mode          domain.OperationMode   `json:"mode"`
	Items         []ComputedItemResponse `json:"items"`
	TotalValue    float64                `json:"total_value"`
	TotalCost     float64                `json:"total_cost"`
	TotalProfit   float64                `json:"total_profit"`
	MarginPercent float64                `json:"margin_percent"`
}

// CreateProposalRequest represents the proposal creation payload
type CreateProposalRequest struct {
	Title string               `json:"title" binding:"required"`
	Mode  domain.OperationMode `json:"mode" binding:"required"`
	Items []ProposalItemInput  `json:"items" binding:"required,min=1,dive"`
}

// ImportRowResult is the reconciliation outcome for one uploaded row
type ImportRowResult struct {
	Row         int              `json:"row"`
	Description string           `json:"description"`
	Reference   string           `json:"reference,omitempty"`
	Quantity    float64          `json:"quantity"`
	UnitPrice   float64          `json:"unit_price"`
	Status      string           `json:"status"` // matched, needs_review, unmatched
	Best        *MatchedProduct  `json:"best,omitempty"`
	Suggestions []MatchedProduct `json:"suggestions,omitempty"`
}

// ImportReport summarizes an item-list import
type ImportReport struct {
	TotalRows   int               `json:"total_rows"`
	Matched     int               `json:"matched"`
	NeedsReview int               `json:"needs_review"`
	Unmatched   int               `json:"unmatched"`
	Rows        []ImportRowResult `json:"rows"`
}
