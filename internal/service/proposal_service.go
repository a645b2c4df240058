package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/proposal"
	"github.com/veracrm/crmcore/internal/repository"
	"github.com/veracrm/crmcore/pkg/errors"
)

type proposalService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewProposalService creates a new proposal service
func NewProposalService(repos *repository.Repositories, logger *zap.Logger) *proposalService {
	return &proposalService{
		repos:  repos,
		logger: logger,
	}
}

// Calculate runs the calculation engine over the request without touching
// storage.
func Calculate(req CalculateProposalRequest) (*CalculateProposalResponse, error) {
	if !req.Mode.IsValid() {
		return nil, &errors.ErrValidation{Field: "mode", Message: "unknown operation mode"}
	}

	items, err := lineItemsFromInputs(req.Items)
	if err != nil {
		return nil, err
	}

	summary := proposal.Compute(items, req.Mode)

	resp := &CalculateProposalResponse{
		Mode:          req.Mode,
		Items:         make([]ComputedItemResponse, 0, len(summary.Items)),
		TotalValue:    summary.TotalValue,
		TotalCost:     summary.TotalCost,
		TotalProfit:   summary.TotalProfit,
		MarginPercent: summary.MarginPercent,
	}
	for _, it := range summary.Items {
		resp.Items = append(resp.Items, ComputedItemResponse{
			ProductID:      it.ProductID.String(),
			Quantity:       it.Quantity,
			SubtotalValue:  it.SubtotalValue,
			SubtotalProfit: it.SubtotalProfit,
		})
	}
	return resp, nil
}

// CreateProposal computes totals for the requested items and persists the
// proposal in Draft status together with its line items and a creation event.
func (s *proposalService) CreateProposal(ctx context.Context, clientID uuid.UUID, req CreateProposalRequest) (*domain.Proposal, error) {
	if !req.Mode.IsValid() {
		return nil, &errors.ErrValidation{Field: "mode", Message: "unknown operation mode"}
	}

	items, err := lineItemsFromInputs(req.Items)
	if err != nil {
		return nil, err
	}

	summary := proposal.Compute(items, req.Mode)

	// Create proposal
	p := &domain.Proposal{
		ClientID:      clientID,
		Title:         req.Title,
		Mode:          req.Mode,
		Status:        domain.ProposalStatusDraft,
		TotalValue:    summary.TotalValue,
		TotalCost:     summary.TotalCost,
		TotalProfit:   summary.TotalProfit,
		MarginPercent: summary.MarginPercent,
	}
	if err := s.repos.Proposal.Create(ctx, p); err != nil {
		return nil, err
	}

	// Create line items
	rows := make([]*domain.ProposalItem, 0, len(summary.Items))
	for i, it := range summary.Items {
		row := &domain.ProposalItem{
			ProposalID:     p.ID,
			ProductID:      it.ProductID,
			SupplierID:     it.SupplierID,
			Quantity:       it.Quantity,
			UnitCost:       it.UnitCost,
			UnitPrice:      it.UnitPrice,
			SubtotalValue:  it.SubtotalValue,
			SubtotalProfit: it.SubtotalProfit,
		}
		if in := req.Items[i]; in.CommissionPercent != nil {
			row.CommissionPercent = in.CommissionPercent
		}
		if in := req.Items[i]; in.RentalPeriodMonths != nil {
			row.RentalPeriodMonths = in.RentalPeriodMonths
		}
		rows = append(rows, row)
	}
	if err := s.repos.ProposalItem.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}

	// Log creation event
	event := &domain.ProposalEvent{
		ProposalID: p.ID,
		EventType:  "proposal_created",
		EventData: map[string]interface{}{
			"mode":        p.Mode,
			"status":      p.Status,
			"total_value": p.TotalValue,
		},
	}
	s.repos.ProposalEvent.Create(ctx, event)

	return p, nil
}

// SendProposal moves a proposal from Draft to Sent
func (s *proposalService) SendProposal(ctx context.Context, proposalID uuid.UUID) error {
	return s.transition(ctx, proposalID, domain.ProposalStatusSent, nil)
}

// AcceptProposal moves a proposal from Sent to Accepted
func (s *proposalService) AcceptProposal(ctx context.Context, proposalID uuid.UUID) error {
	return s.transition(ctx, proposalID, domain.ProposalStatusAccepted, nil)
}

// RejectProposal moves a proposal from Sent to Rejected with a reason
func (s *proposalService) RejectProposal(ctx context.Context, proposalID uuid.UUID, reason string) error {
	return s.transition(ctx, proposalID, domain.ProposalStatusRejected, &reason)
}

func (s *proposalService) transition(ctx context.Context, proposalID uuid.UUID, to domain.ProposalStatus, reason *string) error {
	p, err := s.repos.Proposal.GetByID(ctx, proposalID)
	if err != nil {
		return err
	}

	// Validate state transition
	if !p.Status.CanTransitionTo(to) {
		return &errors.ErrInvalidStateTransition{
			From: string(p.Status),
			To:   string(to),
		}
	}

	if err := s.repos.Proposal.UpdateStatus(ctx, proposalID, to, reason); err != nil {
		return err
	}

	// Log event
	event := &domain.ProposalEvent{
		ProposalID: proposalID,
		EventType:  "status_change",
		EventData: map[string]interface{}{
			"from": p.Status,
			"to":   to,
		},
	}
	if reason != nil {
		event.EventData["reason"] = *reason
	}
	s.repos.ProposalEvent.Create(ctx, event)

	return nil
}

func lineItemsFromInputs(inputs []ProposalItemInput) ([]proposal.LineItem, error) {
	items := make([]proposal.LineItem, 0, len(inputs))
	for _, in := range inputs {
		productID, err := uuid.Parse(in.ProductID)
		if err != nil {
			return nil, &errors.ErrValidation{Field: "product_id", Message: "must be a valid UUID"}
		}

		item := proposal.LineItem{
			ProductID: productID,
			Quantity:  in.Quantity,
			UnitCost:  in.UnitCost,
			UnitPrice: in.UnitPrice,
		}
		if in.SupplierID != nil {
			supplierID, err := uuid.Parse(*in.SupplierID)
			if err != nil {
				return nil, &errors.ErrValidation{Field: "supplier_id", Message: "must be a valid UUID"}
			}
			item.SupplierID = &supplierID
		}
		if in.CommissionPercent != nil {
			item.CommissionPercent = *in.CommissionPercent
		}
		if in.RentalPeriodMonths != nil {
			item.RentalPeriodMonths = *in.RentalPeriodMonths
		}

		row := domain.ProposalItem{
			Quantity:           item.Quantity,
			UnitCost:           item.UnitCost,
			UnitPrice:          item.UnitPrice,
			RentalPeriodMonths: in.RentalPeriodMonths,
		}
		if err := row.Validate(); err != nil {
			return nil, &errors.ErrValidation{Field: "items", Message: err.Error()}
		}

		items = append(items, item)
	}
	return items, nil
}
