// Package repository defines the storage interfaces the services depend on.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/veracrm/crmcore/internal/domain"
)

// ProductRepository provides access to the product catalog
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListActive(ctx context.Context) ([]*domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Product, error)
}

// ProposalRepository provides access to proposals
type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error)
	ListByClientID(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Proposal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProposalStatus, reason *string) error
}

// ProposalItemRepository provides access to proposal line items
type ProposalItemRepository interface {
	CreateBatch(ctx context.Context, items []*domain.ProposalItem) error
	GetByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalItem, error)
}

// ProposalEventRepository records proposal audit events
type ProposalEventRepository interface {
	Create(ctx context.Context, event *domain.ProposalEvent) error
}

// APIClientRepository provides access to API clients
type APIClientRepository interface {
	Create(ctx context.Context, client *domain.APIClient) error
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.APIClient, error)
}

// Repositories aggregates all repositories
type Repositories struct {
	Product       ProductRepository
	Proposal      ProposalRepository
	ProposalItem  ProposalItemRepository
	ProposalEvent ProposalEventRepository
	APIClient     APIClientRepository
}
