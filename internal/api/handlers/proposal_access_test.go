package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/repository"
	"github.com/veracrm/crmcore/pkg/errors"
)

type fakeProposalRepo struct {
	proposal *domain.Proposal
}

func (f *fakeProposalRepo) Create(ctx context.Context, p *domain.Proposal) error { return nil }

func (f *fakeProposalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	if f.proposal != nil && f.proposal.ID == id {
		return f.proposal, nil
	}
	return nil, &errors.ErrNotFound{Resource: "proposal", ID: id.String()}
}

func (f *fakeProposalRepo) ListByClientID(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Proposal, error) {
	return nil, nil
}

func (f *fakeProposalRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProposalStatus, reason *string) error {
	return nil
}

type fakeProposalItemRepo struct{}

func (f *fakeProposalItemRepo) CreateBatch(ctx context.Context, items []*domain.ProposalItem) error {
	return nil
}

func (f *fakeProposalItemRepo) GetByProposalID(ctx context.Context, proposalID uuid.UUID) ([]*domain.ProposalItem, error) {
	return nil, nil
}

var (
	ownerID    = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	strangerID = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	storedID   = uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
)

func getProposalRouter(clientID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repos := &repository.Repositories{
		Proposal: &fakeProposalRepo{proposal: &domain.Proposal{
			ID:       storedID,
			ClientID: ownerID,
			Title:    "Fleet renewal",
			Mode:     domain.ModeDirectSale,
			Status:   domain.ProposalStatusDraft,
		}},
		ProposalItem: &fakeProposalItemRepo{},
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("api_client", &domain.APIClient{ID: clientID, Name: "test", IsActive: true})
	})
	r.GET("/v1/proposals/:id", HandleGetProposal(repos, zap.NewNop()))
	return r
}

func getProposal(t *testing.T, r *gin.Engine, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/proposals/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProposalAsOwner(t *testing.T) {
	r := getProposalRouter(ownerID)

	w := getProposal(t, r, storedID.String())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp ProposalResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.ID != storedID.String() || resp.Title != "Fleet renewal" {
		t.Errorf("unexpected proposal: %+v", resp)
	}
	if resp.Status != domain.ProposalStatusDraft {
		t.Errorf("status = %s, want DRAFT", resp.Status)
	}
}

func TestGetProposalDeniedForOtherClient(t *testing.T) {
	r := getProposalRouter(strangerID)

	w := getProposal(t, r, storedID.String())
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestGetProposalInvalidID(t *testing.T) {
	r := getProposalRouter(ownerID)

	w := getProposal(t, r, "not-a-uuid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetProposalNotFound(t *testing.T) {
	r := getProposalRouter(ownerID)

	w := getProposal(t, r, uuid.New().String())
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
