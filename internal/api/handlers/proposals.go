package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/api/middleware"
	"github.com/veracrm/crmcore/internal/domain"
	"github.com/veracrm/crmcore/internal/repository"
	"github.com/veracrm/crmcore/internal/service"
	"github.com/veracrm/crmcore/pkg/errors"
)

// RejectProposalRequest represents reject proposal request
type RejectProposalRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ProposalResponse represents the proposal response
type ProposalResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Mode            domain.OperationMode   `json:"mode"`
	Status          domain.ProposalStatus  `json:"status"`
	TotalValue      float64                `json:"total_value"`
	TotalCost       float64                `json:"total_cost"`
	TotalProfit     float64                `json:"total_profit"`
	MarginPercent   float64                `json:"margin_percent"`
	RejectionReason *string                `json:"rejection_reason,omitempty"`
	Items           []ProposalItemResponse `json:"items"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

type ProposalItemResponse struct {
	ProductID          string   `json:"product_id"`
	SupplierID         *string  `json:"supplier_id,omitempty"`
	Quantity           int      `json:"quantity"`
	UnitCost           float64  `json:"unit_cost"`
	UnitPrice          float64  `json:"unit_price"`
	CommissionPercent  *float64 `json:"commission_percent,omitempty"`
	RentalPeriodMonths *int     `json:"rental_period_months,omitempty"`
	SubtotalValue      float64  `json:"subtotal_value"`
	SubtotalProfit     float64  `json:"subtotal_profit"`
}

// HandleProposalCalculate handles POST /v1/proposals/calculate. The
// endpoint is stateless; nothing is persisted.
func HandleProposalCalculate(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CalculateProposalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		resp, err := service.Calculate(req)
		if err != nil {
			if verr, ok := err.(*errors.ErrValidation); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to calculate proposal", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// HandleCreateProposal handles POST /v1/proposals
func HandleCreateProposal(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, ok := middleware.GetClientFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req service.CreateProposalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		proposalService := service.NewProposalService(repos, logger)
		p, err := proposalService.CreateProposal(c.Request.Context(), client.ID, req)
		if err != nil {
			if verr, ok := err.(*errors.ErrValidation); ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
				return
			}
			logger.Error("Failed to create proposal", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create proposal"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":             p.ID.String(),
			"status":         p.Status,
			"total_value":    p.TotalValue,
			"total_cost":     p.TotalCost,
			"total_profit":   p.TotalProfit,
			"margin_percent": p.MarginPercent,
		})
	}
}

// HandleGetProposal handles GET /v1/proposals/:id
func HandleGetProposal(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProposal(c, repos, logger)
		if !ok {
			return
		}

		items, err := repos.ProposalItem.GetByProposalID(c.Request.Context(), p.ID)
		if err != nil {
			logger.Error("Failed to get proposal items", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		itemResponses := make([]ProposalItemResponse, len(items))
		for i, item := range items {
			itemResponses[i] = ProposalItemResponse{
				ProductID:          item.ProductID.String(),
				Quantity:           item.Quantity,
				UnitCost:           item.UnitCost,
				UnitPrice:          item.UnitPrice,
				CommissionPercent:  item.CommissionPercent,
				RentalPeriodMonths: item.RentalPeriodMonths,
				SubtotalValue:      item.SubtotalValue,
				SubtotalProfit:     item.SubtotalProfit,
			}
			if item.SupplierID != nil {
				id := item.SupplierID.String()
				itemResponses[i].SupplierID = &id
			}
		}

		c.JSON(http.StatusOK, ProposalResponse{
			ID:              p.ID.String(),
			Title:           p.Title,
			Mode:            p.Mode,
			Status:          p.Status,
			TotalValue:      p.TotalValue,
			TotalCost:       p.TotalCost,
			TotalProfit:     p.TotalProfit,
			MarginPercent:   p.MarginPercent,
			RejectionReason: p.RejectionReason,
			Items:           itemResponses,
			CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:       p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}

// HandleListProposals handles GET /v1/proposals
func HandleListProposals(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, ok := middleware.GetClientFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit <= 0 || limit > 200 {
			limit = 50
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		proposals, err := repos.Proposal.ListByClientID(c.Request.Context(), client.ID, limit, offset)
		if err != nil {
			logger.Error("Failed to list proposals", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		out := make([]gin.H, len(proposals))
		for i, p := range proposals {
			out[i] = gin.H{
				"id":             p.ID.String(),
				"title":          p.Title,
				"mode":           p.Mode,
				"status":         p.Status,
				"total_value":    p.TotalValue,
				"margin_percent": p.MarginPercent,
				"created_at":     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"proposals": out,
			"limit":     limit,
			"offset":    offset,
		})
	}
}

// HandleSendProposal handles POST /v1/proposals/:id/send
func HandleSendProposal(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProposal(c, repos, logger)
		if !ok {
			return
		}

		proposalService := service.NewProposalService(repos, logger)
		if err := proposalService.SendProposal(c.Request.Context(), p.ID); err != nil {
			respondTransitionError(c, logger, "send", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     p.ID.String(),
			"status": domain.ProposalStatusSent,
		})
	}
}

// HandleAcceptProposal handles POST /v1/proposals/:id/accept
func HandleAcceptProposal(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProposal(c, repos, logger)
		if !ok {
			return
		}

		proposalService := service.NewProposalService(repos, logger)
		if err := proposalService.AcceptProposal(c.Request.Context(), p.ID); err != nil {
			respondTransitionError(c, logger, "accept", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     p.ID.String(),
			"status": domain.ProposalStatusAccepted,
		})
	}
}

// HandleRejectProposal handles POST /v1/proposals/:id/reject
func HandleRejectProposal(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProposal(c, repos, logger)
		if !ok {
			return
		}

		var req RejectProposalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		proposalService := service.NewProposalService(repos, logger)
		if err := proposalService.RejectProposal(c.Request.Context(), p.ID, req.Reason); err != nil {
			respondTransitionError(c, logger, "reject", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     p.ID.String(),
			"status": domain.ProposalStatusRejected,
		})
	}
}

// ownedProposal parses the path ID, loads the proposal, and verifies the
// authenticated client owns it. On failure it writes the response and
// returns false.
func ownedProposal(c *gin.Context, repos *repository.Repositories, logger *zap.Logger) (*domain.Proposal, bool) {
	client, ok := middleware.GetClientFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	proposalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proposal ID"})
		return nil, false
	}

	p, err := repos.Proposal.GetByID(c.Request.Context(), proposalID)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "proposal not found"})
			return nil, false
		}
		logger.Error("Failed to get proposal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}

	if p.ClientID != client.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return nil, false
	}

	return p, true
}

func respondTransitionError(c *gin.Context, logger *zap.Logger, action string, err error) {
	if _, ok := err.(*errors.ErrInvalidStateTransition); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Failed to "+action+" proposal", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action + " proposal"})
}
