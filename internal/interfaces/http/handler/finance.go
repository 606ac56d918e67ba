package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ventas/backend/internal/application/finance"
)

// FinanceHandler exposes the read-side financial views: per-order snapshots,
// expense breakdowns and batched billing totals
type FinanceHandler struct {
	BaseHandler
	service *finance.SnapshotService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(service *finance.SnapshotService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// RegisterRoutes registers finance routes on the given group
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders/:id/snapshot", h.GetOrderSnapshot)
	rg.GET("/orders/:id/expense-breakdown", h.GetExpenseBreakdown)
	rg.POST("/billing-totals", h.GetBillingTotals)
}

// billingTotalsRequest asks for the billing summaries of a batch of orders
type billingTotalsRequest struct {
	OrderIDs []uuid.UUID `json:"order_ids" binding:"required,min=1,max=500"`
}

// GetOrderSnapshot returns the full financial snapshot of an order
func (h *FinanceHandler) GetOrderSnapshot(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	snapshot, err := h.service.GetOrderFinancialSnapshot(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, snapshot)
}

// GetExpenseBreakdown returns the aggregated cost picture of an order
func (h *FinanceHandler) GetExpenseBreakdown(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	breakdown, err := h.service.GetExpenseBreakdown(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, breakdown)
}

// GetBillingTotals returns billing summaries for a batch of orders in one call
func (h *FinanceHandler) GetBillingTotals(c *gin.Context) {
	var req billingTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	summaries, err := h.service.GetBillingTotals(c.Request.Context(), req.OrderIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}
