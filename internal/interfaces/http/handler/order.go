package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apporders "github.com/ventas/backend/internal/application/orders"
)

// OrderHandler handles order lifecycle and expense line endpoints
type OrderHandler struct {
	BaseHandler
	service *apporders.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *apporders.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/number/:orderNumber", h.GetByOrderNumber)
	rg.PUT("/:id/sale-subtotal", h.UpdateSaleSubtotal)
	rg.PUT("/:id/work-progress", h.SetWorkProgress)
	rg.PUT("/:id/commission-rate", h.SetCommissionRate)
	rg.POST("/:id/start", h.Start)
	rg.POST("/:id/finish", h.Finish)
	rg.POST("/:id/deliver", h.Deliver)
	rg.POST("/:id/cancel", h.Cancel)
	rg.POST("/:id/expense-lines", h.AddExpenseLine)
	rg.GET("/:id/expense-lines", h.ListExpenseLines)
	rg.DELETE("/:id/expense-lines/:lineId", h.RemoveExpenseLine)
	rg.GET("/:id/commission", h.ComputeCommission)
	rg.DELETE("/:id", h.Deactivate)
}

// Create creates a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var req apporders.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID retrieves an order by its ID
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByOrderNumber retrieves an order by its business number
func (h *OrderHandler) GetByOrderNumber(c *gin.Context) {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		h.BadRequest(c, "Order number cannot be empty")
		return
	}

	resp, err := h.service.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List retrieves orders with filtering and pagination
func (h *OrderHandler) List(c *gin.Context) {
	var filter apporders.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// UpdateSaleSubtotal replaces the sale subtotal and rederives the sale total
func (h *OrderHandler) UpdateSaleSubtotal(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req apporders.UpdateSaleSubtotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.UpdateSaleSubtotal(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetWorkProgress sets the user-entered completion percentage
func (h *OrderHandler) SetWorkProgress(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req apporders.SetWorkProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.SetWorkProgress(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetCommissionRate sets or clears the order-level commission override
func (h *OrderHandler) SetCommissionRate(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req apporders.SetCommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.SetCommissionRate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Start moves the order into production
func (h *OrderHandler) Start(c *gin.Context) {
	h.transition(c, h.service.Start)
}

// Finish marks the order's work as complete
func (h *OrderHandler) Finish(c *gin.Context) {
	h.transition(c, h.service.Finish)
}

// Deliver marks the order as delivered to the client
func (h *OrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.service.Deliver)
}

// Cancel cancels the order with a mandatory reason
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req apporders.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddExpenseLine adds an operational or indirect cost line to the order
func (h *OrderHandler) AddExpenseLine(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req apporders.AddExpenseLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.AddExpenseLine(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListExpenseLines retrieves the expense lines of an order
func (h *OrderHandler) ListExpenseLines(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	lines, err := h.service.ListExpenseLines(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// RemoveExpenseLine removes an expense line and refreshes the order roll-ups
func (h *OrderHandler) RemoveExpenseLine(c *gin.Context) {
	if _, ok := h.parseUUIDParam(c, "id"); !ok {
		return
	}
	lineID, ok := h.parseUUIDParam(c, "lineId")
	if !ok {
		return
	}

	if err := h.service.RemoveExpenseLine(c.Request.Context(), lineID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ComputeCommission previews the commission of an order
func (h *OrderHandler) ComputeCommission(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ComputeCommission(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate soft-deletes an order
func (h *OrderHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *OrderHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*apporders.OrderResponse, error)) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
