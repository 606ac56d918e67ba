package handler

import (
	"github.com/gin-gonic/gin"

	appexpense "github.com/ventas/backend/internal/application/expense"
)

// SupplierExpenseHandler handles supplier expense endpoints
type SupplierExpenseHandler struct {
	BaseHandler
	service *appexpense.SupplierExpenseService
}

// NewSupplierExpenseHandler creates a new supplier expense handler
func NewSupplierExpenseHandler(service *appexpense.SupplierExpenseService) *SupplierExpenseHandler {
	return &SupplierExpenseHandler{service: service}
}

// RegisterRoutes registers supplier expense routes on the given group
func (h *SupplierExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/by-order/:orderId", h.ListByOrder)
	rg.PUT("/:id/schedule", h.SchedulePayment)
	rg.POST("/:id/payment", h.MarkPaid)
	rg.POST("/:id/attach", h.AttachToOrder)
	rg.DELETE("/:id/attach", h.Detach)
	rg.DELETE("/:id", h.Deactivate)
}

// Create registers a new supplier expense
func (h *SupplierExpenseHandler) Create(c *gin.Context) {
	var req appexpense.CreateSupplierExpenseRequest
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

// GetByID retrieves a supplier expense by its ID
func (h *SupplierExpenseHandler) GetByID(c *gin.Context) {
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

// List retrieves supplier expenses with filtering and pagination
func (h *SupplierExpenseHandler) List(c *gin.Context) {
	var filter appexpense.SupplierExpenseListFilter
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

	expenses, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, total, filter.Page, filter.PageSize)
}

// ListByOrder retrieves all supplier expenses attached to an order
func (h *SupplierExpenseHandler) ListByOrder(c *gin.Context) {
	orderID, ok := h.parseUUIDParam(c, "orderId")
	if !ok {
		return
	}

	expenses, err := h.service.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expenses)
}

// SchedulePayment sets the planned payment date of an expense
func (h *SupplierExpenseHandler) SchedulePayment(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appexpense.SchedulePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.SchedulePayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPaid marks a supplier expense as paid
func (h *SupplierExpenseHandler) MarkPaid(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appexpense.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.MarkPaid(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AttachToOrder attributes the expense to an order
func (h *SupplierExpenseHandler) AttachToOrder(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appexpense.AttachToOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.AttachToOrder(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Detach removes the order attribution of an expense
func (h *SupplierExpenseHandler) Detach(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.Detach(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate soft-deletes a supplier expense
func (h *SupplierExpenseHandler) Deactivate(c *gin.Context) {
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
