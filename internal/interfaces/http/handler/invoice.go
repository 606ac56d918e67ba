package handler

import (
	"github.com/gin-gonic/gin"

	appbilling "github.com/ventas/backend/internal/application/billing"
)

// InvoiceHandler handles invoice lifecycle endpoints
type InvoiceHandler struct {
	BaseHandler
	service *appbilling.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service *appbilling.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// RegisterRoutes registers invoice routes on the given group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/folio/:folio", h.GetByFolio)
	rg.GET("/by-order/:orderId", h.ListByOrder)
	rg.POST("/:id/reception", h.Receive)
	rg.DELETE("/:id/reception", h.ClearReception)
	rg.PUT("/:id/due-date", h.SetDueDate)
	rg.POST("/:id/payment", h.RegisterPayment)
	rg.PUT("/:id/subtotal", h.UpdateSubtotal)
	rg.PUT("/:id/total", h.OverrideTotal)
	rg.DELETE("/:id", h.Deactivate)
}

// Create registers a new invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req appbilling.CreateInvoiceRequest
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

// GetByID retrieves an invoice by its ID
func (h *InvoiceHandler) GetByID(c *gin.Context) {
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

// GetByFolio retrieves an invoice by its folio
func (h *InvoiceHandler) GetByFolio(c *gin.Context) {
	folio := c.Param("folio")
	if folio == "" {
		h.BadRequest(c, "Folio cannot be empty")
		return
	}

	resp, err := h.service.GetByFolio(c.Request.Context(), folio)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List retrieves invoices with filtering and pagination
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter appbilling.InvoiceListFilter
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

	invoices, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// ListByOrder retrieves all invoices owned by an order
func (h *InvoiceHandler) ListByOrder(c *gin.Context) {
	orderID, ok := h.parseUUIDParam(c, "orderId")
	if !ok {
		return
	}

	invoices, err := h.service.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// Receive records the reception of an invoice, deriving its due date
func (h *InvoiceHandler) Receive(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appbilling.ReceiveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Receive(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ClearReception removes the reception and due date of an invoice
func (h *InvoiceHandler) ClearReception(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.ClearReception(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetDueDate sets or clears the invoice due date directly
func (h *InvoiceHandler) SetDueDate(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appbilling.SetDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.SetDueDate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterPayment records the payment of an invoice
func (h *InvoiceHandler) RegisterPayment(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appbilling.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.RegisterPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateSubtotal replaces the invoice subtotal and rederives the total
func (h *InvoiceHandler) UpdateSubtotal(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appbilling.UpdateSubtotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.UpdateSubtotal(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// OverrideTotal sets the invoice total directly
func (h *InvoiceHandler) OverrideTotal(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req appbilling.OverrideTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.OverrideTotal(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate soft-deletes an invoice
func (h *InvoiceHandler) Deactivate(c *gin.Context) {
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
