package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ventas/backend/internal/application/partner"
)

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	BaseHandler
	service *partner.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(service *partner.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// RegisterRoutes registers vendor routes on the given group
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id/commission-rate", h.SetCommissionRate)
	rg.DELETE("/:id", h.Deactivate)
}

// Create creates a new vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req partner.CreateVendorRequest
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

// GetByID retrieves a vendor by its ID
func (h *VendorHandler) GetByID(c *gin.Context) {
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

// SetCommissionRate updates the vendor's default commission rate
func (h *VendorHandler) SetCommissionRate(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req partner.SetVendorCommissionRateRequest
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

// List retrieves vendors with filtering and pagination
func (h *VendorHandler) List(c *gin.Context) {
	var filter partner.PartnerListFilter
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

	vendors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

// Deactivate soft-deletes a vendor
func (h *VendorHandler) Deactivate(c *gin.Context) {
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
