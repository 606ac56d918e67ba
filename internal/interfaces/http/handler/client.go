package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ventas/backend/internal/application/partner"
)

// ClientHandler handles client and client contact endpoints
type ClientHandler struct {
	BaseHandler
	service *partner.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *partner.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// RegisterRoutes registers client routes on the given group
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Deactivate)
	rg.POST("/:id/contacts", h.AddContact)
	rg.PUT("/:id/contacts/:contactId/primary", h.SetPrimaryContact)
	rg.DELETE("/:id/contacts/:contactId", h.RemoveContact)
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req partner.CreateClientRequest
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

// GetByID retrieves a client by its ID
func (h *ClientHandler) GetByID(c *gin.Context) {
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

// Update applies a partial update to a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req partner.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List retrieves clients with filtering and pagination
func (h *ClientHandler) List(c *gin.Context) {
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

	clients, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

// AddContact adds a contact to a client
func (h *ClientHandler) AddContact(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req partner.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.AddContact(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SetPrimaryContact marks a contact as the client's primary contact
func (h *ClientHandler) SetPrimaryContact(c *gin.Context) {
	clientID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	contactID, ok := h.parseUUIDParam(c, "contactId")
	if !ok {
		return
	}

	resp, err := h.service.SetPrimaryContact(c.Request.Context(), clientID, contactID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveContact removes a contact from a client
func (h *ClientHandler) RemoveContact(c *gin.Context) {
	clientID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	contactID, ok := h.parseUUIDParam(c, "contactId")
	if !ok {
		return
	}

	if err := h.service.RemoveContact(c.Request.Context(), clientID, contactID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate soft-deletes a client
func (h *ClientHandler) Deactivate(c *gin.Context) {
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
