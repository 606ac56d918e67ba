package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/partner"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name       string     `json:"name" binding:"required,min=1,max=200"`
	ShortName  string     `json:"short_name" binding:"max=100"`
	TaxID      string     `json:"tax_id" binding:"max=50"`
	Address    string     `json:"address" binding:"max=500"`
	City       string     `json:"city" binding:"max=100"`
	State      string     `json:"state" binding:"max=100"`
	PostalCode string     `json:"postal_code" binding:"max=20"`
	CreditDays *int       `json:"credit_days" binding:"omitempty,min=1"`
	Notes      string     `json:"notes"`
	CreatedBy  *uuid.UUID `json:"-"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=200"`
	ShortName  *string `json:"short_name" binding:"omitempty,max=100"`
	TaxID      *string `json:"tax_id" binding:"omitempty,max=50"`
	Address    *string `json:"address" binding:"omitempty,max=500"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	State      *string `json:"state" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
	CreditDays *int    `json:"credit_days" binding:"omitempty,min=1"`
	Notes      *string `json:"notes"`
}

// AddContactRequest adds a contact to a client
type AddContactRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Role  string `json:"role" binding:"max=100"`
	Phone string `json:"phone" binding:"max=50"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
}

// ContactResponse represents a client contact in API responses
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsPrimary bool      `json:"is_primary"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	ShortName  string            `json:"short_name"`
	TaxID      string            `json:"tax_id"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	State      string            `json:"state"`
	PostalCode string            `json:"postal_code"`
	CreditDays int               `json:"credit_days"`
	Notes      string            `json:"notes"`
	Contacts   []ContactResponse `json:"contacts"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Version    int               `json:"version"`
}

// =============================================================================
// Vendor DTOs
// =============================================================================

// CreateVendorRequest represents a request to create a new vendor
type CreateVendorRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=200"`
	Phone          string           `json:"phone" binding:"max=50"`
	Email          string           `json:"email" binding:"omitempty,email,max=200"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	UserID         *uuid.UUID       `json:"user_id"`
	CreatedBy      *uuid.UUID       `json:"-"`
}

// SetVendorCommissionRateRequest sets the vendor's default commission rate
type SetVendorCommissionRateRequest struct {
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	UserID         *uuid.UUID      `json:"user_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to create a new supplier
type CreateSupplierRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	TaxID       string     `json:"tax_id" binding:"max=50"`
	ContactName string     `json:"contact_name" binding:"max=100"`
	Phone       string     `json:"phone" binding:"max=50"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	Address     string     `json:"address" binding:"max=500"`
	Notes       string     `json:"notes"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// PartnerListFilter represents filter options for partner lists
type PartnerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// =============================================================================
// Converters
// =============================================================================

// ToClientResponse converts a client domain object to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	contacts := make([]ContactResponse, 0, len(c.Contacts))
	for i := range c.Contacts {
		contacts = append(contacts, ToContactResponse(&c.Contacts[i]))
	}
	return ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		ShortName:  c.ShortName,
		TaxID:      c.TaxID,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		CreditDays: c.CreditDays,
		Notes:      c.Notes,
		Contacts:   contacts,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		Version:    c.Version,
	}
}

// ToContactResponse converts a contact to a response DTO
func ToContactResponse(c *partner.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Name:      c.Name,
		Role:      c.Role,
		Phone:     c.Phone,
		Email:     c.Email,
		IsPrimary: c.IsPrimary,
	}
}

// ToVendorResponse converts a vendor domain object to a response DTO
func ToVendorResponse(v *partner.Vendor) VendorResponse {
	return VendorResponse{
		ID:             v.ID,
		Name:           v.Name,
		Phone:          v.Phone,
		Email:          v.Email,
		CommissionRate: v.CommissionRate,
		UserID:         v.UserID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		Version:        v.Version,
	}
}

// ToSupplierResponse converts a supplier domain object to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		TaxID:       s.TaxID,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Version:     s.Version,
	}
}
