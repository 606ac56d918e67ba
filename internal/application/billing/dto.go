package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/billing"
)

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create a new invoice
type CreateInvoiceRequest struct {
	Folio       string          `json:"folio" binding:"required,min=1,max=50"`
	OrderID     *uuid.UUID      `json:"order_id"`
	InvoiceDate time.Time       `json:"invoice_date" binding:"required"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Remark      string          `json:"remark"`
	CreatedBy   *uuid.UUID      `json:"-"`
}

// ReceiveInvoiceRequest records the reception of an invoice by client
// accounting
type ReceiveInvoiceRequest struct {
	ReceptionDate time.Time `json:"reception_date" binding:"required"`
	// Optional credit-days override; when nil the owning client's term applies
	CreditDays *int `json:"credit_days" binding:"omitempty,min=1"`
}

// RegisterPaymentRequest records the payment of an invoice
type RegisterPaymentRequest struct {
	PaymentDate time.Time `json:"payment_date" binding:"required"`
}

// UpdateSubtotalRequest replaces the invoice subtotal; the total is rederived
type UpdateSubtotalRequest struct {
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OverrideTotalRequest sets the invoice total directly
type OverrideTotalRequest struct {
	Total decimal.Decimal `json:"total"`
}

// SetDueDateRequest sets or clears the invoice due date directly
type SetDueDateRequest struct {
	DueDate *time.Time `json:"due_date"`
}

// InvoiceListFilter represents filter options for invoice list
type InvoiceListFilter struct {
	OrderID  *uuid.UUID `form:"order_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=CREADA PENDIENTE VENCIDA PAGADA"`
	Paid     *bool      `form:"paid"`
	Orphaned *bool      `form:"orphaned"`
	Search   string     `form:"search"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InvoiceResponse represents an invoice in API responses. Status is evaluated
// at response time, never read from storage.
type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       *uuid.UUID      `json:"order_id"`
	Folio         string          `json:"folio"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	ReceptionDate *time.Time      `json:"reception_date"`
	DueDate       *time.Time      `json:"due_date"`
	PaymentDate   *time.Time      `json:"payment_date"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Remark        string          `json:"remark"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// ToInvoiceResponse converts an invoice domain object to a response DTO,
// evaluating the lifecycle status at the given instant
func ToInvoiceResponse(invoice *billing.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID,
		OrderID:       invoice.OrderID,
		Folio:         invoice.Folio,
		InvoiceDate:   invoice.InvoiceDate,
		ReceptionDate: invoice.ReceptionDate,
		DueDate:       invoice.DueDate,
		PaymentDate:   invoice.PaymentDate,
		Subtotal:      invoice.Subtotal,
		Total:         invoice.Total,
		Status:        invoice.Status(now).String(),
		Remark:        invoice.Remark,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
		Version:       invoice.Version,
	}
}
