package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/orders"
)

// =============================================================================
// Order DTOs
// =============================================================================

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	OrderNumber    string           `json:"order_number" binding:"required,min=1,max=50"`
	ClientID       uuid.UUID        `json:"client_id" binding:"required"`
	VendorID       *uuid.UUID       `json:"vendor_id"`
	OrderDate      time.Time        `json:"order_date" binding:"required"`
	SaleSubtotal   decimal.Decimal  `json:"sale_subtotal"`
	Description    string           `json:"description"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	CreatedBy      *uuid.UUID       `json:"-"`
}

// UpdateSaleSubtotalRequest replaces the sale subtotal; the sale total is
// rederived
type UpdateSaleSubtotalRequest struct {
	SaleSubtotal decimal.Decimal `json:"sale_subtotal"`
}

// SetWorkProgressRequest sets the user-entered completion percentage
type SetWorkProgressRequest struct {
	WorkProgress decimal.Decimal `json:"work_progress"`
}

// SetCommissionRateRequest sets or clears the order-level commission override
type SetCommissionRateRequest struct {
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// CancelOrderRequest cancels an order with a mandatory reason
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=1"`
}

// AddExpenseLineRequest adds an operational or indirect cost line to an order
type AddExpenseLineRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=OPERATIVO INDIRECTO"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expense_date" binding:"required"`
}

// OrderListFilter represents filter options for order list
type OrderListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	VendorID *uuid.UUID `form:"vendor_id"`
	Status   string     `form:"status" binding:"omitempty,oneof=CREADA EN_PROCESO TERMINADA ENTREGADA CANCELADO"`
	Search   string     `form:"search"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                      uuid.UUID        `json:"id"`
	OrderNumber             string           `json:"order_number"`
	ClientID                uuid.UUID        `json:"client_id"`
	VendorID                *uuid.UUID       `json:"vendor_id"`
	CommissionRate          *decimal.Decimal `json:"commission_rate"`
	SaleSubtotal            decimal.Decimal  `json:"sale_subtotal"`
	SaleTotal               decimal.Decimal  `json:"sale_total"`
	WorkProgress            decimal.Decimal  `json:"work_progress"`
	OperationalExpenseTotal decimal.Decimal  `json:"operational_expense_total"`
	IndirectExpenseTotal    decimal.Decimal  `json:"indirect_expense_total"`
	Status                  string           `json:"status"`
	Description             string           `json:"description"`
	OrderDate               time.Time        `json:"order_date"`
	CancelledAt             *time.Time       `json:"cancelled_at"`
	CancelReason            string           `json:"cancel_reason"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
	Version                 int              `json:"version"`
}

// ExpenseLineResponse represents an order expense line in API responses
type ExpenseLineResponse struct {
	ID             uuid.UUID        `json:"id"`
	OrderID        uuid.UUID        `json:"order_id"`
	Kind           string           `json:"kind"`
	Amount         decimal.Decimal  `json:"amount"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	ExpenseDate    time.Time        `json:"expense_date"`
	CreatedAt      time.Time        `json:"created_at"`
}

// CommissionResponse is the commission preview for an order
type CommissionResponse struct {
	OrderID          uuid.UUID       `json:"order_id"`
	SaleSubtotal     decimal.Decimal `json:"sale_subtotal"`
	EffectiveRate    decimal.Decimal `json:"effective_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	// Origin of the effective rate: "order", "vendor" or "none"
	RateSource string `json:"rate_source"`
}

// ToOrderResponse converts an order domain object to a response DTO
func ToOrderResponse(order *orders.Order) OrderResponse {
	return OrderResponse{
		ID:                      order.ID,
		OrderNumber:             order.OrderNumber,
		ClientID:                order.ClientID,
		VendorID:                order.VendorID,
		CommissionRate:          order.CommissionRate,
		SaleSubtotal:            order.SaleSubtotal,
		SaleTotal:               order.SaleTotal,
		WorkProgress:            order.WorkProgress,
		OperationalExpenseTotal: order.OperationalExpenseTotal,
		IndirectExpenseTotal:    order.IndirectExpenseTotal,
		Status:                  order.Status.String(),
		Description:             order.Description,
		OrderDate:               order.OrderDate,
		CancelledAt:             order.CancelledAt,
		CancelReason:            order.CancelReason,
		CreatedAt:               order.CreatedAt,
		UpdatedAt:               order.UpdatedAt,
		Version:                 order.Version,
	}
}

// ToExpenseLineResponse converts an expense line to a response DTO
func ToExpenseLineResponse(line *orders.ExpenseLine) ExpenseLineResponse {
	return ExpenseLineResponse{
		ID:             line.ID,
		OrderID:        line.OrderID,
		Kind:           line.Kind.String(),
		Amount:         line.Amount,
		CommissionRate: line.CommissionRate,
		Description:    line.Description,
		Category:       line.Category,
		ExpenseDate:    line.ExpenseDate,
		CreatedAt:      line.CreatedAt,
	}
}
