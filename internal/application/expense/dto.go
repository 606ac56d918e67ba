package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/expense"
)

// =============================================================================
// Supplier Expense DTOs
// =============================================================================

// CreateSupplierExpenseRequest represents a request to register a supplier
// expense
type CreateSupplierExpenseRequest struct {
	SupplierID  uuid.UUID       `json:"supplier_id" binding:"required"`
	OrderID     *uuid.UUID      `json:"order_id"`
	Description string          `json:"description" binding:"required,min=1,max=500"`
	ExpenseDate time.Time       `json:"expense_date" binding:"required"`
	Total       decimal.Decimal `json:"total"`
	Category    string          `json:"category"`
	CreatedBy   *uuid.UUID      `json:"-"`
}

// SchedulePaymentRequest sets the planned payment date of an expense
type SchedulePaymentRequest struct {
	ScheduledPaymentDate time.Time `json:"scheduled_payment_date" binding:"required"`
}

// MarkPaidRequest marks a supplier expense as paid
type MarkPaidRequest struct {
	PaidAt    time.Time `json:"paid_at" binding:"required"`
	PayMethod string    `json:"pay_method" binding:"required,min=1,max=50"`
}

// AttachToOrderRequest attributes the expense to an order
type AttachToOrderRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
}

// SupplierExpenseListFilter represents filter options for supplier expense
// list
type SupplierExpenseListFilter struct {
	SupplierID *uuid.UUID `form:"supplier_id"`
	OrderID    *uuid.UUID `form:"order_id"`
	Status     string     `form:"status" binding:"omitempty,oneof=PENDIENTE PAGADO"`
	Category   string     `form:"category"`
	FromDate   *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate     *time.Time `form:"to_date" time_format:"2006-01-02"`
	Search     string     `form:"search"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SupplierExpenseResponse represents a supplier expense in API responses
type SupplierExpenseResponse struct {
	ID                   uuid.UUID       `json:"id"`
	SupplierID           uuid.UUID       `json:"supplier_id"`
	OrderID              *uuid.UUID      `json:"order_id"`
	Description          string          `json:"description"`
	ExpenseDate          time.Time       `json:"expense_date"`
	Total                decimal.Decimal `json:"total"`
	ScheduledPaymentDate *time.Time      `json:"scheduled_payment_date"`
	Status               string          `json:"status"`
	PaidAt               *time.Time      `json:"paid_at"`
	PayMethod            string          `json:"pay_method"`
	Category             string          `json:"category"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	Version              int             `json:"version"`
}

// ToSupplierExpenseResponse converts a supplier expense domain object to a
// response DTO
func ToSupplierExpenseResponse(e *expense.SupplierExpense) SupplierExpenseResponse {
	return SupplierExpenseResponse{
		ID:                   e.ID,
		SupplierID:           e.SupplierID,
		OrderID:              e.OrderID,
		Description:          e.Description,
		ExpenseDate:          e.ExpenseDate,
		Total:                e.Total,
		ScheduledPaymentDate: e.ScheduledPaymentDate,
		Status:               e.Status.String(),
		PaidAt:               e.PaidAt,
		PayMethod:            e.PayMethod,
		Category:             e.Category,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
		Version:              e.Version,
	}
}
