package expense

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// ExpenseStatus represents the payment status of a supplier expense
type ExpenseStatus string

const (
	ExpenseStatusPendiente ExpenseStatus = "PENDIENTE" // Not yet paid to the supplier
	ExpenseStatusPagado    ExpenseStatus = "PAGADO"    // Paid
)

// IsValid checks if the status is a valid ExpenseStatus
func (s ExpenseStatus) IsValid() bool {
	return s == ExpenseStatusPendiente || s == ExpenseStatusPagado
}

// String returns the string representation of ExpenseStatus
func (s ExpenseStatus) String() string {
	return string(s)
}

// SupplierExpense represents a supplier invoice or operational purchase.
// When OrderID is set the expense counts toward that order's material cost.
type SupplierExpense struct {
	shared.AuditedAggregateRoot
	SupplierID           uuid.UUID       `json:"supplier_id"`
	OrderID              *uuid.UUID      `json:"order_id"`
	Description          string          `json:"description"`
	ExpenseDate          time.Time       `json:"expense_date"`
	Total                decimal.Decimal `json:"total"`
	ScheduledPaymentDate *time.Time      `json:"scheduled_payment_date"`
	Status               ExpenseStatus   `json:"status"`
	PaidAt               *time.Time      `json:"paid_at"`
	PayMethod            string          `json:"pay_method"`
	Category             string          `json:"category"`
}

// NewSupplierExpense creates a new supplier expense in PENDIENTE status
func NewSupplierExpense(supplierID uuid.UUID, orderID *uuid.UUID, description string, expenseDate time.Time, total valueobject.Money) (*SupplierExpense, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense total cannot be negative")
	}
	if orderID != nil && *orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be the zero ID")
	}

	return &SupplierExpense{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		SupplierID:           supplierID,
		OrderID:              orderID,
		Description:          description,
		ExpenseDate:          expenseDate,
		Total:                total.Amount(),
		Status:               ExpenseStatusPendiente,
	}, nil
}

// SchedulePayment sets the planned payment date
func (e *SupplierExpense) SchedulePayment(date time.Time) error {
	if e.Status == ExpenseStatusPagado {
		return shared.NewDomainError("INVALID_STATE", "Cannot schedule payment for a paid expense")
	}
	e.ScheduledPaymentDate = &date
	e.touch()
	return nil
}

// MarkPaid transitions the expense to PAGADO. Paid date and pay method are
// set only here.
func (e *SupplierExpense) MarkPaid(paidAt time.Time, payMethod string) error {
	if e.Status == ExpenseStatusPagado {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Expense is already %s", e.Status))
	}
	if payMethod == "" {
		return shared.NewDomainError("INVALID_PAY_METHOD", "Pay method is required")
	}
	e.Status = ExpenseStatusPagado
	e.PaidAt = &paidAt
	e.PayMethod = payMethod
	e.touch()
	return nil
}

// AttachToOrder attributes the expense to an order's material cost
func (e *SupplierExpense) AttachToOrder(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	e.OrderID = &orderID
	e.touch()
	return nil
}

// Detach removes the order attribution, keeping the expense itself
func (e *SupplierExpense) Detach() {
	e.OrderID = nil
	e.touch()
}

// SetCategory sets the category tag
func (e *SupplierExpense) SetCategory(category string) {
	e.Category = category
	e.touch()
}

// IsPaid returns true if the expense has been paid
func (e *SupplierExpense) IsPaid() bool {
	return e.Status == ExpenseStatusPagado
}

// GetTotalMoney returns the expense total as Money
func (e *SupplierExpense) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(e.Total)
}

func (e *SupplierExpense) touch() {
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}
