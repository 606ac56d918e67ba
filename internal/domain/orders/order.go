package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ventas/backend/internal/domain/billing"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the lifecycle status of an order.
// Unlike invoice status it is not date-derived: transitions happen only by
// explicit user action.
type OrderStatus string

const (
	OrderStatusCreada    OrderStatus = "CREADA"     // Registered, work not started
	OrderStatusEnProceso OrderStatus = "EN_PROCESO" // Work in progress
	OrderStatusTerminada OrderStatus = "TERMINADA"  // Work finished, pending delivery
	OrderStatusEntregada OrderStatus = "ENTREGADA"  // Delivered (terminal)
	OrderStatusCancelado OrderStatus = "CANCELADO"  // Cancelled (terminal, one-way)
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreada, OrderStatusEnProceso, OrderStatusTerminada,
		OrderStatusEntregada, OrderStatusCancelado:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the order is in a terminal state
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusEntregada || s == OrderStatusCancelado
}

// Order represents a commercial order aggregate root.
// WorkProgress is the user-entered completion estimate for the underlying
// job; the billing percentage is derived from invoice sums in the billing
// package and is never stored here, so the two can never overwrite each
// other.
type Order struct {
	shared.AuditedAggregateRoot
	OrderNumber    string           `json:"order_number"`
	ClientID       uuid.UUID        `json:"client_id"`
	VendorID       *uuid.UUID       `json:"vendor_id"`
	CommissionRate *decimal.Decimal `json:"commission_rate"` // Override; nil falls back to the vendor's rate
	SaleSubtotal   decimal.Decimal  `json:"sale_subtotal"`
	SaleTotal      decimal.Decimal  `json:"sale_total"`
	WorkProgress   decimal.Decimal  `json:"work_progress"` // 0-100, user-set
	// Roll-up caches refreshed on every expense-line write; line items
	// remain the source of truth on read.
	OperationalExpenseTotal decimal.Decimal `json:"operational_expense_total"`
	IndirectExpenseTotal    decimal.Decimal `json:"indirect_expense_total"`
	Status                  OrderStatus     `json:"status"`
	Description             string          `json:"description"`
	OrderDate               time.Time       `json:"order_date"`
	CancelledAt             *time.Time      `json:"cancelled_at"`
	CancelReason            string          `json:"cancel_reason"`
}

// NewOrder creates a new order. The sale total is derived from the subtotal
// with the fixed tax rate.
func NewOrder(orderNumber string, clientID uuid.UUID, vendorID *uuid.UUID, orderDate time.Time, saleSubtotal valueobject.Money) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if saleSubtotal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale subtotal cannot be negative")
	}
	if vendorID != nil && *vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be the zero ID")
	}

	return &Order{
		AuditedAggregateRoot:    shared.NewAuditedAggregateRoot(),
		OrderNumber:             orderNumber,
		ClientID:                clientID,
		VendorID:                vendorID,
		SaleSubtotal:            saleSubtotal.Amount(),
		SaleTotal:               billing.DeriveTotal(saleSubtotal.Amount()),
		WorkProgress:            decimal.Zero,
		OperationalExpenseTotal: decimal.Zero,
		IndirectExpenseTotal:    decimal.Zero,
		Status:                  OrderStatusCreada,
		OrderDate:               orderDate,
	}, nil
}

// SetSaleSubtotal replaces the sale subtotal and rederives the sale total.
// The commission amount depends on the subtotal, so callers recompute it
// after this mutation.
func (o *Order) SetSaleSubtotal(subtotal valueobject.Money) error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot modify amounts of an order in %s status", o.Status))
	}
	if subtotal.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Sale subtotal cannot be negative")
	}
	o.SaleSubtotal = subtotal.Amount()
	o.SaleTotal = billing.DeriveTotal(o.SaleSubtotal)
	o.touch()
	return nil
}

// SetWorkProgress sets the user-entered work completion percentage.
// Values outside [0, 100] are rejected, not corrected: progress is a
// structurally required input, unlike the commission rate.
func (o *Order) SetWorkProgress(progress decimal.Decimal) error {
	if progress.IsNegative() || progress.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_PROGRESS", "Work progress must be between 0 and 100")
	}
	o.WorkProgress = progress
	o.touch()
	return nil
}

// SetCommissionRate sets or clears the order-level commission override.
// The stored rate is clamped into [0, 100].
func (o *Order) SetCommissionRate(rate *decimal.Decimal) {
	if rate == nil {
		o.CommissionRate = nil
	} else {
		clamped := ClampCommissionRate(*rate)
		o.CommissionRate = &clamped
	}
	o.touch()
}

// SetDescription sets the order description
func (o *Order) SetDescription(description string) {
	o.Description = description
	o.touch()
}

// Start moves the order into EN_PROCESO
func (o *Order) Start() error {
	if o.Status != OrderStatusCreada {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot start an order in %s status", o.Status))
	}
	o.Status = OrderStatusEnProceso
	o.touch()
	return nil
}

// Finish moves the order into TERMINADA
func (o *Order) Finish() error {
	if o.Status != OrderStatusEnProceso {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot finish an order in %s status", o.Status))
	}
	o.Status = OrderStatusTerminada
	o.touch()
	return nil
}

// Deliver moves the order into the terminal ENTREGADA state
func (o *Order) Deliver() error {
	if o.Status != OrderStatusTerminada {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot deliver an order in %s status", o.Status))
	}
	o.Status = OrderStatusEntregada
	o.touch()
	return nil
}

// Cancel forces the terminal CANCELADO state. One-way: there is no reverse
// path.
func (o *Order) Cancel(reason string) error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel an order in %s status", o.Status))
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancel reason is required")
	}
	now := time.Now()
	o.Status = OrderStatusCancelado
	o.CancelledAt = &now
	o.CancelReason = reason
	o.touch()
	return nil
}

// RefreshExpenseTotals overwrites the roll-up caches with freshly computed
// sums from the line items
func (o *Order) RefreshExpenseTotals(operational, indirect decimal.Decimal) {
	o.OperationalExpenseTotal = operational
	o.IndirectExpenseTotal = indirect
	o.touch()
}

// GetSaleSubtotalMoney returns the sale subtotal as Money
func (o *Order) GetSaleSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(o.SaleSubtotal)
}

// GetSaleTotalMoney returns the sale total as Money
func (o *Order) GetSaleTotalMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(o.SaleTotal)
}

// IsCancelled returns true if the order has been cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelado
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
