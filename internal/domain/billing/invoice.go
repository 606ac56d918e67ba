package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// Invoice represents a client invoice aggregate root.
// OrderID is nullable: an invoice may be orphaned when its order is removed,
// and its financial history is kept.
type Invoice struct {
	shared.AuditedAggregateRoot
	OrderID       *uuid.UUID      `json:"order_id"`
	Folio         string          `json:"folio"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	ReceptionDate *time.Time      `json:"reception_date"`
	DueDate       *time.Time      `json:"due_date"`
	PaymentDate   *time.Time      `json:"payment_date"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	Remark        string          `json:"remark"`
}

// NewInvoice creates a new invoice. The total is derived from the subtotal
// and the invoice starts its lifecycle with no reception date (CREADA).
func NewInvoice(folio string, orderID *uuid.UUID, invoiceDate time.Time, subtotal valueobject.Money) (*Invoice, error) {
	if folio == "" {
		return nil, shared.NewDomainError("INVALID_FOLIO", "Folio cannot be empty")
	}
	if len(folio) > 50 {
		return nil, shared.NewDomainError("INVALID_FOLIO", "Folio cannot exceed 50 characters")
	}
	if subtotal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Subtotal cannot be negative")
	}
	if orderID != nil && *orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be the zero ID")
	}

	return &Invoice{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		OrderID:              orderID,
		Folio:                folio,
		InvoiceDate:          invoiceDate,
		Subtotal:             subtotal.Amount(),
		Total:                DeriveTotal(subtotal.Amount()),
	}, nil
}

// SetSubtotal replaces the subtotal and rederives the total from it.
// This and OverrideTotal are last-write-wins paths; no reconciliation
// is performed between them.
func (i *Invoice) SetSubtotal(subtotal valueobject.Money) error {
	if subtotal.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Subtotal cannot be negative")
	}
	i.Subtotal = subtotal.Amount()
	i.Total = DeriveTotal(i.Subtotal)
	i.touch()
	return nil
}

// OverrideTotal sets the total directly without rederiving it from the
// subtotal. Escape hatch for privileged corrections; the subtotal is
// never retroactively altered.
func (i *Invoice) OverrideTotal(total valueobject.Money) error {
	if total.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Total cannot be negative")
	}
	i.Total = total.Amount()
	i.touch()
	return nil
}

// Receive records the date client accounting received the invoice and
// recomputes the due date from the client's credit days. A future reception
// date is accepted; receiving gates the downstream status evaluation.
func (i *Invoice) Receive(receptionDate time.Time, creditDays int) {
	i.ReceptionDate = &receptionDate
	i.DueDate = DeriveDueDate(i.ReceptionDate, creditDays)
	i.touch()
}

// ClearReception removes the reception date. The due date derives from the
// reception date, so it is cleared with it.
func (i *Invoice) ClearReception() {
	i.ReceptionDate = nil
	i.DueDate = nil
	i.touch()
}

// SetDueDate sets the due date directly. The dependency is one-directional:
// this never recomputes the reception date.
func (i *Invoice) SetDueDate(dueDate *time.Time) {
	i.DueDate = dueDate
	i.touch()
}

// RegisterPayment records the payment date
func (i *Invoice) RegisterPayment(paymentDate time.Time) error {
	if i.PaymentDate != nil {
		return shared.NewDomainError("ALREADY_PAID", "Invoice already has a payment date")
	}
	i.PaymentDate = &paymentDate
	i.touch()
	return nil
}

// Detach orphans the invoice from its order, keeping its financial history
func (i *Invoice) Detach() {
	i.OrderID = nil
	i.touch()
}

// SetRemark sets the remark
func (i *Invoice) SetRemark(remark string) {
	i.Remark = remark
	i.touch()
}

// Status evaluates the lifecycle status at the given instant
func (i *Invoice) Status(now time.Time) InvoiceStatus {
	return EvaluateStatus(i.ReceptionDate, i.DueDate, i.PaymentDate, now)
}

// IsPaid returns true if a payment date has been registered
func (i *Invoice) IsPaid() bool {
	return i.PaymentDate != nil
}

// IsOrphaned returns true if the invoice no longer references an order
func (i *Invoice) IsOrphaned() bool {
	return i.OrderID == nil
}

// GetSubtotalMoney returns the subtotal as Money
func (i *Invoice) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(i.Subtotal)
}

// GetTotalMoney returns the total as Money
func (i *Invoice) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(i.Total)
}

func (i *Invoice) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
