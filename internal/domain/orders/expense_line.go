package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ventas/backend/internal/domain/shared"
	"github.com/ventas/backend/internal/domain/shared/valueobject"
)

// ExpenseLineKind distinguishes the two order-level cost line categories
// entered directly against an order, outside the supplier-invoice flow.
type ExpenseLineKind string

const (
	ExpenseLineOperativo ExpenseLineKind = "OPERATIVO" // Operational cost line
	ExpenseLineIndirecto ExpenseLineKind = "INDIRECTO" // Indirect cost line
)

// IsValid checks if the kind is a valid ExpenseLineKind
func (k ExpenseLineKind) IsValid() bool {
	return k == ExpenseLineOperativo || k == ExpenseLineIndirecto
}

// String returns the string representation of ExpenseLineKind
func (k ExpenseLineKind) String() string {
	return string(k)
}

// ExpenseLine is an operational or indirect cost line owned by an order.
// Lines roll up into the order's expense totals.
type ExpenseLine struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `json:"order_id"`
	Kind        ExpenseLineKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	// Commission-rate snapshot at capture time, kept for audit; nil when
	// the line was entered without one.
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	ExpenseDate    time.Time        `json:"expense_date"`
}

// NewExpenseLine creates a new order expense line
func NewExpenseLine(orderID uuid.UUID, kind ExpenseLineKind, amount valueobject.Money, description string, expenseDate time.Time) (*ExpenseLine, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Expense line kind is not valid")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}

	return &ExpenseLine{
		BaseEntity:  shared.NewBaseEntity(),
		OrderID:     orderID,
		Kind:        kind,
		Amount:      amount.Amount(),
		Description: description,
		ExpenseDate: expenseDate,
	}, nil
}

// SnapshotCommissionRate records the commission rate in force when the line
// was captured
func (l *ExpenseLine) SnapshotCommissionRate(rate decimal.Decimal) {
	clamped := ClampCommissionRate(rate)
	l.CommissionRate = &clamped
	l.UpdatedAt = time.Now()
}

// SetCategory sets the category tag
func (l *ExpenseLine) SetCategory(category string) {
	l.Category = category
	l.UpdatedAt = time.Now()
}

// GetAmountMoney returns the line amount as Money
func (l *ExpenseLine) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyMXN(l.Amount)
}
