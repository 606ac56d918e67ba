package expense

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ventas/backend/internal/domain/orders"
)

// Breakdown is the structured cost picture of a single order, aggregated
// from its three expense sources: supplier invoices (material), operational
// lines and indirect lines.
type Breakdown struct {
	OrderID uuid.UUID `json:"order_id"`
	// Material cost attributed via supplier invoices
	MaterialExpense decimal.Decimal `json:"material_expense"`
	// Subset of the material cost whose underlying expense is not yet paid
	MaterialExpensePending decimal.Decimal `json:"material_expense_pending"`
	OperationalExpense     decimal.Decimal `json:"operational_expense"`
	IndirectExpense        decimal.Decimal `json:"indirect_expense"`
	// Audit display companions of the material slice
	TotalSupplierExpense decimal.Decimal `json:"total_supplier_expense"`
	SupplierInvoiceCount int             `json:"supplier_invoice_count"`
	// Non-fatal aggregation warnings (zeroed categories, roll-up drift)
	Warnings []string `json:"warnings,omitempty"`
}

// NewBreakdown returns a zero-valued breakdown for the order
func NewBreakdown(orderID uuid.UUID) *Breakdown {
	return &Breakdown{
		OrderID:                orderID,
		MaterialExpense:        decimal.Zero,
		MaterialExpensePending: decimal.Zero,
		OperationalExpense:     decimal.Zero,
		IndirectExpense:        decimal.Zero,
		TotalSupplierExpense:   decimal.Zero,
	}
}

// TotalExpense returns the sum of all three expense categories
func (b *Breakdown) TotalExpense() decimal.Decimal {
	return b.MaterialExpense.Add(b.OperationalExpense).Add(b.IndirectExpense)
}

// AddWarning appends a non-fatal aggregation warning
func (b *Breakdown) AddWarning(warning string) {
	b.Warnings = append(b.Warnings, warning)
}

// SummarizeSupplierExpenses reduces an order's supplier expenses into the
// material slice of the breakdown. Pure and order-independent: missing
// totals contribute zero, unpaid expenses also count toward the pending
// subset.
func SummarizeSupplierExpenses(expenses []SupplierExpense) (material, pending decimal.Decimal, count int) {
	material = decimal.Zero
	pending = decimal.Zero
	for i := range expenses {
		e := &expenses[i]
		material = material.Add(e.Total)
		if !e.IsPaid() {
			pending = pending.Add(e.Total)
		}
	}
	return material, pending, len(expenses)
}

// SumExpenseLines reduces an order's expense lines of one kind into a
// single total. Pure reducer over an already-fetched collection.
func SumExpenseLines(lines []orders.ExpenseLine, kind orders.ExpenseLineKind) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		if lines[i].Kind == kind {
			total = total.Add(lines[i].Amount)
		}
	}
	return total
}
