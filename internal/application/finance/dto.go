package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/billing"
	"github.com/ventas/backend/internal/domain/expense"
)

// =============================================================================
// Financial Snapshot DTOs
// =============================================================================

// BillingSummaryResponse is the derived billing picture of an order
type BillingSummaryResponse struct {
	OrderID           uuid.UUID       `json:"order_id"`
	SaleTotal         decimal.Decimal `json:"sale_total"`
	InvoicedTotal     decimal.Decimal `json:"invoiced_total"`
	BillingPercentage decimal.Decimal `json:"billing_percentage"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
	FullyInvoiced     bool            `json:"fully_invoiced"`
}

// ExpenseBreakdownResponse is the aggregated cost picture of an order
type ExpenseBreakdownResponse struct {
	OrderID                uuid.UUID       `json:"order_id"`
	MaterialExpense        decimal.Decimal `json:"material_expense"`
	MaterialExpensePending decimal.Decimal `json:"material_expense_pending"`
	OperationalExpense     decimal.Decimal `json:"operational_expense"`
	IndirectExpense        decimal.Decimal `json:"indirect_expense"`
	TotalExpense           decimal.Decimal `json:"total_expense"`
	SupplierInvoiceCount   int             `json:"supplier_invoice_count"`
	Warnings               []string        `json:"warnings,omitempty"`
}

// CommissionSummaryResponse is the commission picture of an order
type CommissionSummaryResponse struct {
	EffectiveRate    decimal.Decimal `json:"effective_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	RateSource       string          `json:"rate_source"`
}

// OrderFinancialSnapshot is the one-call financial state of a single order:
// billing, expenses, commission and profitability side by side
type OrderFinancialSnapshot struct {
	OrderID      uuid.UUID       `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	OrderStatus  string          `json:"order_status"`
	WorkProgress decimal.Decimal `json:"work_progress"`

	Billing    BillingSummaryResponse    `json:"billing"`
	Expenses   ExpenseBreakdownResponse  `json:"expenses"`
	Commission CommissionSummaryResponse `json:"commission"`

	// SaleTotal minus total expenses and commission
	EstimatedMargin decimal.Decimal `json:"estimated_margin"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ToBillingSummaryResponse converts a domain billing summary to a response
// DTO
func ToBillingSummaryResponse(s billing.BillingSummary) BillingSummaryResponse {
	return BillingSummaryResponse{
		OrderID:           s.OrderID,
		SaleTotal:         s.SaleTotal,
		InvoicedTotal:     s.InvoicedTotal,
		BillingPercentage: s.BillingPercentage,
		PendingAmount:     s.PendingAmount,
		FullyInvoiced:     s.FullyInvoiced,
	}
}

// ToExpenseBreakdownResponse converts a domain breakdown to a response DTO
func ToExpenseBreakdownResponse(b *expense.Breakdown) ExpenseBreakdownResponse {
	return ExpenseBreakdownResponse{
		OrderID:                b.OrderID,
		MaterialExpense:        b.MaterialExpense,
		MaterialExpensePending: b.MaterialExpensePending,
		OperationalExpense:     b.OperationalExpense,
		IndirectExpense:        b.IndirectExpense,
		TotalExpense:           b.TotalExpense(),
		SupplierInvoiceCount:   b.SupplierInvoiceCount,
		Warnings:               b.Warnings,
	}
}
