package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateInvoicedTotals groups invoices by their owning order and sums
// their totals. Every requested order ID appears in the result even when it
// has no invoices: missing entries default to zero, never a missing key.
// Invoices for orders outside the requested set (including orphans) are
// ignored. Pure reducer over already-fetched collections.
func AggregateInvoicedTotals(orderIDs []uuid.UUID, invoices []Invoice) map[uuid.UUID]decimal.Decimal {
	totals := make(map[uuid.UUID]decimal.Decimal, len(orderIDs))
	for _, id := range orderIDs {
		totals[id] = decimal.Zero
	}
	for i := range invoices {
		inv := &invoices[i]
		if inv.OrderID == nil {
			continue
		}
		sum, requested := totals[*inv.OrderID]
		if !requested {
			continue
		}
		totals[*inv.OrderID] = sum.Add(inv.Total)
	}
	return totals
}

// BillingSummary is the derived billing picture of a single order
type BillingSummary struct {
	OrderID           uuid.UUID       `json:"order_id"`
	SaleTotal         decimal.Decimal `json:"sale_total"`
	InvoicedTotal     decimal.Decimal `json:"invoiced_total"`
	BillingPercentage decimal.Decimal `json:"billing_percentage"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
	FullyInvoiced     bool            `json:"fully_invoiced"`
}

// NewBillingSummary derives the billing summary for an order.
// The billing percentage is a display ratio, deliberately not clamped:
// over-invoicing surfaces as a percentage above 100 and a negative pending
// amount rather than being hidden.
func NewBillingSummary(orderID uuid.UUID, saleTotal, invoicedTotal decimal.Decimal) BillingSummary {
	percentage := decimal.Zero
	if saleTotal.IsPositive() {
		percentage = invoicedTotal.Div(saleTotal).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return BillingSummary{
		OrderID:           orderID,
		SaleTotal:         saleTotal,
		InvoicedTotal:     invoicedTotal,
		BillingPercentage: percentage,
		PendingAmount:     saleTotal.Sub(invoicedTotal),
		FullyInvoiced:     saleTotal.IsPositive() && invoicedTotal.GreaterThanOrEqual(saleTotal),
	}
}
