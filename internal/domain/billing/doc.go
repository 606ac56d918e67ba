// Package billing holds the invoice lifecycle and order billing aggregation
// domain.
//
// Invoices are owned by orders but survive order removal as orphans. Their
// lifecycle status (CREADA, PENDIENTE, VENCIDA, PAGADA) is never stored: it
// is derived from the invoice's date columns at read time, so the same row
// can answer differently on different days without any background job
// touching it.
//
// Key pieces:
//   - Invoice: aggregate carrying folio, dates and amounts
//   - Status: the date-derived lifecycle evaluation
//   - BillingSummary: per-order roll-up of invoiced totals against the sale
package billing
