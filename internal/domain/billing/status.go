package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of an invoice.
// It is a pure function of the invoice's dates, not a persisted state machine.
type InvoiceStatus string

const (
	InvoiceStatusCreada    InvoiceStatus = "CREADA"    // Issued, not yet received by client accounting
	InvoiceStatusPendiente InvoiceStatus = "PENDIENTE" // Received, awaiting payment
	InvoiceStatusVencida   InvoiceStatus = "VENCIDA"   // Received and past its due date
	InvoiceStatusPagada    InvoiceStatus = "PAGADA"    // Paid
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusCreada, InvoiceStatusPendiente, InvoiceStatusVencida, InvoiceStatusPagada:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the invoice requires no further collection action
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPagada
}

// TaxRate is the fixed sales tax rate applied to all subtotals (16% IVA)
var TaxRate = decimal.NewFromFloat(0.16)

// taxFactor is 1 + TaxRate, precomputed for total derivation
var taxFactor = decimal.NewFromInt(1).Add(TaxRate)

// statusInputs carries the date fields that drive status evaluation
type statusInputs struct {
	Reception *time.Time
	Due       *time.Time
	Payment   *time.Time
	Now       time.Time
}

// statusRule is one entry of the ordered evaluation chain. The first rule
// whose predicate holds wins; order is the priority.
type statusRule struct {
	Status  InvoiceStatus
	Applies func(statusInputs) bool
}

// statusRules is the priority chain: payment overrides reception overrides
// the created default. A reception date in the future still counts as
// received; only the due-date comparison (strictly after) drives VENCIDA.
var statusRules = []statusRule{
	{
		Status:  InvoiceStatusPagada,
		Applies: func(in statusInputs) bool { return in.Payment != nil },
	},
	{
		Status: InvoiceStatusVencida,
		Applies: func(in statusInputs) bool {
			return in.Reception != nil && in.Due != nil && in.Now.After(*in.Due)
		},
	},
	{
		Status:  InvoiceStatusPendiente,
		Applies: func(in statusInputs) bool { return in.Reception != nil },
	},
}

// EvaluateStatus derives the invoice status from its dates at the given
// instant. Pure: identical inputs always yield identical output.
func EvaluateStatus(reception, due, payment *time.Time, now time.Time) InvoiceStatus {
	in := statusInputs{Reception: reception, Due: due, Payment: payment, Now: now}
	for _, rule := range statusRules {
		if rule.Applies(in) {
			return rule.Status
		}
	}
	return InvoiceStatusCreada
}

// DeriveDueDate computes the due date as reception date plus the client's
// credit days. Returns nil unless both a reception date and a positive
// credit-day count are present.
func DeriveDueDate(reception *time.Time, creditDays int) *time.Time {
	if reception == nil || creditDays <= 0 {
		return nil
	}
	due := reception.AddDate(0, 0, creditDays)
	return &due
}

// DeriveTotal computes the invoice total as subtotal plus tax, rounded to
// currency precision (half away from zero). Idempotent with respect to an
// unchanged subtotal.
func DeriveTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxFactor).Round(2)
}
