package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/billing"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
// The lifecycle status is derived from the date columns at read time and is
// deliberately not stored.
type InvoiceModel struct {
	AuditedAggregateModel
	OrderID       *uuid.UUID      `gorm:"type:uuid;index"`
	Folio         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceDate   time.Time       `gorm:"not null;index"`
	ReceptionDate *time.Time      `gorm:"index"`
	DueDate       *time.Time      `gorm:"index"`
	PaymentDate   *time.Time      `gorm:"index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Remark        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	invoice := &billing.Invoice{
		OrderID:       m.OrderID,
		Folio:         m.Folio,
		InvoiceDate:   m.InvoiceDate,
		ReceptionDate: m.ReceptionDate,
		DueDate:       m.DueDate,
		PaymentDate:   m.PaymentDate,
		Subtotal:      m.Subtotal,
		Total:         m.Total,
		Remark:        m.Remark,
	}
	m.PopulateAuditedAggregateRoot(&invoice.AuditedAggregateRoot)
	return invoice
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainAuditedAggregateRoot(i.AuditedAggregateRoot)
	m.OrderID = i.OrderID
	m.Folio = i.Folio
	m.InvoiceDate = i.InvoiceDate
	m.ReceptionDate = i.ReceptionDate
	m.DueDate = i.DueDate
	m.PaymentDate = i.PaymentDate
	m.Subtotal = i.Subtotal
	m.Total = i.Total
	m.Remark = i.Remark
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
