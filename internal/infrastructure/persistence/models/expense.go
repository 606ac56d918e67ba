package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/expense"
)

// SupplierExpenseModel is the persistence model for the SupplierExpense aggregate.
type SupplierExpenseModel struct {
	AuditedAggregateModel
	SupplierID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID              *uuid.UUID      `gorm:"type:uuid;index"`
	Description          string          `gorm:"type:text;not null"`
	ExpenseDate          time.Time       `gorm:"not null;index"`
	Total                decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ScheduledPaymentDate *time.Time      `gorm:"index"`
	Status               string          `gorm:"type:varchar(20);not null;default:'PENDIENTE';index"`
	PaidAt               *time.Time
	PayMethod            string `gorm:"type:varchar(50)"`
	Category             string `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (SupplierExpenseModel) TableName() string {
	return "supplier_expenses"
}

// ToDomain converts the persistence model to a domain SupplierExpense entity.
func (m *SupplierExpenseModel) ToDomain() *expense.SupplierExpense {
	e := &expense.SupplierExpense{
		SupplierID:           m.SupplierID,
		OrderID:              m.OrderID,
		Description:          m.Description,
		ExpenseDate:          m.ExpenseDate,
		Total:                m.Total,
		ScheduledPaymentDate: m.ScheduledPaymentDate,
		Status:               expense.ExpenseStatus(m.Status),
		PaidAt:               m.PaidAt,
		PayMethod:            m.PayMethod,
		Category:             m.Category,
	}
	m.PopulateAuditedAggregateRoot(&e.AuditedAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain SupplierExpense entity.
func (m *SupplierExpenseModel) FromDomain(e *expense.SupplierExpense) {
	m.FromDomainAuditedAggregateRoot(e.AuditedAggregateRoot)
	m.SupplierID = e.SupplierID
	m.OrderID = e.OrderID
	m.Description = e.Description
	m.ExpenseDate = e.ExpenseDate
	m.Total = e.Total
	m.ScheduledPaymentDate = e.ScheduledPaymentDate
	m.Status = e.Status.String()
	m.PaidAt = e.PaidAt
	m.PayMethod = e.PayMethod
	m.Category = e.Category
}

// SupplierExpenseModelFromDomain creates a new persistence model from a domain SupplierExpense.
func SupplierExpenseModelFromDomain(e *expense.SupplierExpense) *SupplierExpenseModel {
	m := &SupplierExpenseModel{}
	m.FromDomain(e)
	return m
}
