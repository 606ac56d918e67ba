package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/orders"
)

// OrderModel is the persistence model for the Order aggregate.
// The expense totals are write-through roll-up caches; the line items in
// order_expense_lines remain the source of truth.
type OrderModel struct {
	AuditedAggregateModel
	OrderNumber             string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID                uuid.UUID        `gorm:"type:uuid;not null;index"`
	VendorID                *uuid.UUID       `gorm:"type:uuid;index"`
	CommissionRate          *decimal.Decimal `gorm:"type:decimal(5,2)"`
	SaleSubtotal            decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	SaleTotal               decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	WorkProgress            decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0"`
	OperationalExpenseTotal decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	IndirectExpenseTotal    decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	Status                  string           `gorm:"type:varchar(20);not null;default:'CREADA';index"`
	Description             string           `gorm:"type:text"`
	OrderDate               time.Time        `gorm:"not null;index"`
	CancelledAt             *time.Time
	CancelReason            string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *orders.Order {
	order := &orders.Order{
		OrderNumber:             m.OrderNumber,
		ClientID:                m.ClientID,
		VendorID:                m.VendorID,
		CommissionRate:          m.CommissionRate,
		SaleSubtotal:            m.SaleSubtotal,
		SaleTotal:               m.SaleTotal,
		WorkProgress:            m.WorkProgress,
		OperationalExpenseTotal: m.OperationalExpenseTotal,
		IndirectExpenseTotal:    m.IndirectExpenseTotal,
		Status:                  orders.OrderStatus(m.Status),
		Description:             m.Description,
		OrderDate:               m.OrderDate,
		CancelledAt:             m.CancelledAt,
		CancelReason:            m.CancelReason,
	}
	m.PopulateAuditedAggregateRoot(&order.AuditedAggregateRoot)
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.FromDomainAuditedAggregateRoot(o.AuditedAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.ClientID = o.ClientID
	m.VendorID = o.VendorID
	m.CommissionRate = o.CommissionRate
	m.SaleSubtotal = o.SaleSubtotal
	m.SaleTotal = o.SaleTotal
	m.WorkProgress = o.WorkProgress
	m.OperationalExpenseTotal = o.OperationalExpenseTotal
	m.IndirectExpenseTotal = o.IndirectExpenseTotal
	m.Status = o.Status.String()
	m.Description = o.Description
	m.OrderDate = o.OrderDate
	m.CancelledAt = o.CancelledAt
	m.CancelReason = o.CancelReason
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *orders.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderExpenseLineModel is the persistence model for an order expense line.
type OrderExpenseLineModel struct {
	BaseModel
	OrderID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Kind           string           `gorm:"type:varchar(20);not null;index"`
	Amount         decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	CommissionRate *decimal.Decimal `gorm:"type:decimal(5,2)"`
	Description    string           `gorm:"type:text"`
	Category       string           `gorm:"type:varchar(100)"`
	ExpenseDate    time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (OrderExpenseLineModel) TableName() string {
	return "order_expense_lines"
}

// ToDomain converts the persistence model to a domain ExpenseLine entity.
func (m *OrderExpenseLineModel) ToDomain() *orders.ExpenseLine {
	return &orders.ExpenseLine{
		BaseEntity:     m.BaseModel.ToDomain(),
		OrderID:        m.OrderID,
		Kind:           orders.ExpenseLineKind(m.Kind),
		Amount:         m.Amount,
		CommissionRate: m.CommissionRate,
		Description:    m.Description,
		Category:       m.Category,
		ExpenseDate:    m.ExpenseDate,
	}
}

// FromDomain populates the persistence model from a domain ExpenseLine entity.
func (m *OrderExpenseLineModel) FromDomain(l *orders.ExpenseLine) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.OrderID = l.OrderID
	m.Kind = l.Kind.String()
	m.Amount = l.Amount
	m.CommissionRate = l.CommissionRate
	m.Description = l.Description
	m.Category = l.Category
	m.ExpenseDate = l.ExpenseDate
}

// OrderExpenseLineModelFromDomain creates a new persistence model from a domain ExpenseLine.
func OrderExpenseLineModelFromDomain(l *orders.ExpenseLine) *OrderExpenseLineModel {
	m := &OrderExpenseLineModel{}
	m.FromDomain(l)
	return m
}
