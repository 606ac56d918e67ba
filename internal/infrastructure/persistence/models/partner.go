package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventas/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client aggregate.
type ClientModel struct {
	AuditedAggregateModel
	Name       string         `gorm:"type:varchar(200);not null;index"`
	ShortName  string         `gorm:"type:varchar(100)"`
	TaxID      string         `gorm:"type:varchar(50)"`
	Address    string         `gorm:"type:varchar(500)"`
	City       string         `gorm:"type:varchar(100)"`
	State      string         `gorm:"type:varchar(100)"`
	PostalCode string         `gorm:"type:varchar(20)"`
	CreditDays int            `gorm:"not null;default:30"`
	Notes      string         `gorm:"type:text"`
	Contacts   []ContactModel `gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	client := &partner.Client{
		Name:       m.Name,
		ShortName:  m.ShortName,
		TaxID:      m.TaxID,
		Address:    m.Address,
		City:       m.City,
		State:      m.State,
		PostalCode: m.PostalCode,
		CreditDays: m.CreditDays,
		Notes:      m.Notes,
	}
	m.PopulateAuditedAggregateRoot(&client.AuditedAggregateRoot)

	client.Contacts = make([]partner.Contact, len(m.Contacts))
	for i := range m.Contacts {
		client.Contacts[i] = *m.Contacts[i].ToDomain()
	}
	return client
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainAuditedAggregateRoot(c.AuditedAggregateRoot)
	m.Name = c.Name
	m.ShortName = c.ShortName
	m.TaxID = c.TaxID
	m.Address = c.Address
	m.City = c.City
	m.State = c.State
	m.PostalCode = c.PostalCode
	m.CreditDays = c.CreditDays
	m.Notes = c.Notes

	m.Contacts = make([]ContactModel, len(c.Contacts))
	for i := range c.Contacts {
		m.Contacts[i].FromDomain(&c.Contacts[i])
	}
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// ContactModel is the persistence model for a client contact.
type ContactModel struct {
	BaseModel
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Role      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Email     string    `gorm:"type:varchar(200)"`
	IsPrimary bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "client_contacts"
}

// ToDomain converts the persistence model to a domain Contact entity.
func (m *ContactModel) ToDomain() *partner.Contact {
	return &partner.Contact{
		BaseEntity: m.BaseModel.ToDomain(),
		ClientID:   m.ClientID,
		Name:       m.Name,
		Role:       m.Role,
		Phone:      m.Phone,
		Email:      m.Email,
		IsPrimary:  m.IsPrimary,
	}
}

// FromDomain populates the persistence model from a domain Contact entity.
func (m *ContactModel) FromDomain(c *partner.Contact) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ClientID = c.ClientID
	m.Name = c.Name
	m.Role = c.Role
	m.Phone = c.Phone
	m.Email = c.Email
	m.IsPrimary = c.IsPrimary
}

// VendorModel is the persistence model for the Vendor aggregate.
type VendorModel struct {
	AuditedAggregateModel
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Phone          string          `gorm:"type:varchar(50)"`
	Email          string          `gorm:"type:varchar(200)"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	UserID         *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *partner.Vendor {
	vendor := &partner.Vendor{
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		CommissionRate: m.CommissionRate,
		UserID:         m.UserID,
	}
	m.PopulateAuditedAggregateRoot(&vendor.AuditedAggregateRoot)
	return vendor
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *partner.Vendor) {
	m.FromDomainAuditedAggregateRoot(v.AuditedAggregateRoot)
	m.Name = v.Name
	m.Phone = v.Phone
	m.Email = v.Email
	m.CommissionRate = v.CommissionRate
	m.UserID = v.UserID
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *partner.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

// SupplierModel is the persistence model for the Supplier aggregate.
type SupplierModel struct {
	AuditedAggregateModel
	Name        string `gorm:"type:varchar(200);not null;index"`
	TaxID       string `gorm:"type:varchar(50)"`
	ContactName string `gorm:"type:varchar(100)"`
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(200)"`
	Address     string `gorm:"type:varchar(500)"`
	Notes       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	supplier := &partner.Supplier{
		Name:        m.Name,
		TaxID:       m.TaxID,
		ContactName: m.ContactName,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		Notes:       m.Notes,
	}
	m.PopulateAuditedAggregateRoot(&supplier.AuditedAggregateRoot)
	return supplier
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAuditedAggregateRoot(s.AuditedAggregateRoot)
	m.Name = s.Name
	m.TaxID = s.TaxID
	m.ContactName = s.ContactName
	m.Phone = s.Phone
	m.Email = s.Email
	m.Address = s.Address
	m.Notes = s.Notes
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}
