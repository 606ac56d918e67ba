package partner

import (
	"strings"
	"time"

	"github.com/ventas/backend/internal/domain/shared"
)

// Supplier represents a provider of materials and services. Supplier
// expenses reference suppliers for attribution and payables tracking.
type Supplier struct {
	shared.AuditedAggregateRoot
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"` // RFC
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

// NewSupplier creates a new supplier
func NewSupplier(name string) (*Supplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Name:                 name,
	}, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	s.Name = name
	s.touch()
	return nil
}

// SetTaxID sets the supplier's tax identification number
func (s *Supplier) SetTaxID(taxID string) error {
	if len(taxID) > 50 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 50 characters")
	}
	s.TaxID = strings.ToUpper(strings.TrimSpace(taxID))
	s.touch()
	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(contactName, phone, email string) error {
	if len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	s.ContactName = contactName
	s.Phone = phone
	s.Email = email
	s.touch()
	return nil
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	s.Address = address
	s.touch()
	return nil
}

// SetNotes sets the supplier's notes
func (s *Supplier) SetNotes(notes string) {
	s.Notes = notes
	s.touch()
}

func (s *Supplier) touch() {
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
