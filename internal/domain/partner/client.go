package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ventas/backend/internal/domain/shared"
)

// DefaultCreditDays is the credit term applied to clients created without an
// explicit one. Invoice due dates derive from this value at reception time.
const DefaultCreditDays = 30

// Client represents a customer company. It is the aggregate root for
// client-related operations and owns its contact list.
type Client struct {
	shared.AuditedAggregateRoot
	Name       string    `json:"name"`
	ShortName  string    `json:"short_name"`
	TaxID      string    `json:"tax_id"` // RFC
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	// Credit term in days granted to the client, used to derive invoice due
	// dates. Always positive.
	CreditDays int       `json:"credit_days"`
	Notes      string    `json:"notes"`
	Contacts   []Contact `json:"contacts"`
}

// Contact is a person reachable at a client company. At most one contact per
// client is the primary one.
type Contact struct {
	shared.BaseEntity
	ClientID  uuid.UUID `json:"client_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsPrimary bool      `json:"is_primary"`
}

// NewClient creates a new client with the default credit term
func NewClient(name string) (*Client, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Client{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Name:                 name,
		CreditDays:           DefaultCreditDays,
	}, nil
}

// Update updates the client's basic information
func (c *Client) Update(name, shortName string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	if len(shortName) > 100 {
		return shared.NewDomainError("INVALID_SHORT_NAME", "Short name cannot exceed 100 characters")
	}

	c.Name = name
	c.ShortName = shortName
	c.touch()
	return nil
}

// SetCreditDays sets the client's credit term in days
func (c *Client) SetCreditDays(days int) error {
	if days <= 0 {
		return shared.NewDomainError("INVALID_CREDIT_DAYS", "Credit days must be positive")
	}
	c.CreditDays = days
	c.touch()
	return nil
}

// SetTaxID sets the client's tax identification number
func (c *Client) SetTaxID(taxID string) error {
	if len(taxID) > 50 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 50 characters")
	}
	c.TaxID = strings.ToUpper(strings.TrimSpace(taxID))
	c.touch()
	return nil
}

// SetAddress sets the client's address information
func (c *Client) SetAddress(address, city, state, postalCode string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	c.Address = address
	c.City = city
	c.State = state
	c.PostalCode = postalCode
	c.touch()
	return nil
}

// SetNotes sets the client's notes
func (c *Client) SetNotes(notes string) {
	c.Notes = notes
	c.touch()
}

// AddContact adds a contact to the client. The first contact automatically
// becomes the primary one.
func (c *Client) AddContact(name, role, phone, email string) (*Contact, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot be empty")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	contact := Contact{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   c.ID,
		Name:       name,
		Role:       role,
		Phone:      phone,
		Email:      email,
		IsPrimary:  len(c.Contacts) == 0,
	}
	c.Contacts = append(c.Contacts, contact)
	c.touch()
	return &c.Contacts[len(c.Contacts)-1], nil
}

// SetPrimaryContact marks the given contact as primary and demotes every
// other contact, keeping the at-most-one-primary invariant.
func (c *Client) SetPrimaryContact(contactID uuid.UUID) error {
	found := false
	for i := range c.Contacts {
		if c.Contacts[i].ID == contactID {
			found = true
			break
		}
	}
	if !found {
		return shared.ErrNotFound
	}

	for i := range c.Contacts {
		c.Contacts[i].IsPrimary = c.Contacts[i].ID == contactID
		c.Contacts[i].UpdatedAt = time.Now()
	}
	c.touch()
	return nil
}

// RemoveContact removes a contact from the client. When the removed contact
// was the primary one, the first remaining contact is promoted.
func (c *Client) RemoveContact(contactID uuid.UUID) error {
	idx := -1
	for i := range c.Contacts {
		if c.Contacts[i].ID == contactID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return shared.ErrNotFound
	}

	wasPrimary := c.Contacts[idx].IsPrimary
	c.Contacts = append(c.Contacts[:idx], c.Contacts[idx+1:]...)
	if wasPrimary && len(c.Contacts) > 0 {
		c.Contacts[0].IsPrimary = true
		c.Contacts[0].UpdatedAt = time.Now()
	}
	c.touch()
	return nil
}

// PrimaryContact returns the primary contact, or nil when the client has no
// contacts
func (c *Client) PrimaryContact() *Contact {
	for i := range c.Contacts {
		if c.Contacts[i].IsPrimary {
			return &c.Contacts[i]
		}
	}
	return nil
}

func (c *Client) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Validation functions shared across partner aggregates

func validatePartnerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
