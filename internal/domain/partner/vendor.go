package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ventas/backend/internal/domain/shared"
)

// Vendor represents a salesperson who brings in orders and earns commission
// on them. The commission rate here is the vendor's default; an order may
// carry its own override.
type Vendor struct {
	shared.AuditedAggregateRoot
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	// Default commission percentage in [0, 100]
	CommissionRate decimal.Decimal `json:"commission_rate"`
	// Optional link to the system user account of this vendor
	UserID *uuid.UUID `json:"user_id"`
}

// NewVendor creates a new vendor with a zero default commission rate
func NewVendor(name string) (*Vendor, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	return &Vendor{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Name:                 name,
		CommissionRate:       decimal.Zero,
	}, nil
}

// Update updates the vendor's basic information
func (v *Vendor) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	v.Name = name
	v.touch()
	return nil
}

// SetContact sets the vendor's contact information
func (v *Vendor) SetContact(phone, email string) error {
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
	v.Phone = phone
	v.Email = email
	v.touch()
	return nil
}

// SetCommissionRate sets the vendor's default commission percentage. Rates
// outside [0, 100] are rejected rather than clamped: the default is
// configuration, not a calculation input.
func (v *Vendor) SetCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100")
	}
	v.CommissionRate = rate
	v.touch()
	return nil
}

// LinkUser links the vendor to a system user account
func (v *Vendor) LinkUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	v.UserID = &userID
	v.touch()
	return nil
}

// UnlinkUser removes the user account link
func (v *Vendor) UnlinkUser() {
	v.UserID = nil
	v.touch()
}

func (v *Vendor) touch() {
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}
