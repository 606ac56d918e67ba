package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// Vendor Tests
// ============================================

func TestNewVendor(t *testing.T) {
	v, err := NewVendor("Carlos Dominguez")
	require.NoError(t, err)

	assert.True(t, v.CommissionRate.IsZero())
	assert.Nil(t, v.UserID)
	assert.True(t, v.Active)
}

func TestNewVendor_EmptyName(t *testing.T) {
	_, err := NewVendor("")
	assert.Error(t, err)
}

func TestVendor_SetCommissionRate(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"zero", "0", false},
		{"typical", "5.5", false},
		{"upper bound", "100", false},
		{"negative", "-1", true},
		{"above hundred", "100.01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVendor("Carlos Dominguez")
			require.NoError(t, err)

			err = v.SetCommissionRate(decimal.RequireFromString(tt.rate))
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, v.CommissionRate.IsZero())
			} else {
				require.NoError(t, err)
				assert.True(t, v.CommissionRate.Equal(decimal.RequireFromString(tt.rate)))
			}
		})
	}
}

func TestVendor_LinkUser(t *testing.T) {
	v, err := NewVendor("Carlos Dominguez")
	require.NoError(t, err)

	assert.Error(t, v.LinkUser(uuid.Nil))

	userID := uuid.New()
	require.NoError(t, v.LinkUser(userID))
	require.NotNil(t, v.UserID)
	assert.Equal(t, userID, *v.UserID)

	v.UnlinkUser()
	assert.Nil(t, v.UserID)
}

// ============================================
// Supplier Tests
// ============================================

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("Ferreteria Industrial SA")
	require.NoError(t, err)
	assert.True(t, s.Active)
}

func TestSupplier_SetContact(t *testing.T) {
	s, err := NewSupplier("Ferreteria Industrial SA")
	require.NoError(t, err)

	require.NoError(t, s.SetContact("Jorge Lima", "555-0199", "jorge@ferreind.mx"))
	assert.Equal(t, "Jorge Lima", s.ContactName)

	assert.Error(t, s.SetContact("Jorge Lima", "bad phone!", ""))
}
