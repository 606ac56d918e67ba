package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ============================================
// ClampCommissionRate Tests
// ============================================

func TestClampCommissionRate(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"within range", 12.5, "12.50"},
		{"lower bound", 0, "0.00"},
		{"upper bound", 100, "100.00"},
		{"below range", -10, "0.00"},
		{"above range", 150, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampCommissionRate(decimal.NewFromFloat(tt.rate))
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

// ============================================
// CommissionAmount Tests
// ============================================

func TestCommissionAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		rate     float64
		expected string
	}{
		{"ten percent", 1000, 10, "100.00"},
		{"fractional rate", 1000, 12.5, "125.00"},
		{"zero rate", 1000, 0, "0.00"},
		{"zero subtotal", 0, 50, "0.00"},
		{"out of range clamps to full subtotal", 2000, 150, "2000.00"},
		{"negative rate clamps to zero", 2000, -5, "0.00"},
		{"penny rounding half away from zero", 333.33, 7.5, "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommissionAmount(decimal.NewFromFloat(tt.subtotal), decimal.NewFromFloat(tt.rate))
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestCommissionAmount_ClampEquivalence(t *testing.T) {
	// Out-of-range rates never change the relationship beyond clamping.
	subtotal := decimal.NewFromFloat(1234.56)

	raw := decimal.NewFromInt(250)
	clamped := ClampCommissionRate(raw)

	assert.True(t, CommissionAmount(subtotal, raw).Equal(CommissionAmount(subtotal, clamped)))
}

// ============================================
// EffectiveCommissionRate Tests
// ============================================

func TestEffectiveCommissionRate(t *testing.T) {
	override := decimal.NewFromFloat(5)
	vendorRate := decimal.NewFromFloat(8)
	outOfRange := decimal.NewFromFloat(300)

	tests := []struct {
		name       string
		override   *decimal.Decimal
		vendorRate *decimal.Decimal
		expected   string
	}{
		{"order override wins", &override, &vendorRate, "5.00"},
		{"vendor default", nil, &vendorRate, "8.00"},
		{"nothing resolves to zero", nil, nil, "0.00"},
		{"override clamped", &outOfRange, &vendorRate, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveCommissionRate(tt.override, tt.vendorRate)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}
