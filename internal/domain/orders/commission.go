package orders

import (
	"github.com/shopspring/decimal"
)

var (
	minCommissionRate = decimal.Zero
	maxCommissionRate = decimal.NewFromInt(100)
	oneHundred        = decimal.NewFromInt(100)
)

// ClampCommissionRate corrects an out-of-range commission rate into
// [0, 100]. Correction over rejection: UI-bound rates are always kept
// valid rather than erroring.
func ClampCommissionRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThan(minCommissionRate) {
		return minCommissionRate
	}
	if rate.GreaterThan(maxCommissionRate) {
		return maxCommissionRate
	}
	return rate
}

// CommissionAmount computes the vendor commission for an order subtotal at
// the given percentage rate. The rate is clamped before use and the amount
// is rounded to currency precision, half away from zero. Pure: callers
// re-derive it after any subtotal or rate change.
func CommissionAmount(subtotal, rate decimal.Decimal) decimal.Decimal {
	clamped := ClampCommissionRate(rate)
	return subtotal.Mul(clamped).Div(oneHundred).Round(2)
}

// EffectiveCommissionRate resolves the rate used for an order: the order's
// own override when present, else the vendor's default rate. A missing rate
// resolves to zero rather than an error.
func EffectiveCommissionRate(override *decimal.Decimal, vendorRate *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return ClampCommissionRate(*override)
	}
	if vendorRate != nil {
		return ClampCommissionRate(*vendorRate)
	}
	return decimal.Zero
}
