package money

import (
	"github.com/shopspring/decimal"
)

// Amounts are stored as int64 minor units (cents) everywhere in the system.
// Decimal strings only appear at the API boundary; this package converts
// between the two without going through floating point.

var centsPerUnit = decimal.NewFromInt(100)

// ParseCents converts a decimal amount string (e.g. "175.75") to minor units.
// Returns false when the string is not a valid amount or has more than two
// fractional digits.
func ParseCents(s string) (int64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	cents := d.Mul(centsPerUnit)
	if !cents.IsInteger() {
		return 0, false
	}
	return cents.IntPart(), true
}

// FromFloat converts a decimal amount (e.g. from a JSON number) to minor
// units, rounding to the nearest cent.
func FromFloat(f float64) int64 {
	return decimal.NewFromFloat(f).Mul(centsPerUnit).Round(0).IntPart()
}

// Format renders minor units as a fixed two-decimal string.
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ToFloat converts minor units to a float for API responses. Display only;
// arithmetic stays in int64.
func ToFloat(cents int64) float64 {
	f, _ := decimal.New(cents, -2).Float64()
	return f
}
