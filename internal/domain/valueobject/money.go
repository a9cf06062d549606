// Package valueobject contains domain value objects for the Commission Tracker system.
package valueobject

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnitsPerMajor is the number of minor units (cents) in one currency unit.
const minorUnitsPerMajor = 100

var (
	hundred          = decimal.NewFromInt(100)
	minorUnitDecimal = decimal.NewFromInt(minorUnitsPerMajor)
	maxCents         = decimal.NewFromInt(math.MaxInt64)
	minCents         = decimal.NewFromInt(math.MinInt64)
)

// Money is a monetary amount in integer minor units (cents).
// All ledger arithmetic is done on Money so that summing many small
// amounts never drifts.
type Money int64

// Zero is the zero Money value.
const Zero Money = 0

// MoneyFromCents creates Money from a count of minor units.
func MoneyFromCents(cents int64) Money {
	return Money(cents)
}

// MoneyFromDecimal converts a major-unit decimal (e.g. 12.345) into Money.
// Fractions of a minor unit are rounded half-to-even.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Mul(minorUnitDecimal).RoundBank(0).IntPart())
}

// ParseMoney parses a decimal string such as "1,234.50" or "$99" into Money.
func ParseMoney(s string) (Money, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return Zero, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := d.Mul(minorUnitDecimal).RoundBank(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return Zero, fmt.Errorf("amount %q is out of range", s)
	}
	return Money(cents.IntPart()), nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount with two decimal places, e.g. "1234.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m > 0
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m < 0
}

// ClampZero returns m, or zero when m is negative.
func (m Money) ClampZero() Money {
	if m < 0 {
		return Zero
	}
	return m
}

// MulPercent returns m * percent / 100.
// The product is carried at full precision and rounded half-to-even once,
// at the minor-unit boundary.
func (m Money) MulPercent(percent decimal.Decimal) Money {
	product := decimal.NewFromInt(int64(m)).Mul(percent).Div(hundred)
	return Money(product.RoundBank(0).IntPart())
}

// SumMoney adds a list of amounts.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}
	return total
}
