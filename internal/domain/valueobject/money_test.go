package valueobject

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Money
		wantErr  bool
	}{
		{name: "whole amount", input: "100", expected: 10000},
		{name: "two decimals", input: "12.34", expected: 1234},
		{name: "thousands separator and symbol", input: " $1,234.50 ", expected: 123450},
		{name: "half cent rounds to even (down)", input: "0.125", expected: 12},
		{name: "half cent rounds to even (up)", input: "0.135", expected: 14},
		{name: "negative amount", input: "-5.00", expected: -500},
		{name: "empty string", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "largest amount", input: "92233720368547758.07", expected: Money(math.MaxInt64)},
		{name: "beyond int64 cents", input: "100000000000000000", wantErr: true},
		{name: "far beyond int64 cents", input: "1000000000000000000000", wantErr: true},
		{name: "far below int64 cents", input: "-1000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestMoney_MulPercent(t *testing.T) {
	tests := []struct {
		name     string
		amount   Money
		percent  string
		expected Money
	}{
		{name: "ten percent", amount: 100000, percent: "10", expected: 10000},
		{name: "fifteen percent", amount: 100000, percent: "15", expected: 15000},
		{name: "fractional percent", amount: 12345, percent: "7.5", expected: 926}, // 925.875
		{name: "half rounds to even down", amount: 25, percent: "10", expected: 2}, // 2.5
		{name: "half rounds to even up", amount: 35, percent: "10", expected: 4},   // 3.5
		{name: "zero percent", amount: 99999, percent: "0", expected: 0},
		{name: "zero amount", amount: 0, percent: "12", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.amount.MulPercent(decimal.RequireFromString(tt.percent))
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestMoney_MulPercentIsMonotonic(t *testing.T) {
	percent := decimal.RequireFromString("12.5")
	previous := Money(0).MulPercent(percent)
	for cents := Money(1); cents <= 5000; cents++ {
		current := cents.MulPercent(percent)
		if current < previous {
			t.Fatalf("commission decreased from %d to %d at amount %d", previous, current, cents)
		}
		if current < 0 {
			t.Fatalf("commission negative at amount %d", cents)
		}
		previous = current
	}
}

func TestMoney_StringAndDecimal(t *testing.T) {
	m := MoneyFromCents(123450)
	if m.String() != "1234.50" {
		t.Errorf("expected 1234.50, got %s", m.String())
	}
	if !m.Decimal().Equal(decimal.RequireFromString("1234.5")) {
		t.Errorf("expected decimal 1234.5, got %s", m.Decimal())
	}
	if MoneyFromDecimal(m.Decimal()) != m {
		t.Errorf("decimal round trip changed value: %d", MoneyFromDecimal(m.Decimal()))
	}
}

func TestMoney_ClampZero(t *testing.T) {
	if Money(-10).ClampZero() != 0 {
		t.Error("expected negative amount to clamp to zero")
	}
	if Money(10).ClampZero() != 10 {
		t.Error("expected positive amount to be unchanged")
	}
	if SumMoney(100, 250, -50) != 300 {
		t.Errorf("expected sum 300, got %d", SumMoney(100, 250, -50))
	}
}
