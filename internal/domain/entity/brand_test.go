package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBrand_ResolveRate(t *testing.T) {
	brand := NewBrand("Acme", pct("10"), map[string]decimal.Decimal{"Rental": pct("15")}, nil, nil)
	override := pct("20")
	outOfRange := pct("120")

	tests := []struct {
		name     string
		category string
		override *decimal.Decimal
		expected string
	}{
		{name: "order override wins over category", category: "Rental", override: &override, expected: "20"},
		{name: "category override wins over default", category: "Rental", expected: "15"},
		{name: "default when no override applies", category: "Retail", expected: "10"},
		{name: "out of range override is returned as-is", category: "Retail", override: &outOfRange, expected: "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := brand.ResolveRate(tt.category, tt.override)
			if !got.Equal(pct(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestBrand_Validate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		brand := NewBrand("Acme", pct("10"), map[string]decimal.Decimal{"Rental": pct("100")}, nil, nil)
		if err := brand.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("negative default", func(t *testing.T) {
		brand := NewBrand("Acme", pct("-1"), nil, nil, nil)
		if err := brand.Validate(); !errors.Is(err, domainerror.ErrInvalidRate) {
			t.Errorf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("override above 100", func(t *testing.T) {
		brand := NewBrand("Acme", pct("10"), map[string]decimal.Decimal{"Rental": pct("100.01")}, nil, nil)
		if err := brand.Validate(); !errors.Is(err, domainerror.ErrInvalidRate) {
			t.Errorf("expected ErrInvalidRate, got %v", err)
		}
	})
}

func TestBrand_HasStage(t *testing.T) {
	brand := NewBrand("Acme", pct("10"), nil, []string{"Rental", "Retail"}, []string{"Open", "Shipped"})

	if !brand.HasStage("shipped") {
		t.Error("expected stage match to be case-insensitive")
	}
	if !brand.HasStage(StageCancelled) || !brand.HasStage(StageShortShipped) {
		t.Error("expected universal stages to be valid for every brand")
	}
	if brand.HasStage("Lost") {
		t.Error("expected unknown stage to be rejected")
	}
	if brand.HasCategory("Wholesale") {
		t.Error("expected unknown category to be rejected")
	}
}
