package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

func percent(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newOrder(accountID, brandID, trackerID uuid.UUID, category string, total valueobject.Money, override *decimal.Decimal, stage string) *entity.Order {
	return entity.NewOrder(accountID, brandID, trackerID, category, total, override, stage, nil)
}

func TestCommissionDue(t *testing.T) {
	tests := []struct {
		name     string
		total    valueobject.Money
		percent  string
		expected valueobject.Money
	}{
		{name: "whole percent", total: 100000, percent: "10", expected: 10000},
		{name: "zero total", total: 0, percent: "10", expected: 0},
		{name: "zero rate", total: 100000, percent: "0", expected: 0},
		{name: "half cent rounds to even down", total: 25, percent: "10", expected: 2},
		{name: "half cent rounds to even up", total: 35, percent: "10", expected: 4},
		{name: "fractional rate rounded once", total: 33333, percent: "12.5", expected: 4167},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &entity.Order{Total: tt.total}
			if got := CommissionDue(order, percent(tt.percent)); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCommissionDue_MonotonicInTotal(t *testing.T) {
	rate := percent("7.25")
	var previous valueobject.Money
	for total := valueobject.Money(0); total <= 5000; total += 37 {
		got := CommissionDue(&entity.Order{Total: total}, rate)
		if got < 0 {
			t.Fatalf("negative commission %d for total %d", got, total)
		}
		if got < previous {
			t.Fatalf("commission decreased from %d to %d at total %d", previous, got, total)
		}
		previous = got
	}
}

func TestOrderCommission(t *testing.T) {
	brand := entity.NewBrand("Acme", percent("10"), map[string]decimal.Decimal{"Rental": percent("15")}, nil, nil)
	override := percent("20")

	t.Run("category override", func(t *testing.T) {
		order := newOrder(uuid.New(), brand.ID, uuid.New(), "Rental", 100000, nil, "Open")
		due, rate, err := OrderCommission(brand, order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if due != 15000 || !rate.Equal(percent("15")) {
			t.Errorf("expected 15000 at 15%%, got %d at %s%%", due, rate)
		}
	})

	t.Run("order override", func(t *testing.T) {
		order := newOrder(uuid.New(), brand.ID, uuid.New(), "Retail", 50000, &override, "Open")
		due, _, err := OrderCommission(brand, order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if due != 10000 {
			t.Errorf("expected 10000, got %d", due)
		}
	})

	t.Run("out of range rate surfaces", func(t *testing.T) {
		bad := percent("150")
		order := newOrder(uuid.New(), brand.ID, uuid.New(), "Retail", 50000, &bad, "Open")
		_, rate, err := OrderCommission(brand, order)
		if !errors.Is(err, domainerror.ErrInvalidRate) {
			t.Fatalf("expected ErrInvalidRate, got %v", err)
		}
		var comErr *domainerror.CommissionError
		if !errors.As(err, &comErr) || comErr.Code != domainerror.ErrCodeInvalidRate {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeInvalidRate, err)
		}
		if !rate.Equal(bad) {
			t.Errorf("expected rate returned unclamped, got %s", rate)
		}
	})
}
