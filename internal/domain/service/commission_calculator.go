// Package service contains the pure commission reconciliation rules shared by use cases.
package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// CommissionDue returns order.Total * percent / 100, rounded half-to-even once
// at the minor-unit boundary.
func CommissionDue(order *entity.Order, percent decimal.Decimal) valueobject.Money {
	return order.Total.MulPercent(percent)
}

// OrderCommission resolves the order's rate against its brand and computes the
// commission due. A resolved rate outside [0,100] is surfaced as an error
// rather than clamped.
func OrderCommission(brand *entity.Brand, order *entity.Order) (valueobject.Money, decimal.Decimal, error) {
	percent := brand.ResolveRate(order.Category, order.CommissionOverride)
	if err := entity.ValidatePercent(percent); err != nil {
		return valueobject.Zero, percent, domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidRate,
			fmt.Sprintf("order %s resolves to commission rate %s%%", order.ID, percent.String()),
			err,
		)
	}
	return CommissionDue(order, percent), percent, nil
}
