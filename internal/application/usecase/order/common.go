// Package order contains order use cases.
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/service"
)

// notFound converts a repository sentinel into a coded error.
func notFound(err error, sentinel error, code domainerror.CommissionErrorCode, what string) error {
	if errors.Is(err, sentinel) {
		return domainerror.NewCommissionError(code, what+" not found", sentinel)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

// validateOrder checks an order against its brand's configuration.
func validateOrder(brand *entity.Brand, order *entity.Order) error {
	if order.Total.IsNegative() {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidAmount,
			"order total must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if strings.TrimSpace(order.Stage) == "" || !brand.HasStage(order.Stage) {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidStage,
			fmt.Sprintf("stage %q is not configured for brand %s", order.Stage, brand.Name),
			domainerror.ErrInvalidStage,
		)
	}

	if !brand.HasCategory(order.Category) {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category %q is not configured for brand %s", order.Category, brand.Name),
			domainerror.ErrInvalidCategory,
		)
	}

	if order.CommissionOverride != nil {
		if err := entity.ValidatePercent(*order.CommissionOverride); err != nil {
			return domainerror.NewCommissionError(
				domainerror.ErrCodeInvalidRate,
				"commission override must be between 0 and 100",
				err,
			)
		}
	}
	return nil
}

// refreshEntry recomputes the commission due on an existing entry.
// Orders without an entry are left alone; their commission is computed on read.
func refreshEntry(
	ctx context.Context,
	entryRepo adapter.CommissionEntryRepository,
	brand *entity.Brand,
	order *entity.Order,
) (*entity.CommissionEntry, error) {
	entry, err := entryRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commission entry: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	due, _, err := service.OrderCommission(brand, order)
	if err != nil {
		return nil, err
	}
	if entry.CommissionDue == due {
		return entry, nil
	}

	entry.CommissionDue = due
	entry.UpdatedAt = order.UpdatedAt
	if err := entryRepo.Upsert(ctx, entry); err != nil {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeEntryWriteFailure,
			fmt.Sprintf("failed to write commission entry for order %s", order.ID),
			errors.Join(domainerror.ErrEntryWriteFailure, err),
		)
	}
	return entry, nil
}
