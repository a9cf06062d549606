// Package order contains order use cases.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/service"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// SetPayStatusInput represents the input for setting an order's pay status.
type SetPayStatusInput struct {
	OrderID   uuid.UUID
	PayStatus string
}

// SetPayStatusOutput represents the output of setting an order's pay status.
type SetPayStatusOutput struct {
	Entry *entity.CommissionEntry
}

// SetPayStatusUseCase sets the per-order pay status, creating the entry on first write.
type SetPayStatusUseCase struct {
	brandRepo adapter.BrandRepository
	orderRepo adapter.OrderRepository
	entryRepo adapter.CommissionEntryRepository
}

// NewSetPayStatusUseCase creates a new SetPayStatusUseCase instance.
func NewSetPayStatusUseCase(
	brandRepo adapter.BrandRepository,
	orderRepo adapter.OrderRepository,
	entryRepo adapter.CommissionEntryRepository,
) *SetPayStatusUseCase {
	return &SetPayStatusUseCase{
		brandRepo: brandRepo,
		orderRepo: orderRepo,
		entryRepo: entryRepo,
	}
}

// Execute sets the status.
func (uc *SetPayStatusUseCase) Execute(ctx context.Context, input SetPayStatusInput) (*SetPayStatusOutput, error) {
	status, err := valueobject.ParsePayStatus(input.PayStatus)
	if err != nil {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidPayStatus,
			err.Error(),
			domainerror.ErrInvalidPayStatus,
		)
	}

	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, notFound(err, domainerror.ErrOrderNotFound, domainerror.ErrCodeOrderNotFound, "order")
	}

	brand, err := uc.brandRepo.FindByID(ctx, order.BrandID)
	if err != nil {
		return nil, notFound(err, domainerror.ErrBrandNotFound, domainerror.ErrCodeBrandNotFound, "brand")
	}

	due, _, err := service.OrderCommission(brand, order)
	if err != nil {
		return nil, err
	}

	entry, err := uc.entryRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commission entry: %w", err)
	}
	if entry == nil {
		entry = entity.NewCommissionEntry(order, due)
	}

	entry.CommissionDue = due
	entry.PayStatus = status
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Upsert(ctx, entry); err != nil {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeEntryWriteFailure,
			fmt.Sprintf("failed to write commission entry for order %s", order.ID),
			errors.Join(domainerror.ErrEntryWriteFailure, err),
		)
	}

	return &SetPayStatusOutput{
		Entry: entry,
	}, nil
}
