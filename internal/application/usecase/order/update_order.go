// Package order contains order use cases.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/service"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// UpdateOrderInput represents the input for order update.
// Nil fields are left unchanged.
type UpdateOrderInput struct {
	OrderID            uuid.UUID
	Category           *string
	Total              *valueobject.Money
	CommissionOverride *decimal.Decimal
	ClearOverride      bool // Removes the per-order override
	Stage              *string
	CloseDate          *time.Time
}

// UpdateOrderOutput represents the output of order update.
type UpdateOrderOutput struct {
	Order         *entity.Order
	Entry         *entity.CommissionEntry // nil when the order has no entry yet
	Percent       decimal.Decimal
	CommissionDue valueobject.Money
}

// UpdateOrderUseCase handles order changes and keeps the order's entry in step.
type UpdateOrderUseCase struct {
	brandRepo adapter.BrandRepository
	orderRepo adapter.OrderRepository
	entryRepo adapter.CommissionEntryRepository
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
func NewUpdateOrderUseCase(
	brandRepo adapter.BrandRepository,
	orderRepo adapter.OrderRepository,
	entryRepo adapter.CommissionEntryRepository,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		brandRepo: brandRepo,
		orderRepo: orderRepo,
		entryRepo: entryRepo,
	}
}

// Execute performs the order update.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, notFound(err, domainerror.ErrOrderNotFound, domainerror.ErrCodeOrderNotFound, "order")
	}

	brand, err := uc.brandRepo.FindByID(ctx, order.BrandID)
	if err != nil {
		return nil, notFound(err, domainerror.ErrBrandNotFound, domainerror.ErrCodeBrandNotFound, "brand")
	}

	if input.Category != nil {
		order.Category = strings.TrimSpace(*input.Category)
	}
	if input.Total != nil {
		order.Total = *input.Total
	}
	switch {
	case input.ClearOverride:
		order.CommissionOverride = nil
	case input.CommissionOverride != nil:
		override := *input.CommissionOverride
		order.CommissionOverride = &override
	}
	if input.Stage != nil {
		order.Stage = strings.TrimSpace(*input.Stage)
	}
	if input.CloseDate != nil {
		order.CloseDate = input.CloseDate
	}

	if err := validateOrder(brand, order); err != nil {
		return nil, err
	}

	due, percent, err := service.OrderCommission(brand, order)
	if err != nil {
		return nil, err
	}

	order.UpdatedAt = time.Now().UTC()
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	entry, err := refreshEntry(ctx, uc.entryRepo, brand, order)
	if err != nil {
		return nil, err
	}

	return &UpdateOrderOutput{
		Order:         order,
		Entry:         entry,
		Percent:       percent,
		CommissionDue: due,
	}, nil
}
