// Package order contains order use cases.
package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// DeleteOrderInput represents the input for order deletion.
type DeleteOrderInput struct {
	OrderID uuid.UUID
}

// DeleteOrderUseCase deletes an order together with its commission entry.
// Payments on the entry go with it; group-level payments are kept.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order deletion.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, input DeleteOrderInput) error {
	if _, err := uc.orderRepo.FindByID(ctx, input.OrderID); err != nil {
		return notFound(err, domainerror.ErrOrderNotFound, domainerror.ErrCodeOrderNotFound, "order")
	}

	if err := uc.orderRepo.Delete(ctx, input.OrderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
