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

// CreateOrderInput represents the input for order creation.
type CreateOrderInput struct {
	AccountID          uuid.UUID
	BrandID            uuid.UUID
	TrackerID          uuid.UUID
	Category           string
	Total              valueobject.Money
	CommissionOverride *decimal.Decimal // Optional per-order percent
	Stage              string
	CloseDate          *time.Time
}

// CreateOrderOutput represents the output of order creation.
type CreateOrderOutput struct {
	Order         *entity.Order
	Percent       decimal.Decimal
	CommissionDue valueobject.Money
}

// CreateOrderUseCase handles order creation logic.
// No commission entry is written; an order without one is pending_invoice.
type CreateOrderUseCase struct {
	brandRepo   adapter.BrandRepository
	accountRepo adapter.AccountRepository
	trackerRepo adapter.TrackerRepository
	orderRepo   adapter.OrderRepository
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(
	brandRepo adapter.BrandRepository,
	accountRepo adapter.AccountRepository,
	trackerRepo adapter.TrackerRepository,
	orderRepo adapter.OrderRepository,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		brandRepo:   brandRepo,
		accountRepo: accountRepo,
		trackerRepo: trackerRepo,
		orderRepo:   orderRepo,
	}
}

// Execute performs the order creation.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	brand, err := uc.brandRepo.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, notFound(err, domainerror.ErrBrandNotFound, domainerror.ErrCodeBrandNotFound, "brand")
	}

	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		return nil, notFound(err, domainerror.ErrAccountNotFound, domainerror.ErrCodeAccountNotFound, "account")
	}

	tracker, err := uc.trackerRepo.FindByID(ctx, input.TrackerID)
	if err != nil {
		return nil, notFound(err, domainerror.ErrTrackerNotFound, domainerror.ErrCodeTrackerNotFound, "tracker")
	}
	if tracker.BrandID != brand.ID {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeTrackerBrandMismatch,
			fmt.Sprintf("tracker %s belongs to another brand", tracker.Name),
			domainerror.ErrTrackerBrandMismatch,
		)
	}

	order := entity.NewOrder(
		input.AccountID,
		brand.ID,
		tracker.ID,
		strings.TrimSpace(input.Category),
		input.Total,
		input.CommissionOverride,
		strings.TrimSpace(input.Stage),
		input.CloseDate,
	)

	if err := validateOrder(brand, order); err != nil {
		return nil, err
	}

	due, percent, err := service.OrderCommission(brand, order)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &CreateOrderOutput{
		Order:         order,
		Percent:       percent,
		CommissionDue: due,
	}, nil
}
