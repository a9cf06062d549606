// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// Universal stages that are excluded from order and commission totals for every brand.
const (
	StageCancelled    = "Cancelled"
	StageShortShipped = "Short Shipped"
)

// excludedStages is the universal excluded set, keyed by lower-cased stage name.
var excludedStages = map[string]struct{}{
	strings.ToLower(StageCancelled):    {},
	strings.ToLower(StageShortShipped): {},
}

// IsExcludedStage reports whether a stage is in the universal excluded set.
func IsExcludedStage(stage string) bool {
	_, ok := excludedStages[strings.ToLower(strings.TrimSpace(stage))]
	return ok
}

// Order is a sale a rep wrote for an account against a brand, within a tracker.
type Order struct {
	ID                 uuid.UUID
	AccountID          uuid.UUID
	BrandID            uuid.UUID
	TrackerID          uuid.UUID
	Category           string
	Total              valueobject.Money
	CommissionOverride *decimal.Decimal // Optional per-order percent
	Stage              string
	CloseDate          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrder creates a new Order entity.
func NewOrder(
	accountID uuid.UUID,
	brandID uuid.UUID,
	trackerID uuid.UUID,
	category string,
	total valueobject.Money,
	override *decimal.Decimal,
	stage string,
	closeDate *time.Time,
) *Order {
	now := time.Now().UTC()

	return &Order{
		ID:                 uuid.New(),
		AccountID:          accountID,
		BrandID:            brandID,
		TrackerID:          trackerID,
		Category:           category,
		Total:              total,
		CommissionOverride: override,
		Stage:              stage,
		CloseDate:          closeDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsExcluded reports whether the order is left out of order and commission totals.
func (o *Order) IsExcluded() bool {
	return IsExcludedStage(o.Stage)
}
