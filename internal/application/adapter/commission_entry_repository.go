// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// CommissionEntryRepository defines the interface for commission entry persistence.
// Entries are keyed by order id; there is at most one entry per order.
type CommissionEntryRepository interface {
	// FindByOrderID retrieves the entry of an order.
	// Returns nil, nil when the order has no entry yet.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.CommissionEntry, error)

	// FindByBrand retrieves every entry written for a brand's orders,
	// including entries whose order no longer exists.
	FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.CommissionEntry, error)

	// Upsert writes the entry keyed by order id.
	// Writing the same state twice is a no-op.
	Upsert(ctx context.Context, entry *entity.CommissionEntry) error
}
