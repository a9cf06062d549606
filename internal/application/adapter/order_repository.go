// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create creates a new order in the database.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its ID.
	// Returns ErrOrderNotFound when the order does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByBrand retrieves every order of a brand across all trackers.
	FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Order, error)

	// Update updates an existing order in the database.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order together with its commission entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
