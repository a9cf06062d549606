// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// TrackerRepository defines the interface for tracker persistence operations.
type TrackerRepository interface {
	// Create creates a new tracker in the database.
	Create(ctx context.Context, tracker *entity.Tracker) error

	// FindByID retrieves a tracker by its ID.
	// Returns ErrTrackerNotFound when the tracker does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, error)

	// FindByBrand retrieves all trackers of a brand.
	FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Tracker, error)
}
