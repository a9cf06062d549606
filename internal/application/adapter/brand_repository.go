// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	// Create creates a new brand in the database.
	Create(ctx context.Context, brand *entity.Brand) error

	// FindByID retrieves a brand by its ID.
	// Returns ErrBrandNotFound when the brand does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)

	// FindAll retrieves every brand ordered by name.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// Update updates an existing brand's rates, categories and stages.
	Update(ctx context.Context, brand *entity.Brand) error
}
