// Package brand contains brand configuration use cases.
package brand

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
)

// GetBrandInput represents the input for fetching a brand.
type GetBrandInput struct {
	BrandID uuid.UUID
}

// GetBrandOutput represents the output of fetching a brand.
type GetBrandOutput struct {
	Brand    *entity.Brand
	Trackers []*entity.Tracker
}

// GetBrandUseCase handles brand retrieval.
type GetBrandUseCase struct {
	brandRepo   adapter.BrandRepository
	trackerRepo adapter.TrackerRepository
}

// NewGetBrandUseCase creates a new GetBrandUseCase instance.
func NewGetBrandUseCase(brandRepo adapter.BrandRepository, trackerRepo adapter.TrackerRepository) *GetBrandUseCase {
	return &GetBrandUseCase{
		brandRepo:   brandRepo,
		trackerRepo: trackerRepo,
	}
}

// Execute retrieves a brand with its trackers.
func (uc *GetBrandUseCase) Execute(ctx context.Context, input GetBrandInput) (*GetBrandOutput, error) {
	brand, err := uc.brandRepo.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, wrapBrandLookup(err)
	}

	trackers, err := uc.trackerRepo.FindByBrand(ctx, brand.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	return &GetBrandOutput{
		Brand:    brand,
		Trackers: trackers,
	}, nil
}
