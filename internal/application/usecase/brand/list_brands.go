// Package brand contains brand configuration use cases.
package brand

import (
	"context"
	"fmt"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
)

// ListBrandsOutput represents the output of listing brands.
type ListBrandsOutput struct {
	Brands []*entity.Brand
}

// ListBrandsUseCase handles brand listing.
type ListBrandsUseCase struct {
	brandRepo adapter.BrandRepository
}

// NewListBrandsUseCase creates a new ListBrandsUseCase instance.
func NewListBrandsUseCase(brandRepo adapter.BrandRepository) *ListBrandsUseCase {
	return &ListBrandsUseCase{
		brandRepo: brandRepo,
	}
}

// Execute lists every brand.
func (uc *ListBrandsUseCase) Execute(ctx context.Context) (*ListBrandsOutput, error) {
	brands, err := uc.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return &ListBrandsOutput{Brands: brands}, nil
}
