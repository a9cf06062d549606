// Package brand contains brand configuration use cases.
package brand

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
)

// UpdateBrandInput represents the input for brand update.
// Nil fields are left unchanged.
type UpdateBrandInput struct {
	BrandID                  uuid.UUID
	Name                     *string
	DefaultCommissionPercent *decimal.Decimal
	CategoryOverrides        map[string]decimal.Decimal // Replaces all overrides when non-nil
	Categories               []string                   // Replaces the list when non-nil
	Stages                   []string                   // Replaces the list when non-nil
}

// UpdateBrandOutput represents the output of brand update.
type UpdateBrandOutput struct {
	Brand *entity.Brand
}

// UpdateBrandUseCase handles brand update logic.
// Commission entries are not rewritten here; ledgers recompute commission on read.
type UpdateBrandUseCase struct {
	brandRepo adapter.BrandRepository
}

// NewUpdateBrandUseCase creates a new UpdateBrandUseCase instance.
func NewUpdateBrandUseCase(brandRepo adapter.BrandRepository) *UpdateBrandUseCase {
	return &UpdateBrandUseCase{
		brandRepo: brandRepo,
	}
}

// Execute performs the brand update.
func (uc *UpdateBrandUseCase) Execute(ctx context.Context, input UpdateBrandInput) (*UpdateBrandOutput, error) {
	brand, err := uc.brandRepo.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, wrapBrandLookup(err)
	}

	if input.Name != nil {
		brand.Name = strings.TrimSpace(*input.Name)
	}
	if input.DefaultCommissionPercent != nil {
		brand.DefaultCommissionPercent = *input.DefaultCommissionPercent
	}
	if input.CategoryOverrides != nil {
		brand.CategoryOverrides = copyOverrides(input.CategoryOverrides)
	}
	if input.Categories != nil {
		brand.Categories = cleanList(input.Categories)
	}
	if input.Stages != nil {
		brand.Stages = cleanList(input.Stages)
	}

	if err := validateBrand(brand); err != nil {
		return nil, err
	}

	brand.UpdatedAt = time.Now().UTC()

	if err := uc.brandRepo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	return &UpdateBrandOutput{
		Brand: brand,
	}, nil
}
