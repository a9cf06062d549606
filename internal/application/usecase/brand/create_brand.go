// Package brand contains brand configuration use cases.
package brand

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
)

// CreateBrandInput represents the input for brand creation.
type CreateBrandInput struct {
	Name                     string
	DefaultCommissionPercent decimal.Decimal
	CategoryOverrides        map[string]decimal.Decimal
	Categories               []string
	Stages                   []string
}

// CreateBrandOutput represents the output of brand creation.
type CreateBrandOutput struct {
	Brand *entity.Brand
}

// CreateBrandUseCase handles brand creation logic.
type CreateBrandUseCase struct {
	brandRepo adapter.BrandRepository
}

// NewCreateBrandUseCase creates a new CreateBrandUseCase instance.
func NewCreateBrandUseCase(brandRepo adapter.BrandRepository) *CreateBrandUseCase {
	return &CreateBrandUseCase{
		brandRepo: brandRepo,
	}
}

// Execute performs the brand creation.
func (uc *CreateBrandUseCase) Execute(ctx context.Context, input CreateBrandInput) (*CreateBrandOutput, error) {
	brand := entity.NewBrand(
		strings.TrimSpace(input.Name),
		input.DefaultCommissionPercent,
		copyOverrides(input.CategoryOverrides),
		cleanList(input.Categories),
		cleanList(input.Stages),
	)

	if err := validateBrand(brand); err != nil {
		return nil, err
	}

	if err := uc.brandRepo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return &CreateBrandOutput{
		Brand: brand,
	}, nil
}
