// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

var (
	minPercent = decimal.Zero
	maxPercent = decimal.NewFromInt(100)
)

// Brand is a commission-paying company a rep sells for.
type Brand struct {
	ID                       uuid.UUID
	Name                     string
	DefaultCommissionPercent decimal.Decimal
	CategoryOverrides        map[string]decimal.Decimal // category name -> percent
	Categories               []string
	Stages                   []string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// NewBrand creates a new Brand entity.
func NewBrand(
	name string,
	defaultPercent decimal.Decimal,
	overrides map[string]decimal.Decimal,
	categories []string,
	stages []string,
) *Brand {
	now := time.Now().UTC()

	if overrides == nil {
		overrides = map[string]decimal.Decimal{}
	}

	return &Brand{
		ID:                       uuid.New(),
		Name:                     name,
		DefaultCommissionPercent: defaultPercent,
		CategoryOverrides:        overrides,
		Categories:               categories,
		Stages:                   stages,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

// ResolveRate returns the effective commission percent for an order.
// Precedence: the order's own override, then the brand's override for the
// category, then the brand default. Stored values are returned as-is, even
// when out of range, so bad configuration surfaces through ValidatePercent.
func (b *Brand) ResolveRate(category string, orderOverride *decimal.Decimal) decimal.Decimal {
	if orderOverride != nil {
		return *orderOverride
	}
	if percent, ok := b.CategoryOverrides[category]; ok {
		return percent
	}
	return b.DefaultCommissionPercent
}

// Validate checks the default and every category override are within [0,100].
func (b *Brand) Validate() error {
	if err := ValidatePercent(b.DefaultCommissionPercent); err != nil {
		return err
	}
	for _, percent := range b.CategoryOverrides {
		if err := ValidatePercent(percent); err != nil {
			return err
		}
	}
	return nil
}

// HasCategory reports whether category is configured for the brand.
// A brand with no configured categories accepts any category.
func (b *Brand) HasCategory(category string) bool {
	if len(b.Categories) == 0 {
		return true
	}
	return containsFold(b.Categories, category)
}

// HasStage reports whether stage is valid for the brand.
// The universal excluded stages are valid for every brand.
func (b *Brand) HasStage(stage string) bool {
	if IsExcludedStage(stage) {
		return true
	}
	if len(b.Stages) == 0 {
		return true
	}
	return containsFold(b.Stages, stage)
}

// ValidatePercent returns ErrInvalidRate when percent is outside [0,100].
func ValidatePercent(percent decimal.Decimal) error {
	if percent.LessThan(minPercent) || percent.GreaterThan(maxPercent) {
		return domainerror.ErrInvalidRate
	}
	return nil
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
