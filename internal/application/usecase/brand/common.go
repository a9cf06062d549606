// Package brand contains brand configuration use cases.
package brand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// validateBrand checks rates are within [0,100] and every category override
// names a configured category.
func validateBrand(brand *entity.Brand) error {
	if strings.TrimSpace(brand.Name) == "" {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeMissingFields,
			"brand name is required",
			nil,
		)
	}

	if err := brand.Validate(); err != nil {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidRate,
			"commission percents must be between 0 and 100",
			err,
		)
	}

	for category := range brand.CategoryOverrides {
		if !brand.HasCategory(category) {
			return domainerror.NewCommissionError(
				domainerror.ErrCodeInvalidCategory,
				fmt.Sprintf("override category %q is not configured for the brand", category),
				domainerror.ErrInvalidCategory,
			)
		}
	}
	return nil
}

// cleanList trims values and drops blanks and case-insensitive duplicates.
func cleanList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, v)
	}
	return cleaned
}

func wrapBrandLookup(err error) error {
	if errors.Is(err, domainerror.ErrBrandNotFound) {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeBrandNotFound,
			"brand not found",
			domainerror.ErrBrandNotFound,
		)
	}
	return fmt.Errorf("failed to find brand: %w", err)
}

func copyOverrides(overrides map[string]decimal.Decimal) map[string]decimal.Decimal {
	copied := make(map[string]decimal.Decimal, len(overrides))
	for category, percent := range overrides {
		copied[strings.TrimSpace(category)] = percent
	}
	return copied
}
