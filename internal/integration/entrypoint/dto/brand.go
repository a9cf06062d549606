// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// CreateBrandRequest represents the request body for brand creation.
type CreateBrandRequest struct {
	Name                     string            `json:"name" binding:"required,max=255"`
	DefaultCommissionPercent string            `json:"default_commission_percent" binding:"required,percent"`
	CategoryOverrides        map[string]string `json:"category_overrides,omitempty" binding:"omitempty,dive,percent"`
	Categories               []string          `json:"categories,omitempty"`
	Stages                   []string          `json:"stages,omitempty"`
}

// UpdateBrandRequest represents the request body for brand update.
// Lists and overrides replace the stored ones when present.
type UpdateBrandRequest struct {
	Name                     *string           `json:"name,omitempty" binding:"omitempty,max=255"`
	DefaultCommissionPercent *string           `json:"default_commission_percent,omitempty" binding:"omitempty,percent"`
	CategoryOverrides        map[string]string `json:"category_overrides,omitempty" binding:"omitempty,dive,percent"`
	Categories               []string          `json:"categories,omitempty"`
	Stages                   []string          `json:"stages,omitempty"`
}

// CreateTrackerRequest represents the request body for tracker creation.
type CreateTrackerRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	StartDate *string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// BrandResponse represents a brand in API responses.
type BrandResponse struct {
	ID                       string            `json:"id"`
	Name                     string            `json:"name"`
	DefaultCommissionPercent string            `json:"default_commission_percent"`
	CategoryOverrides        map[string]string `json:"category_overrides"`
	Categories               []string          `json:"categories"`
	Stages                   []string          `json:"stages"`
	Trackers                 []TrackerResponse `json:"trackers,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
}

// BrandListResponse represents the response for listing brands.
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
}

// TrackerResponse represents a tracker in API responses.
type TrackerResponse struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	Name      string    `json:"name"`
	StartDate *string   `json:"start_date,omitempty"`
	EndDate   *string   `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToBrandResponse converts a domain Brand entity to a BrandResponse DTO.
func ToBrandResponse(b *entity.Brand) BrandResponse {
	overrides := make(map[string]string, len(b.CategoryOverrides))
	for category, percent := range b.CategoryOverrides {
		overrides[category] = formatPercent(percent)
	}

	categories := b.Categories
	if categories == nil {
		categories = []string{}
	}
	stages := b.Stages
	if stages == nil {
		stages = []string{}
	}

	return BrandResponse{
		ID:                       b.ID.String(),
		Name:                     b.Name,
		DefaultCommissionPercent: formatPercent(b.DefaultCommissionPercent),
		CategoryOverrides:        overrides,
		Categories:               categories,
		Stages:                   stages,
		CreatedAt:                b.CreatedAt,
		UpdatedAt:                b.UpdatedAt,
	}
}

// ToBrandListResponse converts a slice of brands to a BrandListResponse DTO.
func ToBrandListResponse(brands []*entity.Brand) BrandListResponse {
	responses := make([]BrandResponse, len(brands))
	for i, b := range brands {
		responses[i] = ToBrandResponse(b)
	}
	return BrandListResponse{Brands: responses}
}

// ToTrackerResponse converts a domain Tracker entity to a TrackerResponse DTO.
func ToTrackerResponse(t *entity.Tracker) TrackerResponse {
	return TrackerResponse{
		ID:        t.ID.String(),
		BrandID:   t.BrandID.String(),
		Name:      t.Name,
		StartDate: formatDate(t.StartDate),
		EndDate:   formatDate(t.EndDate),
		CreatedAt: t.CreatedAt,
	}
}

// ToTrackerResponses converts trackers to TrackerResponse DTOs.
func ToTrackerResponses(trackers []*entity.Tracker) []TrackerResponse {
	responses := make([]TrackerResponse, len(trackers))
	for i, t := range trackers {
		responses[i] = ToTrackerResponse(t)
	}
	return responses
}
