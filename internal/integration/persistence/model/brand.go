// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// BrandModel represents the brands table in the database.
type BrandModel struct {
	ID                       uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name                     string            `gorm:"type:varchar(255);not null"`
	DefaultCommissionPercent decimal.Decimal   `gorm:"type:decimal(7,4);not null"`
	CategoryOverrides        datatypes.JSONMap // category -> percent string
	Categories               StringList
	Stages                   StringList
	CreatedAt                time.Time `gorm:"not null"`
	UpdatedAt                time.Time `gorm:"not null"`
}

// TableName returns the table name for the BrandModel.
func (BrandModel) TableName() string {
	return "brands"
}

// ToEntity converts a BrandModel to a domain Brand entity.
func (m *BrandModel) ToEntity() (*entity.Brand, error) {
	overrides := make(map[string]decimal.Decimal, len(m.CategoryOverrides))
	for category, raw := range m.CategoryOverrides {
		percent, err := decimal.NewFromString(fmt.Sprint(raw))
		if err != nil {
			return nil, fmt.Errorf("brand %s override %q: %w", m.ID, category, err)
		}
		overrides[category] = percent
	}

	return &entity.Brand{
		ID:                       m.ID,
		Name:                     m.Name,
		DefaultCommissionPercent: m.DefaultCommissionPercent,
		CategoryOverrides:        overrides,
		Categories:               []string(m.Categories),
		Stages:                   []string(m.Stages),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}, nil
}

// BrandFromEntity creates a BrandModel from a domain Brand entity.
func BrandFromEntity(brand *entity.Brand) *BrandModel {
	overrides := datatypes.JSONMap{}
	for category, percent := range brand.CategoryOverrides {
		overrides[category] = percent.String()
	}

	return &BrandModel{
		ID:                       brand.ID,
		Name:                     brand.Name,
		DefaultCommissionPercent: brand.DefaultCommissionPercent,
		CategoryOverrides:        overrides,
		Categories:               StringList(brand.Categories),
		Stages:                   StringList(brand.Stages),
		CreatedAt:                brand.CreatedAt,
		UpdatedAt:                brand.UpdatedAt,
	}
}
