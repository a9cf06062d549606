// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/integration/persistence/model"
)

// brandRepository implements the adapter.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository instance.
func NewBrandRepository(db *gorm.DB) adapter.BrandRepository {
	return &brandRepository{
		db: db,
	}
}

// Create creates a new brand in the database.
func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	return r.db.WithContext(ctx).Create(model.BrandFromEntity(brand)).Error
}

// FindByID retrieves a brand by its ID.
func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandModel model.BrandModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&brandModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBrandNotFound
		}
		return nil, result.Error
	}
	return brandModel.ToEntity()
}

// FindAll retrieves every brand ordered by name.
func (r *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []model.BrandModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, err
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for i := range brandModels {
		brand, err := brandModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

// Update updates an existing brand's rates, categories and stages.
func (r *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	result := r.db.WithContext(ctx).Save(model.BrandFromEntity(brand))
	if result.Error != nil {
		return result.Error
	}
	return nil
}
