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

// trackerRepository implements the adapter.TrackerRepository interface.
type trackerRepository struct {
	db *gorm.DB
}

// NewTrackerRepository creates a new tracker repository instance.
func NewTrackerRepository(db *gorm.DB) adapter.TrackerRepository {
	return &trackerRepository{
		db: db,
	}
}

// Create creates a new tracker in the database.
func (r *trackerRepository) Create(ctx context.Context, tracker *entity.Tracker) error {
	return r.db.WithContext(ctx).Create(model.TrackerFromEntity(tracker)).Error
}

// FindByID retrieves a tracker by its ID.
func (r *trackerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, error) {
	var trackerModel model.TrackerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&trackerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTrackerNotFound
		}
		return nil, result.Error
	}
	return trackerModel.ToEntity(), nil
}

// FindByBrand retrieves all trackers of a brand, oldest first.
func (r *trackerRepository) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Tracker, error) {
	var trackerModels []model.TrackerModel
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at ASC").
		Find(&trackerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	trackers := make([]*entity.Tracker, len(trackerModels))
	for i := range trackerModels {
		trackers[i] = trackerModels[i].ToEntity()
	}
	return trackers, nil
}
