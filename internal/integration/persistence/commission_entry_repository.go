// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/integration/persistence/model"
)

// commissionEntryRepository implements the adapter.CommissionEntryRepository interface.
type commissionEntryRepository struct {
	db *gorm.DB
}

// NewCommissionEntryRepository creates a new commission entry repository instance.
func NewCommissionEntryRepository(db *gorm.DB) adapter.CommissionEntryRepository {
	return &commissionEntryRepository{
		db: db,
	}
}

// FindByOrderID retrieves the entry of an order, or nil when there is none.
func (r *commissionEntryRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.CommissionEntry, error) {
	var entryModel model.CommissionEntryModel
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return entryModel.ToEntity()
}

// FindByBrand retrieves every entry written for a brand's orders.
func (r *commissionEntryRepository) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.CommissionEntry, error) {
	var entryModels []model.CommissionEntryModel
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.CommissionEntry, 0, len(entryModels))
	for i := range entryModels {
		entry, err := entryModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Upsert writes the entry keyed by order id.
// Legacy single-payment columns are cleared once the payments list is written.
func (r *commissionEntryRepository) Upsert(ctx context.Context, entry *entity.CommissionEntry) error {
	entryModel := model.CommissionEntryFromEntity(entry)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"brand_id",
				"commission_due_cents",
				"pay_status",
				"payments",
				"amount_paid",
				"paid_date",
				"updated_at",
			}),
		}).
		Create(entryModel).Error
}
