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

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create creates a new order in the database.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(model.OrderFromEntity(order)).Error
}

// FindByID retrieves an order by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// FindByBrand retrieves every order of a brand across all trackers.
func (r *orderRepository) FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at ASC").
		Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}
	return orders, nil
}

// Update updates an existing order in the database.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).Save(model.OrderFromEntity(order))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft deletes an order and removes its commission entry in one transaction.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.OrderModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrOrderNotFound
		}

		return tx.Delete(&model.CommissionEntryModel{}, "order_id = ?", id).Error
	})
}
