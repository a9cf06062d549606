// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey"`
	AccountID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	BrandID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	TrackerID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	Category           string              `gorm:"type:varchar(100)"`
	TotalCents         int64               `gorm:"not null"`
	CommissionOverride decimal.NullDecimal `gorm:"type:decimal(7,4)"`
	Stage              string              `gorm:"type:varchar(100);not null"`
	CloseDate          *time.Time          `gorm:"type:date"`
	CreatedAt          time.Time           `gorm:"not null"`
	UpdatedAt          time.Time           `gorm:"not null"`
	DeletedAt          gorm.DeletedAt      `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	var override *decimal.Decimal
	if m.CommissionOverride.Valid {
		percent := m.CommissionOverride.Decimal
		override = &percent
	}

	return &entity.Order{
		ID:                 m.ID,
		AccountID:          m.AccountID,
		BrandID:            m.BrandID,
		TrackerID:          m.TrackerID,
		Category:           m.Category,
		Total:              valueobject.MoneyFromCents(m.TotalCents),
		CommissionOverride: override,
		Stage:              m.Stage,
		CloseDate:          m.CloseDate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// OrderFromEntity creates an OrderModel from a domain Order entity.
func OrderFromEntity(order *entity.Order) *OrderModel {
	var override decimal.NullDecimal
	if order.CommissionOverride != nil {
		override = decimal.NewNullDecimal(*order.CommissionOverride)
	}

	return &OrderModel{
		ID:                 order.ID,
		AccountID:          order.AccountID,
		BrandID:            order.BrandID,
		TrackerID:          order.TrackerID,
		Category:           order.Category,
		TotalCents:         order.Total.Cents(),
		CommissionOverride: override,
		Stage:              order.Stage,
		CloseDate:          order.CloseDate,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
