// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// TrackerModel represents the trackers table in the database.
type TrackerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BrandID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name      string     `gorm:"type:varchar(255);not null"`
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the TrackerModel.
func (TrackerModel) TableName() string {
	return "trackers"
}

// ToEntity converts a TrackerModel to a domain Tracker entity.
func (m *TrackerModel) ToEntity() *entity.Tracker {
	return &entity.Tracker{
		ID:        m.ID,
		BrandID:   m.BrandID,
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TrackerFromEntity creates a TrackerModel from a domain Tracker entity.
func TrackerFromEntity(tracker *entity.Tracker) *TrackerModel {
	return &TrackerModel{
		ID:        tracker.ID,
		BrandID:   tracker.BrandID,
		Name:      tracker.Name,
		StartDate: tracker.StartDate,
		EndDate:   tracker.EndDate,
		CreatedAt: tracker.CreatedAt,
		UpdatedAt: tracker.UpdatedAt,
	}
}
