// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tracker is a named sales-cycle scope that orders belong to.
type Tracker struct {
	ID        uuid.UUID
	BrandID   uuid.UUID
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTracker creates a new Tracker entity.
func NewTracker(brandID uuid.UUID, name string, startDate, endDate *time.Time) *Tracker {
	now := time.Now().UTC()

	return &Tracker{
		ID:        uuid.New(),
		BrandID:   brandID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
