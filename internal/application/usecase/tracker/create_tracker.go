// Package tracker contains sales-cycle tracker use cases.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// CreateTrackerInput represents the input for tracker creation.
type CreateTrackerInput struct {
	BrandID   uuid.UUID
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateTrackerOutput represents the output of tracker creation.
type CreateTrackerOutput struct {
	Tracker *entity.Tracker
}

// CreateTrackerUseCase handles tracker creation logic.
type CreateTrackerUseCase struct {
	brandRepo   adapter.BrandRepository
	trackerRepo adapter.TrackerRepository
}

// NewCreateTrackerUseCase creates a new CreateTrackerUseCase instance.
func NewCreateTrackerUseCase(brandRepo adapter.BrandRepository, trackerRepo adapter.TrackerRepository) *CreateTrackerUseCase {
	return &CreateTrackerUseCase{
		brandRepo:   brandRepo,
		trackerRepo: trackerRepo,
	}
}

// Execute performs the tracker creation.
func (uc *CreateTrackerUseCase) Execute(ctx context.Context, input CreateTrackerInput) (*CreateTrackerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeMissingFields,
			"tracker name is required",
			nil,
		)
	}

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeMissingFields,
			"tracker end date must not be before its start date",
			nil,
		)
	}

	if _, err := uc.brandRepo.FindByID(ctx, input.BrandID); err != nil {
		if errors.Is(err, domainerror.ErrBrandNotFound) {
			return nil, domainerror.NewCommissionError(
				domainerror.ErrCodeBrandNotFound,
				"brand not found",
				domainerror.ErrBrandNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find brand: %w", err)
	}

	tracker := entity.NewTracker(input.BrandID, name, input.StartDate, input.EndDate)
	if err := uc.trackerRepo.Create(ctx, tracker); err != nil {
		return nil, fmt.Errorf("failed to create tracker: %w", err)
	}

	return &CreateTrackerOutput{
		Tracker: tracker,
	}, nil
}
