package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/usecase/usecasetest"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

func TestCreateTrackerUseCase(t *testing.T) {
	ctx := context.Background()
	fixture := usecasetest.NewFixture()
	uc := NewCreateTrackerUseCase(fixture.Store.BrandRepository(), fixture.Store.TrackerRepository())

	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	output, err := uc.Execute(ctx, CreateTrackerInput{
		BrandID:   fixture.Brand.ID,
		Name:      " Fall 2024 ",
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Tracker.Name != "Fall 2024" {
		t.Errorf("expected trimmed name, got %q", output.Tracker.Name)
	}
	if output.Tracker.BrandID != fixture.Brand.ID {
		t.Errorf("expected tracker to belong to the brand")
	}

	trackers, err := fixture.Store.TrackerRepository().FindByBrand(ctx, fixture.Brand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trackers) != 2 {
		t.Errorf("expected 2 trackers for the brand, got %d", len(trackers))
	}

	tests := []struct {
		name  string
		input CreateTrackerInput
		code  domainerror.CommissionErrorCode
	}{
		{
			name:  "missing name",
			input: CreateTrackerInput{BrandID: fixture.Brand.ID, Name: "  "},
			code:  domainerror.ErrCodeMissingFields,
		},
		{
			name:  "end before start",
			input: CreateTrackerInput{BrandID: fixture.Brand.ID, Name: "Backwards", StartDate: &end, EndDate: &start},
			code:  domainerror.ErrCodeMissingFields,
		},
		{
			name:  "unknown brand",
			input: CreateTrackerInput{BrandID: uuid.New(), Name: "Orphan"},
			code:  domainerror.ErrCodeBrandNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			var comErr *domainerror.CommissionError
			if !errors.As(err, &comErr) {
				t.Fatalf("expected CommissionError, got %v", err)
			}
			if comErr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, comErr.Code)
			}
		})
	}
}
