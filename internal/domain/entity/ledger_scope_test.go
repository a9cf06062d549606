package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

func TestLedgerScope_Validate(t *testing.T) {
	brandID, trackerID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		scope   LedgerScope
		wantErr bool
	}{
		{name: "single tracker", scope: TrackerScope(brandID, trackerID)},
		{name: "all trackers", scope: AllTrackersScope(brandID)},
		{name: "zero scope", scope: LedgerScope{}, wantErr: true},
		{name: "implicit tracker", scope: LedgerScope{BrandID: brandID}, wantErr: true},
		{name: "tracker and all", scope: LedgerScope{BrandID: brandID, TrackerID: trackerID, AllTrackers: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scope.Validate()
			if tt.wantErr && !errors.Is(err, domainerror.ErrInvalidScope) {
				t.Errorf("expected ErrInvalidScope, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestLedgerScope_Includes(t *testing.T) {
	brandID, trackerID := uuid.New(), uuid.New()
	inTracker := &Order{BrandID: brandID, TrackerID: trackerID}
	otherTracker := &Order{BrandID: brandID, TrackerID: uuid.New()}
	otherBrand := &Order{BrandID: uuid.New(), TrackerID: trackerID}

	scope := TrackerScope(brandID, trackerID)
	if !scope.Includes(inTracker) || scope.Includes(otherTracker) || scope.Includes(otherBrand) {
		t.Error("tracker scope selected the wrong orders")
	}

	all := AllTrackersScope(brandID)
	if !all.Includes(inTracker) || !all.Includes(otherTracker) || all.Includes(otherBrand) {
		t.Error("all-trackers scope selected the wrong orders")
	}
}
