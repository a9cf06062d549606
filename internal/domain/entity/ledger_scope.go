// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"

	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// LedgerScope selects the orders an account ledger is built from.
// It always names a brand and either one tracker or all trackers.
type LedgerScope struct {
	BrandID     uuid.UUID
	TrackerID   uuid.UUID
	AllTrackers bool
}

// TrackerScope scopes a ledger to one brand and one tracker.
func TrackerScope(brandID, trackerID uuid.UUID) LedgerScope {
	return LedgerScope{BrandID: brandID, TrackerID: trackerID}
}

// AllTrackersScope scopes a ledger to every tracker of a brand.
func AllTrackersScope(brandID uuid.UUID) LedgerScope {
	return LedgerScope{BrandID: brandID, AllTrackers: true}
}

// Validate rejects scopes that leave the tracker implicit.
func (s LedgerScope) Validate() error {
	if s.BrandID == uuid.Nil {
		return domainerror.ErrInvalidScope
	}
	if s.AllTrackers == (s.TrackerID != uuid.Nil) {
		return domainerror.ErrInvalidScope
	}
	return nil
}

// Includes reports whether an order falls inside the scope.
func (s LedgerScope) Includes(o *Order) bool {
	if o.BrandID != s.BrandID {
		return false
	}
	return s.AllTrackers || o.TrackerID == s.TrackerID
}

// GroupKey identifies one account group within a scope.
type GroupKey struct {
	AccountID uuid.UUID
	BrandID   uuid.UUID
	TrackerID uuid.UUID // uuid.Nil for the all-trackers view
}

// GroupKey returns the key of an account's group within this scope.
func (s LedgerScope) GroupKey(accountID uuid.UUID) GroupKey {
	return GroupKey{AccountID: accountID, BrandID: s.BrandID, TrackerID: s.TrackerID}
}
