// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// AccountPaymentLedger holds the payments recorded against an account group
// as a whole, keyed by account, brand and tracker.
type AccountPaymentLedger struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	BrandID   uuid.UUID
	TrackerID uuid.UUID
	Payments  []Payment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccountPaymentLedger creates an empty payment ledger for a group.
func NewAccountPaymentLedger(accountID, brandID, trackerID uuid.UUID) *AccountPaymentLedger {
	now := time.Now().UTC()

	return &AccountPaymentLedger{
		ID:        uuid.New(),
		AccountID: accountID,
		BrandID:   brandID,
		TrackerID: trackerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key returns the group key the ledger belongs to.
func (l *AccountPaymentLedger) Key() GroupKey {
	return GroupKey{AccountID: l.AccountID, BrandID: l.BrandID, TrackerID: l.TrackerID}
}

// Record merges payments into the ledger and returns how many were new.
func (l *AccountPaymentLedger) Record(payments ...Payment) int {
	merged, added := MergePayments(l.Payments, payments...)
	l.Payments = merged
	if added > 0 {
		l.UpdatedAt = time.Now().UTC()
	}
	return added
}

// Total returns the sum of the ledger's payments.
func (l *AccountPaymentLedger) Total() valueobject.Money {
	if l == nil {
		return valueobject.Zero
	}
	return SumPayments(l.Payments)
}
