// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// CommissionEntry is the persisted commission record for one order (1:1 by order id).
type CommissionEntry struct {
	OrderID       uuid.UUID
	BrandID       uuid.UUID
	CommissionDue valueobject.Money // Derived; refreshed whenever the order changes
	PayStatus     valueobject.PayStatus
	Payments      []Payment
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCommissionEntry creates an entry for an order in the initial state.
func NewCommissionEntry(order *Order, commissionDue valueobject.Money) *CommissionEntry {
	now := time.Now().UTC()

	return &CommissionEntry{
		OrderID:       order.ID,
		BrandID:       order.BrandID,
		CommissionDue: commissionDue,
		PayStatus:     valueobject.PayStatusPendingInvoice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AmountPaid is the sum of the entry's payments.
func (e *CommissionEntry) AmountPaid() valueobject.Money {
	return SumPayments(e.Payments)
}

// PaidDate is the latest payment date, if any.
func (e *CommissionEntry) PaidDate() *time.Time {
	return LatestPaymentDate(e.Payments)
}

// AmountRemaining is commission due minus paid, never negative.
func (e *CommissionEntry) AmountRemaining() valueobject.Money {
	return e.CommissionDue.Sub(e.AmountPaid()).ClampZero()
}

// Status returns the entry's status, treating unset values as pending_invoice.
func (e *CommissionEntry) Status() valueobject.PayStatus {
	if e == nil || !e.PayStatus.IsValid() {
		return valueobject.PayStatusPendingInvoice
	}
	return e.PayStatus
}
