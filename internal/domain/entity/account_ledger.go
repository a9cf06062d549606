// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// LedgerMember is one order in an account group with its commission figures.
type LedgerMember struct {
	Order         *Order
	Entry         *CommissionEntry // nil when no entry has been written yet
	Percent       decimal.Decimal
	CommissionDue valueobject.Money
	Paid          valueobject.Money
	PayStatus     valueobject.PayStatus
	Excluded      bool
}

// AccountLedger is the derived per-account view over a group of orders.
// It is rebuilt on every read and is never persisted.
type AccountLedger struct {
	AccountID          uuid.UUID
	Scope              LedgerScope
	Members            []LedgerMember
	TotalOrderValue    valueobject.Money
	TotalCommissionDue valueobject.Money
	TotalPaid          valueobject.Money
	AggregatePayStatus valueobject.PayStatus
	AmountRemaining    valueobject.Money
	LastPaidDate       *time.Time
	Payments           []Payment // Group-level payments

	IsShortShipped          bool
	UnshippedSalesValue     valueobject.Money
	AdjustedSaleValue       valueobject.Money
	AdjustedCommissionValue valueobject.Money

	IsOverpaid                bool
	OverpaidAdjustedSaleValue valueobject.Money
	Surplus                   valueobject.Money
}

// Totals returns the figures the adjustment engine works from.
func (l *AccountLedger) Totals() valueobject.LedgerTotals {
	return valueobject.LedgerTotals{
		OrderValue:    l.TotalOrderValue,
		CommissionDue: l.TotalCommissionDue,
		Paid:          l.TotalPaid,
	}
}

// Outstanding returns commission due minus paid without clamping.
// Import classification compares against this figure.
func (l *AccountLedger) Outstanding() valueobject.Money {
	if l == nil {
		return valueobject.Zero
	}
	return l.Totals().Outstanding()
}

// HasPayment reports whether a payment with the same content is already
// counted in the group, either on a member entry or on the group ledger.
func (l *AccountLedger) HasPayment(p Payment) bool {
	if l == nil {
		return false
	}
	key := p.ContentKey()
	for _, existing := range l.Payments {
		if existing.ContentKey() == key {
			return true
		}
	}
	for _, m := range l.Members {
		if m.Entry == nil {
			continue
		}
		for _, existing := range m.Entry.Payments {
			if existing.ContentKey() == key {
				return true
			}
		}
	}
	return false
}

// MemberOrderIDs returns the ids of every member order, excluded ones included.
func (l *AccountLedger) MemberOrderIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l.Members))
	for _, m := range l.Members {
		ids = append(ids, m.Order.ID)
	}
	return ids
}

// LedgerIssue describes an entry that could not be aggregated.
type LedgerIssue struct {
	OrderID uuid.UUID
	Reason  string
}
