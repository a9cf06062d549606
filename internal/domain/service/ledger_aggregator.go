package service

import (
	"bytes"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// LedgerInput is everything the aggregator needs to rebuild account ledgers.
// Orders may cover more than the scope; the aggregator filters them.
// Entries must belong to orders in Orders, otherwise they are reported as issues.
type LedgerInput struct {
	Scope          entity.LedgerScope
	Brand          *entity.Brand
	Orders         []*entity.Order
	Entries        []*entity.CommissionEntry
	PaymentLedgers []*entity.AccountPaymentLedger
}

// LedgerResult holds the rebuilt ledgers and any entries that were skipped.
type LedgerResult struct {
	Ledgers []*entity.AccountLedger
	Issues  []entity.LedgerIssue
}

// Find returns the ledger for an account, or nil.
func (r *LedgerResult) Find(accountID uuid.UUID) *entity.AccountLedger {
	for _, l := range r.Ledgers {
		if l.AccountID == accountID {
			return l
		}
	}
	return nil
}

// LedgerAggregator rebuilds account ledgers from orders, entries and group payments.
type LedgerAggregator struct {
	logger *slog.Logger
}

// NewLedgerAggregator creates a new LedgerAggregator.
func NewLedgerAggregator(logger *slog.Logger) *LedgerAggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerAggregator{logger: logger}
}

// BuildLedgers groups the in-scope orders by account and builds one ledger per account.
func (a *LedgerAggregator) BuildLedgers(input LedgerInput) (*LedgerResult, error) {
	if err := input.Scope.Validate(); err != nil {
		return nil, err
	}

	known := make(map[uuid.UUID]*entity.Order, len(input.Orders))
	for _, o := range input.Orders {
		known[o.ID] = o
	}

	result := &LedgerResult{}
	entries := make(map[uuid.UUID]*entity.CommissionEntry, len(input.Entries))
	for _, e := range input.Entries {
		if _, ok := known[e.OrderID]; !ok {
			a.logger.Warn("skipping ledger entry with no matching order",
				"order_id", e.OrderID,
				"brand_id", input.Scope.BrandID,
			)
			result.Issues = append(result.Issues, entity.LedgerIssue{
				OrderID: e.OrderID,
				Reason:  "entry references an order that does not exist",
			})
			continue
		}
		entries[e.OrderID] = e
	}

	groups := make(map[uuid.UUID][]*entity.Order)
	for _, o := range input.Orders {
		if !input.Scope.Includes(o) {
			continue
		}
		groups[o.AccountID] = append(groups[o.AccountID], o)
	}

	groupPayments := make(map[uuid.UUID][]*entity.AccountPaymentLedger)
	for _, pl := range input.PaymentLedgers {
		if !scopeCoversPaymentLedger(input.Scope, pl) {
			continue
		}
		groupPayments[pl.AccountID] = append(groupPayments[pl.AccountID], pl)
		if _, ok := groups[pl.AccountID]; !ok && len(pl.Payments) > 0 {
			groups[pl.AccountID] = nil
		}
	}

	accountIDs := make([]uuid.UUID, 0, len(groups))
	for id := range groups {
		accountIDs = append(accountIDs, id)
	}
	sort.Slice(accountIDs, func(i, j int) bool {
		return bytes.Compare(accountIDs[i][:], accountIDs[j][:]) < 0
	})

	for _, accountID := range accountIDs {
		ledger, err := a.build(input.Scope, input.Brand, accountID, groups[accountID], entries, groupPayments[accountID])
		if err != nil {
			return nil, err
		}
		result.Ledgers = append(result.Ledgers, ledger)
	}

	return result, nil
}

// BuildLedger builds the ledger of a single account within the scope.
// An account with no in-scope orders gets an empty pending_invoice ledger.
func (a *LedgerAggregator) BuildLedger(accountID uuid.UUID, input LedgerInput) (*entity.AccountLedger, []entity.LedgerIssue, error) {
	result, err := a.BuildLedgers(input)
	if err != nil {
		return nil, nil, err
	}
	if ledger := result.Find(accountID); ledger != nil {
		return ledger, result.Issues, nil
	}
	return &entity.AccountLedger{
		AccountID:          accountID,
		Scope:              input.Scope,
		AggregatePayStatus: valueobject.PayStatusPendingInvoice,
	}, result.Issues, nil
}

func (a *LedgerAggregator) build(
	scope entity.LedgerScope,
	brand *entity.Brand,
	accountID uuid.UUID,
	orders []*entity.Order,
	entries map[uuid.UUID]*entity.CommissionEntry,
	paymentLedgers []*entity.AccountPaymentLedger,
) (*entity.AccountLedger, error) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	ledger := &entity.AccountLedger{
		AccountID: accountID,
		Scope:     scope,
		Members:   make([]entity.LedgerMember, 0, len(orders)),
	}

	var statuses []valueobject.PayStatus
	var payments []entity.Payment
	for _, order := range orders {
		due, percent, err := OrderCommission(brand, order)
		if err != nil {
			return nil, err
		}

		entry := entries[order.ID]
		member := entity.LedgerMember{
			Order:         order,
			Entry:         entry,
			Percent:       percent,
			CommissionDue: due,
			PayStatus:     entry.Status(),
			Excluded:      order.IsExcluded(),
		}
		if entry != nil {
			member.Paid = entry.AmountPaid()
			payments = append(payments, entry.Payments...)
		}

		// Recorded payments always count, even when the order's stage is now excluded.
		ledger.TotalPaid = ledger.TotalPaid.Add(member.Paid)

		switch {
		case !member.Excluded:
			ledger.TotalOrderValue = ledger.TotalOrderValue.Add(order.Total)
			ledger.TotalCommissionDue = ledger.TotalCommissionDue.Add(due)
			statuses = append(statuses, member.PayStatus)
		case member.PayStatus == valueobject.PayStatusShortShipped:
			statuses = append(statuses, member.PayStatus)
		}

		ledger.Members = append(ledger.Members, member)
	}

	for _, pl := range paymentLedgers {
		ledger.TotalPaid = ledger.TotalPaid.Add(pl.Total())
		ledger.Payments = append(ledger.Payments, pl.Payments...)
		payments = append(payments, pl.Payments...)
	}
	ledger.LastPaidDate = entity.LatestPaymentDate(payments)

	ledger.AggregatePayStatus = valueobject.AggregatePayStatus(statuses)
	applyAdjustments(ledger)

	return ledger, nil
}

// applyAdjustments fills the remaining balance and the reporting adjustments.
// Totals are never rewritten.
func applyAdjustments(ledger *entity.AccountLedger) {
	totals := ledger.Totals()

	ledger.IsShortShipped = ledger.AggregatePayStatus == valueobject.PayStatusShortShipped
	if ledger.IsShortShipped {
		ledger.AmountRemaining = valueobject.Zero
	} else {
		ledger.AmountRemaining = totals.Outstanding().ClampZero()
	}

	if adj, ok := valueobject.ComputeShortShip(ledger.AggregatePayStatus, totals); ok {
		ledger.UnshippedSalesValue = adj.UnshippedSalesValue
		ledger.AdjustedSaleValue = adj.AdjustedSaleValue
		ledger.AdjustedCommissionValue = adj.AdjustedCommissionValue
	}

	if adj, ok := valueobject.ComputeOverpayment(ledger.AggregatePayStatus, totals); ok {
		ledger.IsOverpaid = true
		ledger.OverpaidAdjustedSaleValue = adj.AdjustedSaleValue
		ledger.Surplus = adj.Surplus
	}
}

func scopeCoversPaymentLedger(scope entity.LedgerScope, pl *entity.AccountPaymentLedger) bool {
	if pl.BrandID != scope.BrandID {
		return false
	}
	return scope.AllTrackers || pl.TrackerID == scope.TrackerID
}
