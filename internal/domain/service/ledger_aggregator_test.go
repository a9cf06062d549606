package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

type ledgerFixture struct {
	brand     *entity.Brand
	trackerID uuid.UUID
	accountID uuid.UUID
}

func newLedgerFixture() ledgerFixture {
	return ledgerFixture{
		brand:     entity.NewBrand("Acme", percent("10"), map[string]decimal.Decimal{"Rental": percent("15")}, nil, nil),
		trackerID: uuid.New(),
		accountID: uuid.New(),
	}
}

func (f ledgerFixture) order(category string, total valueobject.Money, override *decimal.Decimal, stage string) *entity.Order {
	return newOrder(f.accountID, f.brand.ID, f.trackerID, category, total, override, stage)
}

func (f ledgerFixture) scope() entity.LedgerScope {
	return entity.TrackerScope(f.brand.ID, f.trackerID)
}

func entryWith(order *entity.Order, status valueobject.PayStatus, amounts ...valueobject.Money) *entity.CommissionEntry {
	entry := entity.NewCommissionEntry(order, 0)
	entry.PayStatus = status
	for i, amount := range amounts {
		d := time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC)
		entry.Payments = append(entry.Payments, entity.NewPayment(amount, &d, "", entity.PaymentSourceManual))
	}
	return entry
}

func TestLedgerAggregator_EndToEnd(t *testing.T) {
	f := newLedgerFixture()
	override := percent("20")
	orderA := f.order("Rental", 100000, nil, "Open")
	orderB := f.order("Retail", 50000, &override, "Open")

	ledger, issues, err := NewLedgerAggregator(nil).BuildLedger(f.accountID, LedgerInput{
		Scope:  f.scope(),
		Brand:  f.brand,
		Orders: []*entity.Order{orderA, orderB},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}

	dues := map[uuid.UUID]valueobject.Money{}
	for _, m := range ledger.Members {
		dues[m.Order.ID] = m.CommissionDue
	}
	if dues[orderA.ID] != 15000 {
		t.Errorf("expected order A commission 15000, got %d", dues[orderA.ID])
	}
	if dues[orderB.ID] != 10000 {
		t.Errorf("expected order B commission 10000, got %d", dues[orderB.ID])
	}
	if ledger.TotalCommissionDue != 25000 {
		t.Errorf("expected total commission 25000, got %d", ledger.TotalCommissionDue)
	}
	if ledger.TotalOrderValue != 150000 {
		t.Errorf("expected total order value 150000, got %d", ledger.TotalOrderValue)
	}
	if ledger.AggregatePayStatus != valueobject.PayStatusPendingInvoice {
		t.Errorf("expected pending_invoice, got %s", ledger.AggregatePayStatus)
	}
	if ledger.AmountRemaining != 25000 {
		t.Errorf("expected remaining 25000, got %d", ledger.AmountRemaining)
	}
}

func TestLedgerAggregator_PaymentsAcrossMembers(t *testing.T) {
	f := newLedgerFixture()
	first := f.order("Retail", 100000, nil, "Open")
	second := f.order("Retail", 50000, nil, "Open")
	cancelled := f.order("Retail", 40000, nil, entity.StageCancelled)

	groupLedger := entity.NewAccountPaymentLedger(f.accountID, f.brand.ID, f.trackerID)
	groupLedger.Record(entity.NewPayment(1000, nil, "remit-7", entity.PaymentSourceImport))

	ledger, _, err := NewLedgerAggregator(nil).BuildLedger(f.accountID, LedgerInput{
		Scope:  f.scope(),
		Brand:  f.brand,
		Orders: []*entity.Order{first, second, cancelled},
		Entries: []*entity.CommissionEntry{
			entryWith(first, valueobject.PayStatusPartial, 5000),
			entryWith(second, valueobject.PayStatusUnpaid, 2000),
			entryWith(cancelled, valueobject.PayStatusPaid, 4000),
		},
		PaymentLedgers: []*entity.AccountPaymentLedger{groupLedger},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ledger.TotalOrderValue != 150000 {
		t.Errorf("expected cancelled order excluded from value, got %d", ledger.TotalOrderValue)
	}
	if ledger.TotalCommissionDue != 15000 {
		t.Errorf("expected cancelled order excluded from commission, got %d", ledger.TotalCommissionDue)
	}
	if ledger.TotalPaid != 12000 {
		t.Errorf("expected paid 12000 across all members and group, got %d", ledger.TotalPaid)
	}
	if ledger.AmountRemaining != 3000 {
		t.Errorf("expected remaining 3000, got %d", ledger.AmountRemaining)
	}
	if ledger.AggregatePayStatus != valueobject.PayStatusPartial {
		t.Errorf("expected partial, got %s", ledger.AggregatePayStatus)
	}
	if len(ledger.Members) != 3 {
		t.Errorf("expected 3 members, got %d", len(ledger.Members))
	}
}

func TestLedgerAggregator_Adjustments(t *testing.T) {
	t.Run("short shipped group", func(t *testing.T) {
		f := newLedgerFixture()
		order := f.order("Retail", 100000, nil, "Open")

		ledger, _, err := NewLedgerAggregator(nil).BuildLedger(f.accountID, LedgerInput{
			Scope:   f.scope(),
			Brand:   f.brand,
			Orders:  []*entity.Order{order},
			Entries: []*entity.CommissionEntry{entryWith(order, valueobject.PayStatusShortShipped, 6000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ledger.IsShortShipped || ledger.AmountRemaining != 0 {
			t.Errorf("expected short shipped with nothing remaining, got %v / %d", ledger.IsShortShipped, ledger.AmountRemaining)
		}
		if ledger.UnshippedSalesValue != 40000 || ledger.AdjustedSaleValue != 60000 || ledger.AdjustedCommissionValue != 6000 {
			t.Errorf("unexpected adjustment %d / %d / %d", ledger.UnshippedSalesValue, ledger.AdjustedSaleValue, ledger.AdjustedCommissionValue)
		}
		if ledger.TotalOrderValue != 100000 {
			t.Errorf("expected totals untouched, got %d", ledger.TotalOrderValue)
		}
	})

	t.Run("overpaid group", func(t *testing.T) {
		f := newLedgerFixture()
		order := f.order("Retail", 100000, nil, "Open")

		ledger, _, err := NewLedgerAggregator(nil).BuildLedger(f.accountID, LedgerInput{
			Scope:   f.scope(),
			Brand:   f.brand,
			Orders:  []*entity.Order{order},
			Entries: []*entity.CommissionEntry{entryWith(order, valueobject.PayStatusPaid, 15000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ledger.IsOverpaid || ledger.OverpaidAdjustedSaleValue != 150000 || ledger.Surplus != 5000 {
			t.Errorf("unexpected overpayment %v / %d / %d", ledger.IsOverpaid, ledger.OverpaidAdjustedSaleValue, ledger.Surplus)
		}
		if ledger.AmountRemaining != 0 {
			t.Errorf("expected remaining 0, got %d", ledger.AmountRemaining)
		}
	})

	t.Run("excluded member carrying short_shipped still dominates", func(t *testing.T) {
		f := newLedgerFixture()
		open := f.order("Retail", 100000, nil, "Open")
		shorted := f.order("Retail", 20000, nil, entity.StageShortShipped)

		ledger, _, err := NewLedgerAggregator(nil).BuildLedger(f.accountID, LedgerInput{
			Scope:  f.scope(),
			Brand:  f.brand,
			Orders: []*entity.Order{open, shorted},
			Entries: []*entity.CommissionEntry{
				entryWith(open, valueobject.PayStatusPaid, 10000),
				entryWith(shorted, valueobject.PayStatusShortShipped),
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.AggregatePayStatus != valueobject.PayStatusShortShipped {
			t.Errorf("expected short_shipped, got %s", ledger.AggregatePayStatus)
		}
	})
}

func TestLedgerAggregator_InconsistentEntry(t *testing.T) {
	f := newLedgerFixture()
	order := f.order("Retail", 100000, nil, "Open")
	orphan := &entity.CommissionEntry{OrderID: uuid.New(), PayStatus: valueobject.PayStatusPaid}
	orphan.Payments = []entity.Payment{entity.NewPayment(99999, nil, "", entity.PaymentSourceManual)}

	result, err := NewLedgerAggregator(nil).BuildLedgers(LedgerInput{
		Scope:   f.scope(),
		Brand:   f.brand,
		Orders:  []*entity.Order{order},
		Entries: []*entity.CommissionEntry{orphan},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Issues) != 1 || result.Issues[0].OrderID != orphan.OrderID {
		t.Fatalf("expected one issue for the orphan entry, got %v", result.Issues)
	}
	if ledger := result.Find(f.accountID); ledger == nil || ledger.TotalPaid != 0 {
		t.Error("expected orphan payments excluded from totals")
	}
}

func TestLedgerAggregator_Scope(t *testing.T) {
	f := newLedgerFixture()
	otherTracker := uuid.New()
	inTracker := f.order("Retail", 100000, nil, "Open")
	elsewhere := newOrder(f.accountID, f.brand.ID, otherTracker, "Retail", 50000, nil, "Open")
	orders := []*entity.Order{inTracker, elsewhere}

	aggregator := NewLedgerAggregator(nil)

	t.Run("implicit scope is rejected", func(t *testing.T) {
		_, err := aggregator.BuildLedgers(LedgerInput{Scope: entity.LedgerScope{BrandID: f.brand.ID}, Brand: f.brand, Orders: orders})
		if !errors.Is(err, domainerror.ErrInvalidScope) {
			t.Errorf("expected ErrInvalidScope, got %v", err)
		}
	})

	t.Run("single tracker", func(t *testing.T) {
		ledger, _, err := aggregator.BuildLedger(f.accountID, LedgerInput{Scope: f.scope(), Brand: f.brand, Orders: orders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.TotalOrderValue != 100000 {
			t.Errorf("expected only the tracker's order, got %d", ledger.TotalOrderValue)
		}
	})

	t.Run("all trackers", func(t *testing.T) {
		ledger, _, err := aggregator.BuildLedger(f.accountID, LedgerInput{Scope: entity.AllTrackersScope(f.brand.ID), Brand: f.brand, Orders: orders})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.TotalOrderValue != 150000 {
			t.Errorf("expected both orders, got %d", ledger.TotalOrderValue)
		}
	})

	t.Run("invalid rate fails the build", func(t *testing.T) {
		bad := percent("101")
		order := f.order("Retail", 1000, &bad, "Open")
		_, err := aggregator.BuildLedgers(LedgerInput{Scope: f.scope(), Brand: f.brand, Orders: []*entity.Order{order}})
		if !errors.Is(err, domainerror.ErrInvalidRate) {
			t.Errorf("expected ErrInvalidRate, got %v", err)
		}
	})
}
