package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestMergePayments(t *testing.T) {
	first := NewPayment(6000, date("2024-03-01"), "CHK-1001", PaymentSourceManual)

	t.Run("re-applying an identical payment is a no-op", func(t *testing.T) {
		once, added := MergePayments(nil, first)
		if added != 1 {
			t.Fatalf("expected 1 added, got %d", added)
		}

		replay := NewPayment(6000, date("2024-03-01"), "chk-1001 ", PaymentSourceImport)
		twice, added := MergePayments(once, replay)
		if added != 0 {
			t.Errorf("expected 0 added on replay, got %d", added)
		}
		if SumPayments(twice) != SumPayments(once) {
			t.Errorf("expected total %d, got %d", SumPayments(once), SumPayments(twice))
		}
	})

	t.Run("distinct payments accumulate", func(t *testing.T) {
		second := NewPayment(6000, date("2024-04-01"), "CHK-1002", PaymentSourceManual)
		merged, added := MergePayments([]Payment{first}, second)
		if added != 1 {
			t.Errorf("expected 1 added, got %d", added)
		}
		if SumPayments(merged) != 12000 {
			t.Errorf("expected total 12000, got %d", SumPayments(merged))
		}
	})

	t.Run("duplicates inside one batch collapse", func(t *testing.T) {
		merged, added := MergePayments(nil, first, first)
		if added != 1 || len(merged) != 1 {
			t.Errorf("expected a single payment, got %d added, %d total", added, len(merged))
		}
	})
}

func TestMigrateLegacyPayments(t *testing.T) {
	t.Run("legacy amount becomes one payment", func(t *testing.T) {
		payments := MigrateLegacyPayments(2500, date("2023-11-15"), nil)
		if len(payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(payments))
		}
		if payments[0].Amount != 2500 || payments[0].Source != PaymentSourceLegacy {
			t.Errorf("unexpected payment %+v", payments[0])
		}
	})

	t.Run("migration is stable across loads", func(t *testing.T) {
		a := MigrateLegacyPayments(2500, date("2023-11-15"), nil)
		b := MigrateLegacyPayments(2500, date("2023-11-15"), nil)
		if a[0].ID != b[0].ID {
			t.Error("expected deterministic legacy payment id")
		}
		merged, added := MergePayments(a, b...)
		if added != 0 || SumPayments(merged) != 2500 {
			t.Errorf("expected legacy replay to be a no-op, got %d added", added)
		}
	})

	t.Run("explicit list wins over legacy fields", func(t *testing.T) {
		list := []Payment{
			NewPayment(1000, date("2024-01-01"), "", PaymentSourceManual),
			NewPayment(1500, date("2024-02-01"), "", PaymentSourceManual),
		}
		payments := MigrateLegacyPayments(2500, date("2024-02-01"), list)
		if SumPayments(payments) != 2500 || len(payments) != 2 {
			t.Errorf("expected the explicit list untouched, got %d payments", len(payments))
		}
	})

	t.Run("zero legacy amount yields no payments", func(t *testing.T) {
		if payments := MigrateLegacyPayments(valueobject.Zero, nil, nil); len(payments) != 0 {
			t.Errorf("expected no payments, got %d", len(payments))
		}
	})
}

func TestCommissionEntry_Derived(t *testing.T) {
	entry := NewCommissionEntry(&Order{ID: uuid.New()}, 10000)
	entry.Payments = []Payment{
		NewPayment(3000, date("2024-01-10"), "a", PaymentSourceManual),
		NewPayment(2000, date("2024-02-10"), "b", PaymentSourceManual),
	}

	if entry.AmountPaid() != 5000 {
		t.Errorf("expected paid 5000, got %d", entry.AmountPaid())
	}
	if entry.AmountRemaining() != 5000 {
		t.Errorf("expected remaining 5000, got %d", entry.AmountRemaining())
	}
	if got := entry.PaidDate(); got == nil || !got.Equal(*date("2024-02-10")) {
		t.Errorf("expected latest paid date 2024-02-10, got %v", got)
	}

	entry.Payments = append(entry.Payments, NewPayment(9000, nil, "c", PaymentSourceManual))
	if entry.AmountRemaining() != 0 {
		t.Errorf("expected remaining clamped to 0, got %d", entry.AmountRemaining())
	}
}
