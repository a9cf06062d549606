package valueobject

import "testing"

func TestComputeShortShip(t *testing.T) {
	t.Run("round trip at ten percent", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 100000, CommissionDue: 10000, Paid: 6000}

		adj, ok := ComputeShortShip(PayStatusShortShipped, totals)
		if !ok {
			t.Fatal("expected short-ship adjustment to apply")
		}
		if adj.Gap != 4000 {
			t.Errorf("expected gap 4000, got %d", adj.Gap)
		}
		if adj.AverageRate.String() != "10" {
			t.Errorf("expected average rate 10, got %s", adj.AverageRate)
		}
		if adj.UnshippedSalesValue != 40000 {
			t.Errorf("expected unshipped 40000, got %d", adj.UnshippedSalesValue)
		}
		if adj.AdjustedSaleValue != 60000 {
			t.Errorf("expected adjusted sale 60000, got %d", adj.AdjustedSaleValue)
		}
		if adj.AdjustedCommissionValue != 6000 {
			t.Errorf("expected adjusted commission 6000, got %d", adj.AdjustedCommissionValue)
		}
	})

	t.Run("not short shipped", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 100000, CommissionDue: 10000, Paid: 6000}
		if _, ok := ComputeShortShip(PayStatusPartial, totals); ok {
			t.Error("expected no adjustment for partial status")
		}
	})

	t.Run("fully paid short shipped group", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 100000, CommissionDue: 10000, Paid: 10000}
		if _, ok := ComputeShortShip(PayStatusShortShipped, totals); ok {
			t.Error("expected no adjustment when nothing is missing")
		}
	})

	t.Run("zero order value guards division", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 0, CommissionDue: 500, Paid: 0}
		adj, ok := ComputeShortShip(PayStatusShortShipped, totals)
		if !ok {
			t.Fatal("expected adjustment to apply")
		}
		if adj.UnshippedSalesValue != 0 {
			t.Errorf("expected unshipped 0, got %d", adj.UnshippedSalesValue)
		}
		if adj.AdjustedSaleValue != 0 {
			t.Errorf("expected adjusted sale 0, got %d", adj.AdjustedSaleValue)
		}
	})
}

func TestComputeOverpayment(t *testing.T) {
	t.Run("overpaid at ten percent", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 100000, CommissionDue: 10000, Paid: 15000}

		adj, ok := ComputeOverpayment(PayStatusPaid, totals)
		if !ok {
			t.Fatal("expected overpayment adjustment to apply")
		}
		if adj.AdjustedSaleValue != 150000 {
			t.Errorf("expected adjusted sale 150000, got %d", adj.AdjustedSaleValue)
		}
		if adj.Surplus != 5000 {
			t.Errorf("expected surplus 5000, got %d", adj.Surplus)
		}
	})

	t.Run("short shipped groups are never overpaid", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 100000, CommissionDue: 10000, Paid: 15000}
		if _, ok := ComputeOverpayment(PayStatusShortShipped, totals); ok {
			t.Error("expected no overpayment for short_shipped")
		}
	})

	t.Run("nothing due", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 0, CommissionDue: 0, Paid: 100}
		if _, ok := ComputeOverpayment(PayStatusPaid, totals); ok {
			t.Error("expected no overpayment when nothing is due")
		}
	})

	t.Run("exactly paid", func(t *testing.T) {
		totals := LedgerTotals{OrderValue: 100000, CommissionDue: 10000, Paid: 10000}
		if _, ok := ComputeOverpayment(PayStatusPaid, totals); ok {
			t.Error("expected no overpayment when paid equals due")
		}
	})
}
