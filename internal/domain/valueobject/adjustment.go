package valueobject

import "github.com/shopspring/decimal"

// LedgerTotals are the three figures the adjustment engine works from.
type LedgerTotals struct {
	OrderValue    Money
	CommissionDue Money
	Paid          Money
}

// AverageRate returns the group's effective commission percent
// (CommissionDue / OrderValue * 100), or zero when there is no order value.
func (t LedgerTotals) AverageRate() decimal.Decimal {
	if t.OrderValue <= 0 {
		return decimal.Zero
	}
	return t.CommissionDue.Decimal().Div(t.OrderValue.Decimal()).Mul(hundred)
}

// Outstanding returns CommissionDue - Paid without clamping.
func (t LedgerTotals) Outstanding() Money {
	return t.CommissionDue.Sub(t.Paid)
}

// ShortShipAdjustment is the back-calculation for a short-shipped group.
type ShortShipAdjustment struct {
	Gap                     Money
	AverageRate             decimal.Decimal
	UnshippedSalesValue     Money
	AdjustedSaleValue       Money
	AdjustedCommissionValue Money
}

// OverpaymentAdjustment is the back-calculation for an overpaid group.
type OverpaymentAdjustment struct {
	AverageRate       decimal.Decimal
	AdjustedSaleValue Money
	Surplus           Money
}

// ComputeShortShip infers how much sale value never shipped from the unpaid
// commission gap, using the group's average rate.
//
// The average rate is an approximation when member orders carry different
// category rates; the gap is not allocated to specific orders.
// Returns false when the group is not short-shipped or nothing is missing.
func ComputeShortShip(status PayStatus, totals LedgerTotals) (ShortShipAdjustment, bool) {
	if status != PayStatusShortShipped || totals.Paid >= totals.CommissionDue {
		return ShortShipAdjustment{}, false
	}

	gap := totals.CommissionDue.Sub(totals.Paid)
	avgRate := totals.AverageRate()

	var unshipped Money
	if avgRate.IsPositive() {
		unshipped = MoneyFromDecimal(gap.Decimal().Div(avgRate.Div(hundred)))
	}

	return ShortShipAdjustment{
		Gap:                     gap,
		AverageRate:             avgRate,
		UnshippedSalesValue:     unshipped,
		AdjustedSaleValue:       totals.OrderValue.Sub(unshipped),
		AdjustedCommissionValue: totals.Paid,
	}, true
}

// ComputeOverpayment infers the sale value the received commission would
// correspond to at the group's average rate.
// Returns false when the group is short-shipped, has nothing due, or is not overpaid.
func ComputeOverpayment(status PayStatus, totals LedgerTotals) (OverpaymentAdjustment, bool) {
	if status == PayStatusShortShipped || totals.CommissionDue <= 0 || totals.Paid <= totals.CommissionDue {
		return OverpaymentAdjustment{}, false
	}

	avgRate := totals.AverageRate()
	adjusted := totals.OrderValue
	if avgRate.IsPositive() {
		adjusted = MoneyFromDecimal(totals.Paid.Decimal().Div(avgRate.Div(hundred)))
	}

	return OverpaymentAdjustment{
		AverageRate:       avgRate,
		AdjustedSaleValue: adjusted,
		Surplus:           totals.Paid.Sub(totals.CommissionDue),
	}, true
}
