// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/domain/entity"
)

// RecordPaymentRequest represents the request body for a group payment.
type RecordPaymentRequest struct {
	TrackerID string  `json:"tracker_id" binding:"required,uuid"`
	Amount    string  `json:"amount" binding:"required,decimal_amount"`
	Date      *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Reference string  `json:"reference,omitempty" binding:"omitempty,max=255"`
}

// MarkShortShippedRequest represents the request body for marking a group short-shipped.
type MarkShortShippedRequest struct {
	TrackerID string `json:"tracker_id" binding:"required,uuid"`
}

// LedgerMemberResponse represents one order inside an account ledger.
type LedgerMemberResponse struct {
	OrderID           string  `json:"order_id"`
	TrackerID         string  `json:"tracker_id"`
	Category          string  `json:"category,omitempty"`
	Stage             string  `json:"stage"`
	Total             string  `json:"total"`
	CommissionPercent string  `json:"commission_percent"`
	CommissionDue     string  `json:"commission_due"`
	Paid              string  `json:"paid"`
	PayStatus         string  `json:"pay_status"`
	Excluded          bool    `json:"excluded"`
	CloseDate         *string `json:"close_date,omitempty"`
}

// ShortShipResponse carries the back-calculated figures of a short-shipped group.
type ShortShipResponse struct {
	UnshippedSalesValue     string `json:"unshipped_sales_value"`
	AdjustedSaleValue       string `json:"adjusted_sale_value"`
	AdjustedCommissionValue string `json:"adjusted_commission_value"`
}

// OverpaymentResponse carries the back-calculated figures of an overpaid group.
type OverpaymentResponse struct {
	AdjustedSaleValue string `json:"adjusted_sale_value"`
	Surplus           string `json:"surplus"`
}

// LedgerResponse represents an account ledger.
type LedgerResponse struct {
	AccountID          string                 `json:"account_id"`
	AccountName        string                 `json:"account_name,omitempty"`
	BrandID            string                 `json:"brand_id"`
	TrackerID          *string                `json:"tracker_id,omitempty"`
	AllTrackers        bool                   `json:"all_trackers"`
	Members            []LedgerMemberResponse `json:"members"`
	TotalOrderValue    string                 `json:"total_order_value"`
	TotalCommissionDue string                 `json:"total_commission_due"`
	TotalPaid          string                 `json:"total_paid"`
	AmountRemaining    string                 `json:"amount_remaining"`
	PayStatus          string                 `json:"pay_status"`
	LastPaidDate       *string                `json:"last_paid_date,omitempty"`
	Payments           []PaymentResponse      `json:"payments"`
	ShortShip          *ShortShipResponse     `json:"short_ship,omitempty"`
	Overpayment        *OverpaymentResponse   `json:"overpayment,omitempty"`
}

// LedgerIssueResponse describes an entry left out of aggregation.
type LedgerIssueResponse struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// LedgerListResponse represents the response for listing ledgers.
type LedgerListResponse struct {
	BrandID string                `json:"brand_id"`
	Ledgers []LedgerResponse      `json:"ledgers"`
	Issues  []LedgerIssueResponse `json:"issues,omitempty"`
}

// LedgerDetailResponse represents one account ledger with its issues.
type LedgerDetailResponse struct {
	LedgerResponse
	Issues []LedgerIssueResponse `json:"issues,omitempty"`
}

// EntryFailureResponse reports an entry whose status write failed.
type EntryFailureResponse struct {
	OrderID string `json:"order_id"`
	Error   string `json:"error"`
}

// RecordPaymentResponse represents the result of recording a group payment.
type RecordPaymentResponse struct {
	Ledger    LedgerResponse         `json:"ledger"`
	Payment   PaymentResponse        `json:"payment"`
	Duplicate bool                   `json:"duplicate"`
	Failures  []EntryFailureResponse `json:"failures,omitempty"`
}

// MarkShortShippedResponse represents the result of marking a group short-shipped.
type MarkShortShippedResponse struct {
	Ledger   LedgerResponse         `json:"ledger"`
	Failures []EntryFailureResponse `json:"failures,omitempty"`
}

// ToLedgerResponse converts a domain AccountLedger to a LedgerResponse DTO.
func ToLedgerResponse(l *entity.AccountLedger, accountName string) LedgerResponse {
	response := LedgerResponse{
		AccountID:          l.AccountID.String(),
		AccountName:        accountName,
		BrandID:            l.Scope.BrandID.String(),
		AllTrackers:        l.Scope.AllTrackers,
		Members:            make([]LedgerMemberResponse, len(l.Members)),
		TotalOrderValue:    l.TotalOrderValue.String(),
		TotalCommissionDue: l.TotalCommissionDue.String(),
		TotalPaid:          l.TotalPaid.String(),
		AmountRemaining:    l.AmountRemaining.String(),
		PayStatus:          string(l.AggregatePayStatus),
		LastPaidDate:       formatDate(l.LastPaidDate),
		Payments:           toPaymentResponses(l.Payments),
	}

	if !l.Scope.AllTrackers {
		trackerID := l.Scope.TrackerID.String()
		response.TrackerID = &trackerID
	}

	for i, m := range l.Members {
		response.Members[i] = LedgerMemberResponse{
			OrderID:           m.Order.ID.String(),
			TrackerID:         m.Order.TrackerID.String(),
			Category:          m.Order.Category,
			Stage:             m.Order.Stage,
			Total:             m.Order.Total.String(),
			CommissionPercent: formatPercent(m.Percent),
			CommissionDue:     m.CommissionDue.String(),
			Paid:              m.Paid.String(),
			PayStatus:         string(m.PayStatus),
			Excluded:          m.Excluded,
			CloseDate:         formatDate(m.Order.CloseDate),
		}
	}

	if l.IsShortShipped {
		response.ShortShip = &ShortShipResponse{
			UnshippedSalesValue:     l.UnshippedSalesValue.String(),
			AdjustedSaleValue:       l.AdjustedSaleValue.String(),
			AdjustedCommissionValue: l.AdjustedCommissionValue.String(),
		}
	}
	if l.IsOverpaid {
		response.Overpayment = &OverpaymentResponse{
			AdjustedSaleValue: l.OverpaidAdjustedSaleValue.String(),
			Surplus:           l.Surplus.String(),
		}
	}

	return response
}

// ToLedgerListResponse converts a ListLedgersOutput to a LedgerListResponse DTO.
func ToLedgerListResponse(output *ledger.ListLedgersOutput) LedgerListResponse {
	response := LedgerListResponse{
		BrandID: output.Brand.ID.String(),
		Ledgers: make([]LedgerResponse, len(output.Ledgers)),
		Issues:  ToLedgerIssueResponses(output.Issues),
	}
	for i, l := range output.Ledgers {
		response.Ledgers[i] = ToLedgerResponse(l, "")
	}
	return response
}

// ToLedgerIssueResponses converts ledger issues to LedgerIssueResponse DTOs.
func ToLedgerIssueResponses(issues []entity.LedgerIssue) []LedgerIssueResponse {
	if len(issues) == 0 {
		return nil
	}

	responses := make([]LedgerIssueResponse, len(issues))
	for i, issue := range issues {
		responses[i] = LedgerIssueResponse{
			OrderID: issue.OrderID.String(),
			Reason:  issue.Reason,
		}
	}
	return responses
}

// ToEntryFailureResponses converts entry failures to EntryFailureResponse DTOs.
func ToEntryFailureResponses(failures []ledger.EntryFailure) []EntryFailureResponse {
	if len(failures) == 0 {
		return nil
	}

	responses := make([]EntryFailureResponse, len(failures))
	for i, f := range failures {
		responses[i] = EntryFailureResponse{
			OrderID: f.OrderID.String(),
			Error:   f.Err.Error(),
		}
	}
	return responses
}
