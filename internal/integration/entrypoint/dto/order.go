// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	AccountID          string  `json:"account_id" binding:"required,uuid"`
	BrandID            string  `json:"brand_id" binding:"required,uuid"`
	TrackerID          string  `json:"tracker_id" binding:"required,uuid"`
	Category           string  `json:"category,omitempty"`
	Total              string  `json:"total" binding:"required,decimal_amount"`
	CommissionOverride *string `json:"commission_override,omitempty" binding:"omitempty,percent"`
	Stage              string  `json:"stage" binding:"required"`
	CloseDate          *string `json:"close_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateOrderRequest represents the request body for order update.
type UpdateOrderRequest struct {
	Category           *string `json:"category,omitempty"`
	Total              *string `json:"total,omitempty" binding:"omitempty,decimal_amount"`
	CommissionOverride *string `json:"commission_override,omitempty" binding:"omitempty,percent"`
	ClearOverride      bool    `json:"clear_override,omitempty"`
	Stage              *string `json:"stage,omitempty"`
	CloseDate          *string `json:"close_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// SetPayStatusRequest represents the request body for a per-order status change.
type SetPayStatusRequest struct {
	PayStatus string `json:"pay_status" binding:"required,pay_status"`
}

// OrderResponse represents an order with its commission figures.
type OrderResponse struct {
	ID                 string                   `json:"id"`
	AccountID          string                   `json:"account_id"`
	BrandID            string                   `json:"brand_id"`
	TrackerID          string                   `json:"tracker_id"`
	Category           string                   `json:"category,omitempty"`
	Total              string                   `json:"total"`
	CommissionOverride *string                  `json:"commission_override,omitempty"`
	Stage              string                   `json:"stage"`
	CloseDate          *string                  `json:"close_date,omitempty"`
	CommissionPercent  string                   `json:"commission_percent"`
	CommissionDue      string                   `json:"commission_due"`
	Entry              *CommissionEntryResponse `json:"entry,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// CommissionEntryResponse represents the stored commission record of an order.
type CommissionEntryResponse struct {
	OrderID         string            `json:"order_id"`
	CommissionDue   string            `json:"commission_due"`
	PayStatus       string            `json:"pay_status"`
	AmountPaid      string            `json:"amount_paid"`
	AmountRemaining string            `json:"amount_remaining"`
	PaidDate        *string           `json:"paid_date,omitempty"`
	Payments        []PaymentResponse `json:"payments"`
}

// ToOrderResponse converts an order and its resolved commission to an OrderResponse DTO.
func ToOrderResponse(o *entity.Order, percent decimal.Decimal, due valueobject.Money) OrderResponse {
	response := OrderResponse{
		ID:                o.ID.String(),
		AccountID:         o.AccountID.String(),
		BrandID:           o.BrandID.String(),
		TrackerID:         o.TrackerID.String(),
		Category:          o.Category,
		Total:             o.Total.String(),
		Stage:             o.Stage,
		CloseDate:         formatDate(o.CloseDate),
		CommissionPercent: formatPercent(percent),
		CommissionDue:     due.String(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if o.CommissionOverride != nil {
		override := formatPercent(*o.CommissionOverride)
		response.CommissionOverride = &override
	}

	return response
}

// ToCommissionEntryResponse converts a domain CommissionEntry to a CommissionEntryResponse DTO.
func ToCommissionEntryResponse(e *entity.CommissionEntry) *CommissionEntryResponse {
	if e == nil {
		return nil
	}

	return &CommissionEntryResponse{
		OrderID:         e.OrderID.String(),
		CommissionDue:   e.CommissionDue.String(),
		PayStatus:       string(e.Status()),
		AmountPaid:      e.AmountPaid().String(),
		AmountRemaining: e.AmountRemaining().String(),
		PaidDate:        formatDate(e.PaidDate()),
		Payments:        toPaymentResponses(e.Payments),
	}
}
