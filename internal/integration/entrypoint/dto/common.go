// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// RegisterValidators installs the custom binding rules on gin's validator:
// decimal_amount for money strings, percent for rates in [0,100] and
// pay_status for status names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a validator.Validate")
	}

	rules := map[string]validator.Func{
		"decimal_amount": validateDecimalAmount,
		"percent":        validatePercent,
		"pay_status":     validatePayStatus,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := valueobject.ParseMoney(fl.Field().String())
	return err == nil && !amount.IsNegative()
}

func validatePercent(fl validator.FieldLevel) bool {
	_, err := ParsePercent(fl.Field().String())
	return err == nil
}

func validatePayStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.TrimSpace(value) == "" {
		return false
	}
	_, err := valueobject.ParsePayStatus(value)
	return err == nil
}

// ParsePercent parses a commission percent and checks it is within [0,100].
func ParsePercent(s string) (decimal.Decimal, error) {
	percent, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percent %q", s)
	}
	if err := entity.ValidatePercent(percent); err != nil {
		return decimal.Zero, err
	}
	return percent, nil
}

// ParsePercentMap parses category overrides. A nil map stays nil.
func ParsePercentMap(raw map[string]string) (map[string]decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}

	parsed := make(map[string]decimal.Decimal, len(raw))
	for category, value := range raw {
		percent, err := ParsePercent(value)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category, err)
		}
		parsed[category] = percent
	}
	return parsed, nil
}

// ParseDate parses an optional YYYY-MM-DD date. Nil or blank yields nil.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	d, err := time.Parse(DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *s)
	}
	return &d, nil
}

// ParseOptionalUUID parses an optional id. Blank yields nil.
func ParseOptionalUUID(s string) (*uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(DateLayout)
	return &s
}

func formatPercent(p decimal.Decimal) string {
	return p.String()
}

// PaymentResponse represents one recorded payment.
type PaymentResponse struct {
	ID        string  `json:"id"`
	Amount    string  `json:"amount"`
	Date      *string `json:"date,omitempty"`
	Reference string  `json:"reference,omitempty"`
	Source    string  `json:"source"`
}

// ToPaymentResponse converts a domain Payment to a PaymentResponse DTO.
func ToPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		Amount:    p.Amount.String(),
		Date:      formatDate(p.Date),
		Reference: p.Reference,
		Source:    string(p.Source),
	}
}

func toPaymentResponses(payments []entity.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return responses
}
