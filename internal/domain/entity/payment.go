// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// PaymentSource records where a payment came from.
type PaymentSource string

const (
	PaymentSourceManual PaymentSource = "manual"
	PaymentSourceImport PaymentSource = "import"
	PaymentSourceLegacy PaymentSource = "legacy"
)

// Payment is a single commission payment event.
type Payment struct {
	ID        uuid.UUID
	Amount    valueobject.Money
	Date      *time.Time
	Reference string // Check number, remittance id or import row reference
	Source    PaymentSource
	CreatedAt time.Time
}

// NewPayment creates a new Payment.
func NewPayment(amount valueobject.Money, date *time.Time, reference string, source PaymentSource) Payment {
	return Payment{
		ID:        uuid.New(),
		Amount:    amount,
		Date:      date,
		Reference: strings.TrimSpace(reference),
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

// ContentKey identifies a payment by what it says, not by its id.
// Two payments with the same amount, date and reference are the same payment.
func (p Payment) ContentKey() string {
	return strconv.FormatInt(p.Amount.Cents(), 10) + "|" + dateKey(p.Date) + "|" + strings.ToLower(p.Reference)
}

// MergePayments appends the incoming payments that are not already present
// by content key. Re-applying an identical payment is a no-op.
func MergePayments(existing []Payment, incoming ...Payment) ([]Payment, int) {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]Payment, 0, len(existing)+len(incoming))
	for _, p := range existing {
		seen[p.ContentKey()] = struct{}{}
		merged = append(merged, p)
	}

	added := 0
	for _, p := range incoming {
		key := p.ContentKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, p)
		added++
	}
	return merged, added
}

// MigrateLegacyPayments turns the legacy single-payment fields into the
// payment list. A non-empty list already carries the full history (the legacy
// fields mirror its sum), so it wins. Otherwise a positive legacy amount
// becomes one payment.
func MigrateLegacyPayments(legacyAmount valueobject.Money, legacyDate *time.Time, payments []Payment) []Payment {
	if len(payments) > 0 {
		return payments
	}
	if !legacyAmount.IsPositive() {
		return nil
	}

	createdAt := time.Now().UTC()
	if legacyDate != nil {
		createdAt = legacyDate.UTC()
	}
	return []Payment{{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("legacy|"+strconv.FormatInt(legacyAmount.Cents(), 10)+"|"+dateKey(legacyDate))),
		Amount:    legacyAmount,
		Date:      legacyDate,
		Source:    PaymentSourceLegacy,
		CreatedAt: createdAt,
	}}
}

// SumPayments returns the total amount of a payment list.
func SumPayments(payments []Payment) valueobject.Money {
	var total valueobject.Money
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// LatestPaymentDate returns the most recent dated payment, or nil.
func LatestPaymentDate(payments []Payment) *time.Time {
	var latest *time.Time
	for i := range payments {
		d := payments[i].Date
		if d == nil {
			continue
		}
		if latest == nil || d.After(*latest) {
			latest = d
		}
	}
	return latest
}

func dateKey(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.UTC().Format("2006-01-02")
}
