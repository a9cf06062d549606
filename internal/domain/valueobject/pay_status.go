package valueobject

import (
	"fmt"
	"strings"
)

// PayStatus is the commission payment status of an order or of an account group.
type PayStatus string

const (
	PayStatusPendingInvoice PayStatus = "pending_invoice"
	PayStatusUnpaid         PayStatus = "unpaid"
	PayStatusInvoiceSent    PayStatus = "invoice_sent"
	PayStatusPartial        PayStatus = "partial"
	PayStatusPaid           PayStatus = "paid"
	PayStatusShortShipped   PayStatus = "short_shipped"
)

// AllPayStatuses lists every valid status, lowest precedence first.
var AllPayStatuses = []PayStatus{
	PayStatusPendingInvoice,
	PayStatusUnpaid,
	PayStatusInvoiceSent,
	PayStatusPartial,
	PayStatusPaid,
	PayStatusShortShipped,
}

// ParsePayStatus parses a stored or user-supplied status.
// A blank value is the initial pending_invoice state. Spaces and dashes are
// accepted in place of underscores ("Invoice Sent", "short-shipped").
func ParsePayStatus(s string) (PayStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	if normalized == "" {
		return PayStatusPendingInvoice, nil
	}

	for _, status := range AllPayStatuses {
		if string(status) == normalized {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown pay status %q", s)
}

// IsValid reports whether s is one of the known statuses.
func (s PayStatus) IsValid() bool {
	for _, status := range AllPayStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// precedence is the rank used by the aggregate ladder. paid and partial
// share a rank: a paid member only keeps the group "paid" when every member
// is paid, otherwise it counts as partial.
func (s PayStatus) precedence() int {
	switch s {
	case PayStatusShortShipped:
		return 5
	case PayStatusPaid, PayStatusPartial:
		return 4
	case PayStatusInvoiceSent:
		return 3
	case PayStatusUnpaid:
		return 2
	default:
		return 1
	}
}

// ComparePayStatus orders statuses by ladder precedence.
// It returns -1 when a ranks below b, 1 when above, 0 when equal rank.
func ComparePayStatus(a, b PayStatus) int {
	pa, pb := a.precedence(), b.precedence()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

// AggregatePayStatus computes an account group's status from its members.
//
// Ladder, highest first: any short_shipped; all paid; any paid or partial
// (partial); any invoice_sent; any unpaid; otherwise pending_invoice.
// An empty group is pending_invoice.
func AggregatePayStatus(statuses []PayStatus) PayStatus {
	if len(statuses) == 0 {
		return PayStatusPendingInvoice
	}

	best := PayStatusPendingInvoice
	allPaid := true
	for _, status := range statuses {
		if status != PayStatusPaid {
			allPaid = false
		}
		if ComparePayStatus(status, best) > 0 {
			best = status
		}
	}

	switch {
	case best == PayStatusShortShipped:
		return PayStatusShortShipped
	case allPaid:
		return PayStatusPaid
	case best == PayStatusPaid:
		return PayStatusPartial
	default:
		return best
	}
}
