package valueobject

// ImportClassification is the outcome of classifying one imported payment row.
type ImportClassification string

const (
	ImportClassificationMatched   ImportClassification = "matched"
	ImportClassificationUnderpaid ImportClassification = "underpaid"
	ImportClassificationOverpaid  ImportClassification = "overpaid"
	ImportClassificationNotFound  ImportClassification = "not_found"
	ImportClassificationInvalid   ImportClassification = "invalid"
)

// IsWritable reports whether a row with this classification may be committed.
// not_found and invalid rows are never written.
func (c ImportClassification) IsWritable() bool {
	switch c {
	case ImportClassificationMatched, ImportClassificationUnderpaid, ImportClassificationOverpaid:
		return true
	default:
		return false
	}
}

// ClassifyPayment compares a payment against an account's live outstanding
// balance (commission due minus paid). Both are in minor units.
func ClassifyPayment(amount, outstanding Money) ImportClassification {
	switch {
	case !amount.IsPositive():
		return ImportClassificationInvalid
	case outstanding <= 0:
		return ImportClassificationOverpaid
	case amount >= outstanding:
		return ImportClassificationMatched
	default:
		return ImportClassificationUnderpaid
	}
}

// UnderpaidDecision is the follow-up required before an underpaid row is committed.
type UnderpaidDecision string

const (
	UnderpaidDecisionAcceptPartial    UnderpaidDecision = "accept_partial"
	UnderpaidDecisionMarkShortShipped UnderpaidDecision = "mark_short_shipped"
	UnderpaidDecisionSkip             UnderpaidDecision = "skip"
)

// IsValid reports whether d is a known decision.
func (d UnderpaidDecision) IsValid() bool {
	switch d {
	case UnderpaidDecisionAcceptPartial, UnderpaidDecisionMarkShortShipped, UnderpaidDecisionSkip:
		return true
	default:
		return false
	}
}
