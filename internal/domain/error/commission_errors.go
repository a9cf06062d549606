// Package error defines domain-specific errors for the Commission Tracker application.
package error

import "errors"

// Commission reconciliation errors.
var (
	// ErrInvalidRate is returned when a resolved commission percent is outside [0,100].
	ErrInvalidRate = errors.New("commission rate out of range")

	// ErrUnknownAccount is recorded when an import row cannot be matched to an account.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrEntryWriteFailure is returned when the persistence layer rejects an upsert.
	ErrEntryWriteFailure = errors.New("ledger entry write failed")

	// ErrInconsistentLedger is reported when a ledger entry references a missing order.
	ErrInconsistentLedger = errors.New("ledger entry references unknown order")

	// ErrInvalidScope is returned when a ledger is requested without an explicit tracker scope.
	ErrInvalidScope = errors.New("ledger scope must name a tracker or request all trackers")

	// ErrInvalidPayStatus is returned when a pay status is not one of the known values.
	ErrInvalidPayStatus = errors.New("invalid pay status")

	// ErrInvalidAmount is returned when a monetary amount is missing, malformed or out of range.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Brand, account, tracker and order errors.
var (
	// ErrBrandNotFound is returned when a brand is not found.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTrackerNotFound is returned when a tracker is not found.
	ErrTrackerNotFound = errors.New("tracker not found")

	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStage is returned when an order stage is not valid for its brand.
	ErrInvalidStage = errors.New("invalid order stage")

	// ErrInvalidCategory is returned when an order category is not valid for its brand.
	ErrInvalidCategory = errors.New("invalid order category")

	// ErrDuplicateAccountNumber is returned when an external account number is already taken.
	ErrDuplicateAccountNumber = errors.New("account number already exists")

	// ErrTrackerBrandMismatch is returned when an order's tracker belongs to another brand.
	ErrTrackerBrandMismatch = errors.New("tracker does not belong to brand")
)

// Payment import errors.
var (
	// ErrEmptyImportRows is returned when an import contains no rows.
	ErrEmptyImportRows = errors.New("import must contain at least one row")

	// ErrTooManyImportRows is returned when an import exceeds the configured row limit.
	ErrTooManyImportRows = errors.New("import contains too many rows")

	// ErrImportSessionNotFound is returned when an import session expired or never existed.
	ErrImportSessionNotFound = errors.New("import session not found")

	// ErrUnderpaidDecisionRequired is returned when an underpaid row has no follow-up decision.
	ErrUnderpaidDecisionRequired = errors.New("underpaid row requires a decision")
)

// CommissionErrorCode defines error codes for commission errors.
// Format: COM-XXYYYY where XX is category and YYYY is specific error.
type CommissionErrorCode string

const (
	// Calculation errors (01XXXX)
	ErrCodeInvalidRate        CommissionErrorCode = "COM-010001"
	ErrCodeInconsistentLedger CommissionErrorCode = "COM-010002"
	ErrCodeInvalidScope       CommissionErrorCode = "COM-010003"
	ErrCodeInvalidPayStatus   CommissionErrorCode = "COM-010004"
	ErrCodeInvalidAmount      CommissionErrorCode = "COM-010005"

	// Lookup and validation errors (02XXXX)
	ErrCodeBrandNotFound          CommissionErrorCode = "COM-020001"
	ErrCodeAccountNotFound        CommissionErrorCode = "COM-020002"
	ErrCodeTrackerNotFound        CommissionErrorCode = "COM-020003"
	ErrCodeOrderNotFound          CommissionErrorCode = "COM-020004"
	ErrCodeInvalidStage           CommissionErrorCode = "COM-020005"
	ErrCodeInvalidCategory        CommissionErrorCode = "COM-020006"
	ErrCodeDuplicateAccountNumber CommissionErrorCode = "COM-020007"
	ErrCodeTrackerBrandMismatch   CommissionErrorCode = "COM-020008"
	ErrCodeMissingFields          CommissionErrorCode = "COM-020009"

	// Import errors (03XXXX)
	ErrCodeUnknownAccount            CommissionErrorCode = "COM-030001"
	ErrCodeEmptyImportRows           CommissionErrorCode = "COM-030002"
	ErrCodeTooManyImportRows         CommissionErrorCode = "COM-030003"
	ErrCodeImportSessionNotFound     CommissionErrorCode = "COM-030004"
	ErrCodeUnderpaidDecisionRequired CommissionErrorCode = "COM-030005"

	// Request errors (04XXXX)
	ErrCodeInvalidRequest CommissionErrorCode = "COM-040001"
	ErrCodeRateLimited    CommissionErrorCode = "COM-040002"

	// Persistence errors (09XXXX)
	ErrCodeEntryWriteFailure CommissionErrorCode = "COM-090001"
	ErrCodeInternalError     CommissionErrorCode = "COM-090002"
)

// CommissionError represents a commission error with code and message.
type CommissionError struct {
	Code    CommissionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CommissionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CommissionError) Unwrap() error {
	return e.Err
}

// NewCommissionError creates a new CommissionError with the given code and message.
func NewCommissionError(code CommissionErrorCode, message string, err error) *CommissionError {
	return &CommissionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
