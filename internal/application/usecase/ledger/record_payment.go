// Package ledger contains account ledger use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// RecordPaymentInput represents the input for recording a group payment.
type RecordPaymentInput struct {
	BrandID   uuid.UUID
	TrackerID uuid.UUID
	AccountID uuid.UUID
	Amount    valueobject.Money
	Date      *time.Time
	Reference string
	Source    entity.PaymentSource
}

// RecordPaymentOutput represents the output of recording a group payment.
type RecordPaymentOutput struct {
	Ledger    *entity.AccountLedger
	Payment   entity.Payment
	Duplicate bool // The same payment was already recorded; nothing changed
	Failures  []EntryFailure
}

// RecordPaymentUseCase appends a payment to an account group's payment ledger
// and moves member statuses to paid or partial.
type RecordPaymentUseCase struct {
	accountRepo       adapter.AccountRepository
	entryRepo         adapter.CommissionEntryRepository
	paymentLedgerRepo adapter.PaymentLedgerRepository
	loader            *Loader
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(
	accountRepo adapter.AccountRepository,
	entryRepo adapter.CommissionEntryRepository,
	paymentLedgerRepo adapter.PaymentLedgerRepository,
	loader *Loader,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		accountRepo:       accountRepo,
		entryRepo:         entryRepo,
		paymentLedgerRepo: paymentLedgerRepo,
		loader:            loader,
	}
}

// Execute records the payment.
// Group payments always belong to one tracker; the all-trackers view is read-only.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	scope, err := ScopeInput{BrandID: input.BrandID, TrackerID: &input.TrackerID}.Scope()
	if err != nil {
		return nil, err
	}

	if _, err := findAccount(ctx, uc.accountRepo, input.AccountID); err != nil {
		return nil, err
	}

	key := scope.GroupKey(input.AccountID)
	paymentLedger, err := uc.paymentLedgerRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment ledger: %w", err)
	}
	if paymentLedger == nil {
		paymentLedger = entity.NewAccountPaymentLedger(key.AccountID, key.BrandID, key.TrackerID)
	}

	source := input.Source
	if source == "" {
		source = entity.PaymentSourceManual
	}
	payment := entity.NewPayment(input.Amount, input.Date, input.Reference, source)

	// Payments migrated onto member entries count toward the group as well.
	current, _, err := uc.loader.LoadAccount(ctx, scope, input.AccountID)
	if err != nil {
		return nil, err
	}

	output := &RecordPaymentOutput{Payment: payment}
	if current.HasPayment(payment) || paymentLedger.Record(payment) == 0 {
		output.Duplicate = true
	} else if err := uc.paymentLedgerRepo.Upsert(ctx, paymentLedger); err != nil {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeEntryWriteFailure,
			"failed to write payment ledger",
			errors.Join(domainerror.ErrEntryWriteFailure, err),
		)
	}

	ledger, _, err := uc.loader.LoadAccount(ctx, scope, input.AccountID)
	if err != nil {
		return nil, err
	}

	status := valueobject.PayStatusPartial
	if ledger.AmountRemaining == 0 {
		status = valueobject.PayStatusPaid
	}
	output.Failures = writeMemberStatuses(ctx, uc.entryRepo, ledger, func(m entity.LedgerMember) (valueobject.PayStatus, bool) {
		if m.Excluded || m.PayStatus == valueobject.PayStatusShortShipped {
			return "", false
		}
		return status, true
	})

	// Rebuild so the returned ledger reflects the written statuses
	output.Ledger, _, err = uc.loader.LoadAccount(ctx, scope, input.AccountID)
	if err != nil {
		return nil, err
	}
	return output, nil
}
