// Package ledger contains account ledger use cases.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// MarkShortShippedInput represents the input for marking a group short-shipped.
type MarkShortShippedInput struct {
	BrandID   uuid.UUID
	TrackerID uuid.UUID
	AccountID uuid.UUID
}

// MarkShortShippedOutput represents the output of marking a group short-shipped.
type MarkShortShippedOutput struct {
	Ledger   *entity.AccountLedger
	Failures []EntryFailure
}

// MarkShortShippedUseCase sets every member order of a group to short_shipped.
// The unpaid gap is then reported as unshipped sale value, not as a receivable.
type MarkShortShippedUseCase struct {
	accountRepo adapter.AccountRepository
	entryRepo   adapter.CommissionEntryRepository
	loader      *Loader
}

// NewMarkShortShippedUseCase creates a new MarkShortShippedUseCase instance.
func NewMarkShortShippedUseCase(
	accountRepo adapter.AccountRepository,
	entryRepo adapter.CommissionEntryRepository,
	loader *Loader,
) *MarkShortShippedUseCase {
	return &MarkShortShippedUseCase{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		loader:      loader,
	}
}

// Execute marks the group.
func (uc *MarkShortShippedUseCase) Execute(ctx context.Context, input MarkShortShippedInput) (*MarkShortShippedOutput, error) {
	scope, err := ScopeInput{BrandID: input.BrandID, TrackerID: &input.TrackerID}.Scope()
	if err != nil {
		return nil, err
	}

	if _, err := findAccount(ctx, uc.accountRepo, input.AccountID); err != nil {
		return nil, err
	}

	ledger, _, err := uc.loader.LoadAccount(ctx, scope, input.AccountID)
	if err != nil {
		return nil, err
	}

	failures := writeMemberStatuses(ctx, uc.entryRepo, ledger, func(entity.LedgerMember) (valueobject.PayStatus, bool) {
		return valueobject.PayStatusShortShipped, true
	})

	ledger, _, err = uc.loader.LoadAccount(ctx, scope, input.AccountID)
	if err != nil {
		return nil, err
	}

	return &MarkShortShippedOutput{
		Ledger:   ledger,
		Failures: failures,
	}, nil
}
