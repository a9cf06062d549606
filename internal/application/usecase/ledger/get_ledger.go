// Package ledger contains account ledger use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// GetLedgerInput represents the input for fetching one account's ledger.
type GetLedgerInput struct {
	Scope     ScopeInput
	AccountID uuid.UUID
}

// GetLedgerOutput represents the output of fetching one account's ledger.
type GetLedgerOutput struct {
	Account *entity.Account
	Ledger  *entity.AccountLedger
	Issues  []entity.LedgerIssue
}

// GetLedgerUseCase rebuilds a single account ledger.
type GetLedgerUseCase struct {
	accountRepo adapter.AccountRepository
	loader      *Loader
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(accountRepo adapter.AccountRepository, loader *Loader) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		accountRepo: accountRepo,
		loader:      loader,
	}
}

// Execute fetches the ledger.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, input GetLedgerInput) (*GetLedgerOutput, error) {
	scope, err := input.Scope.Scope()
	if err != nil {
		return nil, err
	}

	account, err := findAccount(ctx, uc.accountRepo, input.AccountID)
	if err != nil {
		return nil, err
	}

	ledger, issues, err := uc.loader.LoadAccount(ctx, scope, account.ID)
	if err != nil {
		return nil, err
	}

	return &GetLedgerOutput{
		Account: account,
		Ledger:  ledger,
		Issues:  issues,
	}, nil
}

func findAccount(ctx context.Context, accountRepo adapter.AccountRepository, id uuid.UUID) (*entity.Account, error) {
	account, err := accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewCommissionError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}
