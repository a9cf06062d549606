// Package account contains retail account use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name          string
	AccountNumber string // Optional external number used by remittance files
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	number := strings.TrimSpace(input.AccountNumber)

	if name == "" {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeMissingFields,
			"account name is required",
			nil,
		)
	}

	// Account numbers are the primary import match key and must be unique
	if number != "" {
		existing, err := uc.accountRepo.FindByAccountNumber(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("failed to check account number: %w", err)
		}
		if existing != nil {
			return nil, domainerror.NewCommissionError(
				domainerror.ErrCodeDuplicateAccountNumber,
				fmt.Sprintf("account number %s is already used by %s", number, existing.Name),
				domainerror.ErrDuplicateAccountNumber,
			)
		}
	}

	account := entity.NewAccount(name, number)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
