// Package ledger contains account ledger use cases.
package ledger

import (
	"context"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// ListLedgersInput represents the input for listing a brand's account ledgers.
type ListLedgersInput struct {
	Scope ScopeInput
}

// ListLedgersOutput represents the output of listing account ledgers.
type ListLedgersOutput struct {
	Brand   *entity.Brand
	Ledgers []*entity.AccountLedger
	Issues  []entity.LedgerIssue
}

// ListLedgersUseCase rebuilds every account ledger of a brand scope.
type ListLedgersUseCase struct {
	loader *Loader
}

// NewListLedgersUseCase creates a new ListLedgersUseCase instance.
func NewListLedgersUseCase(loader *Loader) *ListLedgersUseCase {
	return &ListLedgersUseCase{
		loader: loader,
	}
}

// Execute lists the ledgers.
func (uc *ListLedgersUseCase) Execute(ctx context.Context, input ListLedgersInput) (*ListLedgersOutput, error) {
	scope, err := input.Scope.Scope()
	if err != nil {
		return nil, err
	}

	brand, result, err := uc.loader.Load(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &ListLedgersOutput{
		Brand:   brand,
		Ledgers: result.Ledgers,
		Issues:  result.Issues,
	}, nil
}
