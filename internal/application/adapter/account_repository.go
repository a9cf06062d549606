// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	// Returns ErrAccountNotFound when the account does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByAccountNumber retrieves an account by its external number.
	// Returns nil, nil when no account carries that number.
	FindByAccountNumber(ctx context.Context, accountNumber string) (*entity.Account, error)

	// FindAll retrieves every account ordered by name.
	FindAll(ctx context.Context) ([]*entity.Account, error)
}
