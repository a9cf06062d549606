// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a retail buyer the rep sells into.
type Account struct {
	ID            uuid.UUID
	Name          string
	AccountNumber string // External identifier used by brand remittance files
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name, accountNumber string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:            uuid.New(),
		Name:          name,
		AccountNumber: accountNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
