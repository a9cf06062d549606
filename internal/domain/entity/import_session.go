// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImportRow is one already-tokenized remittance row.
type ImportRow struct {
	AccountNumber string
	AccountName   string
	Amount        string
	Date          string
}

// ImportSession keeps previewed rows between preview and commit.
// Only the raw rows are kept; commit classifies them again.
type ImportSession struct {
	ID        uuid.UUID
	Scope     LedgerScope
	Rows      []ImportRow
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewImportSession creates a session that expires after ttl.
func NewImportSession(scope LedgerScope, rows []ImportRow, ttl time.Duration) *ImportSession {
	now := time.Now().UTC()

	return &ImportSession{
		ID:        uuid.New(),
		Scope:     scope,
		Rows:      rows,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
