// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// PaymentLedgerRepository defines the interface for group payment ledger persistence.
type PaymentLedgerRepository interface {
	// FindByKey retrieves the payment ledger of an account group.
	// Returns nil, nil when the group has no ledger yet.
	FindByKey(ctx context.Context, key entity.GroupKey) (*entity.AccountPaymentLedger, error)

	// FindByBrand retrieves every payment ledger of a brand.
	FindByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.AccountPaymentLedger, error)

	// Upsert writes the ledger keyed by account, brand and tracker.
	Upsert(ctx context.Context, ledger *entity.AccountPaymentLedger) error
}
