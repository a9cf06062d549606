// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// PaymentLedgerModel represents the payment_ledgers table in the database.
// There is one row per account, brand and tracker.
type PaymentLedgerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payment_ledger_group"`
	BrandID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payment_ledger_group;index"`
	TrackerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payment_ledger_group"`
	Payments  datatypes.JSON
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentLedgerModel.
func (PaymentLedgerModel) TableName() string {
	return "payment_ledgers"
}

// ToEntity converts a PaymentLedgerModel to a domain AccountPaymentLedger entity.
func (m *PaymentLedgerModel) ToEntity() (*entity.AccountPaymentLedger, error) {
	payments, err := paymentsFromJSON(m.Payments)
	if err != nil {
		return nil, fmt.Errorf("payment ledger %s: %w", m.ID, err)
	}

	return &entity.AccountPaymentLedger{
		ID:        m.ID,
		AccountID: m.AccountID,
		BrandID:   m.BrandID,
		TrackerID: m.TrackerID,
		Payments:  payments,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// PaymentLedgerFromEntity creates a PaymentLedgerModel from a domain AccountPaymentLedger entity.
func PaymentLedgerFromEntity(ledger *entity.AccountPaymentLedger) *PaymentLedgerModel {
	return &PaymentLedgerModel{
		ID:        ledger.ID,
		AccountID: ledger.AccountID,
		BrandID:   ledger.BrandID,
		TrackerID: ledger.TrackerID,
		Payments:  paymentsToJSON(ledger.Payments),
		CreatedAt: ledger.CreatedAt,
		UpdatedAt: ledger.UpdatedAt,
	}
}

// Models lists every model the commission tracker migrates.
func Models() []interface{} {
	return []interface{}{
		&BrandModel{},
		&AccountModel{},
		&TrackerModel{},
		&OrderModel{},
		&CommissionEntryModel{},
		&PaymentLedgerModel{},
	}
}
