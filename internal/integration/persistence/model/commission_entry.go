// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// CommissionEntryModel represents the commission_entries table in the database.
//
// AmountPaid and PaidDate are the legacy single-payment columns. They are
// folded into Payments when a row is loaded and cleared when it is written.
type CommissionEntryModel struct {
	OrderID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BrandID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CommissionDueCents int64     `gorm:"not null;default:0"`
	PayStatus          string    `gorm:"type:varchar(20);not null;default:'pending_invoice'"`
	Payments           datatypes.JSON
	AmountPaid         *int64     `gorm:"column:amount_paid"`
	PaidDate           *time.Time `gorm:"column:paid_date;type:date"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CommissionEntryModel.
func (CommissionEntryModel) TableName() string {
	return "commission_entries"
}

// ToEntity converts a CommissionEntryModel to a domain CommissionEntry entity.
func (m *CommissionEntryModel) ToEntity() (*entity.CommissionEntry, error) {
	payments, err := paymentsFromJSON(m.Payments)
	if err != nil {
		return nil, fmt.Errorf("commission entry %s: %w", m.OrderID, err)
	}

	var legacyAmount valueobject.Money
	if m.AmountPaid != nil {
		legacyAmount = valueobject.MoneyFromCents(*m.AmountPaid)
	}

	status, err := valueobject.ParsePayStatus(m.PayStatus)
	if err != nil {
		return nil, fmt.Errorf("commission entry %s: %w", m.OrderID, err)
	}

	return &entity.CommissionEntry{
		OrderID:       m.OrderID,
		BrandID:       m.BrandID,
		CommissionDue: valueobject.MoneyFromCents(m.CommissionDueCents),
		PayStatus:     status,
		Payments:      entity.MigrateLegacyPayments(legacyAmount, m.PaidDate, payments),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// CommissionEntryFromEntity creates a CommissionEntryModel from a domain CommissionEntry entity.
func CommissionEntryFromEntity(entry *entity.CommissionEntry) *CommissionEntryModel {
	return &CommissionEntryModel{
		OrderID:            entry.OrderID,
		BrandID:            entry.BrandID,
		CommissionDueCents: entry.CommissionDue.Cents(),
		PayStatus:          string(entry.Status()),
		Payments:           paymentsToJSON(entry.Payments),
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
	}
}
