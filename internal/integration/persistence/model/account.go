// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null;index"`
	AccountNumber *string   `gorm:"type:varchar(64);uniqueIndex"` // NULL when the account has no external number
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	number := ""
	if m.AccountNumber != nil {
		number = *m.AccountNumber
	}

	return &entity.Account{
		ID:            m.ID,
		Name:          m.Name,
		AccountNumber: number,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	var number *string
	if account.AccountNumber != "" {
		n := account.AccountNumber
		number = &n
	}

	return &AccountModel{
		ID:            account.ID,
		Name:          account.Name,
		AccountNumber: number,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}
