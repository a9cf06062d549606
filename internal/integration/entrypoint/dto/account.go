// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	AccountNumber string `json:"account_number,omitempty" binding:"omitempty,max=64"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID.String(),
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		CreatedAt:     a.CreatedAt,
	}
}

// ToAccountListResponse converts a slice of accounts to an AccountListResponse DTO.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToAccountResponse(a)
	}
	return AccountListResponse{Accounts: responses}
}
