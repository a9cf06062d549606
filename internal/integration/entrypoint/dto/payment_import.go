// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	paymentimport "github.com/commission-tracker/backend/internal/application/usecase/payment_import"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/service"
)

// ImportRowRequest is one tokenized remittance row. Amounts and dates are
// kept as text so that malformed rows come back classified as invalid.
type ImportRowRequest struct {
	AccountNumber string `json:"account_number,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	Amount        string `json:"amount"`
	Date          string `json:"date,omitempty"`
}

// PreviewImportRequest represents the request body for an import preview.
type PreviewImportRequest struct {
	TrackerID string             `json:"tracker_id" binding:"required,uuid"`
	Rows      []ImportRowRequest `json:"rows" binding:"required,min=1"`
}

// UnderpaidDecisionRequest is the follow-up chosen for one underpaid row.
type UnderpaidDecisionRequest struct {
	RowIndex int    `json:"row_index" binding:"min=0"`
	Decision string `json:"decision" binding:"required,oneof=accept_partial mark_short_shipped skip"`
}

// CommitImportRequest represents the request body for an import commit.
type CommitImportRequest struct {
	Decisions []UnderpaidDecisionRequest `json:"decisions,omitempty" binding:"omitempty,dive"`
}

// ClassifiedRowResponse represents a classified import row.
type ClassifiedRowResponse struct {
	RowIndex       int     `json:"row_index"`
	AccountNumber  string  `json:"account_number,omitempty"`
	AccountName    string  `json:"account_name,omitempty"`
	Amount         string  `json:"amount"`
	Date           *string `json:"date,omitempty"`
	AccountID      *string `json:"account_id,omitempty"`
	Outstanding    string  `json:"outstanding"`
	Classification string  `json:"classification"`
	Reason         string  `json:"reason,omitempty"`
}

// ImportSummaryResponse counts classified rows.
type ImportSummaryResponse struct {
	TotalRows      int    `json:"total_rows"`
	Matched        int    `json:"matched"`
	Underpaid      int    `json:"underpaid"`
	Overpaid       int    `json:"overpaid"`
	NotFound       int    `json:"not_found"`
	Invalid        int    `json:"invalid"`
	WritableAmount string `json:"writable_amount"`
}

// PreviewImportResponse represents the result of an import preview.
type PreviewImportResponse struct {
	SessionID string                  `json:"session_id"`
	ExpiresAt time.Time               `json:"expires_at"`
	Rows      []ClassifiedRowResponse `json:"rows"`
	Summary   ImportSummaryResponse   `json:"summary"`
}

// GroupResultResponse reports one account group written by a commit.
type GroupResultResponse struct {
	AccountID        string `json:"account_id"`
	AccountName      string `json:"account_name"`
	PaymentsRecorded int    `json:"payments_recorded"`
	Duplicates       int    `json:"duplicates"`
	AmountRecorded   string `json:"amount_recorded"`
	MarkedShort      bool   `json:"marked_short_shipped"`
	PayStatus        string `json:"pay_status"`
	AmountRemaining  string `json:"amount_remaining"`
}

// GroupFailureResponse reports one account group a commit could not write.
type GroupFailureResponse struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Error       string `json:"error"`
}

// CommitImportResponse represents the result of an import commit.
type CommitImportResponse struct {
	Rows      []ClassifiedRowResponse `json:"rows"`
	Summary   ImportSummaryResponse   `json:"summary"`
	Succeeded []GroupResultResponse   `json:"succeeded"`
	Failed    []GroupFailureResponse  `json:"failed"`
	Skipped   []ClassifiedRowResponse `json:"skipped"`
	NotFound  []ClassifiedRowResponse `json:"not_found"`
	Invalid   []ClassifiedRowResponse `json:"invalid"`
}

// ToImportRows converts request rows to domain import rows.
func ToImportRows(rows []ImportRowRequest) []entity.ImportRow {
	converted := make([]entity.ImportRow, len(rows))
	for i, r := range rows {
		converted[i] = entity.ImportRow(r)
	}
	return converted
}

// ToPreviewImportResponse converts a PreviewImportOutput to a PreviewImportResponse DTO.
func ToPreviewImportResponse(output *paymentimport.PreviewImportOutput) PreviewImportResponse {
	return PreviewImportResponse{
		SessionID: output.SessionID.String(),
		ExpiresAt: output.ExpiresAt,
		Rows:      toClassifiedRowResponses(output.Rows),
		Summary:   toImportSummaryResponse(output.Summary),
	}
}

// ToCommitImportResponse converts a CommitImportOutput to a CommitImportResponse DTO.
func ToCommitImportResponse(output *paymentimport.CommitImportOutput) CommitImportResponse {
	response := CommitImportResponse{
		Rows:      toClassifiedRowResponses(output.Rows),
		Summary:   toImportSummaryResponse(output.Summary),
		Succeeded: make([]GroupResultResponse, len(output.Succeeded)),
		Failed:    make([]GroupFailureResponse, len(output.Failed)),
		Skipped:   toClassifiedRowResponses(output.Skipped),
		NotFound:  toClassifiedRowResponses(output.NotFound),
		Invalid:   toClassifiedRowResponses(output.Invalid),
	}

	for i, g := range output.Succeeded {
		response.Succeeded[i] = GroupResultResponse{
			AccountID:        g.AccountID.String(),
			AccountName:      g.AccountName,
			PaymentsRecorded: g.PaymentsRecorded,
			Duplicates:       g.Duplicates,
			AmountRecorded:   g.AmountRecorded.String(),
			MarkedShort:      g.MarkedShort,
			PayStatus:        string(g.Status),
			AmountRemaining:  g.AmountRemaining.String(),
		}
	}
	for i, f := range output.Failed {
		response.Failed[i] = GroupFailureResponse{
			AccountID:   f.AccountID.String(),
			AccountName: f.AccountName,
			Error:       f.Error,
		}
	}

	return response
}

func toClassifiedRowResponses(rows []service.ClassifiedRow) []ClassifiedRowResponse {
	responses := make([]ClassifiedRowResponse, len(rows))
	for i, r := range rows {
		response := ClassifiedRowResponse{
			RowIndex:       r.Index,
			AccountNumber:  r.Row.AccountNumber,
			AccountName:    r.AccountName,
			Amount:         r.Amount.String(),
			Date:           formatDate(r.Date),
			Outstanding:    r.Outstanding.String(),
			Classification: string(r.Classification),
			Reason:         r.Reason,
		}
		if response.AccountName == "" {
			response.AccountName = r.Row.AccountName
		}
		if r.AccountID != nil {
			id := r.AccountID.String()
			response.AccountID = &id
		}
		responses[i] = response
	}
	return responses
}

func toImportSummaryResponse(s paymentimport.Summary) ImportSummaryResponse {
	return ImportSummaryResponse{
		TotalRows:      s.TotalRows,
		Matched:        s.Matched,
		Underpaid:      s.Underpaid,
		Overpaid:       s.Overpaid,
		NotFound:       s.NotFound,
		Invalid:        s.Invalid,
		WritableAmount: s.WritableAmount.String(),
	}
}
