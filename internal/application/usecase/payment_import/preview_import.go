// Package paymentimport contains remittance import use cases.
package paymentimport

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/service"
)

// PreviewImportInput represents the input for previewing a remittance import.
type PreviewImportInput struct {
	BrandID   uuid.UUID
	TrackerID uuid.UUID
	Rows      []entity.ImportRow
}

// PreviewImportOutput represents the output of a remittance import preview.
type PreviewImportOutput struct {
	SessionID uuid.UUID
	ExpiresAt time.Time
	Rows      []service.ClassifiedRow
	Summary   Summary
}

// PreviewImportUseCase classifies tokenized rows and keeps them for commit.
// Nothing is written to the ledger.
type PreviewImportUseCase struct {
	accountRepo  adapter.AccountRepository
	sessionStore adapter.ImportSessionStore
	loader       *ledger.Loader
	maxRows      int
	sessionTTL   time.Duration
}

// NewPreviewImportUseCase creates a new PreviewImportUseCase instance.
func NewPreviewImportUseCase(
	accountRepo adapter.AccountRepository,
	sessionStore adapter.ImportSessionStore,
	loader *ledger.Loader,
	maxRows int,
	sessionTTL time.Duration,
) *PreviewImportUseCase {
	return &PreviewImportUseCase{
		accountRepo:  accountRepo,
		sessionStore: sessionStore,
		loader:       loader,
		maxRows:      maxRows,
		sessionTTL:   sessionTTL,
	}
}

// Execute performs the preview.
func (uc *PreviewImportUseCase) Execute(ctx context.Context, input PreviewImportInput) (*PreviewImportOutput, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeEmptyImportRows,
			"at least one row is required",
			domainerror.ErrEmptyImportRows,
		)
	}
	if uc.maxRows > 0 && len(input.Rows) > uc.maxRows {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeTooManyImportRows,
			fmt.Sprintf("an import may contain at most %d rows", uc.maxRows),
			domainerror.ErrTooManyImportRows,
		)
	}

	scope, err := ledger.ScopeInput{BrandID: input.BrandID, TrackerID: &input.TrackerID}.Scope()
	if err != nil {
		return nil, err
	}

	rows, err := classifyAgainstLive(ctx, uc.accountRepo, uc.loader, scope, input.Rows)
	if err != nil {
		return nil, err
	}

	session := entity.NewImportSession(scope, input.Rows, uc.sessionTTL)
	if err := uc.sessionStore.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save import session: %w", err)
	}

	return &PreviewImportOutput{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		Rows:      rows,
		Summary:   summarize(rows),
	}, nil
}
