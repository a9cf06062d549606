// Package paymentimport contains remittance import use cases.
package paymentimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/service"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// CommitImportInput represents the input for committing a previewed import.
type CommitImportInput struct {
	SessionID uuid.UUID
	Decisions map[int]valueobject.UnderpaidDecision // Keyed by row index
}

// GroupResult reports what was written for one account group.
type GroupResult struct {
	AccountID        uuid.UUID
	AccountName      string
	PaymentsRecorded int
	Duplicates       int
	AmountRecorded   valueobject.Money
	MarkedShort      bool
	Status           valueobject.PayStatus
	AmountRemaining  valueobject.Money
}

// GroupFailure reports an account group whose writes did not all succeed.
// Writes completed before the failure are kept.
type GroupFailure struct {
	AccountID   uuid.UUID
	AccountName string
	Error       string
}

// CommitImportOutput represents the output of an import commit.
type CommitImportOutput struct {
	Rows      []service.ClassifiedRow
	Summary   Summary
	Succeeded []GroupResult
	Failed    []GroupFailure
	Skipped   []service.ClassifiedRow
	NotFound  []service.ClassifiedRow
	Invalid   []service.ClassifiedRow
}

// CommitImportUseCase re-classifies a session's rows against the live ledger
// and writes them one account group at a time.
type CommitImportUseCase struct {
	accountRepo      adapter.AccountRepository
	sessionStore     adapter.ImportSessionStore
	loader           *ledger.Loader
	recordPayment    *ledger.RecordPaymentUseCase
	markShortShipped *ledger.MarkShortShippedUseCase
}

// NewCommitImportUseCase creates a new CommitImportUseCase instance.
func NewCommitImportUseCase(
	accountRepo adapter.AccountRepository,
	sessionStore adapter.ImportSessionStore,
	loader *ledger.Loader,
	recordPayment *ledger.RecordPaymentUseCase,
	markShortShipped *ledger.MarkShortShippedUseCase,
) *CommitImportUseCase {
	return &CommitImportUseCase{
		accountRepo:      accountRepo,
		sessionStore:     sessionStore,
		loader:           loader,
		recordPayment:    recordPayment,
		markShortShipped: markShortShipped,
	}
}

// Execute performs the commit. The session is removed only when every group succeeded,
// so a partially failed commit can be retried; replayed payments are not counted twice.
func (uc *CommitImportUseCase) Execute(ctx context.Context, input CommitImportInput) (*CommitImportOutput, error) {
	session, err := uc.sessionStore.Get(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrImportSessionNotFound) {
			return nil, domainerror.NewCommissionError(
				domainerror.ErrCodeImportSessionNotFound,
				"import session not found or expired",
				domainerror.ErrImportSessionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load import session: %w", err)
	}

	rows, err := classifyAgainstLive(ctx, uc.accountRepo, uc.loader, session.Scope, session.Rows)
	if err != nil {
		return nil, err
	}

	if missing := missingDecisions(rows, input.Decisions); len(missing) > 0 {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeUnderpaidDecisionRequired,
			"rows "+strings.Join(missing, ", ")+" are underpaid and need accept_partial, mark_short_shipped or skip",
			domainerror.ErrUnderpaidDecisionRequired,
		)
	}

	output := &CommitImportOutput{Rows: rows, Summary: summarize(rows)}
	groups := make(map[uuid.UUID][]service.ClassifiedRow)
	var order []uuid.UUID
	for _, row := range rows {
		switch {
		case row.Classification == valueobject.ImportClassificationNotFound:
			output.NotFound = append(output.NotFound, row)
			continue
		case !row.Classification.IsWritable():
			output.Invalid = append(output.Invalid, row)
			continue
		case row.Classification == valueobject.ImportClassificationUnderpaid &&
			input.Decisions[row.Index] == valueobject.UnderpaidDecisionSkip:
			output.Skipped = append(output.Skipped, row)
			continue
		}

		if _, ok := groups[*row.AccountID]; !ok {
			order = append(order, *row.AccountID)
		}
		groups[*row.AccountID] = append(groups[*row.AccountID], row)
	}

	for _, accountID := range order {
		result, err := uc.commitGroup(ctx, session, groups[accountID], input.Decisions)
		if err != nil {
			slog.Warn("Import commit failed for account group",
				"session_id", session.ID,
				"account_id", accountID,
				"error", err,
			)
			output.Failed = append(output.Failed, GroupFailure{
				AccountID:   accountID,
				AccountName: groups[accountID][0].AccountName,
				Error:       err.Error(),
			})
			continue
		}
		output.Succeeded = append(output.Succeeded, *result)
	}

	if len(output.Failed) == 0 {
		if err := uc.sessionStore.Delete(ctx, session.ID); err != nil {
			slog.Warn("Failed to delete committed import session",
				"session_id", session.ID,
				"error", err,
			)
		}
	}

	return output, nil
}

// commitGroup writes one account's rows in order, then applies a short-ship
// decision if any of its rows asked for one.
func (uc *CommitImportUseCase) commitGroup(
	ctx context.Context,
	session *entity.ImportSession,
	rows []service.ClassifiedRow,
	decisions map[int]valueobject.UnderpaidDecision,
) (*GroupResult, error) {
	accountID := *rows[0].AccountID
	result := &GroupResult{AccountID: accountID, AccountName: rows[0].AccountName}

	var lastLedger *entity.AccountLedger
	markShort := false
	for _, row := range rows {
		out, err := uc.recordPayment.Execute(ctx, ledger.RecordPaymentInput{
			BrandID:   session.Scope.BrandID,
			TrackerID: session.Scope.TrackerID,
			AccountID: accountID,
			Amount:    row.Amount,
			Date:      row.Date,
			Reference: rowReference(session.ID, row.Index),
			Source:    entity.PaymentSourceImport,
		})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Index+1, err)
		}
		if len(out.Failures) > 0 {
			return nil, fmt.Errorf("row %d: %w", row.Index+1, failuresError(out.Failures))
		}

		if out.Duplicate {
			result.Duplicates++
		} else {
			result.PaymentsRecorded++
			result.AmountRecorded = result.AmountRecorded.Add(row.Amount)
		}
		lastLedger = out.Ledger

		if row.Classification == valueobject.ImportClassificationUnderpaid &&
			decisions[row.Index] == valueobject.UnderpaidDecisionMarkShortShipped {
			markShort = true
		}
	}

	if markShort {
		out, err := uc.markShortShipped.Execute(ctx, ledger.MarkShortShippedInput{
			BrandID:   session.Scope.BrandID,
			TrackerID: session.Scope.TrackerID,
			AccountID: accountID,
		})
		if err != nil {
			return nil, fmt.Errorf("mark short shipped: %w", err)
		}
		if len(out.Failures) > 0 {
			return nil, fmt.Errorf("mark short shipped: %w", failuresError(out.Failures))
		}
		result.MarkedShort = true
		lastLedger = out.Ledger
	}

	if lastLedger != nil {
		result.Status = lastLedger.AggregatePayStatus
		result.AmountRemaining = lastLedger.AmountRemaining
	}
	return result, nil
}

// missingDecisions lists 1-based row numbers of underpaid rows without a valid decision.
func missingDecisions(rows []service.ClassifiedRow, decisions map[int]valueobject.UnderpaidDecision) []string {
	var missing []int
	for _, row := range rows {
		if row.Classification != valueobject.ImportClassificationUnderpaid {
			continue
		}
		if !decisions[row.Index].IsValid() {
			missing = append(missing, row.Index+1)
		}
	}
	sort.Ints(missing)

	labels := make([]string, len(missing))
	for i, n := range missing {
		labels[i] = strconv.Itoa(n)
	}
	return labels
}

func rowReference(sessionID uuid.UUID, index int) string {
	return "import:" + sessionID.String() + "#" + strconv.Itoa(index+1)
}

func failuresError(failures []ledger.EntryFailure) error {
	errs := make([]error, 0, len(failures))
	for _, f := range failures {
		errs = append(errs, fmt.Errorf("order %s: %w", f.OrderID, f.Err))
	}
	return errors.Join(errs...)
}
