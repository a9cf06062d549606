// Package ledger contains account ledger use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/service"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// ScopeInput names the tracker scope of a ledger request.
// Exactly one of TrackerID or AllTrackers must be set.
type ScopeInput struct {
	BrandID     uuid.UUID
	TrackerID   *uuid.UUID
	AllTrackers bool
}

// Scope converts the input into a validated ledger scope.
func (s ScopeInput) Scope() (entity.LedgerScope, error) {
	scope := entity.LedgerScope{BrandID: s.BrandID, AllTrackers: s.AllTrackers}
	if s.TrackerID != nil {
		scope.TrackerID = *s.TrackerID
	}
	if err := scope.Validate(); err != nil {
		return scope, domainerror.NewCommissionError(
			domainerror.ErrCodeInvalidScope,
			"pass either a tracker_id or all=true",
			err,
		)
	}
	return scope, nil
}

// EntryFailure reports an entry that could not be written during a group operation.
type EntryFailure struct {
	OrderID uuid.UUID
	Err     error
}

// Loader reads the current repository state and rebuilds ledgers from it.
// Nothing is cached between calls.
type Loader struct {
	brandRepo         adapter.BrandRepository
	trackerRepo       adapter.TrackerRepository
	orderRepo         adapter.OrderRepository
	entryRepo         adapter.CommissionEntryRepository
	paymentLedgerRepo adapter.PaymentLedgerRepository
	aggregator        *service.LedgerAggregator
}

// NewLoader creates a new Loader instance.
func NewLoader(
	brandRepo adapter.BrandRepository,
	trackerRepo adapter.TrackerRepository,
	orderRepo adapter.OrderRepository,
	entryRepo adapter.CommissionEntryRepository,
	paymentLedgerRepo adapter.PaymentLedgerRepository,
	aggregator *service.LedgerAggregator,
) *Loader {
	return &Loader{
		brandRepo:         brandRepo,
		trackerRepo:       trackerRepo,
		orderRepo:         orderRepo,
		entryRepo:         entryRepo,
		paymentLedgerRepo: paymentLedgerRepo,
		aggregator:        aggregator,
	}
}

// Load rebuilds every account ledger in the scope.
func (l *Loader) Load(ctx context.Context, scope entity.LedgerScope) (*entity.Brand, *service.LedgerResult, error) {
	brand, err := l.brandRepo.FindByID(ctx, scope.BrandID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBrandNotFound) {
			return nil, nil, domainerror.NewCommissionError(
				domainerror.ErrCodeBrandNotFound,
				"brand not found",
				domainerror.ErrBrandNotFound,
			)
		}
		return nil, nil, fmt.Errorf("failed to find brand: %w", err)
	}

	if !scope.AllTrackers {
		if err := l.checkTracker(ctx, scope); err != nil {
			return nil, nil, err
		}
	}

	orders, err := l.orderRepo.FindByBrand(ctx, brand.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list orders: %w", err)
	}

	entries, err := l.entryRepo.FindByBrand(ctx, brand.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list commission entries: %w", err)
	}

	paymentLedgers, err := l.paymentLedgerRepo.FindByBrand(ctx, brand.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payment ledgers: %w", err)
	}

	result, err := l.aggregator.BuildLedgers(service.LedgerInput{
		Scope:          scope,
		Brand:          brand,
		Orders:         orders,
		Entries:        entries,
		PaymentLedgers: paymentLedgers,
	})
	if err != nil {
		return nil, nil, err
	}
	return brand, result, nil
}

func (l *Loader) checkTracker(ctx context.Context, scope entity.LedgerScope) error {
	tracker, err := l.trackerRepo.FindByID(ctx, scope.TrackerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTrackerNotFound) {
			return domainerror.NewCommissionError(
				domainerror.ErrCodeTrackerNotFound,
				"tracker not found",
				domainerror.ErrTrackerNotFound,
			)
		}
		return fmt.Errorf("failed to find tracker: %w", err)
	}
	if tracker.BrandID != scope.BrandID {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeTrackerBrandMismatch,
			fmt.Sprintf("tracker %s belongs to another brand", tracker.Name),
			domainerror.ErrTrackerBrandMismatch,
		)
	}
	return nil
}

// LoadAccount rebuilds a single account's ledger.
func (l *Loader) LoadAccount(ctx context.Context, scope entity.LedgerScope, accountID uuid.UUID) (*entity.AccountLedger, []entity.LedgerIssue, error) {
	_, result, err := l.Load(ctx, scope)
	if err != nil {
		return nil, nil, err
	}
	if ledger := result.Find(accountID); ledger != nil {
		return ledger, result.Issues, nil
	}
	return &entity.AccountLedger{
		AccountID:          accountID,
		Scope:              scope,
		AggregatePayStatus: valueobject.PayStatusPendingInvoice,
	}, result.Issues, nil
}

// writeMemberStatuses sets the status chosen by next on every member entry,
// creating entries that do not exist yet. Each entry is its own write; a
// failure is recorded and the remaining members are still written.
func writeMemberStatuses(
	ctx context.Context,
	entryRepo adapter.CommissionEntryRepository,
	ledger *entity.AccountLedger,
	next func(member entity.LedgerMember) (valueobject.PayStatus, bool),
) []EntryFailure {
	var failures []EntryFailure
	for _, member := range ledger.Members {
		status, ok := next(member)
		if !ok {
			continue
		}

		entry := member.Entry
		if entry == nil {
			entry = entity.NewCommissionEntry(member.Order, member.CommissionDue)
		}
		if entry.PayStatus == status && entry.CommissionDue == member.CommissionDue {
			continue
		}

		entry.PayStatus = status
		entry.CommissionDue = member.CommissionDue
		entry.UpdatedAt = time.Now().UTC()

		if err := entryRepo.Upsert(ctx, entry); err != nil {
			slog.Error("Failed to write commission entry",
				"order_id", member.Order.ID,
				"account_id", ledger.AccountID,
				"error", err,
			)
			failures = append(failures, EntryFailure{
				OrderID: member.Order.ID,
				Err:     errors.Join(domainerror.ErrEntryWriteFailure, err),
			})
		}
	}
	return failures
}
