// Package usecasetest provides in-memory repositories for use case tests.
package usecasetest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

// ErrWriteRejected is returned by upserts the Store was told to fail.
var ErrWriteRejected = errors.New("write rejected")

// Store holds every repository's data in memory.
// Entities are stored as copies so callers cannot mutate stored state.
type Store struct {
	mu             sync.Mutex
	Brands         map[uuid.UUID]entity.Brand
	Accounts       map[uuid.UUID]entity.Account
	Trackers       map[uuid.UUID]entity.Tracker
	Orders         map[uuid.UUID]entity.Order
	Entries        map[uuid.UUID]entity.CommissionEntry
	PaymentLedgers map[entity.GroupKey]entity.AccountPaymentLedger
	Sessions       map[uuid.UUID]entity.ImportSession

	// FailEntryWrites makes entry upserts fail for these order ids.
	FailEntryWrites map[uuid.UUID]bool
	EntryWrites     int
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		Brands:          map[uuid.UUID]entity.Brand{},
		Accounts:        map[uuid.UUID]entity.Account{},
		Trackers:        map[uuid.UUID]entity.Tracker{},
		Orders:          map[uuid.UUID]entity.Order{},
		Entries:         map[uuid.UUID]entity.CommissionEntry{},
		PaymentLedgers:  map[entity.GroupKey]entity.AccountPaymentLedger{},
		Sessions:        map[uuid.UUID]entity.ImportSession{},
		FailEntryWrites: map[uuid.UUID]bool{},
	}
}

// Brand repository.

type brandRepo struct{ s *Store }

// BrandRepository returns the Store as an adapter.BrandRepository.
func (s *Store) BrandRepository() adapter.BrandRepository { return brandRepo{s} }

func (r brandRepo) Create(_ context.Context, b *entity.Brand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Brands[b.ID] = *b
	return nil
}

func (r brandRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.Brands[id]
	if !ok {
		return nil, domainerror.ErrBrandNotFound
	}
	return &b, nil
}

func (r brandRepo) FindAll(_ context.Context) ([]*entity.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	brands := make([]*entity.Brand, 0, len(r.s.Brands))
	for _, b := range r.s.Brands {
		b := b
		brands = append(brands, &b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands, nil
}

func (r brandRepo) Update(ctx context.Context, b *entity.Brand) error {
	return r.Create(ctx, b)
}

// Account repository.

type accountRepo struct{ s *Store }

// AccountRepository returns the Store as an adapter.AccountRepository.
func (s *Store) AccountRepository() adapter.AccountRepository { return accountRepo{s} }

func (r accountRepo) Create(_ context.Context, a *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Accounts[a.ID] = *a
	return nil
}

func (r accountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.Accounts[id]
	if !ok {
		return nil, domainerror.ErrAccountNotFound
	}
	return &a, nil
}

func (r accountRepo) FindByAccountNumber(_ context.Context, number string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.Accounts {
		if a.AccountNumber == number {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (r accountRepo) FindAll(_ context.Context) ([]*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	accounts := make([]*entity.Account, 0, len(r.s.Accounts))
	for _, a := range r.s.Accounts {
		a := a
		accounts = append(accounts, &a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return strings.ToLower(accounts[i].Name) < strings.ToLower(accounts[j].Name)
	})
	return accounts, nil
}

// Tracker repository.

type trackerRepo struct{ s *Store }

// TrackerRepository returns the Store as an adapter.TrackerRepository.
func (s *Store) TrackerRepository() adapter.TrackerRepository { return trackerRepo{s} }

func (r trackerRepo) Create(_ context.Context, t *entity.Tracker) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Trackers[t.ID] = *t
	return nil
}

func (r trackerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tracker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.Trackers[id]
	if !ok {
		return nil, domainerror.ErrTrackerNotFound
	}
	return &t, nil
}

func (r trackerRepo) FindByBrand(_ context.Context, brandID uuid.UUID) ([]*entity.Tracker, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var trackers []*entity.Tracker
	for _, t := range r.s.Trackers {
		if t.BrandID == brandID {
			t := t
			trackers = append(trackers, &t)
		}
	}
	return trackers, nil
}

// Order repository.

type orderRepo struct{ s *Store }

// OrderRepository returns the Store as an adapter.OrderRepository.
func (s *Store) OrderRepository() adapter.OrderRepository { return orderRepo{s} }

func (r orderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Orders[o.ID] = *o
	return nil
}

func (r orderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.Orders[id]
	if !ok {
		return nil, domainerror.ErrOrderNotFound
	}
	return &o, nil
}

func (r orderRepo) FindByBrand(_ context.Context, brandID uuid.UUID) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orders []*entity.Order
	for _, o := range r.s.Orders {
		if o.BrandID == brandID {
			o := o
			orders = append(orders, &o)
		}
	}
	return orders, nil
}

func (r orderRepo) Update(ctx context.Context, o *entity.Order) error {
	return r.Create(ctx, o)
}

func (r orderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.Orders, id)
	delete(r.s.Entries, id)
	return nil
}

// Commission entry repository.

type entryRepo struct{ s *Store }

// CommissionEntryRepository returns the Store as an adapter.CommissionEntryRepository.
func (s *Store) CommissionEntryRepository() adapter.CommissionEntryRepository { return entryRepo{s} }

func (r entryRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*entity.CommissionEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.Entries[orderID]
	if !ok {
		return nil, nil
	}
	return copyEntry(e), nil
}

func (r entryRepo) FindByBrand(_ context.Context, brandID uuid.UUID) ([]*entity.CommissionEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var entries []*entity.CommissionEntry
	for _, e := range r.s.Entries {
		if e.BrandID == brandID {
			entries = append(entries, copyEntry(e))
		}
	}
	return entries, nil
}

func (r entryRepo) Upsert(_ context.Context, e *entity.CommissionEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailEntryWrites[e.OrderID] {
		return ErrWriteRejected
	}
	r.s.EntryWrites++
	r.s.Entries[e.OrderID] = *copyEntry(*e)
	return nil
}

func copyEntry(e entity.CommissionEntry) *entity.CommissionEntry {
	e.Payments = append([]entity.Payment(nil), e.Payments...)
	return &e
}

// Payment ledger repository.

type paymentLedgerRepo struct{ s *Store }

// PaymentLedgerRepository returns the Store as an adapter.PaymentLedgerRepository.
func (s *Store) PaymentLedgerRepository() adapter.PaymentLedgerRepository {
	return paymentLedgerRepo{s}
}

func (r paymentLedgerRepo) FindByKey(_ context.Context, key entity.GroupKey) (*entity.AccountPaymentLedger, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.PaymentLedgers[key]
	if !ok {
		return nil, nil
	}
	return copyPaymentLedger(l), nil
}

func (r paymentLedgerRepo) FindByBrand(_ context.Context, brandID uuid.UUID) ([]*entity.AccountPaymentLedger, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ledgers []*entity.AccountPaymentLedger
	for _, l := range r.s.PaymentLedgers {
		if l.BrandID == brandID {
			ledgers = append(ledgers, copyPaymentLedger(l))
		}
	}
	return ledgers, nil
}

func (r paymentLedgerRepo) Upsert(_ context.Context, l *entity.AccountPaymentLedger) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.PaymentLedgers[l.Key()] = *copyPaymentLedger(*l)
	return nil
}

func copyPaymentLedger(l entity.AccountPaymentLedger) *entity.AccountPaymentLedger {
	l.Payments = append([]entity.Payment(nil), l.Payments...)
	return &l
}

// Import session store.

type sessionStore struct{ s *Store }

// ImportSessionStore returns the Store as an adapter.ImportSessionStore.
func (s *Store) ImportSessionStore() adapter.ImportSessionStore { return sessionStore{s} }

func (r sessionStore) Save(_ context.Context, session *entity.ImportSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Sessions[session.ID] = *session
	return nil
}

func (r sessionStore) Get(_ context.Context, id uuid.UUID) (*entity.ImportSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session, ok := r.s.Sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, domainerror.ErrImportSessionNotFound
	}
	return &session, nil
}

func (r sessionStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.Sessions, id)
	return nil
}
