// Package usecasetest provides in-memory repositories for use case tests.
package usecasetest

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

// Fixture is a brand with one tracker, seeded into a Store.
// The brand pays 10% by default and 15% on "Rental".
type Fixture struct {
	Store   *Store
	Brand   *entity.Brand
	Tracker *entity.Tracker
}

// NewFixture seeds a Store with the default brand and tracker.
func NewFixture() *Fixture {
	store := NewStore()
	brand := entity.NewBrand(
		"Acme Outdoor",
		decimal.NewFromInt(10),
		map[string]decimal.Decimal{"Rental": decimal.NewFromInt(15)},
		[]string{"Rental", "Retail"},
		[]string{"Open", "Shipped"},
	)
	tracker := entity.NewTracker(brand.ID, "Spring 2024", nil, nil)

	store.Brands[brand.ID] = *brand
	store.Trackers[tracker.ID] = *tracker

	return &Fixture{Store: store, Brand: brand, Tracker: tracker}
}

// Account seeds an account.
func (f *Fixture) Account(name, number string) *entity.Account {
	account := entity.NewAccount(name, number)
	f.Store.Accounts[account.ID] = *account
	return account
}

// Order seeds an open order in the fixture's tracker.
func (f *Fixture) Order(accountID uuid.UUID, category string, total valueobject.Money) *entity.Order {
	order := entity.NewOrder(accountID, f.Brand.ID, f.Tracker.ID, category, total, nil, "Open", nil)
	f.Store.Orders[order.ID] = *order
	return order
}

// Entry seeds a commission entry for an order.
func (f *Fixture) Entry(order *entity.Order, status valueobject.PayStatus, payments ...entity.Payment) *entity.CommissionEntry {
	entry := entity.NewCommissionEntry(order, valueobject.Zero)
	entry.PayStatus = status
	entry.Payments = payments
	f.Store.Entries[order.ID] = *entry
	return entry
}
