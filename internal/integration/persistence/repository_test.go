package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
	"github.com/commission-tracker/backend/internal/integration/persistence"
	"github.com/commission-tracker/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestBrand() *entity.Brand {
	return entity.NewBrand(
		"Acme Outdoor",
		decimal.NewFromInt(10),
		map[string]decimal.Decimal{"Rental": decimal.RequireFromString("12.5")},
		[]string{"Rental", "Retail"},
		[]string{"Open", "Shipped"},
	)
}

func TestBrandRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewBrandRepository(openTestDB(t))

	brand := newTestBrand()
	if err := repo.Create(ctx, brand); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByID(ctx, brand.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !got.DefaultCommissionPercent.Equal(decimal.NewFromInt(10)) {
		t.Errorf("DefaultCommissionPercent = %s, want 10", got.DefaultCommissionPercent)
	}
	if p, ok := got.CategoryOverrides["Rental"]; !ok || !p.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("CategoryOverrides[Rental] = %s (present %v), want 12.5", p, ok)
	}
	if len(got.Categories) != 2 || got.Categories[0] != "Rental" {
		t.Errorf("Categories = %v", got.Categories)
	}
	if len(got.Stages) != 2 || got.Stages[1] != "Shipped" {
		t.Errorf("Stages = %v", got.Stages)
	}

	_, err = repo.FindByID(ctx, uuid.New())
	if !errors.Is(err, domainerror.ErrBrandNotFound) {
		t.Errorf("FindByID(unknown) error = %v, want ErrBrandNotFound", err)
	}
}

func TestAccountRepository_FindByAccountNumber(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewAccountRepository(openTestDB(t))

	numbered := entity.NewAccount("Trailhead Supply", "A-100")
	unnumbered := entity.NewAccount("Basecamp", "")
	other := entity.NewAccount("Summit Gear", "")
	for _, a := range []*entity.Account{numbered, unnumbered, other} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s) error = %v", a.Name, err)
		}
	}

	got, err := repo.FindByAccountNumber(ctx, "A-100")
	if err != nil || got == nil || got.ID != numbered.ID {
		t.Fatalf("FindByAccountNumber(A-100) = %v, %v", got, err)
	}

	got, err = repo.FindByAccountNumber(ctx, "missing")
	if err != nil || got != nil {
		t.Errorf("FindByAccountNumber(missing) = %v, %v, want nil, nil", got, err)
	}

	err = repo.Create(ctx, entity.NewAccount("Copycat", "A-100"))
	if !errors.Is(err, domainerror.ErrDuplicateAccountNumber) {
		t.Errorf("Create(duplicate number) error = %v, want ErrDuplicateAccountNumber", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3 || all[0].Name != "Basecamp" {
		t.Errorf("FindAll() = %d accounts, first %q", len(all), all[0].Name)
	}
}

func TestOrderRepository_DeleteRemovesEntry(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	orders := persistence.NewOrderRepository(db)
	entries := persistence.NewCommissionEntryRepository(db)

	override := decimal.NewFromInt(20)
	order := entity.NewOrder(uuid.New(), uuid.New(), uuid.New(), "Rental",
		valueobject.MoneyFromCents(150000), &override, "Open", nil)
	if err := orders.Create(ctx, order); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := entries.Upsert(ctx, entity.NewCommissionEntry(order, valueobject.MoneyFromCents(30000))); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := orders.FindByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.CommissionOverride == nil || !got.CommissionOverride.Equal(override) {
		t.Errorf("CommissionOverride = %v, want 20", got.CommissionOverride)
	}
	if got.Total != valueobject.MoneyFromCents(150000) {
		t.Errorf("Total = %s, want 1500.00", got.Total)
	}

	if err := orders.Delete(ctx, order.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := orders.FindByID(ctx, order.ID); !errors.Is(err, domainerror.ErrOrderNotFound) {
		t.Errorf("FindByID(deleted) error = %v, want ErrOrderNotFound", err)
	}
	entry, err := entries.FindByOrderID(ctx, order.ID)
	if err != nil || entry != nil {
		t.Errorf("FindByOrderID(deleted) = %v, %v, want nil, nil", entry, err)
	}
	if err := orders.Delete(ctx, order.ID); !errors.Is(err, domainerror.ErrOrderNotFound) {
		t.Errorf("Delete(twice) error = %v, want ErrOrderNotFound", err)
	}
}

func TestCommissionEntryRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewCommissionEntryRepository(openTestDB(t))

	order := entity.NewOrder(uuid.New(), uuid.New(), uuid.New(), "Retail",
		valueobject.MoneyFromCents(100000), nil, "Open", nil)
	entry := entity.NewCommissionEntry(order, valueobject.MoneyFromCents(10000))
	if err := repo.Upsert(ctx, entry); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	paidOn := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	entry.Payments, _ = entity.MergePayments(entry.Payments,
		entity.NewPayment(valueobject.MoneyFromCents(4000), &paidOn, "CHK-1", entity.PaymentSourceManual))
	entry.PayStatus = valueobject.PayStatusPartial
	if err := repo.Upsert(ctx, entry); err != nil {
		t.Fatalf("Upsert(update) error = %v", err)
	}

	got, err := repo.FindByOrderID(ctx, order.ID)
	if err != nil {
		t.Fatalf("FindByOrderID() error = %v", err)
	}
	if got.Status() != valueobject.PayStatusPartial {
		t.Errorf("Status() = %s, want partial", got.Status())
	}
	if got.AmountPaid() != valueobject.MoneyFromCents(4000) {
		t.Errorf("AmountPaid() = %s, want 40.00", got.AmountPaid())
	}
	if d := got.PaidDate(); d == nil || !d.Equal(paidOn) {
		t.Errorf("PaidDate() = %v, want %v", d, paidOn)
	}

	byBrand, err := repo.FindByBrand(ctx, order.BrandID)
	if err != nil || len(byBrand) != 1 {
		t.Errorf("FindByBrand() = %d entries, %v, want 1", len(byBrand), err)
	}
}

func TestCommissionEntryRepository_MigratesLegacyColumns(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := persistence.NewCommissionEntryRepository(db)

	orderID := uuid.New()
	legacyCents := int64(2500)
	legacyDate := time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	row := &model.CommissionEntryModel{
		OrderID:            orderID,
		BrandID:            uuid.New(),
		CommissionDueCents: 5000,
		PayStatus:          string(valueobject.PayStatusPartial),
		AmountPaid:         &legacyCents,
		PaidDate:           &legacyDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	first, err := repo.FindByOrderID(ctx, orderID)
	if err != nil {
		t.Fatalf("FindByOrderID() error = %v", err)
	}
	if len(first.Payments) != 1 || first.Payments[0].Source != entity.PaymentSourceLegacy {
		t.Fatalf("Payments = %+v, want one legacy payment", first.Payments)
	}
	if first.AmountPaid() != valueobject.MoneyFromCents(2500) {
		t.Errorf("AmountPaid() = %s, want 25.00", first.AmountPaid())
	}

	second, err := repo.FindByOrderID(ctx, orderID)
	if err != nil {
		t.Fatalf("FindByOrderID(again) error = %v", err)
	}
	if second.Payments[0].ID != first.Payments[0].ID {
		t.Errorf("legacy payment id changed between loads: %s vs %s", first.Payments[0].ID, second.Payments[0].ID)
	}

	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	var stored model.CommissionEntryModel
	if err := db.First(&stored, "order_id = ?", orderID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.AmountPaid != nil || stored.PaidDate != nil {
		t.Errorf("legacy columns not cleared: amount %v date %v", stored.AmountPaid, stored.PaidDate)
	}

	migrated, err := repo.FindByOrderID(ctx, orderID)
	if err != nil {
		t.Fatalf("FindByOrderID(migrated) error = %v", err)
	}
	if len(migrated.Payments) != 1 || migrated.AmountPaid() != valueobject.MoneyFromCents(2500) {
		t.Errorf("migrated payments = %+v", migrated.Payments)
	}
}

func TestPaymentLedgerRepository_UpsertByKey(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewPaymentLedgerRepository(openTestDB(t))

	ledger := entity.NewAccountPaymentLedger(uuid.New(), uuid.New(), uuid.New())
	ledger.Record(entity.NewPayment(valueobject.MoneyFromCents(7500), nil, "import:s1#0", entity.PaymentSourceImport))
	if err := repo.Upsert(ctx, ledger); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	missing, err := repo.FindByKey(ctx, entity.GroupKey{AccountID: uuid.New(), BrandID: ledger.BrandID, TrackerID: ledger.TrackerID})
	if err != nil || missing != nil {
		t.Errorf("FindByKey(other account) = %v, %v, want nil, nil", missing, err)
	}

	got, err := repo.FindByKey(ctx, ledger.Key())
	if err != nil || got == nil {
		t.Fatalf("FindByKey() = %v, %v", got, err)
	}
	got.Record(entity.NewPayment(valueobject.MoneyFromCents(2500), nil, "CHK-9", entity.PaymentSourceManual))
	if err := repo.Upsert(ctx, got); err != nil {
		t.Fatalf("Upsert(existing) error = %v", err)
	}

	all, err := repo.FindByBrand(ctx, ledger.BrandID)
	if err != nil {
		t.Fatalf("FindByBrand() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("FindByBrand() = %d ledgers, want 1", len(all))
	}
	if all[0].Total() != valueobject.MoneyFromCents(10000) {
		t.Errorf("Total() = %s, want 100.00", all[0].Total())
	}
}
