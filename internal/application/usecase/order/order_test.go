package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commission-tracker/backend/internal/application/usecase/usecasetest"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
)

func TestCreateOrderUseCase(t *testing.T) {
	ctx := context.Background()
	fixture := usecasetest.NewFixture()
	account := fixture.Account("Blue Door Boutique", "A-100")
	store := fixture.Store
	uc := NewCreateOrderUseCase(store.BrandRepository(), store.AccountRepository(), store.TrackerRepository(), store.OrderRepository())

	base := func() CreateOrderInput {
		return CreateOrderInput{
			AccountID: account.ID,
			BrandID:   fixture.Brand.ID,
			TrackerID: fixture.Tracker.ID,
			Category:  "Rental",
			Total:     100000,
			Stage:     "Open",
		}
	}

	t.Run("category rate applies", func(t *testing.T) {
		output, err := uc.Execute(ctx, base())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CommissionDue != 15000 {
			t.Errorf("expected 15000, got %d", output.CommissionDue)
		}
		if len(store.Entries) != 0 {
			t.Error("expected no entry written on create")
		}
	})

	otherBrand := entity.NewBrand("Other", decimal.NewFromInt(5), nil, nil, nil)
	otherTracker := entity.NewTracker(otherBrand.ID, "Fall", nil, nil)
	store.Brands[otherBrand.ID] = *otherBrand
	store.Trackers[otherTracker.ID] = *otherTracker
	bad := decimal.NewFromInt(120)

	tests := []struct {
		name    string
		mutate  func(in *CreateOrderInput)
		wantErr error
	}{
		{name: "negative total", mutate: func(in *CreateOrderInput) { in.Total = -1 }, wantErr: domainerror.ErrInvalidAmount},
		{name: "unknown stage", mutate: func(in *CreateOrderInput) { in.Stage = "Lost" }, wantErr: domainerror.ErrInvalidStage},
		{name: "unknown category", mutate: func(in *CreateOrderInput) { in.Category = "Wholesale" }, wantErr: domainerror.ErrInvalidCategory},
		{name: "override out of range", mutate: func(in *CreateOrderInput) { in.CommissionOverride = &bad }, wantErr: domainerror.ErrInvalidRate},
		{name: "tracker of another brand", mutate: func(in *CreateOrderInput) { in.TrackerID = otherTracker.ID }, wantErr: domainerror.ErrTrackerBrandMismatch},
		{name: "unknown account", mutate: func(in *CreateOrderInput) { in.AccountID = uuid.New() }, wantErr: domainerror.ErrAccountNotFound},
		{name: "unknown brand", mutate: func(in *CreateOrderInput) { in.BrandID = uuid.New() }, wantErr: domainerror.ErrBrandNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base()
			tt.mutate(&input)
			if _, err := uc.Execute(ctx, input); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("universal stages are always accepted", func(t *testing.T) {
		input := base()
		input.Stage = entity.StageCancelled
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestUpdateOrderUseCase_RefreshesEntry(t *testing.T) {
	ctx := context.Background()
	fixture := usecasetest.NewFixture()
	account := fixture.Account("Blue Door Boutique", "A-100")
	order := fixture.Order(account.ID, "Retail", 100000)
	fixture.Entry(order, valueobject.PayStatusInvoiceSent)
	store := fixture.Store

	uc := NewUpdateOrderUseCase(store.BrandRepository(), store.OrderRepository(), store.CommissionEntryRepository())

	override := decimal.NewFromInt(20)
	total := valueobject.Money(50000)
	output, err := uc.Execute(ctx, UpdateOrderInput{OrderID: order.ID, Total: &total, CommissionOverride: &override})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.CommissionDue != 10000 {
		t.Errorf("expected 10000, got %d", output.CommissionDue)
	}
	stored := store.Entries[order.ID]
	if stored.CommissionDue != 10000 {
		t.Errorf("expected entry commission refreshed to 10000, got %d", stored.CommissionDue)
	}
	if stored.PayStatus != valueobject.PayStatusInvoiceSent {
		t.Errorf("expected status untouched, got %s", stored.PayStatus)
	}

	t.Run("clearing the override falls back to the brand rate", func(t *testing.T) {
		output, err := uc.Execute(ctx, UpdateOrderInput{OrderID: order.ID, ClearOverride: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CommissionDue != 5000 {
			t.Errorf("expected 5000, got %d", output.CommissionDue)
		}
	})
}

func TestSetPayStatusUseCase(t *testing.T) {
	ctx := context.Background()
	fixture := usecasetest.NewFixture()
	account := fixture.Account("Blue Door Boutique", "A-100")
	order := fixture.Order(account.ID, "Rental", 100000)
	store := fixture.Store

	uc := NewSetPayStatusUseCase(store.BrandRepository(), store.OrderRepository(), store.CommissionEntryRepository())

	output, err := uc.Execute(ctx, SetPayStatusInput{OrderID: order.ID, PayStatus: "Invoice Sent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Entry.PayStatus != valueobject.PayStatusInvoiceSent {
		t.Errorf("expected invoice_sent, got %s", output.Entry.PayStatus)
	}
	if output.Entry.CommissionDue != 15000 {
		t.Errorf("expected lazily created entry with 15000 due, got %d", output.Entry.CommissionDue)
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.Execute(ctx, SetPayStatusInput{OrderID: order.ID, PayStatus: "settled"})
		if !errors.Is(err, domainerror.ErrInvalidPayStatus) {
			t.Errorf("expected ErrInvalidPayStatus, got %v", err)
		}
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		store.FailEntryWrites[order.ID] = true
		defer delete(store.FailEntryWrites, order.ID)

		_, err := uc.Execute(ctx, SetPayStatusInput{OrderID: order.ID, PayStatus: "paid"})
		if !errors.Is(err, domainerror.ErrEntryWriteFailure) {
			t.Errorf("expected ErrEntryWriteFailure, got %v", err)
		}
	})
}

func TestDeleteOrderUseCase(t *testing.T) {
	ctx := context.Background()
	fixture := usecasetest.NewFixture()
	account := fixture.Account("Blue Door Boutique", "A-100")
	order := fixture.Order(account.ID, "Rental", 100000)
	fixture.Entry(order, valueobject.PayStatusPaid)

	uc := NewDeleteOrderUseCase(fixture.Store.OrderRepository())
	if err := uc.Execute(ctx, DeleteOrderInput{OrderID: order.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := fixture.Store.Entries[order.ID]; ok {
		t.Error("expected entry deleted with its order")
	}

	if err := uc.Execute(ctx, DeleteOrderInput{OrderID: order.ID}); !errors.Is(err, domainerror.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
