package account

import (
	"context"
	"errors"
	"testing"

	"github.com/commission-tracker/backend/internal/application/usecase/usecasetest"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

func TestCreateAccountUseCase(t *testing.T) {
	ctx := context.Background()
	store := usecasetest.NewStore()
	uc := NewCreateAccountUseCase(store.AccountRepository())

	output, err := uc.Execute(ctx, CreateAccountInput{Name: " Blue Door Boutique ", AccountNumber: "A-100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Account.Name != "Blue Door Boutique" {
		t.Errorf("expected trimmed name, got %q", output.Account.Name)
	}

	t.Run("duplicate account number", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateAccountInput{Name: "Other", AccountNumber: "A-100"})
		if !errors.Is(err, domainerror.ErrDuplicateAccountNumber) {
			t.Errorf("expected ErrDuplicateAccountNumber, got %v", err)
		}
	})

	t.Run("accounts without number may repeat", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(ctx, CreateAccountInput{Name: "Walk-in"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateAccountInput{AccountNumber: "A-200"})
		var comErr *domainerror.CommissionError
		if !errors.As(err, &comErr) || comErr.Code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected missing fields error, got %v", err)
		}
	})

	list, err := NewListAccountsUseCase(store.AccountRepository()).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Accounts) != 3 {
		t.Errorf("expected 3 accounts, got %d", len(list.Accounts))
	}
}
