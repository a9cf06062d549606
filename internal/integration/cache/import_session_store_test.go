package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/integration/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestImportSessionStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	store := cache.NewImportSessionStore(client)

	scope := entity.TrackerScope(uuid.New(), uuid.New())
	rows := []entity.ImportRow{
		{AccountNumber: "A-100", Amount: "150.00", Date: "2024-03-01"},
		{AccountName: "Basecamp", Amount: "25"},
	}
	session := entity.NewImportSession(scope, rows, 30*time.Minute)

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Scope != scope {
		t.Errorf("Scope = %+v, want %+v", got.Scope, scope)
	}
	if len(got.Rows) != 2 || got.Rows[0] != rows[0] || got.Rows[1] != rows[1] {
		t.Errorf("Rows = %+v, want %+v", got.Rows, rows)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, domainerror.ErrImportSessionNotFound) {
		t.Errorf("Get(deleted) error = %v, want ErrImportSessionNotFound", err)
	}
}

func TestImportSessionStore_Expiry(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	store := cache.NewImportSessionStore(client)

	session := entity.NewImportSession(entity.AllTrackersScope(uuid.New()), nil, time.Minute)
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	server.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, session.ID); !errors.Is(err, domainerror.ErrImportSessionNotFound) {
		t.Errorf("Get(expired) error = %v, want ErrImportSessionNotFound", err)
	}
}

func TestImportSessionStore_RejectsExpiredSession(t *testing.T) {
	_, client := newTestRedis(t)
	store := cache.NewImportSessionStore(client)

	session := entity.NewImportSession(entity.AllTrackersScope(uuid.New()), nil, time.Minute)
	session.ExpiresAt = time.Now().Add(-time.Second)

	if err := store.Save(context.Background(), session); err == nil {
		t.Error("Save(expired) error = nil, want error")
	}
}
