// Package cache implements short-lived stores backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/domain/entity"
	domainerror "github.com/commission-tracker/backend/internal/domain/error"
)

const importSessionKeyPrefix = "commission:import_session:"

// importSessionRecord is the JSON shape of a stored session.
type importSessionRecord struct {
	ID          uuid.UUID         `json:"id"`
	BrandID     uuid.UUID         `json:"brand_id"`
	TrackerID   uuid.UUID         `json:"tracker_id"`
	AllTrackers bool              `json:"all_trackers"`
	Rows        []importRowRecord `json:"rows"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

type importRowRecord struct {
	AccountNumber string `json:"account_number,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	Amount        string `json:"amount"`
	Date          string `json:"date,omitempty"`
}

// importSessionStore implements the adapter.ImportSessionStore interface.
type importSessionStore struct {
	client *redis.Client
}

// NewImportSessionStore creates a new Redis-backed import session store.
func NewImportSessionStore(client *redis.Client) adapter.ImportSessionStore {
	return &importSessionStore{
		client: client,
	}
}

// Save stores the session with a TTL matching its expiry.
func (s *importSessionStore) Save(ctx context.Context, session *entity.ImportSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("import session %s already expired", session.ID)
	}

	record := importSessionRecord{
		ID:          session.ID,
		BrandID:     session.Scope.BrandID,
		TrackerID:   session.Scope.TrackerID,
		AllTrackers: session.Scope.AllTrackers,
		Rows:        make([]importRowRecord, len(session.Rows)),
		CreatedAt:   session.CreatedAt,
		ExpiresAt:   session.ExpiresAt,
	}
	for i, row := range session.Rows {
		record.Rows[i] = importRowRecord(row)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode import session: %w", err)
	}
	return s.client.Set(ctx, importSessionKey(session.ID), data, ttl).Err()
}

// Get retrieves a session, or ErrImportSessionNotFound once its key expired.
func (s *importSessionStore) Get(ctx context.Context, id uuid.UUID) (*entity.ImportSession, error) {
	data, err := s.client.Get(ctx, importSessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrImportSessionNotFound
		}
		return nil, err
	}

	var record importSessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode import session %s: %w", id, err)
	}

	rows := make([]entity.ImportRow, len(record.Rows))
	for i, row := range record.Rows {
		rows[i] = entity.ImportRow(row)
	}

	return &entity.ImportSession{
		ID: record.ID,
		Scope: entity.LedgerScope{
			BrandID:     record.BrandID,
			TrackerID:   record.TrackerID,
			AllTrackers: record.AllTrackers,
		},
		Rows:      rows,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *importSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, importSessionKey(id)).Err()
}

func importSessionKey(id uuid.UUID) string {
	return importSessionKeyPrefix + id.String()
}
