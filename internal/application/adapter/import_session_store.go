// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/domain/entity"
)

// ImportSessionStore keeps previewed import rows until they are committed or expire.
type ImportSessionStore interface {
	// Save stores the session until its ExpiresAt.
	Save(ctx context.Context, session *entity.ImportSession) error

	// Get retrieves a session.
	// Returns ErrImportSessionNotFound when it expired or never existed.
	Get(ctx context.Context, id uuid.UUID) (*entity.ImportSession, error)

	// Delete removes a session once it has been committed.
	Delete(ctx context.Context, id uuid.UUID) error
}
