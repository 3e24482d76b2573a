package repositories

import (
	"context"
	"errors"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// SessionRepository stores onboarding/dashboard sessions. Implementations
// hand out copies: mutating a returned session has no effect until Save.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error

	// Health check
	Ping(ctx context.Context) error
}
