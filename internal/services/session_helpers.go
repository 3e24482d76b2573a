package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
)

// sessionStore wraps the repository with the error mapping and event
// publishing every service shares
type sessionStore struct {
	repo      repositories.SessionRepository
	publisher events.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (s *sessionStore) load(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// loadOnboarded returns the session only once it reached the dashboard
func (s *sessionStore) loadOnboarded(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDashboard || session.Dashboard == nil {
		return nil, ErrNotOnboarded
	}
	return session, nil
}

func (s *sessionStore) save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, session); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// publish never fails the caller; delivery problems are only logged
func (s *sessionStore) publish(ctx context.Context, eventType, sessionID string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	event := events.NewEvent(eventType, sessionID, data)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", eventType, "session_id", sessionID, "error", err)
	}
}
