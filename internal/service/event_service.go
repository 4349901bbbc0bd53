package service

import (
	"context"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService creates a new event service.
// If repo is nil, events are only written to the logger.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

// Emit logs evt and persists it on a best-effort basis. It runs inline so
// stored events keep the order in which state changed.
func (s *eventService) Emit(ctx context.Context, evt domain.Event) {
	s.log.Info().
		Str("event_id", evt.ID.String()).
		Str("kind", string(evt.Kind)).
		Str("source", evt.Source).
		Interface("fields", evt.Fields).
		Msg("event")

	if s.repo == nil {
		return
	}
	if err := s.repo.Create(context.WithoutCancel(ctx), &evt); err != nil {
		s.log.Warn().Err(err).Str("kind", string(evt.Kind)).Msg("failed to persist event")
	}
}

// Recent returns up to limit events, newest first.
func (s *eventService) Recent(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	if s.repo == nil {
		return []domain.Event{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}
