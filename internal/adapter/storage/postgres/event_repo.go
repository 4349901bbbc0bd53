package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
)

// EventRepo implements ports.EventRepository.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create appends an event to vault_events.
func (r *EventRepo) Create(ctx context.Context, evt *domain.Event) error {
	fields, err := json.Marshal(evt.Fields)
	if err != nil {
		return fmt.Errorf("marshal event fields: %w", err)
	}

	query := `INSERT INTO vault_events (id, kind, source, fields, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.pool.Exec(ctx, query, evt.ID, string(evt.Kind), evt.Source, fields, evt.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (r *EventRepo) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	query := `SELECT id, kind, source, fields, created_at
		FROM vault_events ORDER BY seq DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, limit)
	for rows.Next() {
		var (
			evt    domain.Event
			kind   string
			fields []byte
		)
		if err := rows.Scan(&evt.ID, &kind, &evt.Source, &fields, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt.Kind = domain.EventKind(kind)
		if err := json.Unmarshal(fields, &evt.Fields); err != nil {
			return nil, fmt.Errorf("decode event %s fields: %w", evt.ID, err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
