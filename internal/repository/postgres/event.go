package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ev := &domain.Event{}
	query := `SELECT id, host_id, name, capacity, created_at FROM events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ev.ID, &ev.HostID, &ev.Name, &ev.Capacity, &ev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (r *eventRepository) GetAvailability(ctx context.Context, eventID string) (*domain.Availability, error) {
	// One statement so the three counters come from a single snapshot.
	// Available is derived, never clamped: overbooked events report a
	// negative number.
	query := `SELECT e.capacity,
	            COALESCE((SELECT SUM(p.party_size) FROM participants p
	                      WHERE p.event_id = e.id AND p.status = 'ACCEPTED'), 0),
	            COALESCE((SELECT SUM(j.party_size) FROM join_requests j
	                      WHERE j.event_id = e.id AND j.status = 'PENDING'
	                        AND j.hold_expires_at > $2), 0)
	          FROM events e WHERE e.id = $1`
	av := &domain.Availability{}
	err := r.db.QueryRowContext(ctx, query, eventID, time.Now()).Scan(&av.Total, &av.Confirmed, &av.Held)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	av.Available = av.Total - av.Confirmed - av.Held
	return av, nil
}
