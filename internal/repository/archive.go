package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/food_rescue_network/internal/models"
	"github.com/shenikar/food_rescue_network/internal/service"
)

// EventArchive - архив событий жизненного цикла в PostgreSQL.
// Таблица только дописывается; источником истины остается хранилище в памяти.
type EventArchive struct {
	db *pgxpool.Pool
}

// NewEventArchive создает архив поверх пула соединений
func NewEventArchive(db *pgxpool.Pool) service.EventArchive {
	return &EventArchive{
		db: db,
	}
}

// RecordEvent дописывает событие в архив
func (r *EventArchive) RecordEvent(ctx context.Context, event *models.LifecycleEvent) error {
	query := `
		INSERT INTO lifecycle_events (donation_id, kind, payload)
		VALUES ($1, $2, $3) RETURNING id, occurred_at;
	`
	err := r.db.QueryRow(ctx, query,
		event.DonationID,
		event.Kind,
		event.Payload,
	).Scan(&event.ID, &event.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to record lifecycle event: %w", err)
	}
	return nil
}

// RecentEvents возвращает хвост архива, новые первыми
func (r *EventArchive) RecentEvents(ctx context.Context, limit int) ([]*models.LifecycleEvent, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, donation_id, kind, payload, occurred_at
		FROM lifecycle_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifecycle events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.LifecycleEvent, 0)
	for rows.Next() {
		event := &models.LifecycleEvent{}
		err := rows.Scan(
			&event.ID,
			&event.DonationID,
			&event.Kind,
			&event.Payload,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lifecycle event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error lifecycle events iteration: %w", err)
	}
	return events, nil
}
