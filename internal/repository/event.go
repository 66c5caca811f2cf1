package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT id, title, description, start_date, end_date, created_at, updated_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.EventSummary, error) {
	query := `SELECT e.id, e.title, e.description, e.start_date, e.end_date, e.created_at, e.updated_at,
			         COUNT(s.id) AS sessions_count
			  FROM events e
			  LEFT JOIN sessions s ON s.event_id = e.id
			  GROUP BY e.id
			  ORDER BY e.start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventSummary
	for rows.Next() {
		var e domain.EventSummary
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt,
			&e.SessionsCount,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
