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

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT id, event_id, facilitator_id, time, location, created_at, updated_at
			  FROM sessions
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = row.Scan(&s.ID, &s.EventID, &s.FacilitatorID, &s.Time, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) Update(ctx context.Context, id int64, in domain.UpdateSessionInput) (*domain.Session, error) {
	query := `UPDATE sessions
			  SET time = COALESCE($2, time),
			      location = COALESCE($3, location),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, event_id, facilitator_id, time, location, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, in.Time, in.Location)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	var s domain.Session
	if err = row.Scan(&s.ID, &s.EventID, &s.FacilitatorID, &s.Time, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}

// DeleteCascade counts the active bookings, then removes the bookings and the
// session in the same transaction. The FK cascade would do the deletes too;
// they stay explicit so the count and the removal are one atomic unit.
func (r *SessionRepository) DeleteCascade(ctx context.Context, id int64) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	countQuery := `SELECT COUNT(*) FROM bookings WHERE session_id = $1 AND status = $2`
	var active int
	if err = tx.QueryRowContext(ctx, countQuery, id, domain.BookingStatusBooked).Scan(&active); err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE session_id = $1`, id); err != nil {
		return 0, fmt.Errorf("delete bookings: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("session rows affected: %w", err)
	}
	if rows == 0 {
		return 0, domain.ErrSessionNotFound
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return active, nil
}

func (r *SessionRepository) ListByFacilitator(ctx context.Context, facilitatorID int64) ([]*domain.SessionSummary, error) {
	query := `SELECT s.id, s.event_id, s.facilitator_id, s.time, s.location, s.created_at, s.updated_at,
			         e.title,
			         COUNT(b.id) FILTER (WHERE b.status = $2) AS active_bookings
			  FROM sessions s
			  JOIN events e ON e.id = s.event_id
			  LEFT JOIN bookings b ON b.session_id = s.id
			  WHERE s.facilitator_id = $1
			  GROUP BY s.id, e.title
			  ORDER BY s.time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilitatorID, domain.BookingStatusBooked)
	if err != nil {
		return nil, fmt.Errorf("list sessions by facilitator: %w", err)
	}
	defer rows.Close()

	var res []*domain.SessionSummary
	for rows.Next() {
		var s domain.SessionSummary
		if err = rows.Scan(
			&s.ID, &s.EventID, &s.FacilitatorID, &s.Time, &s.Location, &s.CreatedAt, &s.UpdatedAt,
			&s.EventTitle, &s.ActiveBookings,
		); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Session, error) {
	query := `SELECT id, event_id, facilitator_id, time, location, created_at, updated_at
			  FROM sessions
			  WHERE event_id = $1
			  ORDER BY time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err = rows.Scan(&s.ID, &s.EventID, &s.FacilitatorID, &s.Time, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) FacilitatorStats(ctx context.Context, facilitatorID int64, now time.Time) (*domain.DashboardStats, error) {
	query := `SELECT COUNT(s.id),
			         COUNT(s.id) FILTER (WHERE s.time > $2),
			         COALESCE(SUM((SELECT COUNT(*) FROM bookings b
			                       WHERE b.session_id = s.id AND b.status = $3)), 0)
			  FROM sessions s
			  WHERE s.facilitator_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, facilitatorID, now, domain.BookingStatusBooked)
	if err != nil {
		return nil, fmt.Errorf("facilitator stats: %w", err)
	}

	var stats domain.DashboardStats
	if err = row.Scan(&stats.TotalSessions, &stats.UpcomingSessions, &stats.TotalBookings); err != nil {
		return nil, fmt.Errorf("scan facilitator stats: %w", err)
	}

	return &stats, nil
}
