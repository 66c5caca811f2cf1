package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingDetailsQuery = `
	SELECT b.id, b.user_id, b.session_id, b.status, b.timestamp, b.created_at, b.updated_at,
	       u.name, u.email, s.time, s.location, e.title
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN sessions s ON s.id = b.session_id
	JOIN events e ON e.id = s.event_id`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, session_id, status, timestamp)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, timestamp, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.UserID, b.SessionID, b.Status, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID, &b.Timestamp, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// уникальная пара (user_id, session_id) — кто-то успел раньше
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("scan booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, session_id, status, timestamp, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.UserID, &b.SessionID, &b.Status, &b.Timestamp, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) GetDetails(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	query := bookingDetailsQuery + ` WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking details: %w", err)
	}

	var d domain.BookingDetails
	if err = scanBookingDetails(row.Scan, &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking details: %w", err)
	}

	return &d, nil
}

func (r *BookingRepository) GetByUserAndSession(ctx context.Context, userID, sessionID int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, session_id, status, timestamp, created_at, updated_at
			  FROM bookings
			  WHERE user_id = $1 AND session_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get booking by pair: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.UserID, &b.SessionID, &b.Status, &b.Timestamp, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.setStatus(ctx, id, domain.BookingStatusBooked, domain.BookingStatusCancelled)
}

func (r *BookingRepository) Reactivate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.setStatus(ctx, id, domain.BookingStatusCancelled, domain.BookingStatusBooked)
}

// setStatus flips the row only if it is still in the expected state, so two
// concurrent transitions resolve to exactly one winner.
func (r *BookingRepository) setStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, timestamp = now(), updated_at = now()
			  WHERE id = $1 AND status = $2
			  RETURNING id, user_id, session_id, status, timestamp, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.UserID, &b.SessionID, &b.Status, &b.Timestamp, &b.CreatedAt, &b.UpdatedAt); err == nil {
		return &b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	// Определяем причину: строки нет вообще или статус уже другой
	checkQuery := `SELECT status FROM bookings WHERE id = $1`
	checkRow, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
	if checkErr != nil {
		return nil, fmt.Errorf("check booking status: %w", checkErr)
	}

	var status domain.BookingStatus
	if scanErr := checkRow.Scan(&status); scanErr != nil {
		return nil, domain.ErrBookingNotFound
	}

	if to == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingCancelled
	}
	return nil, domain.ErrBookingActive
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, filter domain.StatusFilter, limit, offset int) ([]*domain.BookingDetails, int, error) {
	where := ` WHERE b.user_id = $1`
	args := []any{userID}
	if filter != domain.StatusFilterAll {
		where += ` AND b.status = $2`
		args = append(args, string(filter))
	}

	countQuery := `SELECT COUNT(*) FROM bookings b` + where
	countRow, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	var total int
	if err = countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan booking count: %w", err)
	}

	query := fmt.Sprintf(
		"%s%s ORDER BY b.timestamp DESC LIMIT $%d OFFSET $%d",
		bookingDetailsQuery, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		if err = scanBookingDetails(rows.Scan, &d); err != nil {
			return nil, 0, fmt.Errorf("scan booking details: %w", err)
		}
		res = append(res, &d)
	}

	return res, total, rows.Err()
}

func (r *BookingRepository) ListBySession(ctx context.Context, sessionID int64) ([]*domain.BookingDetails, error) {
	query := bookingDetailsQuery + ` WHERE b.session_id = $1 ORDER BY b.timestamp DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by session: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		if err = scanBookingDetails(rows.Scan, &d); err != nil {
			return nil, fmt.Errorf("scan booking details: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func scanBookingDetails(scan func(dest ...any) error, d *domain.BookingDetails) error {
	return scan(
		&d.ID, &d.UserID, &d.SessionID, &d.Status, &d.Timestamp, &d.CreatedAt, &d.UpdatedAt,
		&d.UserName, &d.UserEmail, &d.SessionTime, &d.SessionLocation, &d.EventTitle,
	)
}
