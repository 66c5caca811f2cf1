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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, telegram_chat_id, created_at, updated_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, int, error) {
	countRow, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	var total int
	if err = countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan user count: %w", err)
	}

	query := `SELECT id, name, email, password_hash, role, telegram_chat_id, created_at, updated_at
			  FROM users
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, total, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan user count: %w", err)
	}

	return total, nil
}
