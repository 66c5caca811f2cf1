package ports

import (
	"context"

	"github.com/akimovv/SessionBooker/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, int, error)
	Count(ctx context.Context) (int, error)
}
