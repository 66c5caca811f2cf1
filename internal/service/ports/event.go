package ports

import (
	"context"

	"github.com/akimovv/SessionBooker/internal/domain"
)

type EventRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.EventSummary, error)
}
