package ports

import (
	"context"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
)

type SessionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	Update(ctx context.Context, id int64, in domain.UpdateSessionInput) (*domain.Session, error)
	// DeleteCascade removes the session and all its bookings in one
	// transaction and reports how many active bookings were swept away.
	DeleteCascade(ctx context.Context, id int64) (int, error)
	ListByFacilitator(ctx context.Context, facilitatorID int64) ([]*domain.SessionSummary, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Session, error)
	// FacilitatorStats fills every dashboard field except TotalUsers.
	FacilitatorStats(ctx context.Context, facilitatorID int64, now time.Time) (*domain.DashboardStats, error)
}
