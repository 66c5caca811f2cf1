package ports

import (
	"context"

	"github.com/akimovv/SessionBooker/internal/domain"
)

// BookingNotifier hands a committed booking change to the delivery path.
// Implementations must return immediately and never surface delivery errors:
// by the time these are called the business transaction has already committed.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, n *domain.BookingNotification)
	NotifyBookingReactivated(ctx context.Context, n *domain.BookingNotification)
}
