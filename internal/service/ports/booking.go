package ports

import (
	"context"

	"github.com/akimovv/SessionBooker/internal/domain"
)

type BookingRepo interface {
	// Create inserts the single booking row for (user, session). A concurrent
	// insert for the same pair surfaces as domain.ErrAlreadyBooked.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetails(ctx context.Context, id int64) (*domain.BookingDetails, error)
	GetByUserAndSession(ctx context.Context, userID, sessionID int64) (*domain.Booking, error)
	// Cancel flips booked → cancelled on the existing row; fails with
	// domain.ErrBookingCancelled if the row is not currently booked.
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	// Reactivate flips cancelled → booked on the existing row; fails with
	// domain.ErrBookingActive if the row is not currently cancelled.
	Reactivate(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, filter domain.StatusFilter, limit, offset int) ([]*domain.BookingDetails, int, error)
	ListBySession(ctx context.Context, sessionID int64) ([]*domain.BookingDetails, error)
}
