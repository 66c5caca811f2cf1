package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimovv/SessionBooker/internal/access"
	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService owns the booking state machine. All mutating operations
// run as one short store transaction; notification dispatch happens strictly
// after commit and never affects the outcome.
type ReservationService struct {
	bookingRepo ports.BookingRepo
	sessionRepo ports.SessionRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	clock       clock.Clock
	logger      logger.Logger
}

func NewReservationService(
	bookingRepo ports.BookingRepo,
	sessionRepo ports.SessionRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	clk clock.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		bookingRepo: bookingRepo,
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		clock:       clk,
		logger:      logger,
	}
}

// Book reserves a seat on a future session for the caller. If the caller holds
// a cancelled booking for the session, that same row is flipped back to booked
// and reactivated=true is returned; no second row is ever created.
func (s *ReservationService) Book(ctx context.Context, p access.Principal, sessionID int64) (*domain.Booking, bool, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("get session: %w", err)
	}

	if !session.IsUpcoming(s.clock.Now()) {
		return nil, false, fmt.Errorf("book session: %w", domain.ErrSessionPassed)
	}

	existing, err := s.bookingRepo.GetByUserAndSession(ctx, p.ID, sessionID)
	switch {
	case err == nil && existing.IsActive():
		return nil, false, domain.ErrAlreadyBooked

	case err == nil:
		// reactivate via book: та же строка, только статус
		booking, err := s.bookingRepo.Reactivate(ctx, existing.ID)
		if err != nil {
			if errors.Is(err, domain.ErrBookingActive) {
				// lost a race against a concurrent reactivation
				return nil, false, domain.ErrAlreadyBooked
			}
			return nil, false, fmt.Errorf("reactivate booking: %w", err)
		}

		s.logger.Info("booking reactivated via book",
			logger.Int64("booking_id", booking.ID),
			logger.Int64("session_id", sessionID),
			logger.Int64("user_id", p.ID),
		)
		s.notify(context.WithoutCancel(ctx), booking, session, domain.BookingActionReactivated)
		return booking, true, nil

	case !errors.Is(err, domain.ErrBookingNotFound):
		return nil, false, fmt.Errorf("get booking: %w", err)
	}

	booking := &domain.Booking{
		UserID:    p.ID,
		SessionID: sessionID,
		Status:    domain.BookingStatusBooked,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, false, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("session_id", sessionID),
		logger.Int64("user_id", p.ID),
	)
	s.notify(context.WithoutCancel(ctx), booking, session, domain.BookingActionCreated)

	return booking, false, nil
}

// Cancel moves the caller's booking to cancelled. The session must not have
// started yet.
func (s *ReservationService) Cancel(ctx context.Context, p access.Principal, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = access.RequireBookingOwner(p, booking); err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, domain.ErrBookingCancelled
	}

	session, err := s.sessionRepo.GetByID(ctx, booking.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.IsPast(s.clock.Now()) {
		return nil, fmt.Errorf("cancel booking: %w", domain.ErrSessionPassed)
	}

	updated, err := s.bookingRepo.Cancel(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.Int64("booking_id", updated.ID),
		logger.Int64("session_id", updated.SessionID),
		logger.Int64("user_id", p.ID),
	)

	// TODO: confirm with product whether user-initiated cancellations should
	// notify the CRM; today only created/reactivated are delivered.

	return updated, nil
}

// Reactivate moves the caller's cancelled booking back to booked. The guarded
// status flip in the store resolves concurrent double-reactivation to one
// winner even though the single-row constraint already makes a second active
// row impossible.
func (s *ReservationService) Reactivate(ctx context.Context, p access.Principal, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = access.RequireBookingOwner(p, booking); err != nil {
		return nil, err
	}
	if booking.IsActive() {
		return nil, domain.ErrBookingActive
	}

	session, err := s.sessionRepo.GetByID(ctx, booking.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.IsPast(s.clock.Now()) {
		return nil, fmt.Errorf("reactivate booking: %w", domain.ErrSessionPassed)
	}

	updated, err := s.bookingRepo.Reactivate(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("reactivate booking: %w", err)
	}

	s.logger.Info("booking reactivated",
		logger.Int64("booking_id", updated.ID),
		logger.Int64("session_id", updated.SessionID),
		logger.Int64("user_id", p.ID),
	)
	s.notify(context.WithoutCancel(ctx), updated, session, domain.BookingActionReactivated)

	return updated, nil
}

func (s *ReservationService) Get(ctx context.Context, p access.Principal, bookingID int64) (*domain.BookingDetails, error) {
	details, err := s.bookingRepo.GetDetails(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = access.RequireBookingOwner(p, &details.Booking); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *ReservationService) ListForUser(ctx context.Context, p access.Principal, filter domain.StatusFilter, page, perPage int) ([]*domain.BookingDetails, int, error) {
	if filter == "" {
		filter = domain.StatusFilterAll
	}
	if !filter.Valid() {
		return nil, 0, fmt.Errorf("%w: invalid status filter %q", domain.ErrValidation, filter)
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	bookings, total, err := s.bookingRepo.ListByUser(ctx, p.ID, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, total, nil
}

// notify assembles the CRM payload and hands it off. Lookup failures here are
// logged and swallowed: the booking change has already committed.
func (s *ReservationService) notify(ctx context.Context, booking *domain.Booking, session *domain.Session, action domain.BookingAction) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to load user for notification",
			logger.Int64("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, session.EventID)
	if err != nil {
		s.logger.Error("failed to load event for notification",
			logger.Int64("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	n := &domain.BookingNotification{
		BookingID: booking.ID,
		User: domain.NotificationUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Event: domain.NotificationEvent{
			ID:        event.ID,
			Title:     event.Title,
			StartDate: event.StartDate,
		},
		FacilitatorID: session.FacilitatorID,
		UserChatID:    user.TelegramChatID,
	}

	switch action {
	case domain.BookingActionReactivated:
		s.notifier.NotifyBookingReactivated(ctx, n)
	default:
		s.notifier.NotifyBookingCreated(ctx, n)
	}
}
