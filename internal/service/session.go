package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/akimovv/SessionBooker/internal/access"
	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SessionService covers the facilitator side: editing and cancelling sessions,
// inspecting attendance and the dashboard.
type SessionService struct {
	sessionRepo ports.SessionRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	clock       clock.Clock
	logger      logger.Logger
}

func NewSessionService(
	sessionRepo ports.SessionRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	clk clock.Clock,
	logger logger.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		clock:       clk,
		logger:      logger,
	}
}

// Update changes the time and/or location of the caller's session. Nil fields
// are left untouched.
func (s *SessionService) Update(ctx context.Context, p access.Principal, sessionID int64, in domain.UpdateSessionInput) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err = access.RequireFacilitator(p); err != nil {
		return nil, err
	}
	if err = access.RequireSessionOwner(p, session); err != nil {
		return nil, err
	}

	if in.Time == nil && in.Location == nil {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if in.Location != nil {
		trimmed := strings.TrimSpace(*in.Location)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: location cannot be empty", domain.ErrValidation)
		}
		in.Location = &trimmed
	}

	updated, err := s.sessionRepo.Update(ctx, sessionID, in)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.logger.Info("session updated",
		logger.Int64("session_id", sessionID),
		logger.Int64("facilitator_id", p.ID),
	)

	return updated, nil
}

// CancelSession removes the session and every booking attached to it in one
// transaction and reports how many active bookings were affected.
func (s *SessionService) CancelSession(ctx context.Context, p access.Principal, sessionID int64) (int, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}
	if err = access.RequireFacilitator(p); err != nil {
		return 0, err
	}
	if err = access.RequireSessionOwner(p, session); err != nil {
		return 0, err
	}
	if session.IsPast(s.clock.Now()) {
		return 0, fmt.Errorf("cancel session: %w", domain.ErrSessionPassed)
	}

	affected, err := s.sessionRepo.DeleteCascade(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("session cancelled",
		logger.Int64("session_id", sessionID),
		logger.Int64("facilitator_id", p.ID),
		logger.Int("affected_bookings", affected),
	)

	return affected, nil
}

// SessionBookings returns every booking on the caller's session, cancelled
// ones included.
func (s *SessionService) SessionBookings(ctx context.Context, p access.Principal, sessionID int64) (*domain.Session, []*domain.BookingDetails, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("get session: %w", err)
	}
	if err = access.RequireFacilitator(p); err != nil {
		return nil, nil, err
	}
	if err = access.RequireSessionOwner(p, session); err != nil {
		return nil, nil, err
	}

	bookings, err := s.bookingRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("list session bookings: %w", err)
	}

	return session, bookings, nil
}

func (s *SessionService) ListMine(ctx context.Context, p access.Principal) ([]*domain.SessionSummary, error) {
	if err := access.RequireFacilitator(p); err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListByFacilitator(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, nil
}

// Dashboard aggregates the caller's session and booking counters plus the
// platform-wide user total.
func (s *SessionService) Dashboard(ctx context.Context, p access.Principal) (*domain.DashboardStats, error) {
	if err := access.RequireFacilitator(p); err != nil {
		return nil, err
	}

	stats, err := s.sessionRepo.FacilitatorStats(ctx, p.ID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("facilitator stats: %w", err)
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	stats.TotalUsers = users

	return stats, nil
}

func (s *SessionService) ListUsers(ctx context.Context, p access.Principal, page, perPage int) ([]*domain.User, int, error) {
	if err := access.RequireFacilitator(p); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	users, total, err := s.userRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}
