package service

import (
	"context"
	"testing"
	"time"

	"github.com/akimovv/SessionBooker/internal/access"
	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationMocks struct {
	bookingRepo *mocks.MockBookingRepo
	sessionRepo *mocks.MockSessionRepo
	eventRepo   *mocks.MockEventRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
}

func newReservationService(t *testing.T) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		sessionRepo: mocks.NewMockSessionRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewReservationService(
		m.bookingRepo, m.sessionRepo, m.eventRepo, m.userRepo,
		m.notifier, clock.NewFixed(testNow), newTestLogger(t),
	)
	return svc, m
}

func futureSession() *domain.Session {
	return &domain.Session{
		ID:            10,
		EventID:       3,
		FacilitatorID: 5,
		Time:          testNow.Add(48 * time.Hour),
		Location:      "Studio A",
	}
}

func pastSession() *domain.Session {
	s := futureSession()
	s.Time = testNow.Add(-time.Hour)
	return s
}

func participant() access.Principal {
	return access.Principal{ID: 7, Role: domain.RoleParticipant}
}

func expectNotifyLookups(m reservationMocks) {
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Name: "Alice", Email: "alice@example.com", Role: domain.RoleParticipant,
	}, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Event{
		ID: 3, Title: "Breathwork Intensive", StartDate: testNow.Add(24 * time.Hour),
	}, nil)
}

func TestReservationService_Book_NewBooking(t *testing.T) {
	svc, m := newReservationService(t)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().GetByUserAndSession(mock.Anything, int64(7), int64(10)).
		Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) error {
			b.ID = 100
			return nil
		})
	expectNotifyLookups(m)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, reactivated, err := svc.Book(context.Background(), participant(), 10)

	require.NoError(t, err)
	assert.False(t, reactivated)
	assert.Equal(t, int64(100), booking.ID)
	assert.Equal(t, domain.BookingStatusBooked, booking.Status)
}

func TestReservationService_Book_ReactivatesCancelledRow(t *testing.T) {
	svc, m := newReservationService(t)

	cancelled := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusCancelled}
	active := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().GetByUserAndSession(mock.Anything, int64(7), int64(10)).Return(cancelled, nil)
	m.bookingRepo.EXPECT().Reactivate(mock.Anything, int64(100)).Return(active, nil)
	expectNotifyLookups(m)
	m.notifier.EXPECT().NotifyBookingReactivated(mock.Anything, mock.Anything).Return()

	booking, reactivated, err := svc.Book(context.Background(), participant(), 10)

	require.NoError(t, err)
	assert.True(t, reactivated)
	assert.Equal(t, int64(100), booking.ID)
}

func TestReservationService_Book_AlreadyBooked(t *testing.T) {
	svc, m := newReservationService(t)

	active := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().GetByUserAndSession(mock.Anything, int64(7), int64(10)).Return(active, nil)

	_, _, err := svc.Book(context.Background(), participant(), 10)

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestReservationService_Book_LostReactivationRace(t *testing.T) {
	svc, m := newReservationService(t)

	cancelled := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusCancelled}

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().GetByUserAndSession(mock.Anything, int64(7), int64(10)).Return(cancelled, nil)
	m.bookingRepo.EXPECT().Reactivate(mock.Anything, int64(100)).Return(nil, domain.ErrBookingActive)

	_, _, err := svc.Book(context.Background(), participant(), 10)

	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestReservationService_Book_PastSession(t *testing.T) {
	svc, m := newReservationService(t)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(pastSession(), nil)

	_, _, err := svc.Book(context.Background(), participant(), 10)

	assert.ErrorIs(t, err, domain.ErrSessionPassed)
}

func TestReservationService_Book_SessionStartingNow(t *testing.T) {
	svc, m := newReservationService(t)

	s := futureSession()
	s.Time = testNow

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(s, nil)

	_, _, err := svc.Book(context.Background(), participant(), 10)

	assert.ErrorIs(t, err, domain.ErrSessionPassed)
}

func TestReservationService_Book_SessionNotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrSessionNotFound)

	_, _, err := svc.Book(context.Background(), participant(), 99)

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestReservationService_Book_NotifyLookupFailureDoesNotFailBooking(t *testing.T) {
	svc, m := newReservationService(t)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().GetByUserAndSession(mock.Anything, int64(7), int64(10)).
		Return(nil, domain.ErrBookingNotFound)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(nil, assert.AnError)

	_, _, err := svc.Book(context.Background(), participant(), 10)

	require.NoError(t, err)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, m := newReservationService(t)

	active := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}
	cancelled := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusCancelled}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(active, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, int64(100)).Return(cancelled, nil)

	booking, err := svc.Cancel(context.Background(), participant(), 100)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestReservationService_Cancel_NotOwner(t *testing.T) {
	svc, m := newReservationService(t)

	active := &domain.Booking{ID: 100, UserID: 8, SessionID: 10, Status: domain.BookingStatusBooked}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(active, nil)

	_, err := svc.Cancel(context.Background(), participant(), 100)

	assert.ErrorIs(t, err, domain.ErrNotBookingOwner)
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newReservationService(t)

	cancelled := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusCancelled}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(cancelled, nil)

	_, err := svc.Cancel(context.Background(), participant(), 100)

	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestReservationService_Cancel_PastSession(t *testing.T) {
	svc, m := newReservationService(t)

	active := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(active, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(pastSession(), nil)

	_, err := svc.Cancel(context.Background(), participant(), 100)

	assert.ErrorIs(t, err, domain.ErrSessionPassed)
}

func TestReservationService_Cancel_NotFoundBeforeOwnership(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), participant(), 404)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestReservationService_Reactivate_Success(t *testing.T) {
	svc, m := newReservationService(t)

	cancelled := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusCancelled}
	active := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(cancelled, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(futureSession(), nil)
	m.bookingRepo.EXPECT().Reactivate(mock.Anything, int64(100)).Return(active, nil)
	expectNotifyLookups(m)
	m.notifier.EXPECT().NotifyBookingReactivated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Reactivate(context.Background(), participant(), 100)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusBooked, booking.Status)
}

func TestReservationService_Reactivate_AlreadyActive(t *testing.T) {
	svc, m := newReservationService(t)

	active := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(active, nil)

	_, err := svc.Reactivate(context.Background(), participant(), 100)

	assert.ErrorIs(t, err, domain.ErrBookingActive)
}

func TestReservationService_Reactivate_PastSession(t *testing.T) {
	svc, m := newReservationService(t)

	cancelled := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusCancelled}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(cancelled, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(pastSession(), nil)

	_, err := svc.Reactivate(context.Background(), participant(), 100)

	assert.ErrorIs(t, err, domain.ErrSessionPassed)
}

func TestReservationService_Get_NotOwner(t *testing.T) {
	svc, m := newReservationService(t)

	details := &domain.BookingDetails{
		Booking: domain.Booking{ID: 100, UserID: 8, SessionID: 10, Status: domain.BookingStatusBooked},
	}
	m.bookingRepo.EXPECT().GetDetails(mock.Anything, int64(100)).Return(details, nil)

	_, err := svc.Get(context.Background(), participant(), 100)

	assert.ErrorIs(t, err, domain.ErrNotBookingOwner)
}

func TestReservationService_ListForUser_DefaultsAndFilter(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookingRepo.EXPECT().ListByUser(mock.Anything, int64(7), domain.StatusFilterAll, 10, 0).
		Return([]*domain.BookingDetails{}, 0, nil)

	_, total, err := svc.ListForUser(context.Background(), participant(), "", 0, 0)

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestReservationService_ListForUser_InvalidFilter(t *testing.T) {
	svc, _ := newReservationService(t)

	_, _, err := svc.ListForUser(context.Background(), participant(), "pending", 1, 10)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ListForUser_Pagination(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookingRepo.EXPECT().ListByUser(mock.Anything, int64(7), domain.StatusFilterBooked, 20, 40).
		Return([]*domain.BookingDetails{{}}, 41, nil)

	result, total, err := svc.ListForUser(context.Background(), participant(), domain.StatusFilterBooked, 3, 20)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 41, total)
}
