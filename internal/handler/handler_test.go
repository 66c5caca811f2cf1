package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akimovv/SessionBooker/internal/access"
	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/handler/dto"
	hmocks "github.com/akimovv/SessionBooker/internal/handler/mocks"
	"github.com/akimovv/SessionBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

var handlerNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockBookingSvc, *hmocks.MockSessionSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	sessionSvc := hmocks.NewMockSessionSvc(t)

	h := NewHandler(eventSvc, bookingSvc, sessionSvc, clock.NewFixed(handlerNow))

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		authed := api.Group("")
		authed.Use(middleware.Auth())
		{
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings/:id", h.GetBooking)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
			authed.POST("/bookings/:id/reactivate", h.ReactivateBooking)
			authed.GET("/my-bookings", h.MyBookings)

			fac := authed.Group("/facilitator")
			{
				fac.GET("/my-sessions", h.MySessions)
				fac.PUT("/sessions/:id", h.UpdateSession)
				fac.POST("/sessions/:id/cancel", h.CancelSession)
				fac.GET("/sessions/:id/bookings", h.SessionBookings)
				fac.GET("/dashboard", h.Dashboard)
				fac.GET("/users", h.ListUsers)
			}
		}
	}

	return eventSvc, bookingSvc, sessionSvc, r
}

func asParticipant(req *http.Request) {
	req.Header.Set("X-User-Id", "7")
	req.Header.Set("X-User-Role", "participant")
}

func asFacilitator(req *http.Request) {
	req.Header.Set("X-User-Id", "5")
	req.Header.Set("X-User-Role", "facilitator")
}

func participantPrincipal() access.Principal {
	return access.Principal{ID: 7, Role: domain.RoleParticipant}
}

func facilitatorPrincipal() access.Principal {
	return access.Principal{ID: 5, Role: domain.RoleFacilitator}
}

// --- Events ---

func TestHandler_ListEvents(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.EventSummary{
		{Event: domain.Event{ID: 1, Title: "Retreat"}, SessionsCount: 2},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].SessionsCount)
}

func TestHandler_GetEvent_DerivedFlags(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	details := &domain.EventDetails{
		Event: domain.Event{ID: 3, Title: "Retreat"},
		Sessions: []domain.Session{
			{ID: 10, EventID: 3, Time: handlerNow.Add(24 * time.Hour)},
			{ID: 11, EventID: 3, Time: handlerNow.Add(-time.Hour)},
		},
	}
	eventSvc.EXPECT().Get(mock.Anything, int64(3)).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 2)
	assert.True(t, resp.Sessions[0].IsUpcoming)
	assert.True(t, resp.Sessions[1].IsPast)
	assert.True(t, resp.Sessions[1].IsOngoing)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Get(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Auth boundary ---

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"session_id":10}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateBooking_BadRoleHeader(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"session_id":10}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "7")
	req.Header.Set("X-User-Role", "admin")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_New(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	booking := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}
	bookingSvc.EXPECT().Book(mock.Anything, participantPrincipal(), int64(10)).Return(booking, false, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"session_id":10}`)))
	req.Header.Set("Content-Type", "application/json")
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"reactivated":false`)
}

func TestHandler_CreateBooking_Reactivated(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	booking := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}
	bookingSvc.EXPECT().Book(mock.Anything, participantPrincipal(), int64(10)).Return(booking, true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"session_id":10}`)))
	req.Header.Set("Content-Type", "application/json")
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reactivated":true`)
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, participantPrincipal(), int64(10)).
		Return(nil, false, domain.ErrAlreadyBooked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"session_id":10}`)))
	req.Header.Set("Content-Type", "application/json")
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_PastSession(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, participantPrincipal(), int64(10)).
		Return(nil, false, domain.ErrSessionPassed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"session_id":10}`)))
	req.Header.Set("Content-Type", "application/json")
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_MissingSessionID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotOwner(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, participantPrincipal(), int64(100)).
		Return(nil, domain.ErrNotBookingOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/100/cancel", nil)
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Cancel(mock.Anything, participantPrincipal(), int64(404)).
		Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/404/cancel", nil)
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ReactivateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	booking := &domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}
	bookingSvc.EXPECT().Reactivate(mock.Anything, participantPrincipal(), int64(100)).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/100/reactivate", nil)
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booked", resp.Status)
}

func TestHandler_ReactivateBooking_AlreadyActive(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Reactivate(mock.Anything, participantPrincipal(), int64(100)).
		Return(nil, domain.ErrBookingActive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/100/reactivate", nil)
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MyBookings_FilterAndPagination(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookings := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: 100, UserID: 7, SessionID: 10, Status: domain.BookingStatusBooked}, EventTitle: "Retreat"},
	}
	bookingSvc.EXPECT().ListForUser(mock.Anything, participantPrincipal(), domain.StatusFilterBooked, 2, 5).
		Return(bookings, 6, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/my-bookings?status=booked&page=2&per_page=5", nil)
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":6`)
	assert.Contains(t, w.Body.String(), "Retreat")
}

func TestHandler_MyBookings_InvalidFilter(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListForUser(mock.Anything, participantPrincipal(), domain.StatusFilter("pending"), 1, 10).
		Return(nil, 0, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/my-bookings?status=pending", nil)
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Facilitator ---

func TestHandler_UpdateSession_Success(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	session := &domain.Session{ID: 10, EventID: 3, FacilitatorID: 5, Time: handlerNow.Add(24 * time.Hour), Location: "Studio B"}
	sessionSvc.EXPECT().Update(mock.Anything, facilitatorPrincipal(), int64(10), mock.Anything).Return(session, nil)

	body := []byte(`{"location":"Studio B"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/facilitator/sessions/10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asFacilitator(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Studio B", resp.Location)
	assert.True(t, resp.IsUpcoming)
}

func TestHandler_UpdateSession_BadTimeFormat(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"time":"tomorrow"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/facilitator/sessions/10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asFacilitator(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSession_ParticipantForbidden(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	sessionSvc.EXPECT().Update(mock.Anything, participantPrincipal(), int64(10), mock.Anything).
		Return(nil, domain.ErrFacilitatorOnly)

	body := []byte(`{"location":"Studio B"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/facilitator/sessions/10", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	asParticipant(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelSession_ReturnsAffectedCount(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	sessionSvc.EXPECT().CancelSession(mock.Anything, facilitatorPrincipal(), int64(10)).Return(4, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/facilitator/sessions/10/cancel", nil)
	asFacilitator(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"affected_bookings":4`)
}

func TestHandler_SessionBookings_IncludesCancelled(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	session := &domain.Session{ID: 10, EventID: 3, FacilitatorID: 5, Time: handlerNow.Add(24 * time.Hour)}
	bookings := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: 1, Status: domain.BookingStatusBooked}},
		{Booking: domain.Booking{ID: 2, Status: domain.BookingStatusCancelled}},
	}
	sessionSvc.EXPECT().SessionBookings(mock.Anything, facilitatorPrincipal(), int64(10)).
		Return(session, bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilitator/sessions/10/bookings", nil)
	asFacilitator(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cancelled"`)
}

func TestHandler_Dashboard(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	stats := &domain.DashboardStats{TotalSessions: 6, UpcomingSessions: 2, TotalBookings: 17, TotalUsers: 42}
	sessionSvc.EXPECT().Dashboard(mock.Anything, facilitatorPrincipal()).Return(stats, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilitator/dashboard", nil)
	asFacilitator(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.TotalUsers)
}

func TestHandler_ListUsers(t *testing.T) {
	_, _, sessionSvc, r := setupRouter(t)

	users := []*domain.User{{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleParticipant}}
	sessionSvc.EXPECT().ListUsers(mock.Anything, facilitatorPrincipal(), 1, 20).Return(users, 1, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/facilitator/users", nil)
	asFacilitator(req)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestHandler_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Get(mock.Anything, int64(3)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
