package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/akimovv/SessionBooker/internal/access"
	"github.com/akimovv/SessionBooker/internal/clock"
	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/akimovv/SessionBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	List(ctx context.Context) ([]*domain.EventSummary, error)
	Get(ctx context.Context, eventID int64) (*domain.EventDetails, error)
}

type BookingSvc interface {
	Book(ctx context.Context, p access.Principal, sessionID int64) (*domain.Booking, bool, error)
	Cancel(ctx context.Context, p access.Principal, bookingID int64) (*domain.Booking, error)
	Reactivate(ctx context.Context, p access.Principal, bookingID int64) (*domain.Booking, error)
	Get(ctx context.Context, p access.Principal, bookingID int64) (*domain.BookingDetails, error)
	ListForUser(ctx context.Context, p access.Principal, filter domain.StatusFilter, page, perPage int) ([]*domain.BookingDetails, int, error)
}

type SessionSvc interface {
	Update(ctx context.Context, p access.Principal, sessionID int64, in domain.UpdateSessionInput) (*domain.Session, error)
	CancelSession(ctx context.Context, p access.Principal, sessionID int64) (int, error)
	SessionBookings(ctx context.Context, p access.Principal, sessionID int64) (*domain.Session, []*domain.BookingDetails, error)
	ListMine(ctx context.Context, p access.Principal) ([]*domain.SessionSummary, error)
	Dashboard(ctx context.Context, p access.Principal) (*domain.DashboardStats, error)
	ListUsers(ctx context.Context, p access.Principal, page, perPage int) ([]*domain.User, int, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	sessionService SessionSvc
	clock          clock.Clock
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, sessionService SessionSvc, clk clock.Clock) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		sessionService: sessionService,
		clock:          clk,
	}
}

func principal(c *ginext.Context) (access.Principal, bool) {
	p, ok := access.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
	}
	return p, ok
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt(c *ginext.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventSummaryResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventSummaryResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details, h.clock.Now()))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, reactivated, err := h.bookingService.Book(c.Request.Context(), p, req.SessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if reactivated {
		status = http.StatusOK
	}

	c.JSON(status, ginext.H{
		"booking":     dto.ToBookingResponse(booking),
		"reactivated": reactivated,
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ReactivateBooking(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Reactivate(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	filter := domain.StatusFilter(c.DefaultQuery("status", string(domain.StatusFilterAll)))
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 10)

	bookings, total, err := h.bookingService.ListForUser(c.Request.Context(), p, filter, page, perPage)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDetailsResponse(b))
	}

	c.JSON(http.StatusOK, ginext.H{
		"bookings":   resp,
		"pagination": dto.Pagination{Page: page, PerPage: perPage, Total: total},
	})
}

// Facilitator sessions

func (h *Handler) MySessions(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	sessions, err := h.sessionService.ListMine(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := h.clock.Now()
	resp := make([]dto.SessionSummaryResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionSummaryResponse(s, now))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSession(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.UpdateSessionInput{Location: req.Location}
	if req.Time != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Time)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid time format, expected RFC3339",
			})
			return
		}
		in.Time = &parsed
	}

	session, err := h.sessionService.Update(c.Request.Context(), p, id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session, h.clock.Now()))
}

func (h *Handler) CancelSession(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	affected, err := h.sessionService.CancelSession(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":            "cancelled",
		"affected_bookings": affected,
	})
}

func (h *Handler) SessionBookings(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	session, bookings, err := h.sessionService.SessionBookings(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDetailsResponse(b))
	}

	c.JSON(http.StatusOK, ginext.H{
		"session":  dto.ToSessionResponse(session, h.clock.Now()),
		"bookings": resp,
	})
}

func (h *Handler) Dashboard(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	stats, err := h.sessionService.Dashboard(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		TotalSessions:    stats.TotalSessions,
		UpcomingSessions: stats.UpcomingSessions,
		TotalBookings:    stats.TotalBookings,
		TotalUsers:       stats.TotalUsers,
	})
}

func (h *Handler) ListUsers(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)

	users, total, err := h.sessionService.ListUsers(c.Request.Context(), p, page, perPage)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, ginext.H{
		"users":      resp,
		"pagination": dto.Pagination{Page: page, PerPage: perPage, Total: total},
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrFacilitatorOnly),
		errors.Is(err, domain.ErrNotSessionOwner),
		errors.Is(err, domain.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingCancelled),
		errors.Is(err, domain.ErrBookingActive),
		errors.Is(err, domain.ErrSessionPassed),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
