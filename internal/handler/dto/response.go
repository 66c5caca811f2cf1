package dto

import (
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
)

type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CreatedAt   string `json:"created_at"`
}

type EventSummaryResponse struct {
	EventResponse
	SessionsCount int `json:"sessions_count"`
}

type EventDetailsResponse struct {
	Event    EventResponse     `json:"event"`
	Sessions []SessionResponse `json:"sessions"`
}

// SessionResponse carries the derived temporal flags so clients never compute
// them against their own clocks.
type SessionResponse struct {
	ID            int64  `json:"id"`
	EventID       int64  `json:"event_id"`
	FacilitatorID int64  `json:"facilitator_id"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	IsUpcoming    bool   `json:"is_upcoming"`
	IsOngoing     bool   `json:"is_ongoing"`
	IsPast        bool   `json:"is_past"`
}

type SessionSummaryResponse struct {
	SessionResponse
	EventTitle     string `json:"event_title"`
	ActiveBookings int    `json:"active_bookings"`
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	SessionID int64  `json:"session_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type BookingDetailsResponse struct {
	BookingResponse
	UserName        string `json:"user_name"`
	UserEmail       string `json:"user_email"`
	SessionTime     string `json:"session_time"`
	SessionLocation string `json:"session_location"`
	EventTitle      string `json:"event_title"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type DashboardResponse struct {
	TotalSessions    int `json:"total_sessions"`
	UpcomingSessions int `json:"upcoming_sessions"`
	TotalBookings    int `json:"total_bookings"`
	TotalUsers       int `json:"total_users"`
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.Format(time.RFC3339),
		EndDate:     e.EndDate.Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventSummaryResponse(e *domain.EventSummary) EventSummaryResponse {
	return EventSummaryResponse{
		EventResponse: ToEventResponse(&e.Event),
		SessionsCount: e.SessionsCount,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails, now time.Time) EventDetailsResponse {
	sessions := make([]SessionResponse, 0, len(d.Sessions))
	for i := range d.Sessions {
		sessions = append(sessions, ToSessionResponse(&d.Sessions[i], now))
	}

	return EventDetailsResponse{
		Event:    ToEventResponse(&d.Event),
		Sessions: sessions,
	}
}

func ToSessionResponse(s *domain.Session, now time.Time) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		EventID:       s.EventID,
		FacilitatorID: s.FacilitatorID,
		Time:          s.Time.Format(time.RFC3339),
		Location:      s.Location,
		IsUpcoming:    s.IsUpcoming(now),
		IsOngoing:     s.IsOngoing(now),
		IsPast:        s.IsPast(now),
	}
}

func ToSessionSummaryResponse(s *domain.SessionSummary, now time.Time) SessionSummaryResponse {
	return SessionSummaryResponse{
		SessionResponse: ToSessionResponse(&s.Session, now),
		EventTitle:      s.EventTitle,
		ActiveBookings:  s.ActiveBookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		SessionID: b.SessionID,
		Status:    string(b.Status),
		Timestamp: b.Timestamp.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	return BookingDetailsResponse{
		BookingResponse: ToBookingResponse(&d.Booking),
		UserName:        d.UserName,
		UserEmail:       d.UserEmail,
		SessionTime:     d.SessionTime.Format(time.RFC3339),
		SessionLocation: d.SessionLocation,
		EventTitle:      d.EventTitle,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
