package domain

import "time"

// OngoingWindow is how long a session is considered "ongoing" after its start.
// Display only, never used for booking eligibility.
const OngoingWindow = 2 * time.Hour

type Session struct {
	ID            int64     `json:"id"`
	EventID       int64     `json:"event_id"`
	FacilitatorID int64     `json:"facilitator_id"`
	Time          time.Time `json:"time"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Session) IsUpcoming(now time.Time) bool {
	return s.Time.After(now)
}

func (s *Session) IsPast(now time.Time) bool {
	return s.Time.Before(now)
}

func (s *Session) IsOngoing(now time.Time) bool {
	return !s.Time.After(now) && !now.After(s.Time.Add(OngoingWindow))
}

type UpdateSessionInput struct {
	Time     *time.Time
	Location *string
}

// SessionSummary is the facilitator's listing view of one of their sessions.
type SessionSummary struct {
	Session
	EventTitle     string `json:"event_title"`
	ActiveBookings int    `json:"active_bookings"`
}

// DashboardStats is the facilitator dashboard aggregate. Computed from current
// store state on every request.
type DashboardStats struct {
	TotalSessions    int `json:"total_sessions"`
	UpcomingSessions int `json:"upcoming_sessions"`
	TotalBookings    int `json:"total_bookings"`
	TotalUsers       int `json:"total_users"`
}
