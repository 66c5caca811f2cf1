package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartDate.After(now)
}

func (e *Event) IsActive(now time.Time) bool {
	return !e.StartDate.After(now) && !e.EndDate.Before(now)
}

func (e *Event) IsPast(now time.Time) bool {
	return e.EndDate.Before(now)
}

// EventSummary is the listing view: an event plus how many sessions it owns.
type EventSummary struct {
	Event
	SessionsCount int `json:"sessions_count"`
}

// EventDetails is an event together with its sessions.
type EventDetails struct {
	Event    Event     `json:"event"`
	Sessions []Session `json:"sessions"`
}
