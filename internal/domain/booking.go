package domain

import "time"

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// StatusFilter narrows booking listings.
type StatusFilter string

const (
	StatusFilterBooked    StatusFilter = "booked"
	StatusFilterCancelled StatusFilter = "cancelled"
	StatusFilterAll       StatusFilter = "all"
)

func (f StatusFilter) Valid() bool {
	return f == StatusFilterBooked || f == StatusFilterCancelled || f == StatusFilterAll
}

// Booking is a user's reservation against one session. Exactly one row exists
// per (user, session) pair once any booking attempt has occurred; status is the
// only field that changes afterwards. Timestamp tracks the last status change.
type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	SessionID int64         `json:"session_id"`
	Status    BookingStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusBooked
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// BookingDetails is a booking joined with the fields callers display alongside
// it. Joins happen at the store boundary, not via lazy relationship loading.
type BookingDetails struct {
	Booking
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	SessionTime     time.Time `json:"session_time"`
	SessionLocation string    `json:"session_location"`
	EventTitle      string    `json:"event_title"`
}
