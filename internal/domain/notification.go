package domain

import "time"

type BookingAction string

const (
	BookingActionCreated     BookingAction = "created"
	BookingActionReactivated BookingAction = "reactivated"
)

type NotificationUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NotificationEvent struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
}

// BookingNotification describes a committed booking state change for delivery
// to the CRM. UserChatID is for the optional telegram sink and never leaves the
// process over the CRM wire.
type BookingNotification struct {
	BookingID     int64
	User          NotificationUser
	Event         NotificationEvent
	FacilitatorID int64
	Action        BookingAction
	UserChatID    *int64
}
