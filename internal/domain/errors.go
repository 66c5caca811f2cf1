package domain

import "errors"

// Not found: the target id does not resolve to an entity.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Forbidden: authenticated but not authorized for this resource. Checked only
// after the resource is known to exist.
var (
	ErrFacilitatorOnly = errors.New("facilitator access required")
	ErrNotSessionOwner = errors.New("session belongs to another facilitator")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
)

// Conflict: the requested effect is already held by someone, or already satisfied.
var (
	ErrAlreadyBooked = errors.New("user already has an active booking for this session")
)

// Invalid state: the operation is not valid in the entity's current lifecycle state.
var (
	ErrBookingCancelled = errors.New("booking is already cancelled")
	ErrBookingActive    = errors.New("booking is already active")
	ErrSessionPassed    = errors.New("session has already passed")
)

var (
	ErrValidation = errors.New("validation error")
)
