package availability

import "errors"

// Booking rejections. These are expected, user-facing outcomes surfaced
// as plain messages; callers match them with errors.Is and never retry
// automatically.
var (
	ErrDateBlocked    = errors.New("technician is not taking bookings on this date")
	ErrSlotNotOffered = errors.New("slot is not offered by this technician")
	ErrSlotInPast     = errors.New("slot start time has already passed")
	ErrSlotHeld       = errors.New("slot is already taken")
)

// ErrInvalidTransition is returned when a status change is not allowed by
// the reservation state machine.
var ErrInvalidTransition = errors.New("invalid reservation status transition")
