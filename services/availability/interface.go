package availability

import (
	"context"

	"fixhub/models"
)

// ReservationSource is the slice of the document store the engine reads
// and writes: the bookings collection queried by technician, a change
// feed over it, and single-key writes. Implemented by the Mongo
// reservation repository.
type ReservationSource interface {
	// ListByTechnician returns every reservation for the technician,
	// across all dates.
	ListByTechnician(ctx context.Context, technicianID string) ([]models.Reservation, error)
	// GetByID returns one reservation; unknown ids surface the backing
	// store's not-found error.
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// Create stores a new reservation under a store-generated key and
	// returns that key.
	Create(ctx context.Context, res *models.Reservation) (string, error)
	// UpdateStatus writes a status transition.
	UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error
	// Watch invokes notify after every change to the technician's
	// reservations. It blocks until ctx is cancelled or the change feed
	// fails.
	Watch(ctx context.Context, technicianID string, notify func()) error
}

// ProfileSource provides technician profiles. Backed by the cached
// technician service; the cache object is handed to the engine at
// construction rather than living in package-level state.
type ProfileSource interface {
	GetByID(ctx context.Context, id string) (*models.Technician, error)
}

// CancelFunc stops a ledger subscription: it cancels the change feed and
// the periodic recheck timer, and no further onChange calls happen after
// it returns.
type CancelFunc func()

// SlotView is one catalog slot labeled for display.
type SlotView struct {
	Slot  models.TimeSlot `json:"slot"`
	Label string          `json:"label"`
	State SlotState       `json:"state"`
}

// BookingRequest carries everything needed for one booking attempt.
type BookingRequest struct {
	TechnicianID string
	CustomerID   string
	Date         string
	Slot         models.TimeSlot
	Service      string
	Notes        string
}

// AvailabilityEngine is the single source of truth for which slots a
// technician can be booked into.
type AvailabilityEngine interface {
	// DaySchedule returns the technician's full preference-filtered
	// catalog for a date, each slot classified available/held/past.
	DaySchedule(ctx context.Context, technicianID, date string) ([]SlotView, error)
	// GetOfferableSlots returns only the slots a customer may book right
	// now: not past, not held, not on a blocked date.
	GetOfferableSlots(ctx context.Context, technicianID, date string) ([]models.TimeSlot, error)
	// SubscribeToAvailability delivers a freshly computed HeldSlotSet on
	// every ledger change and on a periodic expiry recheck.
	SubscribeToAvailability(technicianID, date string, onChange func(HeldSlotSet)) (CancelFunc, error)
	// AttemptBooking re-validates the slot against a fresh ledger read
	// and, when allowed, stores a Pending reservation and returns its id.
	AttemptBooking(ctx context.Context, req BookingRequest) (string, error)
	// TransitionStatus applies a technician-facing accept / decline /
	// cancel / complete action, enforcing the reservation state machine.
	TransitionStatus(ctx context.Context, reservationID string, target models.ReservationStatus) error
	// ListReservations returns a technician's reservations, optionally
	// narrowed to one date.
	ListReservations(ctx context.Context, technicianID, date string) ([]models.Reservation, error)
}
