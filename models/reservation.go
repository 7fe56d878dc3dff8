package models

import "time"

// ReservationStatus is the normalized state of a reservation. Raw store
// documents carry status in several shapes (boolean, capitalized string,
// lowercase string, missing); the repository maps all of them onto this
// enum before any other code sees them.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationAccepted  ReservationStatus = "Accepted"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
)

// HoldsSlot reports whether a reservation in this status keeps its slot
// out of the bookable pool. Pending holds additionally expire after ten
// minutes; that cutoff is applied by the availability engine, not here.
func (s ReservationStatus) HoldsSlot() bool {
	return s == ReservationPending || s == ReservationAccepted
}

// CanTransitionTo reports whether the technician-facing status change
// from s to target is allowed. Pending may be accepted or cancelled;
// Accepted may be completed or cancelled. Cancellation is always a
// status write, never a delete.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationPending:
		return target == ReservationAccepted || target == ReservationCancelled
	case ReservationAccepted:
		return target == ReservationCompleted || target == ReservationCancelled
	}
	return false
}

// Reservation is one booking attempt by a customer against a technician.
// It is a shared join entity keyed by its own id; neither the customer
// nor the technician owns it.
type Reservation struct {
	ID           string            `json:"id"`
	TechnicianID string            `json:"technicianId"`
	CustomerID   string            `json:"customerId"`
	Date         string            `json:"date"`     // "YYYY-MM-DD", compared as an opaque token
	TimeSlot     string            `json:"timeSlot"` // catalog label, e.g. "2:00 PM"
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"` // used solely for pending-hold expiry
	Service      string            `json:"service,omitempty"`
	Notes        string            `json:"notes,omitempty"`
}
