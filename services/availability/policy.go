package availability

import (
	"time"

	"fixhub/models"
)

// PendingHoldTTL is how long a Pending reservation keeps its slot off the
// market before the hold lapses and the slot returns to the pool.
const PendingHoldTTL = 10 * time.Minute

// SlotState classifies one catalog slot for display.
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotHeld      SlotState = "held"
	SlotPast      SlotState = "past"
)

// HeldSlotSet is the set of slot labels currently off the market for one
// (technician, date) pair.
type HeldSlotSet map[string]struct{}

// Has reports membership by catalog label.
func (h HeldSlotSet) Has(label string) bool {
	_, ok := h[label]
	return ok
}

// Labels returns the held labels in catalog (chronological) order. Labels
// that do not correspond to a catalog slot are appended at the end so no
// held record is silently dropped.
func (h HeldSlotSet) Labels() []string {
	labels := make([]string, 0, len(h))
	seen := make(map[string]struct{}, len(h))
	for _, slot := range GenerateDaySlots() {
		if label := slot.Label(); h.Has(label) {
			labels = append(labels, label)
			seen[label] = struct{}{}
		}
	}
	for label := range h {
		if _, ok := seen[label]; !ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// ComputeHeldSlots reduces raw reservation records to the labels that are
// unavailable on the given date: every Accepted reservation holds its
// slot, and a Pending one holds it until its hold expires. Records for
// other dates are skipped here because the ledger is read per technician,
// not per day.
func ComputeHeldSlots(reservations []models.Reservation, date string, now time.Time) HeldSlotSet {
	held := make(HeldSlotSet)
	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		switch r.Status {
		case models.ReservationAccepted:
			held[r.TimeSlot] = struct{}{}
		case models.ReservationPending:
			if now.Sub(r.CreatedAt) < PendingHoldTTL {
				held[r.TimeSlot] = struct{}{}
			}
		}
	}
	return held
}

// Classify labels one slot as available, held, or past. Past wins over
// held: a held slot whose start time has already gone by is shown as
// past, matching how the booking screen filters slots.
func Classify(slot models.TimeSlot, date string, held HeldSlotSet, now time.Time) SlotState {
	if isPast(slot, date, now) {
		return SlotPast
	}
	if held.Has(slot.Label()) {
		return SlotHeld
	}
	return SlotAvailable
}

// isPast reports whether the slot's start time has already passed. Only
// today's slots can be past; any slot on a future (or even earlier) date
// token is not.
func isPast(slot models.TimeSlot, date string, now time.Time) bool {
	if date != now.Format(models.DateLayout) {
		return false
	}
	return slot.Minutes() < now.Hour()*60+now.Minute()
}

// ValidateBookingAttempt is the authoritative pre-write check for a
// booking. It is pure: callers supply a freshly computed held set and the
// current time, so the same rule can be applied at display time and again
// just before the reservation write. The date block is checked first and
// unconditionally; past wins over held as in Classify.
func ValidateBookingAttempt(tech *models.Technician, date string, slot models.TimeSlot, held HeldSlotSet, now time.Time) error {
	if tech.IsDateBlocked(date) {
		return ErrDateBlocked
	}
	if !slotOffered(slot, tech.AvailableTimings) {
		return ErrSlotNotOffered
	}
	if isPast(slot, date, now) {
		return ErrSlotInPast
	}
	if held.Has(slot.Label()) {
		return ErrSlotHeld
	}
	return nil
}

// slotOffered reports whether the slot appears in the technician's
// preference-filtered day catalog.
func slotOffered(slot models.TimeSlot, preference string) bool {
	for _, s := range FilterByPreference(GenerateDaySlots(), preference) {
		if s == slot {
			return true
		}
	}
	return false
}
