package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fixhub/models"
)

// defaultRecheckInterval is how often an active subscription re-derives
// its held set even without a data change, so stale Pending holds lapse
// within a minute of their true expiry.
const defaultRecheckInterval = 60 * time.Second

// DefaultAvailabilityEngine implements AvailabilityEngine on top of the
// reservation ledger and the cached technician profile source.
type DefaultAvailabilityEngine struct {
	Reservations ReservationSource
	Technicians  ProfileSource
	Clock        Clock
	Logger       *zap.Logger

	// RecheckInterval overrides the periodic expiry recheck cadence.
	// Zero means the 60-second default.
	RecheckInterval time.Duration
}

// NewEngine wires an engine with the production clock.
func NewEngine(reservations ReservationSource, technicians ProfileSource, logger *zap.Logger) *DefaultAvailabilityEngine {
	return &DefaultAvailabilityEngine{
		Reservations: reservations,
		Technicians:  technicians,
		Clock:        SystemClock(),
		Logger:       logger,
	}
}

func (e *DefaultAvailabilityEngine) now() time.Time {
	if e.Clock != nil {
		return e.Clock.Now()
	}
	return time.Now()
}

func (e *DefaultAvailabilityEngine) recheckInterval() time.Duration {
	if e.RecheckInterval > 0 {
		return e.RecheckInterval
	}
	return defaultRecheckInterval
}

// DaySchedule classifies every slot of the technician's preference-
// filtered catalog for the given date.
func (e *DefaultAvailabilityEngine) DaySchedule(ctx context.Context, technicianID, date string) ([]SlotView, error) {
	tech, err := e.Technicians.GetByID(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load technician %s: %w", technicianID, err)
	}

	catalog := FilterByPreference(GenerateDaySlots(), tech.AvailableTimings)
	if tech.IsDateBlocked(date) {
		// A blocked date offers nothing; render the whole catalog as held.
		views := make([]SlotView, len(catalog))
		for i, slot := range catalog {
			views[i] = SlotView{Slot: slot, Label: slot.Label(), State: SlotHeld}
		}
		return views, nil
	}

	held, err := e.freshHeldSet(ctx, technicianID, date)
	if err != nil {
		return nil, err
	}

	now := e.now()
	views := make([]SlotView, len(catalog))
	for i, slot := range catalog {
		views[i] = SlotView{Slot: slot, Label: slot.Label(), State: Classify(slot, date, held, now)}
	}
	return views, nil
}

// GetOfferableSlots returns the slots a customer can book right now.
func (e *DefaultAvailabilityEngine) GetOfferableSlots(ctx context.Context, technicianID, date string) ([]models.TimeSlot, error) {
	tech, err := e.Technicians.GetByID(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load technician %s: %w", technicianID, err)
	}
	if tech.IsDateBlocked(date) {
		return []models.TimeSlot{}, nil
	}

	held, err := e.freshHeldSet(ctx, technicianID, date)
	if err != nil {
		return nil, err
	}

	now := e.now()
	offerable := make([]models.TimeSlot, 0)
	for _, slot := range FilterByPreference(GenerateDaySlots(), tech.AvailableTimings) {
		if Classify(slot, date, held, now) == SlotAvailable {
			offerable = append(offerable, slot)
		}
	}
	return offerable, nil
}

// AttemptBooking applies the conflict and expiry policy against a fresh
// ledger read and stores a Pending reservation when the slot is free.
// The check-then-write is not transactional; two racing attempts can both
// pass and leave two Pending holds on the same slot, which the
// technician's accept step later resolves.
func (e *DefaultAvailabilityEngine) AttemptBooking(ctx context.Context, req BookingRequest) (string, error) {
	tech, err := e.Technicians.GetByID(ctx, req.TechnicianID)
	if err != nil {
		return "", fmt.Errorf("failed to load technician %s: %w", req.TechnicianID, err)
	}

	now := e.now()
	held, err := e.freshHeldSet(ctx, req.TechnicianID, req.Date)
	if err != nil {
		return "", err
	}
	if err := ValidateBookingAttempt(tech, req.Date, req.Slot, held, now); err != nil {
		return "", err
	}

	res := &models.Reservation{
		TechnicianID: req.TechnicianID,
		CustomerID:   req.CustomerID,
		Date:         req.Date,
		TimeSlot:     req.Slot.Label(),
		Status:       models.ReservationPending,
		CreatedAt:    now,
		Service:      req.Service,
		Notes:        req.Notes,
	}
	id, err := e.Reservations.Create(ctx, res)
	if err != nil {
		return "", fmt.Errorf("failed to store reservation: %w", err)
	}

	e.Logger.Info("reservation created",
		zap.String("reservationId", id),
		zap.String("technicianId", req.TechnicianID),
		zap.String("date", req.Date),
		zap.String("slot", req.Slot.Label()),
	)
	return id, nil
}

// TransitionStatus applies a status change after checking the state
// machine. Two Pending holds on the same slot are both accepted inputs
// here; accepting one leaves the other visible as held on the next
// ledger recomputation, and no automatic cancellation happens.
func (e *DefaultAvailabilityEngine) TransitionStatus(ctx context.Context, reservationID string, target models.ReservationStatus) error {
	current, err := e.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}
	if err := e.Reservations.UpdateStatus(ctx, reservationID, target); err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", reservationID, err)
	}
	e.Logger.Info("reservation status updated",
		zap.String("reservationId", reservationID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(target)),
	)
	return nil
}

// ListReservations returns a technician's reservations. The ledger is
// keyed by technician only, so the optional date narrowing happens on
// the returned set.
func (e *DefaultAvailabilityEngine) ListReservations(ctx context.Context, technicianID, date string) ([]models.Reservation, error) {
	all, err := e.Reservations.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for technician %s: %w", technicianID, err)
	}
	if date == "" {
		return all, nil
	}
	filtered := make([]models.Reservation, 0, len(all))
	for _, r := range all {
		if r.Date == date {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// freshHeldSet reads the ledger and reduces it to the held set for one
// date, as of the current clock reading.
func (e *DefaultAvailabilityEngine) freshHeldSet(ctx context.Context, technicianID, date string) (HeldSlotSet, error) {
	reservations, err := e.Reservations.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to read reservation ledger: %w", err)
	}
	return ComputeHeldSlots(reservations, date, e.now()), nil
}

var _ AvailabilityEngine = (*DefaultAvailabilityEngine)(nil)

// IsRejection reports whether err is one of the expected booking
// rejections rather than an infrastructure failure. Handlers use it to
// pick a status code.
func IsRejection(err error) bool {
	return errors.Is(err, ErrDateBlocked) ||
		errors.Is(err, ErrSlotNotOffered) ||
		errors.Is(err, ErrSlotInPast) ||
		errors.Is(err, ErrSlotHeld)
}
