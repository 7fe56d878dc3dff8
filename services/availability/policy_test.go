package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/models"
)

// 2:00 PM on September 10th, local time.
var testNow = time.Date(2025, 9, 10, 14, 0, 0, 0, time.Local)

const (
	today    = "2025-09-10"
	tomorrow = "2025-09-11"
)

func pendingReservation(slot string, createdAt time.Time) models.Reservation {
	return models.Reservation{
		TechnicianID: "tech-1",
		Date:         today,
		TimeSlot:     slot,
		Status:       models.ReservationPending,
		CreatedAt:    createdAt,
	}
}

func TestComputeHeldSlotsAccepted(t *testing.T) {
	held := ComputeHeldSlots([]models.Reservation{
		{Date: today, TimeSlot: "2:00 PM", Status: models.ReservationAccepted, CreatedAt: testNow.Add(-48 * time.Hour)},
	}, today, testNow)

	// Accepted holds never expire.
	assert.True(t, held.Has("2:00 PM"))
}

func TestComputeHeldSlotsPendingExpiry(t *testing.T) {
	fresh := pendingReservation("3:00 PM", testNow.Add(-(9*time.Minute + 59*time.Second)))
	expired := pendingReservation("4:00 PM", testNow.Add(-(10*time.Minute + 1*time.Second)))

	held := ComputeHeldSlots([]models.Reservation{fresh, expired}, today, testNow)

	assert.True(t, held.Has("3:00 PM"))
	assert.False(t, held.Has("4:00 PM"))
}

func TestComputeHeldSlotsIgnoresOtherDates(t *testing.T) {
	held := ComputeHeldSlots([]models.Reservation{
		{Date: tomorrow, TimeSlot: "2:00 PM", Status: models.ReservationAccepted},
	}, today, testNow)

	assert.Empty(t, held)
}

func TestComputeHeldSlotsIgnoresTerminalStatuses(t *testing.T) {
	held := ComputeHeldSlots([]models.Reservation{
		{Date: today, TimeSlot: "2:00 PM", Status: models.ReservationCancelled},
		{Date: today, TimeSlot: "3:00 PM", Status: models.ReservationCompleted},
	}, today, testNow)

	assert.Empty(t, held)
}

func TestClassifyPast(t *testing.T) {
	held := HeldSlotSet{}

	// now is 14:00 today: 13:30 is gone, 14:30 is not.
	assert.Equal(t, SlotPast, Classify(models.TimeSlot{Hour: 13, Minute: 30}, today, held, testNow))
	assert.Equal(t, SlotAvailable, Classify(models.TimeSlot{Hour: 14, Minute: 30}, today, held, testNow))

	// A slot exactly at now is not strictly before it.
	assert.Equal(t, SlotAvailable, Classify(models.TimeSlot{Hour: 14, Minute: 0}, today, held, testNow))

	// Early slots on a future date are never past.
	assert.Equal(t, SlotAvailable, Classify(models.TimeSlot{Hour: 8, Minute: 0}, tomorrow, held, testNow))
}

func TestClassifyPastWinsOverHeld(t *testing.T) {
	held := HeldSlotSet{"1:30 PM": {}}
	assert.Equal(t, SlotPast, Classify(models.TimeSlot{Hour: 13, Minute: 30}, today, held, testNow))
}

func TestClassifyHeld(t *testing.T) {
	held := HeldSlotSet{"2:30 PM": {}}
	assert.Equal(t, SlotHeld, Classify(models.TimeSlot{Hour: 14, Minute: 30}, today, held, testNow))
}

func TestClassifyIsTotal(t *testing.T) {
	held := HeldSlotSet{"2:30 PM": {}}
	for _, date := range []string{today, tomorrow} {
		for _, slot := range GenerateDaySlots() {
			state := Classify(slot, date, held, testNow)
			assert.Contains(t, []SlotState{SlotAvailable, SlotHeld, SlotPast}, state)
		}
	}
}

func TestHeldSlotSetLabelsChronological(t *testing.T) {
	held := HeldSlotSet{"4:00 PM": {}, "8:30 AM": {}, "12:00 PM": {}}
	assert.Equal(t, []string{"8:30 AM", "12:00 PM", "4:00 PM"}, held.Labels())
}

func TestValidateBookingAttemptOk(t *testing.T) {
	tech := &models.Technician{ID: "tech-1", AvailableTimings: "Any Time"}
	err := ValidateBookingAttempt(tech, tomorrow, models.TimeSlot{Hour: 14, Minute: 0}, HeldSlotSet{}, testNow)
	assert.NoError(t, err)
}

func TestValidateBookingAttemptSlotHeld(t *testing.T) {
	tech := &models.Technician{ID: "tech-1", AvailableTimings: "Any Time"}
	held := HeldSlotSet{"2:00 PM": {}}

	err := ValidateBookingAttempt(tech, tomorrow, models.TimeSlot{Hour: 14, Minute: 0}, held, testNow)
	assert.True(t, errors.Is(err, ErrSlotHeld))
}

func TestValidateBookingAttemptDateBlockedWinsOverEverything(t *testing.T) {
	tech := &models.Technician{
		ID:               "tech-1",
		AvailableTimings: "Morning Only",
		UnavailableDates: []string{today},
	}
	// Held, past, and not offered all apply too; the date block comes first.
	held := HeldSlotSet{"1:00 PM": {}}

	err := ValidateBookingAttempt(tech, today, models.TimeSlot{Hour: 13, Minute: 0}, held, testNow)
	assert.True(t, errors.Is(err, ErrDateBlocked))
}

func TestValidateBookingAttemptSlotNotOffered(t *testing.T) {
	tech := &models.Technician{ID: "tech-1", AvailableTimings: "Morning Only"}

	err := ValidateBookingAttempt(tech, tomorrow, models.TimeSlot{Hour: 12, Minute: 0}, HeldSlotSet{}, testNow)
	assert.True(t, errors.Is(err, ErrSlotNotOffered))

	err = ValidateBookingAttempt(tech, tomorrow, models.TimeSlot{Hour: 11, Minute: 30}, HeldSlotSet{}, testNow)
	assert.NoError(t, err)
}

func TestValidateBookingAttemptSlotInPast(t *testing.T) {
	tech := &models.Technician{ID: "tech-1", AvailableTimings: "Any Time"}

	err := ValidateBookingAttempt(tech, today, models.TimeSlot{Hour: 13, Minute: 30}, HeldSlotSet{}, testNow)
	assert.True(t, errors.Is(err, ErrSlotInPast))
}

func TestValidateBookingAttemptPastWinsOverHeld(t *testing.T) {
	tech := &models.Technician{ID: "tech-1", AvailableTimings: "Any Time"}
	held := HeldSlotSet{"1:30 PM": {}}

	err := ValidateBookingAttempt(tech, today, models.TimeSlot{Hour: 13, Minute: 30}, held, testNow)
	assert.True(t, errors.Is(err, ErrSlotInPast))
}

func TestExpiredPendingSlotBecomesAvailable(t *testing.T) {
	stale := pendingReservation("3:00 PM", testNow.Add(-11*time.Minute))
	held := ComputeHeldSlots([]models.Reservation{stale}, today, testNow)

	require.False(t, held.Has("3:00 PM"))
	assert.Equal(t, SlotAvailable, Classify(models.TimeSlot{Hour: 15, Minute: 0}, today, held, testNow))
}
