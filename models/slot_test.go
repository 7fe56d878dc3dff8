package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotLabel(t *testing.T) {
	cases := []struct {
		slot  TimeSlot
		label string
	}{
		{TimeSlot{Hour: 8, Minute: 0}, "8:00 AM"},
		{TimeSlot{Hour: 8, Minute: 30}, "8:30 AM"},
		{TimeSlot{Hour: 11, Minute: 30}, "11:30 AM"},
		{TimeSlot{Hour: 12, Minute: 0}, "12:00 PM"},
		{TimeSlot{Hour: 14, Minute: 0}, "2:00 PM"},
		{TimeSlot{Hour: 19, Minute: 0}, "7:00 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, tc.slot.Label())
	}
}

func TestParseSlotLabel(t *testing.T) {
	slot, err := ParseSlotLabel("2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, TimeSlot{Hour: 14, Minute: 0}, slot)

	slot, err = ParseSlotLabel(" 8:30 am ")
	require.NoError(t, err)
	assert.Equal(t, TimeSlot{Hour: 8, Minute: 30}, slot)

	_, err = ParseSlotLabel("half past eight")
	assert.Error(t, err)
}

func TestParseSlotLabelRoundTrip(t *testing.T) {
	original := TimeSlot{Hour: 16, Minute: 30}
	parsed, err := ParseSlotLabel(original.Label())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestTimeSlotOrdering(t *testing.T) {
	earlier := TimeSlot{Hour: 9, Minute: 30}
	later := TimeSlot{Hour: 10, Minute: 0}
	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
	assert.Equal(t, 570, earlier.Minutes())
}

func TestReservationStatusStateMachine(t *testing.T) {
	assert.True(t, ReservationPending.CanTransitionTo(ReservationAccepted))
	assert.True(t, ReservationPending.CanTransitionTo(ReservationCancelled))
	assert.False(t, ReservationPending.CanTransitionTo(ReservationCompleted))

	assert.True(t, ReservationAccepted.CanTransitionTo(ReservationCompleted))
	assert.True(t, ReservationAccepted.CanTransitionTo(ReservationCancelled))
	assert.False(t, ReservationAccepted.CanTransitionTo(ReservationPending))

	assert.False(t, ReservationCancelled.CanTransitionTo(ReservationAccepted))
	assert.False(t, ReservationCompleted.CanTransitionTo(ReservationCancelled))
}

func TestReservationStatusHoldsSlot(t *testing.T) {
	assert.True(t, ReservationPending.HoldsSlot())
	assert.True(t, ReservationAccepted.HoldsSlot())
	assert.False(t, ReservationCancelled.HoldsSlot())
	assert.False(t, ReservationCompleted.HoldsSlot())
}

func TestTechnicianIsDateBlocked(t *testing.T) {
	tech := Technician{UnavailableDates: []string{"2025-09-10", "2025-09-11"}}
	assert.True(t, tech.IsDateBlocked("2025-09-10"))
	assert.False(t, tech.IsDateBlocked("2025-09-12"))

	empty := Technician{}
	assert.False(t, empty.IsDateBlocked("2025-09-10"))
}
