package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixhub/models"
)

func TestGenerateDaySlots(t *testing.T) {
	slots := GenerateDaySlots()

	// 08:00 through 18:30 at half-hour steps, plus the lone 19:00 slot.
	require.Len(t, slots, 23)
	assert.Equal(t, models.TimeSlot{Hour: 8, Minute: 0}, slots[0])
	assert.Equal(t, models.TimeSlot{Hour: 19, Minute: 0}, slots[len(slots)-1])

	// Strictly increasing, so the catalog is ordered and has no duplicates.
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}

	// 19:30 must not exist.
	for _, slot := range slots {
		assert.NotEqual(t, models.TimeSlot{Hour: 19, Minute: 30}, slot)
	}
}

func TestGenerateDaySlotsIdempotent(t *testing.T) {
	assert.Equal(t, GenerateDaySlots(), GenerateDaySlots())
}

func TestFilterByPreferenceMorning(t *testing.T) {
	filtered := FilterByPreference(GenerateDaySlots(), "Morning Only")

	require.NotEmpty(t, filtered)
	assert.Contains(t, filtered, models.TimeSlot{Hour: 11, Minute: 30})
	assert.NotContains(t, filtered, models.TimeSlot{Hour: 12, Minute: 0})
	for _, slot := range filtered {
		assert.GreaterOrEqual(t, slot.Hour, 8)
		assert.Less(t, slot.Hour, 12)
	}
}

func TestFilterByPreferenceAfternoon(t *testing.T) {
	filtered := FilterByPreference(GenerateDaySlots(), "Afternoon Only")

	assert.Contains(t, filtered, models.TimeSlot{Hour: 12, Minute: 0})
	assert.Contains(t, filtered, models.TimeSlot{Hour: 15, Minute: 30})
	assert.NotContains(t, filtered, models.TimeSlot{Hour: 11, Minute: 30})
	assert.NotContains(t, filtered, models.TimeSlot{Hour: 16, Minute: 0})
}

func TestFilterByPreferenceEveningIncludesClosingSlot(t *testing.T) {
	filtered := FilterByPreference(GenerateDaySlots(), "Evening Only")

	assert.Contains(t, filtered, models.TimeSlot{Hour: 16, Minute: 0})
	assert.Contains(t, filtered, models.TimeSlot{Hour: 19, Minute: 0})
	assert.NotContains(t, filtered, models.TimeSlot{Hour: 15, Minute: 30})
	assert.NotContains(t, filtered, models.TimeSlot{Hour: 19, Minute: 30})
}

func TestFilterByPreferencePassThrough(t *testing.T) {
	catalog := GenerateDaySlots()

	assert.Equal(t, catalog, FilterByPreference(catalog, ""))
	assert.Equal(t, catalog, FilterByPreference(catalog, "Any Time"))
	assert.Equal(t, catalog, FilterByPreference(catalog, "available any time"))
}

func TestFilterByPreferenceUnrecognizedFailsClosed(t *testing.T) {
	assert.Empty(t, FilterByPreference(GenerateDaySlots(), "weekends"))
	assert.Empty(t, FilterByPreference(GenerateDaySlots(), "night shift"))
}

func TestFilterByPreferencePreservesOrder(t *testing.T) {
	catalog := GenerateDaySlots()
	for _, pref := range []string{"Morning Only", "Afternoon Only", "Evening Only"} {
		filtered := FilterByPreference(catalog, pref)
		for i := 1; i < len(filtered); i++ {
			assert.True(t, filtered[i-1].Before(filtered[i]), "preference %q broke ordering", pref)
		}
	}
}
