package availability

import (
	"strings"

	"fixhub/models"
)

// Fixed business-hours policy: 30-minute slots from 08:00 through 19:00.
// Hour 19 contributes only the :00 slot; the last bookable start time of
// the day is 7:00 PM.
const (
	dayStartHour = 8
	dayEndHour   = 19
)

// anyTimeSentinel is the preference value meaning "no restriction".
const anyTimeSentinel = "any time"

// GenerateDaySlots produces the full ordered catalog of candidate slots
// for one working day.
func GenerateDaySlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, (dayEndHour-dayStartHour)*2+1)
	for hour := dayStartHour; hour <= dayEndHour; hour++ {
		slots = append(slots, models.TimeSlot{Hour: hour, Minute: 0})
		if hour < dayEndHour {
			slots = append(slots, models.TimeSlot{Hour: hour, Minute: 30})
		}
	}
	return slots
}

// FilterByPreference narrows a slot sequence to the technician's stated
// time-of-day preference. The preference is free text: an empty value or
// the "any time" sentinel passes the input through unchanged, text
// containing "Morning"/"Afternoon"/"Evening" selects that range, and any
// other value yields no slots at all (fail closed rather than offering
// times the technician never agreed to).
func FilterByPreference(slots []models.TimeSlot, preference string) []models.TimeSlot {
	pref := strings.ToLower(strings.TrimSpace(preference))
	if pref == "" || strings.Contains(pref, anyTimeSentinel) {
		return slots
	}

	var within func(models.TimeSlot) bool
	switch {
	case strings.Contains(pref, "morning"):
		within = inMorning
	case strings.Contains(pref, "afternoon"):
		within = inAfternoon
	case strings.Contains(pref, "evening"):
		within = inEvening
	default:
		return []models.TimeSlot{}
	}

	filtered := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if within(slot) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

func inMorning(t models.TimeSlot) bool {
	return t.Hour >= 8 && t.Hour < 12
}

func inAfternoon(t models.TimeSlot) bool {
	return t.Hour >= 12 && t.Hour < 16
}

// Evening is the one range with a closed upper bound: the 7:00 PM slot is
// bookable but 7:30 PM is not.
func inEvening(t models.TimeSlot) bool {
	return t.Minutes() >= 16*60 && t.Minutes() <= dayEndHour*60
}
