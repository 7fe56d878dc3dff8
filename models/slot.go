package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day token format used everywhere a date is
// stored or compared. Dates are opaque strings in the server's local
// timezone; no normalization is applied.
const DateLayout = "2006-01-02"

// TimeSlot is a bookable 30-minute start time within a working day.
type TimeSlot struct {
	Hour   int `json:"hour"`   // 0-23
	Minute int `json:"minute"` // 0 or 30
}

// Minutes returns the slot start as minutes from midnight.
func (t TimeSlot) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t starts earlier in the day than other.
func (t TimeSlot) Before(other TimeSlot) bool {
	return t.Minutes() < other.Minutes()
}

// Label renders the slot in the 12-hour clock format stored on
// reservation records, e.g. "8:30 AM", "2:00 PM".
func (t TimeSlot) Label() string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "AM"
	if t.Hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, ampm)
}

// ParseSlotLabel parses a label produced by TimeSlot.Label back into a
// TimeSlot, e.g. "2:00 PM" -> {14, 0}.
func ParseSlotLabel(label string) (TimeSlot, error) {
	parsed, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid time slot %q: %w", label, err)
	}
	return TimeSlot{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}
