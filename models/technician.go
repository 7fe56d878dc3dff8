package models

// Technician is the profile of a service professional. Profiles are
// owned by the external onboarding flow; this server reads them only.
type Technician struct {
	ID         string `bson:"id" json:"id"`
	FullName   string `bson:"fullName" json:"fullName"`
	Profession string `bson:"profession" json:"profession"` // e.g. "plumber", "electrician"
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`

	// AvailableTimings is a free-text time-of-day preference set by the
	// technician, e.g. "Morning Only", "Evening Only", "Any Time".
	AvailableTimings string `bson:"availableTimings" json:"availableTimings"`

	// UnavailableDates lists calendar-day tokens on which the technician
	// takes no bookings at all, overriding everything else.
	UnavailableDates []string `bson:"unavailableDates,omitempty" json:"unavailableDates,omitempty"`
}

// IsDateBlocked reports whether the technician has marked the given day
// as off-limits. Dates compare as opaque tokens.
func (t *Technician) IsDateBlocked(date string) bool {
	for _, d := range t.UnavailableDates {
		if d == date {
			return true
		}
	}
	return false
}
