// Package scheduling provides interview slot suggestion and booking-conflict
// detection over the candidates' interview records.
package scheduling

import (
	"time"

	"github.com/mariana/talent-hub/internal/db"
)

// Working-hour window and scan bounds for slot suggestion.
const (
	firstHour      = 8  // earliest bookable hour
	lastHour       = 22 // latest bookable hour (inclusive)
	maxSuggestions = 3
	maxIterations  = 100 // safety bound on fully booked calendars
)

// Slot is a proposed interview slot.
type Slot struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

// Key returns the slot's date+time key used for booked-set membership.
func (s Slot) Key() string {
	return s.Date + "T" + s.Time
}

// BookedSet is the set of occupied date+time keys.
type BookedSet map[string]bool

// BuildBookedSet collects the booked slot keys from a list of interviews.
// Entries with empty date or time are ignored.
func BuildBookedSet(interviews []db.Interview) BookedSet {
	booked := make(BookedSet, len(interviews))
	for _, iv := range interviews {
		if iv.Date == "" || iv.Time == "" {
			continue
		}
		booked[iv.Date+"T"+iv.Time] = true
	}
	return booked
}

// SuggestSlots scans forward from the next full hour after now and proposes
// up to three open hour-granularity slots, skipping weekends, hours outside
// the working window, and already booked slots. A fully booked calendar
// yields a shorter (possibly empty) list; that is not an error.
func SuggestSlots(now time.Time, booked BookedSet) []Slot {
	check := now.Truncate(time.Hour).Add(time.Hour)

	var slots []Slot
	for i := 0; len(slots) < maxSuggestions && i < maxIterations; i++ {
		if check.Hour() > lastHour {
			check = atHour(check.AddDate(0, 0, 1), firstHour)
		}
		if check.Hour() < firstHour {
			check = atHour(check, firstHour)
		}
		switch check.Weekday() {
		case time.Saturday:
			check = atHour(check.AddDate(0, 0, 2), firstHour)
		case time.Sunday:
			check = atHour(check.AddDate(0, 0, 1), firstHour)
		}
		if check.Before(now) {
			check = check.Add(time.Hour)
			continue
		}

		slot := Slot{Date: check.Format("2006-01-02"), Time: check.Format("15:04")}
		if !booked[slot.Key()] {
			slots = append(slots, slot)
		}
		check = check.Add(time.Hour)
	}
	return slots
}

// atHour returns t with the clock set to hour:00:00 in t's location.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// SuggestInterviewer picks an advisory interviewer for a job: the first user
// whose specialty matches the job's department, falling back to the first
// admin, falling back to nil. The caller is free to override.
func SuggestInterviewer(users []db.User, department string) *db.User {
	for i := range users {
		if users[i].Specialty == department {
			return &users[i]
		}
	}
	for i := range users {
		if users[i].IsAdmin() {
			return &users[i]
		}
	}
	return nil
}
