package scheduling

import (
	"sort"

	"github.com/mariana/talent-hub/internal/db"
)

// BookedTimes returns the sorted set of time-of-day strings already booked on
// the given date across all candidates. It is a warning signal only: nothing
// prevents double-booking, the data layer enforces no uniqueness constraint
// on interview slots.
func BookedTimes(date string, candidates []db.Candidate) []string {
	seen := make(map[string]bool)
	for i := range candidates {
		iv := candidates[i].Interview
		if iv != nil && iv.Date == date && iv.Time != "" {
			seen[iv.Time] = true
		}
	}

	times := make([]string, 0, len(seen))
	for t := range seen {
		times = append(times, t)
	}
	sort.Strings(times)
	return times
}

// HasConflict reports whether the given date+time is already booked.
func HasConflict(date, timeOfDay string, candidates []db.Candidate) bool {
	for _, booked := range BookedTimes(date, candidates) {
		if booked == timeOfDay {
			return true
		}
	}
	return false
}
