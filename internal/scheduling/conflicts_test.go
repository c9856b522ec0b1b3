package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mariana/talent-hub/internal/db"
)

func candidateWithInterview(date, timeOfDay string) db.Candidate {
	return db.Candidate{Interview: &db.Interview{Date: date, Time: timeOfDay}}
}

func TestBookedTimes(t *testing.T) {
	candidates := []db.Candidate{
		candidateWithInterview("2024-01-15", "14:00"),
		candidateWithInterview("2024-01-15", "09:00"),
		candidateWithInterview("2024-01-15", "09:00"), // duplicate booking is allowed
		candidateWithInterview("2024-01-16", "09:00"), // other day
		{}, // no interview
	}

	times := BookedTimes("2024-01-15", candidates)

	assert.Equal(t, []string{"09:00", "14:00"}, times)
}

func TestBookedTimes_EmptyDay(t *testing.T) {
	candidates := []db.Candidate{candidateWithInterview("2024-01-15", "09:00")}

	assert.Empty(t, BookedTimes("2024-01-17", candidates))
}

func TestHasConflict(t *testing.T) {
	candidates := []db.Candidate{candidateWithInterview("2024-01-15", "09:00")}

	assert.True(t, HasConflict("2024-01-15", "09:00", candidates))
	assert.False(t, HasConflict("2024-01-15", "10:00", candidates))
	assert.False(t, HasConflict("2024-01-16", "09:00", candidates))
}
