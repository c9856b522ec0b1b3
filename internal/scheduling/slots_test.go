package scheduling

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/talent-hub/internal/db"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestSuggestSlots_SkipsBookedSlot(t *testing.T) {
	// Monday 08:30 with 09:00 already booked: first suggestion must not be 09:00
	now := mustParse(t, "2024-01-15T08:30")
	booked := BookedSet{"2024-01-15T09:00": true}

	slots := SuggestSlots(now, booked)

	require.Len(t, slots, 3)
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "10:00"}, slots[0])
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "11:00"}, slots[1])
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "12:00"}, slots[2])
	for _, s := range slots {
		assert.False(t, booked[s.Key()], "suggested slot %s is booked", s.Key())
	}
}

func TestSuggestSlots_StartsAtNextFullHour(t *testing.T) {
	now := mustParse(t, "2024-01-15T14:05") // Monday afternoon

	slots := SuggestSlots(now, nil)

	require.NotEmpty(t, slots)
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "15:00"}, slots[0])
}

func TestSuggestSlots_RollsOverEndOfDay(t *testing.T) {
	now := mustParse(t, "2024-01-15T22:10") // Monday, next full hour is 23:00

	slots := SuggestSlots(now, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, Slot{Date: "2024-01-16", Time: "08:00"}, slots[0])
}

func TestSuggestSlots_SkipsWeekend(t *testing.T) {
	now := mustParse(t, "2024-01-12T21:30") // Friday, 22:00 still open, then Monday

	slots := SuggestSlots(now, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, Slot{Date: "2024-01-12", Time: "22:00"}, slots[0])
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "08:00"}, slots[1])
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "09:00"}, slots[2])
}

func TestSuggestSlots_SaturdayStartRollsToMonday(t *testing.T) {
	now := mustParse(t, "2024-01-13T10:30") // Saturday

	slots := SuggestSlots(now, nil)

	require.Len(t, slots, 3)
	assert.Equal(t, Slot{Date: "2024-01-15", Time: "08:00"}, slots[0])
}

func TestSuggestSlots_NeverWeekendOrAfterHours(t *testing.T) {
	starts := []string{
		"2024-01-12T07:00", "2024-01-12T22:45", "2024-01-13T03:00",
		"2024-01-14T15:00", "2024-01-15T12:30",
	}

	for _, start := range starts {
		now := mustParse(t, start)
		for _, s := range SuggestSlots(now, nil) {
			slotTime := mustParse(t, s.Key())
			wd := slotTime.Weekday()
			assert.NotEqual(t, time.Saturday, wd, "start %s produced %s", start, s.Key())
			assert.NotEqual(t, time.Sunday, wd, "start %s produced %s", start, s.Key())
			assert.GreaterOrEqual(t, slotTime.Hour(), firstHour, "start %s produced %s", start, s.Key())
			assert.LessOrEqual(t, slotTime.Hour(), lastHour, "start %s produced %s", start, s.Key())
		}
	}
}

func TestSuggestSlots_FullyBookedReturnsShortList(t *testing.T) {
	now := mustParse(t, "2024-01-15T07:00") // Monday before opening

	// book every workable slot for the next two weeks
	booked := BookedSet{}
	for day := 0; day < 14; day++ {
		date := now.AddDate(0, 0, day).Format("2006-01-02")
		for hour := firstHour; hour <= lastHour; hour++ {
			booked[fmt.Sprintf("%sT%02d:00", date, hour)] = true
		}
	}

	slots := SuggestSlots(now, booked)

	// the iteration bound stops the scan before finding three openings
	assert.Empty(t, slots)
}

func TestBuildBookedSet(t *testing.T) {
	interviews := []db.Interview{
		{Date: "2024-01-15", Time: "09:00"},
		{Date: "2024-01-15", Time: "10:00"},
		{Date: "", Time: "11:00"},
		{Date: "2024-01-16", Time: ""},
	}

	booked := BuildBookedSet(interviews)

	assert.Len(t, booked, 2)
	assert.True(t, booked["2024-01-15T09:00"])
	assert.True(t, booked["2024-01-15T10:00"])
}

func TestSuggestInterviewer(t *testing.T) {
	users := []db.User{
		{Username: "carla", Role: db.RoleUser, Specialty: "Vendas"},
		{Username: "root", Role: db.RoleAdmin, Specialty: ""},
		{Username: "tiago", Role: db.RoleUser, Specialty: "Logística"},
	}

	t.Run("specialty match wins", func(t *testing.T) {
		u := SuggestInterviewer(users, "Logística")
		require.NotNil(t, u)
		assert.Equal(t, "tiago", u.Username)
	})

	t.Run("falls back to first admin", func(t *testing.T) {
		u := SuggestInterviewer(users, "Engenharia")
		require.NotNil(t, u)
		assert.Equal(t, "root", u.Username)
	})

	t.Run("nil when no match and no admin", func(t *testing.T) {
		assert.Nil(t, SuggestInterviewer(users[:1], "Engenharia"))
	})

	t.Run("nil on empty user list", func(t *testing.T) {
		assert.Nil(t, SuggestInterviewer(nil, "Vendas"))
	})
}
