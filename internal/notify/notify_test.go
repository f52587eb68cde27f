package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldercare-backend/internal/models"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	now := date(2024, time.June, 10, 12)

	assert.Equal(t, 0, DaysUntil(now, date(2024, time.June, 10, 23)))
	assert.Equal(t, 1, DaysUntil(now, date(2024, time.June, 11, 8)))
	assert.Equal(t, 5, DaysUntil(now, date(2024, time.June, 15, 0)))

	// Calendar days, not 24h periods: late tonight to early tomorrow is 1.
	lateNow := date(2024, time.June, 10, 23)
	assert.Equal(t, 1, DaysUntil(lateNow, date(2024, time.June, 11, 0)))

	// Past dates clamp to zero.
	assert.Equal(t, 0, DaysUntil(now, date(2024, time.June, 8, 12)))
}

func TestDaysUntilAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward: 2025-03-09 is a 23-hour day, tomorrow is still 1.
	springNow := time.Date(2025, time.March, 9, 9, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntil(springNow, time.Date(2025, time.March, 10, 10, 0, 0, 0, loc)))
	assert.Equal(t, 0, DaysUntil(springNow, time.Date(2025, time.March, 9, 23, 0, 0, 0, loc)))

	// Fall back: 2025-11-02 is a 25-hour day.
	fallNow := time.Date(2025, time.November, 1, 9, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntil(fallNow, time.Date(2025, time.November, 2, 10, 0, 0, 0, loc)))
	assert.Equal(t, 2, DaysUntil(fallNow, time.Date(2025, time.November, 3, 8, 0, 0, 0, loc)))
}

func TestAppointmentMessage(t *testing.T) {
	doctor := models.Appointment{
		Type:         models.AppointmentDoctor,
		HospitalName: "City General",
	}
	family := models.Appointment{
		Type:         models.AppointmentFamily,
		RelativeName: "Mary",
	}

	assert.Equal(t, "Today is Alice's doctor appointment at City General",
		AppointmentMessage(doctor, "Alice", 0))
	assert.Equal(t, "1 day left for Alice's doctor appointment at City General",
		AppointmentMessage(doctor, "Alice", 1))
	assert.Equal(t, "3 days left for Alice's doctor appointment at City General",
		AppointmentMessage(doctor, "Alice", 3))

	assert.Equal(t, "Today is Bob's family appointment with Mary",
		AppointmentMessage(family, "Bob", 0))
	assert.Equal(t, "1 day left for Bob's family appointment with Mary",
		AppointmentMessage(family, "Bob", 1))

	// Missing names fall back to generic words.
	assert.Equal(t, "Today is Resident's doctor appointment at hospital",
		AppointmentMessage(models.Appointment{Type: models.AppointmentDoctor}, "", 0))
	assert.Equal(t, "2 days left for Resident's family appointment with family",
		AppointmentMessage(models.Appointment{Type: models.AppointmentFamily}, "", 2))
}

func TestAppointmentNotices(t *testing.T) {
	now := date(2024, time.June, 10, 9)
	residents := map[uint64]models.Resident{
		1: {ID: 1, Name: "Alice"},
	}
	appointments := []models.Appointment{
		{ID: 10, ResidentID: 1, Type: models.AppointmentDoctor, HospitalName: "City General",
			Date: date(2024, time.June, 11, 10)},
		{ID: 11, ResidentID: 1, Type: models.AppointmentDoctor, Completed: true,
			Date: date(2024, time.June, 12, 10)},
		{ID: 12, ResidentID: 99, Type: models.AppointmentFamily, RelativeName: "Mary",
			Date: date(2024, time.June, 12, 10)},
	}

	notices := AppointmentNotices(appointments, residents, now)
	require.Len(t, notices, 1, "completed and unresolved appointments must be skipped")

	n := notices[0]
	assert.Equal(t, TypeAppointment, n.Type)
	assert.Equal(t, uint64(10), n.ID)
	assert.Equal(t, uint64(1), n.ResidentID)
	assert.Equal(t, 1, n.DaysLeft)
	assert.Equal(t, "1 day left for Alice's doctor appointment at City General", n.Message)
}

func TestBirthdayNotices(t *testing.T) {
	now := date(2024, time.June, 10, 9)
	residents := []models.Resident{
		{ID: 1, Name: "Alice", DOB: "1950-06-15"},
		{ID: 2, Name: "Bob", DOB: "1945-06-10"},
		{ID: 3, Name: "Carol", DOB: "1952-06-11"},
		{ID: 4, Name: "Dan", DOB: "1960-08-01"},
		{ID: 5, Name: "Eve", DOB: "not-a-date"},
		{ID: 6, Name: "Frank", DOB: ""},
	}

	notices := BirthdayNotices(residents, now)
	require.Len(t, notices, 3)

	byID := map[uint64]Notice{}
	for _, n := range notices {
		byID[n.ResidentID] = n
	}

	assert.Equal(t, 5, byID[1].DaysLeft)
	assert.Contains(t, byID[1].Message, "5 days")
	assert.Equal(t, "Today is Bob's birthday!", byID[2].Message)
	assert.Equal(t, 0, byID[2].DaysLeft)
	assert.Equal(t, "1 day left for Carol's birthday", byID[3].Message)
}

func TestBirthdayNoticesYearRollover(t *testing.T) {
	now := date(2024, time.December, 30, 9)
	residents := []models.Resident{
		{ID: 1, Name: "Alice", DOB: "1940-01-02"},
	}

	notices := BirthdayNotices(residents, now)
	require.Len(t, notices, 1)
	assert.Equal(t, 3, notices[0].DaysLeft)
	assert.Equal(t, 2025, notices[0].Date.Year())
}

func TestBirthdayNoticesWindow(t *testing.T) {
	now := date(2024, time.June, 10, 9)
	residents := []models.Resident{
		{ID: 1, Name: "Edge", DOB: "1950-06-17"},
		{ID: 2, Name: "Beyond", DOB: "1950-06-18"},
	}

	notices := BirthdayNotices(residents, now)
	require.Len(t, notices, 1)
	assert.Equal(t, 7, notices[0].DaysLeft)
}

func TestMergeSortsByDate(t *testing.T) {
	a := []Notice{
		{ID: 1, Date: date(2024, time.June, 14, 0)},
		{ID: 2, Date: date(2024, time.June, 11, 0)},
	}
	b := []Notice{
		{ID: 3, Date: date(2024, time.June, 12, 0)},
	}

	merged := Merge(a, b)
	require.Len(t, merged, 3)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Date.Before(merged[i-1].Date),
			"notices must be sorted ascending by date")
	}
	assert.Equal(t, uint64(2), merged[0].ID)
	assert.Equal(t, uint64(1), merged[2].ID)
}
