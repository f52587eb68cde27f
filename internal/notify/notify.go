// Package notify derives human-readable, time-relative notices from
// appointment and resident records. Everything here is pure: callers pass
// the data and the current instant, nothing touches the database.
package notify

import (
	"fmt"
	"math"
	"sort"
	"time"

	"eldercare-backend/internal/models"
)

// Notice types.
const (
	TypeAppointment = "appointment"
	TypeBirthday    = "birthday"
)

// BirthdayWindowDays is how far ahead a birthday counts as upcoming.
const BirthdayWindowDays = 7

// Notice is one derived notification shown to staff.
type Notice struct {
	Type       string    `json:"type"`
	ID         uint64    `json:"id"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
	ResidentID uint64    `json:"residentId"`
	DaysLeft   int       `json:"daysLeft"`
}

// DaysUntil counts the local midnight boundaries between now and target,
// clamped at zero. "Tomorrow" is 1 regardless of clock time on either side;
// this one rule is used everywhere daysLeft appears.
func DaysUntil(now, target time.Time) int {
	target = target.In(now.Location())
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, now.Location())
	// Rounded, not truncated: daylight-saving transitions make some local
	// days 23 or 25 hours long.
	days := int(math.Round(t.Sub(n).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// AppointmentMessage phrases one appointment notice. Missing names fall
// back to generic words so a sparsely-filled record still reads sensibly.
func AppointmentMessage(a models.Appointment, residentName string, daysLeft int) string {
	if residentName == "" {
		residentName = "Resident"
	}

	var event string
	if a.Type == models.AppointmentDoctor {
		hospital := a.HospitalName
		if hospital == "" {
			hospital = "hospital"
		}
		event = fmt.Sprintf("%s's doctor appointment at %s", residentName, hospital)
	} else {
		relative := a.RelativeName
		if relative == "" {
			relative = "family"
		}
		event = fmt.Sprintf("%s's family appointment with %s", residentName, relative)
	}

	switch daysLeft {
	case 0:
		return "Today is " + event
	case 1:
		return "1 day left for " + event
	default:
		return fmt.Sprintf("%d days left for %s", daysLeft, event)
	}
}

// AppointmentNotices derives notices for every non-completed appointment
// whose resident reference resolves. Unresolvable references are skipped
// silently.
func AppointmentNotices(appointments []models.Appointment, residents map[uint64]models.Resident, now time.Time) []Notice {
	notices := make([]Notice, 0, len(appointments))
	for _, a := range appointments {
		if a.Completed {
			continue
		}
		resident, ok := residents[a.ResidentID]
		if !ok {
			continue
		}
		daysLeft := DaysUntil(now, a.Date)
		notices = append(notices, Notice{
			Type:       TypeAppointment,
			ID:         a.ID,
			Message:    AppointmentMessage(a, resident.Name, daysLeft),
			Date:       a.Date,
			ResidentID: a.ResidentID,
			DaysLeft:   daysLeft,
		})
	}
	return notices
}

// NextBirthday returns the next occurrence of dob's month/day on or after
// today in now's location.
func NextBirthday(dob, now time.Time) time.Time {
	next := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}

// BirthdayNotices derives notices for residents whose next birthday falls
// within BirthdayWindowDays. Residents with an unparseable date of birth
// are skipped silently.
func BirthdayNotices(residents []models.Resident, now time.Time) []Notice {
	notices := make([]Notice, 0)
	for _, r := range residents {
		if r.DOB == "" || r.Name == "" {
			continue
		}
		dob, err := models.ParseDate(r.DOB)
		if err != nil {
			continue
		}
		next := NextBirthday(dob, now)
		daysLeft := DaysUntil(now, next)
		if daysLeft > BirthdayWindowDays {
			continue
		}

		var message string
		switch daysLeft {
		case 0:
			message = fmt.Sprintf("Today is %s's birthday!", r.Name)
		case 1:
			message = fmt.Sprintf("1 day left for %s's birthday", r.Name)
		default:
			message = fmt.Sprintf("%d days left for %s's birthday", daysLeft, r.Name)
		}

		notices = append(notices, Notice{
			Type:       TypeBirthday,
			ID:         r.ID,
			Message:    message,
			Date:       next,
			ResidentID: r.ID,
			DaysLeft:   daysLeft,
		})
	}
	return notices
}

// Merge combines notice lists and sorts ascending by date.
func Merge(lists ...[]Notice) []Notice {
	merged := make([]Notice, 0)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}
