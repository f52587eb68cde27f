package notify

import (
	"time"

	"eldercare-backend/internal/models"
)

// ActivityEntry is one activity occurrence inside a summary row.
type ActivityEntry struct {
	Activity string    `json:"activity"`
	Date     time.Time `json:"date"`
}

// SummaryRow aggregates one resident's activity participation for a month.
type SummaryRow struct {
	ResidentID uint64          `json:"residentId"`
	Name       string          `json:"name"`
	Age        int             `json:"age"`
	Count      int             `json:"count"`
	Activities []ActivityEntry `json:"activities"`
}

// Summarize groups activity records by resident, preserving encounter order
// of both rows and activities. Records whose resident reference does not
// resolve are skipped. Residents without a matching record get no row.
func Summarize(activities []models.Activity, residents map[uint64]models.Resident, now time.Time) []SummaryRow {
	rows := make([]SummaryRow, 0)
	index := make(map[uint64]int)

	for _, a := range activities {
		resident, ok := residents[a.ResidentID]
		if !ok {
			continue
		}
		i, seen := index[a.ResidentID]
		if !seen {
			i = len(rows)
			index[a.ResidentID] = i
			rows = append(rows, SummaryRow{
				ResidentID: resident.ID,
				Name:       resident.Name,
				Age:        Age(resident.DOB, now),
			})
		}
		rows[i].Count++
		rows[i].Activities = append(rows[i].Activities, ActivityEntry{
			Activity: a.Activity,
			Date:     a.Date,
		})
	}
	return rows
}

// Age computes full years since dob, or -1 when dob cannot be parsed.
func Age(dob string, now time.Time) int {
	birth, err := models.ParseDate(dob)
	if err != nil {
		return -1
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
