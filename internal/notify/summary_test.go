package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldercare-backend/internal/models"
)

func TestSummarize(t *testing.T) {
	now := date(2024, time.June, 10, 9)
	residents := map[uint64]models.Resident{
		1: {ID: 1, Name: "Alice", DOB: "1950-06-15"},
		2: {ID: 2, Name: "Bob", DOB: "1945-01-20"},
		3: {ID: 3, Name: "Idle", DOB: "1955-03-03"},
	}
	activities := []models.Activity{
		{ResidentID: 1, Activity: "Bingo", Date: date(2024, time.June, 3, 15)},
		{ResidentID: 2, Activity: "Gardening", Date: date(2024, time.June, 4, 10)},
		{ResidentID: 1, Activity: "Walk", Date: date(2024, time.June, 5, 9)},
		{ResidentID: 42, Activity: "Orphaned", Date: date(2024, time.June, 6, 9)},
	}

	rows := Summarize(activities, residents, now)
	require.Len(t, rows, 2, "unresolved refs skipped, idle residents omitted")

	// First-seen order.
	assert.Equal(t, uint64(1), rows[0].ResidentID)
	assert.Equal(t, uint64(2), rows[1].ResidentID)

	for _, row := range rows {
		assert.Equal(t, row.Count, len(row.Activities))
		assert.NotZero(t, row.Count)
	}

	alice := rows[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, 73, alice.Age)
	assert.Equal(t, 2, alice.Count)
	assert.Equal(t, "Bingo", alice.Activities[0].Activity)
	assert.Equal(t, "Walk", alice.Activities[1].Activity)
}

func TestSummarizeEmpty(t *testing.T) {
	rows := Summarize(nil, map[uint64]models.Resident{}, time.Now())
	assert.Empty(t, rows)
}

func TestAge(t *testing.T) {
	now := date(2024, time.June, 10, 9)

	assert.Equal(t, 73, Age("1950-06-15", now))
	assert.Equal(t, 74, Age("1950-06-10", now))
	assert.Equal(t, 74, Age("1950-06-09", now))
	assert.Equal(t, -1, Age("unknown", now))
}
