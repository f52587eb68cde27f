package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneDiseases(t *testing.T) {
	in := []Disease{
		{Name: "  Diabetes ", Medicines: []Medicine{
			{Name: "Metformin", Dosage: "500mg", Frequency: "daily"},
			{Name: "   ", Dosage: "ignored"},
		}},
		{Name: "", Medicines: []Medicine{{Name: "Orphan"}}},
		{Name: "Hypertension"},
	}

	out := PruneDiseases(in)
	require.Len(t, out, 2)

	assert.Equal(t, "Diabetes", out[0].Name)
	require.Len(t, out[0].Medicines, 1)
	assert.Equal(t, "Metformin", out[0].Medicines[0].Name)

	assert.Equal(t, "Hypertension", out[1].Name)
	assert.Empty(t, out[1].Medicines)
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{
		"2024-06-15",
		"2024-06-15T10:30",
		"2024-06-15T10:30:00Z",
	} {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, 15, d.Day())
	}

	_, err := ParseDate("15/06/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
