package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eldercare-backend/internal/models"
)

func TestAppointmentMatches(t *testing.T) {
	doctor := models.Appointment{
		Type:         models.AppointmentDoctor,
		Purpose:      "Quarterly checkup",
		DoctorName:   "Dr. Smith",
		HospitalName: "City General",
		Notes:        "bring previous results",
	}
	family := models.Appointment{
		Type:         models.AppointmentFamily,
		Purpose:      "Birthday visit",
		RelativeName: "Mary Jones",
		Relation:     "Daughter",
	}

	assert.True(t, appointmentMatches(doctor, "Alice", "smith"))
	assert.True(t, appointmentMatches(doctor, "Alice", "CITY"))
	assert.True(t, appointmentMatches(doctor, "Alice", "checkup"))
	assert.True(t, appointmentMatches(doctor, "Alice", "previous"))
	assert.False(t, appointmentMatches(doctor, "Alice", "jones"))

	// Resident name alone is enough.
	assert.True(t, appointmentMatches(doctor, "Mrs. Smithson", "smith"))

	assert.True(t, appointmentMatches(family, "Bob", "daughter"))
	assert.True(t, appointmentMatches(family, "Bob", "mary"))
	assert.False(t, appointmentMatches(family, "Bob", "hospital"))
}
