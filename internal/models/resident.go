package models

import (
	"strings"
	"time"
)

// Medicine is one prescribed medicine under a disease.
type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// Disease groups the medicines prescribed for one condition.
type Disease struct {
	Name      string     `json:"name"`
	Medicines []Medicine `json:"medicines"`
}

// Resident is a person in care, the subject of most records.
// DOB and AdmissionDate are stored as YYYY-MM-DD strings.
type Resident struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	DOB              string    `gorm:"type:date" json:"dob"`
	Gender           string    `gorm:"type:enum('male','female','other')" json:"gender"`
	AdmissionDate    string    `gorm:"type:date" json:"admissionDate"`
	EmergencyContact string    `gorm:"size:100" json:"emergencyContact"`
	History          string    `gorm:"type:text" json:"history"`
	Room             string    `gorm:"size:20" json:"room"`
	Dietary          string    `gorm:"type:text" json:"dietary"`
	Diseases         []Disease `gorm:"serializer:json" json:"diseases"`
	Allergies        string    `gorm:"type:text" json:"allergies"`
	Document         string    `gorm:"size:255" json:"document"`
	Photo            string    `gorm:"size:255" json:"photo"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ResidentInput carries the "data" JSON part of the multipart create/update
// request. ExistingDocument/ExistingPhoto let an update keep files that were
// not re-uploaded.
type ResidentInput struct {
	Name             string    `json:"name" binding:"required"`
	DOB              string    `json:"dob" binding:"required"`
	Gender           string    `json:"gender" binding:"required,oneof=male female other"`
	AdmissionDate    string    `json:"admissionDate"`
	EmergencyContact string    `json:"emergencyContact" binding:"required"`
	History          string    `json:"history"`
	Room             string    `json:"room" binding:"required"`
	Dietary          string    `json:"dietary"`
	Diseases         []Disease `json:"diseases"`
	Allergies        string    `json:"allergies"`
	ExistingDocument string    `json:"existingDocument"`
	ExistingPhoto    string    `json:"existingPhoto"`
}

// PruneDiseases drops diseases with an empty name and, within each kept
// disease, medicines with an empty name. Names are trimmed.
func PruneDiseases(diseases []Disease) []Disease {
	out := make([]Disease, 0, len(diseases))
	for _, d := range diseases {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		meds := make([]Medicine, 0, len(d.Medicines))
		for _, m := range d.Medicines {
			if strings.TrimSpace(m.Name) == "" {
				continue
			}
			meds = append(meds, m)
		}
		out = append(out, Disease{Name: name, Medicines: meds})
	}
	return out
}
