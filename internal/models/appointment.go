package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Appointment types.
const (
	AppointmentDoctor = "doctor"
	AppointmentFamily = "family"
)

var relativeNumberRe = regexp.MustCompile(`^[0-9]{10,15}$`)

// Appointment is a scheduled doctor visit or family visit for one resident.
// The doctor/family field pairs are required depending on Type.
type Appointment struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ResidentID     uint64    `gorm:"index;not null" json:"residentId"`
	Type           string    `gorm:"size:10;index;not null" json:"type"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	Purpose        string    `gorm:"size:500;not null" json:"purpose"`
	Notes          string    `gorm:"size:1000" json:"notes"`
	Completed      bool      `gorm:"default:false;index" json:"completed"`
	DoctorName     string    `gorm:"size:100" json:"doctorName,omitempty"`
	HospitalName   string    `gorm:"size:100" json:"hospitalName,omitempty"`
	RelativeName   string    `gorm:"size:100" json:"relativeName,omitempty"`
	Relation       string    `gorm:"size:50" json:"relation,omitempty"`
	RelativeNumber string    `gorm:"size:20" json:"relativeNumber,omitempty"`
	CreatedBy      uint64    `gorm:"index;not null" json:"createdById"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AppointmentInput is the request body for creating or replacing an
// appointment. Date is parsed and checked by Validate.
type AppointmentInput struct {
	ResidentID     uint64 `json:"residentId"`
	Type           string `json:"type"`
	Date           string `json:"date"`
	Purpose        string `json:"purpose"`
	Notes          string `json:"notes"`
	DoctorName     string `json:"doctorName"`
	HospitalName   string `json:"hospitalName"`
	RelativeName   string `json:"relativeName"`
	Relation       string `json:"relation"`
	RelativeNumber string `json:"relativeNumber"`
}

// Validation failure messages kept stable for API consumers.
var (
	ErrMissingFields      = errors.New("Missing required fields")
	ErrPastAppointment    = errors.New("Cannot create appointment in the past")
	ErrDoctorFields       = errors.New("Doctor appointments require doctorName and hospitalName")
	ErrFamilyFields       = errors.New("Family appointments require relativeName and relation")
	ErrBadRelativeNumber  = errors.New("relativeNumber must be 10 to 15 digits")
	ErrBadAppointmentType = errors.New(`Appointment type must be either "doctor" or "family"`)
)

// Validate checks the input against the appointment rules and returns the
// parsed date. The future-date rule only applies at creation time
// (requireFuture), so past appointments can still be edited.
func (in *AppointmentInput) Validate(now time.Time, requireFuture bool) (time.Time, error) {
	if in.ResidentID == 0 || in.Type == "" || in.Date == "" || in.Purpose == "" {
		return time.Time{}, ErrMissingFields
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid date format")
	}
	if requireFuture && !date.After(now) {
		return time.Time{}, ErrPastAppointment
	}

	switch in.Type {
	case AppointmentDoctor:
		if in.DoctorName == "" || in.HospitalName == "" {
			return time.Time{}, ErrDoctorFields
		}
	case AppointmentFamily:
		if in.RelativeName == "" || in.Relation == "" {
			return time.Time{}, ErrFamilyFields
		}
		if in.RelativeNumber != "" && !relativeNumberRe.MatchString(in.RelativeNumber) {
			return time.Time{}, ErrBadRelativeNumber
		}
	default:
		return time.Time{}, ErrBadAppointmentType
	}

	if err := checkLengths(in); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func checkLengths(in *AppointmentInput) error {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"purpose", in.Purpose, 500},
		{"notes", in.Notes, 1000},
		{"doctorName", in.DoctorName, 100},
		{"hospitalName", in.HospitalName, 100},
		{"relativeName", in.RelativeName, 100},
		{"relation", in.Relation, 50},
	}
	for _, l := range limits {
		if len(l.value) > l.max {
			return fmt.Errorf("%s cannot be more than %d characters", l.field, l.max)
		}
	}
	return nil
}

// Apply copies validated input onto an appointment record. Fields for the
// other appointment type are cleared so a type change leaves no leftovers.
func (in *AppointmentInput) Apply(a *Appointment, date time.Time) {
	a.ResidentID = in.ResidentID
	a.Type = in.Type
	a.Date = date
	a.Purpose = in.Purpose
	a.Notes = in.Notes
	a.DoctorName = ""
	a.HospitalName = ""
	a.RelativeName = ""
	a.Relation = ""
	a.RelativeNumber = ""
	if in.Type == AppointmentDoctor {
		a.DoctorName = in.DoctorName
		a.HospitalName = in.HospitalName
	} else {
		a.RelativeName = in.RelativeName
		a.Relation = in.Relation
		a.RelativeNumber = in.RelativeNumber
	}
}
