package dto

import (
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type AppointmentRead struct {
	ID              uint               `json:"id"`
	CreatedAt       time.Time          `json:"created_at"`
	AppointmentDate time.Time          `json:"appointment_date"`
	Reason          string             `json:"reason"`
	Status          string             `json:"status"`
	IsPaid          bool               `json:"is_paid"`
	Animal          *AnimalSummary     `json:"animal,omitempty"`
	Assistant       *UserSummary       `json:"assistant,omitempty"`
	Veterinarian    *UserSummary       `json:"veterinarian,omitempty"`
	Treatments      []TreatmentSummary `json:"treatments"`
}

// AppointmentDetail expands treatments to their full projection.
type AppointmentDetail struct {
	AppointmentRead
	Treatments []TreatmentRead `json:"treatments"`
}

// AppointmentSummary is the depth-limited form embedded in animal and user
// detail payloads; it carries no relations of its own.
type AppointmentSummary struct {
	ID              uint      `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
}

func NewAppointmentRead(ap *models.Appointment) AppointmentRead {
	r := AppointmentRead{
		ID:              ap.ID,
		CreatedAt:       ap.CreatedAt,
		AppointmentDate: ap.AppointmentDate,
		Reason:          ap.Reason,
		Status:          ap.Status,
		IsPaid:          ap.IsPaid,
		Assistant:       NewUserSummary(ap.Assistant),
		Veterinarian:    NewUserSummary(ap.Veterinarian),
		Treatments:      make([]TreatmentSummary, 0, len(ap.Treatments)),
	}
	if ap.Animal != nil {
		s := NewAnimalSummary(ap.Animal)
		r.Animal = &s
	}
	for _, t := range ap.Treatments {
		r.Treatments = append(r.Treatments, NewTreatmentSummary(t))
	}
	return r
}

func NewAppointmentDetail(ap *models.Appointment) AppointmentDetail {
	d := AppointmentDetail{
		AppointmentRead: NewAppointmentRead(ap),
		Treatments:      make([]TreatmentRead, 0, len(ap.Treatments)),
	}
	for _, t := range ap.Treatments {
		d.Treatments = append(d.Treatments, NewTreatmentRead(t))
	}
	return d
}

func NewAppointmentSummary(ap *models.Appointment) AppointmentSummary {
	return AppointmentSummary{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		Reason:          ap.Reason,
		Status:          ap.Status,
	}
}
