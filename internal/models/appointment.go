package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// CreatedAt is set once by the creation lifecycle and never updated.
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	Reason          string    `gorm:"size:255;not null" json:"reason"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	IsPaid bool   `gorm:"default:false" json:"is_paid"`

	AnimalID uint    `gorm:"not null" json:"animal_id"`
	Animal   *Animal `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"animal,omitempty"`

	AssistantID uint  `gorm:"not null" json:"assistant_id"`
	Assistant   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assistant,omitempty"`

	VeterinarianID *uint `json:"veterinarian_id"`
	Veterinarian   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"veterinarian,omitempty"`

	Treatments []*Treatment `gorm:"many2many:appointment_treatments;" json:"treatments,omitempty"`
}

// AddTreatment links both sides of the many-to-many relation.
func (ap *Appointment) AddTreatment(t *Treatment) {
	for i := range ap.Treatments {
		if ap.Treatments[i] == t {
			return
		}
	}
	ap.Treatments = append(ap.Treatments, t)
	t.AddAppointment(ap)
}

func (ap *Appointment) RemoveTreatment(t *Treatment) {
	for i := range ap.Treatments {
		if ap.Treatments[i] == t {
			ap.Treatments = append(ap.Treatments[:i], ap.Treatments[i+1:]...)
			t.RemoveAppointment(ap)
			return
		}
	}
}
