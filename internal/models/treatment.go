package models

import "time"

type Treatment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:1000;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	DurationMin int     `gorm:"not null" json:"duration_min"`

	Appointments []*Appointment `gorm:"many2many:appointment_treatments;" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddAppointment links both sides of the many-to-many relation.
func (t *Treatment) AddAppointment(ap *Appointment) {
	for i := range t.Appointments {
		if t.Appointments[i] == ap {
			return
		}
	}
	t.Appointments = append(t.Appointments, ap)
	ap.AddTreatment(t)
}

func (t *Treatment) RemoveAppointment(ap *Appointment) {
	for i := range t.Appointments {
		if t.Appointments[i] == ap {
			t.Appointments = append(t.Appointments[:i], t.Appointments[i+1:]...)
			ap.RemoveTreatment(t)
			return
		}
	}
}
