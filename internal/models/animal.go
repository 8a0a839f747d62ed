package models

import "time"

type Animal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string    `gorm:"size:100;not null" json:"name"`
	Species   string    `gorm:"size:100;not null" json:"species"`
	BirthDate time.Time `gorm:"type:date" json:"birth_date"`

	// Photo is exclusively owned by this animal and removed with it.
	PhotoID *uint  `json:"photo_id"`
	Photo   *Media `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"photo,omitempty"`

	OwnerID uint    `gorm:"not null" json:"owner_id"`
	Owner   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner,omitempty"`

	Appointments []*Appointment `gorm:"foreignKey:AnimalID" json:"appointments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetOwner moves the animal between clients, keeping both collections in sync.
func (a *Animal) SetOwner(c *Client) {
	if a.Owner == c {
		return
	}
	if a.Owner != nil {
		a.Owner.RemoveAnimal(a)
	}
	if c != nil {
		c.AddAnimal(a)
	} else {
		a.Owner = nil
		a.OwnerID = 0
	}
}

func (a *Animal) AddAppointment(ap *Appointment) {
	for i := range a.Appointments {
		if a.Appointments[i] == ap {
			return
		}
	}
	a.Appointments = append(a.Appointments, ap)
	ap.AnimalID = a.ID
	ap.Animal = a
}

func (a *Animal) RemoveAppointment(ap *Appointment) {
	for i := range a.Appointments {
		if a.Appointments[i] == ap {
			a.Appointments = append(a.Appointments[:i], a.Appointments[i+1:]...)
			if ap.Animal == a {
				ap.Animal = nil
				ap.AnimalID = 0
			}
			return
		}
	}
}
