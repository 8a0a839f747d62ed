package dto

import (
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type AnimalRead struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Species   string         `json:"species"`
	BirthDate time.Time      `json:"birth_date"`
	Photo     *MediaRead     `json:"photo,omitempty"`
	Owner     *ClientSummary `json:"owner,omitempty"`
}

// AnimalDetail adds the appointment history. The embedded appointments carry
// no animal of their own: expansion stops at depth one.
type AnimalDetail struct {
	AnimalRead
	Appointments []AppointmentSummary `json:"appointments"`
}

type AnimalSummary struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	BirthDate time.Time  `json:"birth_date"`
	Photo     *MediaRead `json:"photo,omitempty"`
}

func NewAnimalRead(a *models.Animal) AnimalRead {
	return AnimalRead{
		ID:        a.ID,
		Name:      a.Name,
		Species:   a.Species,
		BirthDate: a.BirthDate,
		Photo:     NewMediaRead(a.Photo),
		Owner:     NewClientSummary(a.Owner),
	}
}

func NewAnimalDetail(a *models.Animal) AnimalDetail {
	d := AnimalDetail{
		AnimalRead:   NewAnimalRead(a),
		Appointments: make([]AppointmentSummary, 0, len(a.Appointments)),
	}
	for _, ap := range a.Appointments {
		d.Appointments = append(d.Appointments, NewAppointmentSummary(ap))
	}
	return d
}

func NewAnimalSummary(a *models.Animal) AnimalSummary {
	return AnimalSummary{
		ID:        a.ID,
		Name:      a.Name,
		Species:   a.Species,
		BirthDate: a.BirthDate,
		Photo:     NewMediaRead(a.Photo),
	}
}
