package dto

import "github.com/VetCareServices/vetclinic-api/internal/models"

type TreatmentRead struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

// TreatmentSummary omits the long description inside listing payloads.
type TreatmentSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewTreatmentRead(t *models.Treatment) TreatmentRead {
	return TreatmentRead{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       t.Price,
		DurationMin: t.DurationMin,
	}
}

func NewTreatmentSummary(t *models.Treatment) TreatmentSummary {
	return TreatmentSummary{
		ID:    t.ID,
		Name:  t.Name,
		Price: t.Price,
	}
}
