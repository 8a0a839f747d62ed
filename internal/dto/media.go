package dto

import (
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type MediaRead struct {
	ID        uint      `json:"id"`
	FilePath  string    `json:"file_path"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMediaRead(m *models.Media) *MediaRead {
	if m == nil {
		return nil
	}
	return &MediaRead{
		ID:        m.ID,
		FilePath:  m.FilePath,
		UpdatedAt: m.UpdatedAt,
	}
}
