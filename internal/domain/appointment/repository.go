package appointment

import (
	"context"

	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type ListFilter struct {
	Page    int
	PerPage int
}

type Repository interface {
	// -------- Lookups for relation wiring --------
	GetAnimal(ctx context.Context, id uint) (*models.Animal, error)

	GetUser(ctx context.Context, id uint) (*models.User, error)

	GetTreatments(ctx context.Context, ids []uint) ([]*models.Treatment, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	// UpdateAppointment replaces the record and its treatment set in one
	// transaction; partial relation updates must never persist.
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
}
