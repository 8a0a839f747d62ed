package appointment

import (
	"context"

	domain "github.com/VetCareServices/vetclinic-api/internal/domain/appointment"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	page, perPage int,
) ([]models.Appointment, error) {

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	return uc.repo.ListAppointments(ctx, domain.ListFilter{
		Page:    page,
		PerPage: perPage,
	})
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, id)
}
