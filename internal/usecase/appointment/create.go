package appointment

import (
	"context"
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	domain "github.com/VetCareServices/vetclinic-api/internal/domain/appointment"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	"github.com/VetCareServices/vetclinic-api/internal/timezone"
)

type CreateAppointmentInput struct {
	AppointmentDate time.Time
	Reason          string

	AnimalID    uint
	AssistantID uint // optional; defaults to the caller when they are an assistant
}

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	callerID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	caller, err := uc.repo.GetUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.timezone)

	if err := domain.ValidateDate(in.AppointmentDate, now); err != nil {
		return nil, err
	}

	if in.Reason == "" {
		return nil, httperr.Validation("reason", "must not be blank")
	}

	animal, err := uc.repo.GetAnimal(ctx, in.AnimalID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		AppointmentDate: in.AppointmentDate,
		Reason:          in.Reason,
		AnimalID:        animal.ID,
		Animal:          animal,
	}

	if in.AssistantID != 0 {
		assistant, err := uc.repo.GetUser(ctx, in.AssistantID)
		if err != nil {
			return nil, err
		}
		ap.AssistantID = assistant.ID
		ap.Assistant = assistant
	}

	domain.ApplyCreationDefaults(ap, caller, now)

	if ap.AssistantID == 0 {
		return nil, httperr.Validation("assistant_id", "must not be blank")
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
