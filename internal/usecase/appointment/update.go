package appointment

import (
	"context"
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/authz"
	domain "github.com/VetCareServices/vetclinic-api/internal/domain/appointment"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

// UpdateAppointmentInput is a full replace of the updatable field set.
// CreatedAt, animal and assistant are not part of it: the first is immutable,
// the others are settable only at creation.
type UpdateAppointmentInput struct {
	AppointmentDate time.Time
	Reason          string
	Status          string
	IsPaid          bool
	VeterinarianID  *uint
	TreatmentIDs    []uint
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	// The update rule is record-aware: a veterinarian may only touch
	// appointments assigned to them.
	if err := authz.Allow(caller, authz.ActionUpdate, authz.ResourceAppointment, ap); err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	if in.Reason == "" {
		return nil, httperr.Validation("reason", "must not be blank")
	}
	if in.AppointmentDate.IsZero() {
		return nil, httperr.Validation("appointment_date", "must not be blank")
	}

	ap.AppointmentDate = in.AppointmentDate
	ap.Reason = in.Reason
	ap.Status = string(status)
	ap.IsPaid = in.IsPaid

	if in.VeterinarianID != nil {
		vet, err := uc.repo.GetUser(ctx, *in.VeterinarianID)
		if err != nil {
			return nil, err
		}
		ap.VeterinarianID = &vet.ID
		ap.Veterinarian = vet
	} else {
		ap.VeterinarianID = nil
		ap.Veterinarian = nil
	}

	treatments, err := uc.repo.GetTreatments(ctx, in.TreatmentIDs)
	if err != nil {
		return nil, err
	}
	ap.Treatments = treatments

	if err := domain.ApplyUpdateChecks(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
