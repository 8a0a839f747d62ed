package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/authz"
	domain "github.com/VetCareServices/vetclinic-api/internal/domain/appointment"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	"github.com/VetCareServices/vetclinic-api/internal/payments"
)

type PayAppointment struct {
	repo    domain.Repository
	charger payments.Charger
	audit   *audit.Dispatcher
}

func NewPayAppointment(
	repo domain.Repository,
	charger payments.Charger,
	audit *audit.Dispatcher,
) *PayAppointment {
	return &PayAppointment{
		repo:    repo,
		charger: charger,
		audit:   audit,
	}
}

// Execute charges the sum of the appointment's treatments and marks it paid.
func (uc *PayAppointment) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id uint,
	payerEmail string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Payment flips is_paid, so it is gated like an update.
	if err := authz.Allow(caller, authz.ActionUpdate, authz.ResourceAppointment, ap); err != nil {
		return nil, err
	}

	if payerEmail == "" && ap.Animal != nil && ap.Animal.Owner != nil {
		payerEmail = ap.Animal.Owner.Email
	}

	if ap.IsPaid {
		return nil, httperr.ConflictError{Resource: "appointment", Field: "payment"}
	}

	var total float64
	for _, t := range ap.Treatments {
		total += t.Price
	}
	if total <= 0 {
		return nil, httperr.Validation("treatments", "nothing to charge")
	}

	if uc.charger == nil {
		return nil, errors.New("payment gateway not configured")
	}

	res, err := uc.charger.Charge(ctx, payments.Charge{
		Amount:      total,
		Description: fmt.Sprintf("appointment #%d", ap.ID),
		PayerEmail:  payerEmail,
	})
	if err != nil {
		return nil, err
	}
	if !res.Approved {
		return nil, httperr.Validation("payment", "payment was not approved")
	}

	ap.IsPaid = true
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "appointment_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reference": res.Reference, "amount": total},
	})

	return ap, nil
}
