package appointment

import (
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

var errPastDate = httperr.Validation("appointment_date", "must be strictly in the future")

// ApplyCreationDefaults populates the fields the caller is allowed to omit on
// a new appointment. Every step is idempotent: a field already set by the
// input is left alone.
func ApplyCreationDefaults(ap *models.Appointment, caller *models.User, now time.Time) {
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}

	if ap.AssistantID == 0 && caller != nil && caller.HasRole(models.RoleAssistant) {
		ap.AssistantID = caller.ID
		ap.Assistant = caller
	}

	if ap.Status == "" {
		ap.Status = string(InitialStatus())
	}

	// IsPaid defaults to false; with a bool zero value the step is already
	// satisfied when the caller omits it.
}

// No defaulting runs on update. Extension point for future invariants
// (e.g. forbidding status regressions); intentionally empty today.
func ApplyUpdateChecks(ap *models.Appointment) error {
	return nil
}

// ValidateDate enforces the strictly-in-the-future rule at creation time.
func ValidateDate(date time.Time, now time.Time) error {
	if !date.After(now) {
		return errPastDate
	}
	return nil
}
