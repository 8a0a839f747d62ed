package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/authz"
	domain "github.com/VetCareServices/vetclinic-api/internal/domain/appointment"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	"github.com/VetCareServices/vetclinic-api/internal/payments"
)

// ---------- fakes ----------

type fakeRepo struct {
	animals      map[uint]*models.Animal
	users        map[uint]*models.User
	treatments   map[uint]*models.Treatment
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		animals:      map[uint]*models.Animal{},
		users:        map[uint]*models.User{},
		treatments:   map[uint]*models.Treatment{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) GetAnimal(_ context.Context, id uint) (*models.Animal, error) {
	a, ok := r.animals[id]
	if !ok {
		return nil, httperr.NotFoundError{Resource: "animal", ID: id}
	}
	return a, nil
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, httperr.NotFoundError{Resource: "user", ID: id}
	}
	return u, nil
}

func (r *fakeRepo) GetTreatments(_ context.Context, ids []uint) ([]*models.Treatment, error) {
	out := make([]*models.Treatment, 0, len(ids))
	for _, id := range ids {
		t, ok := r.treatments[id]
		if !ok {
			return nil, httperr.NotFoundError{Resource: "treatment", ID: id}
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.NotFoundError{Resource: "appointment", ID: id}
	}
	return ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}

type fakeCharger struct {
	charges []payments.Charge
	approve bool
}

func (f *fakeCharger) Charge(_ context.Context, c payments.Charge) (*payments.Result, error) {
	f.charges = append(f.charges, c)
	return &payments.Result{Reference: "ref-1", Approved: f.approve}, nil
}

// ---------- create ----------

func seedStaff(r *fakeRepo) (assistant, vet *models.User, animal *models.Animal) {
	assistant = &models.User{ID: 1, Roles: []string{models.RoleAssistant}}
	vet = &models.User{ID: 2, Roles: []string{models.RoleVeterinarian}}
	animal = &models.Animal{ID: 10, Name: "Milo", OwnerID: 3}
	r.users[1] = assistant
	r.users[2] = vet
	r.animals[10] = animal
	return
}

func TestCreateAppointment_DefaultsAssistantToCaller(t *testing.T) {
	repo := newFakeRepo()
	assistant, _, _ := seedStaff(repo)

	uc := NewCreateAppointment(repo, testDispatcher(), "UTC")

	ap, err := uc.Execute(context.Background(), assistant.ID, CreateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		AnimalID:        10,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if ap.AssistantID != assistant.ID {
		t.Fatalf("assistant not defaulted to caller: %d", ap.AssistantID)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("status = %q, want scheduled", ap.Status)
	}
	if ap.CreatedAt.IsZero() {
		t.Fatalf("created_at was not set")
	}
	if ap.IsPaid {
		t.Fatalf("new appointment must be unpaid")
	}
}

func TestCreateAppointment_RejectsPastDate(t *testing.T) {
	repo := newFakeRepo()
	assistant, _, _ := seedStaff(repo)

	uc := NewCreateAppointment(repo, testDispatcher(), "UTC")

	_, err := uc.Execute(context.Background(), assistant.ID, CreateAppointmentInput{
		AppointmentDate: time.Now().Add(-time.Hour),
		Reason:          "checkup",
		AnimalID:        10,
	})

	var ve httperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["appointment_date"]; !ok {
		t.Fatalf("error does not name appointment_date: %v", ve.Fields)
	}
}

func TestCreateAppointment_NonAssistantMustNameAssistant(t *testing.T) {
	repo := newFakeRepo()
	seedStaff(repo)
	director := &models.User{ID: 5, Roles: []string{models.RoleDirector}}
	repo.users[5] = director

	uc := NewCreateAppointment(repo, testDispatcher(), "UTC")

	// without an explicit assistant the record stays incomplete
	_, err := uc.Execute(context.Background(), director.ID, CreateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		AnimalID:        10,
	})
	var ve httperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// naming one explicitly works
	ap, err := uc.Execute(context.Background(), director.ID, CreateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		AnimalID:        10,
		AssistantID:     1,
	})
	if err != nil {
		t.Fatalf("create with explicit assistant failed: %v", err)
	}
	if ap.AssistantID != 1 {
		t.Fatalf("assistant = %d, want 1", ap.AssistantID)
	}
}

func TestCreateAppointment_UnknownAnimal(t *testing.T) {
	repo := newFakeRepo()
	assistant, _, _ := seedStaff(repo)

	uc := NewCreateAppointment(repo, testDispatcher(), "UTC")

	_, err := uc.Execute(context.Background(), assistant.ID, CreateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		AnimalID:        999,
	})

	var nf httperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

// ---------- update ----------

func seedAppointment(repo *fakeRepo, vetID *uint) *models.Appointment {
	ap := &models.Appointment{
		ID:              1,
		CreatedAt:       time.Now().Add(-time.Hour),
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		Status:          string(domain.StatusScheduled),
		AnimalID:        10,
		AssistantID:     1,
		VeterinarianID:  vetID,
	}
	repo.appointments[1] = ap
	return ap
}

func TestUpdateAppointment_ForeignVeterinarianDenied(t *testing.T) {
	repo := newFakeRepo()
	_, vet, _ := seedStaff(repo)
	seedAppointment(repo, &vet.ID)

	uc := NewUpdateAppointment(repo, testDispatcher())

	foreign := &authz.Caller{ID: 99, Roles: []string{models.RoleVeterinarian}}
	_, err := uc.Execute(context.Background(), foreign, 1, UpdateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		Status:          "in_progress",
	})

	var pe httperr.PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PermissionError, got %v", err)
	}
}

func TestUpdateAppointment_AssignedVeterinarianReplacesTreatments(t *testing.T) {
	repo := newFakeRepo()
	_, vet, _ := seedStaff(repo)
	seedAppointment(repo, &vet.ID)
	repo.treatments[4] = &models.Treatment{ID: 4, Name: "X-ray", Price: 120}

	uc := NewUpdateAppointment(repo, testDispatcher())

	caller := &authz.Caller{ID: vet.ID, Roles: []string{models.RoleVeterinarian}}
	ap, err := uc.Execute(context.Background(), caller, 1, UpdateAppointmentInput{
		AppointmentDate: time.Now().Add(48 * time.Hour),
		Reason:          "surgery prep",
		Status:          "in_progress",
		VeterinarianID:  &vet.ID,
		TreatmentIDs:    []uint{4},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if ap.Status != "in_progress" {
		t.Fatalf("status = %q", ap.Status)
	}
	if len(ap.Treatments) != 1 || ap.Treatments[0].ID != 4 {
		t.Fatalf("treatment set not replaced: %v", ap.Treatments)
	}
	if ap.Reason != "surgery prep" {
		t.Fatalf("reason = %q", ap.Reason)
	}
}

func TestUpdateAppointment_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	seedStaff(repo)
	seedAppointment(repo, nil)

	uc := NewUpdateAppointment(repo, testDispatcher())

	caller := &authz.Caller{ID: 1, Roles: []string{models.RoleAssistant}}
	_, err := uc.Execute(context.Background(), caller, 1, UpdateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		Status:          "cancelled",
	})

	var ie httperr.IllegalStateError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IllegalStateError, got %v", err)
	}
}

func TestUpdateAppointment_UnknownTreatment(t *testing.T) {
	repo := newFakeRepo()
	seedStaff(repo)
	seedAppointment(repo, nil)

	uc := NewUpdateAppointment(repo, testDispatcher())

	caller := &authz.Caller{ID: 1, Roles: []string{models.RoleAssistant}}
	_, err := uc.Execute(context.Background(), caller, 1, UpdateAppointmentInput{
		AppointmentDate: time.Now().Add(24 * time.Hour),
		Reason:          "checkup",
		Status:          "scheduled",
		TreatmentIDs:    []uint{404},
	})

	var nf httperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

// ---------- pay ----------

func TestPayAppointment_ChargesTreatmentTotal(t *testing.T) {
	repo := newFakeRepo()
	seedStaff(repo)
	ap := seedAppointment(repo, nil)
	ap.Treatments = []*models.Treatment{
		{ID: 1, Name: "Consultation", Price: 30},
		{ID: 2, Name: "Rabies vaccine", Price: 40},
	}

	charger := &fakeCharger{approve: true}
	uc := NewPayAppointment(repo, charger, testDispatcher())

	caller := &authz.Caller{ID: 1, Roles: []string{models.RoleAssistant}}
	got, err := uc.Execute(context.Background(), caller, 1, "owner@example.com")
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}

	if !got.IsPaid {
		t.Fatalf("appointment not marked paid")
	}
	if len(charger.charges) != 1 {
		t.Fatalf("expected 1 charge, got %d", len(charger.charges))
	}
	if charger.charges[0].Amount != 70 {
		t.Fatalf("charged %v, want 70", charger.charges[0].Amount)
	}
	if charger.charges[0].PayerEmail != "owner@example.com" {
		t.Fatalf("payer email = %q", charger.charges[0].PayerEmail)
	}
}

func TestPayAppointment_AlreadyPaid(t *testing.T) {
	repo := newFakeRepo()
	seedStaff(repo)
	ap := seedAppointment(repo, nil)
	ap.IsPaid = true
	ap.Treatments = []*models.Treatment{{ID: 1, Price: 30}}

	uc := NewPayAppointment(repo, &fakeCharger{approve: true}, testDispatcher())

	caller := &authz.Caller{ID: 1, Roles: []string{models.RoleAssistant}}
	_, err := uc.Execute(context.Background(), caller, 1, "owner@example.com")

	var ce httperr.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestPayAppointment_DeclinedLeavesUnpaid(t *testing.T) {
	repo := newFakeRepo()
	seedStaff(repo)
	ap := seedAppointment(repo, nil)
	ap.Treatments = []*models.Treatment{{ID: 1, Price: 30}}

	uc := NewPayAppointment(repo, &fakeCharger{approve: false}, testDispatcher())

	caller := &authz.Caller{ID: 1, Roles: []string{models.RoleAssistant}}
	_, err := uc.Execute(context.Background(), caller, 1, "owner@example.com")

	var ve httperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ap.IsPaid {
		t.Fatalf("declined payment must not mark the appointment paid")
	}
}
