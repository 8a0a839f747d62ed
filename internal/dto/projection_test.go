package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/VetCareServices/vetclinic-api/internal/models"
)

func mustMarshal(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return m
}

func TestUserRead_NeverExposesCredentials(t *testing.T) {
	u := &models.User{
		ID:           1,
		Email:        "vet@clinic.fr",
		PasswordHash: "$2a$10$secret",
		Roles:        []string{models.RoleVeterinarian},
		FirstName:    "Ana",
		LastName:     "Ruiz",
	}

	b, err := json.Marshal(NewUserRead(u))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(b), "secret") || strings.Contains(string(b), "password") {
		t.Fatalf("credential leaked into projection: %s", b)
	}

	m := mustMarshal(t, NewUserRead(u))
	roles, ok := m["roles"].([]any)
	if !ok || len(roles) != 2 {
		t.Fatalf("expected stored role plus base role, got %v", m["roles"])
	}
}

func TestAnimalDetail_ExpansionStopsAtDepthOne(t *testing.T) {
	owner := &models.Client{ID: 2, FirstName: "Marc", Email: "marc@example.com"}
	a := &models.Animal{ID: 5, Name: "Milo", Species: "dog"}
	owner.AddAnimal(a)
	a.AddAppointment(&models.Appointment{ID: 9, Reason: "vaccination", Status: "scheduled"})

	m := mustMarshal(t, NewAnimalDetail(a))

	apps, ok := m["appointments"].([]any)
	if !ok || len(apps) != 1 {
		t.Fatalf("expected 1 appointment, got %v", m["appointments"])
	}
	ap := apps[0].(map[string]any)
	if _, found := ap["animal"]; found {
		t.Fatalf("embedded appointment expanded its own animal: %v", ap)
	}
	if _, found := ap["treatments"]; found {
		t.Fatalf("embedded appointment expanded treatments: %v", ap)
	}

	ownerOut, ok := m["owner"].(map[string]any)
	if !ok {
		t.Fatalf("owner summary missing")
	}
	if _, found := ownerOut["email"]; found {
		t.Fatalf("owner summary carries contact fields: %v", ownerOut)
	}
	if _, found := ownerOut["animals"]; found {
		t.Fatalf("owner summary expanded its animals: %v", ownerOut)
	}
}

func TestClientDetail_AnimalsAreSummaries(t *testing.T) {
	c := &models.Client{ID: 1, FirstName: "Marc"}
	c.AddAnimal(&models.Animal{ID: 3, Name: "Rex", Species: "dog"})

	m := mustMarshal(t, NewClientDetail(c))

	animals, ok := m["animals"].([]any)
	if !ok || len(animals) != 1 {
		t.Fatalf("expected 1 animal, got %v", m["animals"])
	}
	a := animals[0].(map[string]any)
	if _, found := a["owner"]; found {
		t.Fatalf("animal summary points back to owner: %v", a)
	}
	if _, found := a["appointments"]; found {
		t.Fatalf("animal summary expanded appointments: %v", a)
	}
}

func TestAppointmentDetail_TreatmentsAreFullProjections(t *testing.T) {
	ap := &models.Appointment{
		ID:              1,
		AppointmentDate: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Reason:          "checkup",
		Status:          "scheduled",
	}
	ap.AddTreatment(&models.Treatment{
		ID:          2,
		Name:        "Rabies vaccine",
		Description: "Annual rabies booster",
		Price:       40,
		DurationMin: 15,
	})

	m := mustMarshal(t, NewAppointmentDetail(ap))

	treatments, ok := m["treatments"].([]any)
	if !ok || len(treatments) != 1 {
		t.Fatalf("expected 1 treatment, got %v", m["treatments"])
	}
	tr := treatments[0].(map[string]any)
	if _, found := tr["description"]; !found {
		t.Fatalf("detail projection must include the description: %v", tr)
	}

	// the summary form used by the read projection drops the description
	read := mustMarshal(t, NewAppointmentRead(ap))
	tr = read["treatments"].([]any)[0].(map[string]any)
	if _, found := tr["description"]; found {
		t.Fatalf("summary projection must omit the description: %v", tr)
	}
}
