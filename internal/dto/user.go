package dto

import "github.com/VetCareServices/vetclinic-api/internal/models"

// UserRead never includes any credential field.
type UserRead struct {
	ID        uint     `json:"id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
}

// UserDetail adds the appointments the user is involved in, depth one.
type UserDetail struct {
	UserRead
	AssistantAppointments    []AppointmentSummary `json:"assistant_appointments"`
	VeterinarianAppointments []AppointmentSummary `json:"veterinarian_appointments"`
}

type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewUserRead(u *models.User) UserRead {
	return UserRead{
		ID:        u.ID,
		Email:     u.Email,
		Roles:     u.GetRoles(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewUserDetail(u *models.User) UserDetail {
	d := UserDetail{
		UserRead:                 NewUserRead(u),
		AssistantAppointments:    make([]AppointmentSummary, 0, len(u.AssistantAppointments)),
		VeterinarianAppointments: make([]AppointmentSummary, 0, len(u.VeterinarianAppointments)),
	}
	for _, ap := range u.AssistantAppointments {
		d.AssistantAppointments = append(d.AssistantAppointments, NewAppointmentSummary(ap))
	}
	for _, ap := range u.VeterinarianAppointments {
		d.VeterinarianAppointments = append(d.VeterinarianAppointments, NewAppointmentSummary(ap))
	}
	return d
}

func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
