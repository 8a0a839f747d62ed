package models

import "time"

const (
	RoleUser         = "USER"
	RoleAssistant    = "ASSISTANT"
	RoleVeterinarian = "VETERINARIAN"
	RoleDirector     = "DIRECTOR"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string   `gorm:"size:180;uniqueIndex;not null" json:"email"`
	Roles        []string `gorm:"serializer:json" json:"roles"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	AssistantAppointments    []*Appointment `gorm:"foreignKey:AssistantID" json:"-"`
	VeterinarianAppointments []*Appointment `gorm:"foreignKey:VeterinarianID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetRoles returns the stored roles plus the implicit USER role, deduplicated.
func (u *User) GetRoles() []string {
	roles := make([]string, 0, len(u.Roles)+1)
	seen := make(map[string]bool, len(u.Roles)+1)
	for _, r := range append(append([]string{}, u.Roles...), RoleUser) {
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	return roles
}

func (u *User) HasRole(role string) bool {
	if role == RoleUser {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) AddAssistantAppointment(ap *Appointment) {
	for i := range u.AssistantAppointments {
		if u.AssistantAppointments[i] == ap {
			return
		}
	}
	u.AssistantAppointments = append(u.AssistantAppointments, ap)
	ap.AssistantID = u.ID
	ap.Assistant = u
}

func (u *User) RemoveAssistantAppointment(ap *Appointment) {
	for i := range u.AssistantAppointments {
		if u.AssistantAppointments[i] == ap {
			u.AssistantAppointments = append(u.AssistantAppointments[:i], u.AssistantAppointments[i+1:]...)
			if ap.Assistant == u {
				ap.Assistant = nil
				ap.AssistantID = 0
			}
			return
		}
	}
}

func (u *User) AddVeterinarianAppointment(ap *Appointment) {
	for i := range u.VeterinarianAppointments {
		if u.VeterinarianAppointments[i] == ap {
			return
		}
	}
	u.VeterinarianAppointments = append(u.VeterinarianAppointments, ap)
	ap.VeterinarianID = &u.ID
	ap.Veterinarian = u
}

func (u *User) RemoveVeterinarianAppointment(ap *Appointment) {
	for i := range u.VeterinarianAppointments {
		if u.VeterinarianAppointments[i] == ap {
			u.VeterinarianAppointments = append(u.VeterinarianAppointments[:i], u.VeterinarianAppointments[i+1:]...)
			if ap.Veterinarian == u {
				ap.Veterinarian = nil
				ap.VeterinarianID = nil
			}
			return
		}
	}
}
