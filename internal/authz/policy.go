package authz

import (
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type Action string

const (
	ActionList   Action = "list"
	ActionGet    Action = "get"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceClient      Resource = "client"
	ResourceAnimal      Resource = "animal"
	ResourceMedia       Resource = "media"
	ResourceTreatment   Resource = "treatment"
	ResourceAppointment Resource = "appointment"
	ResourceUser        Resource = "user"
)

// Caller is the authenticated identity a rule is evaluated against.
// A nil caller means an unauthenticated request.
type Caller struct {
	ID    uint
	Roles []string
}

// HasRole reports whether the caller carries the role. Every authenticated
// caller implicitly holds the base USER role.
func (c *Caller) HasRole(role string) bool { return c.hasRole(role) }

func (c *Caller) hasRole(role string) bool {
	if c == nil {
		return false
	}
	if role == models.RoleUser {
		return true
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// rule decides a single (action, resource) cell. record is the target entity
// for single-record operations, nil otherwise.
type rule func(c *Caller, record any) bool

func anyone(*Caller, any) bool { return true }

func roles(wanted ...string) rule {
	return func(c *Caller, _ any) bool {
		for _, w := range wanted {
			if c.hasRole(w) {
				return true
			}
		}
		return false
	}
}

var staff = roles(models.RoleAssistant, models.RoleVeterinarian, models.RoleDirector)

// assignedVeterinarian allows the veterinarian set on the appointment itself.
func assignedVeterinarian(c *Caller, record any) bool {
	if c == nil || !c.hasRole(models.RoleVeterinarian) {
		return false
	}
	ap, ok := record.(*models.Appointment)
	if !ok || ap.VeterinarianID == nil {
		return false
	}
	return *ap.VeterinarianID == c.ID
}

// self allows a user to act on their own account.
func self(c *Caller, record any) bool {
	if c == nil {
		return false
	}
	u, ok := record.(*models.User)
	return ok && u.ID == c.ID
}

func anyOf(rules ...rule) rule {
	return func(c *Caller, record any) bool {
		for _, r := range rules {
			if r(c, record) {
				return true
			}
		}
		return false
	}
}

// policy is the full access table. A missing cell means the operation is not
// permitted for anyone.
var policy = map[Resource]map[Action]rule{
	ResourceAnimal: {
		ActionList:   anyone,
		ActionGet:    anyone,
		ActionCreate: roles(models.RoleAssistant),
		ActionUpdate: roles(models.RoleAssistant),
	},
	ResourceClient: {
		ActionList:   staff,
		ActionGet:    staff,
		ActionCreate: roles(models.RoleAssistant),
		ActionUpdate: roles(models.RoleAssistant),
	},
	ResourceAppointment: {
		ActionList:   staff,
		ActionGet:    staff,
		ActionCreate: roles(models.RoleAssistant),
		ActionUpdate: anyOf(roles(models.RoleAssistant), assignedVeterinarian),
	},
	ResourceTreatment: {
		ActionList:   staff,
		ActionGet:    staff,
		ActionCreate: roles(models.RoleVeterinarian),
		ActionUpdate: roles(models.RoleVeterinarian),
		ActionDelete: roles(models.RoleVeterinarian),
	},
	ResourceMedia: {
		ActionGet:    anyone,
		ActionCreate: roles(models.RoleAssistant),
	},
	ResourceUser: {
		ActionList:   roles(models.RoleDirector),
		ActionGet:    anyOf(roles(models.RoleDirector), self),
		ActionCreate: anyone, // self-registration
		ActionUpdate: anyOf(roles(models.RoleDirector), self),
		ActionDelete: roles(models.RoleDirector),
	},
}

// Allow evaluates the policy for the caller. A denial is always an explicit
// PermissionError; it never silently filters fields.
func Allow(c *Caller, action Action, resource Resource, record any) error {
	actions, ok := policy[resource]
	if !ok {
		return httperr.PermissionError{Resource: string(resource), Action: string(action)}
	}
	r, ok := actions[action]
	if !ok || !r(c, record) {
		return httperr.PermissionError{Resource: string(resource), Action: string(action)}
	}
	return nil
}
