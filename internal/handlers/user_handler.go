package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, ad *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: ad}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	FirstName     string   `json:"first_name" binding:"required"`
	LastName      string   `json:"last_name" binding:"required"`
	Roles         []string `json:"roles"`
	PlainPassword string   `json:"plain_password" binding:"omitempty,min=6"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionList, authz.ResourceUser, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	page, perPage := pagination(c)

	var users []models.User
	if err := h.db.
		Order("id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "could not list users")
		return
	}

	out := make([]dto.UserRead, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserRead(&users[i]))
	}
	httpresp.List(c, out, page, perPage)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var user models.User
	if err := h.db.
		Preload("AssistantAppointments").
		Preload("VeterinarianAppointments").
		First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	if err := authz.Allow(callerFrom(c), authz.ActionGet, authz.ResourceUser, &user); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserDetail(&user))
}

// Update replaces the mutable fields wholesale. A blank plain_password keeps
// the current credential.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	if err := authz.Allow(callerFrom(c), authz.ActionUpdate, authz.ResourceUser, &user); err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, user.ID).
		Count(&count)
	if count > 0 {
		httperr.WriteError(c, httperr.ConflictError{Resource: "user", Field: "email"})
		return
	}

	user.Email = email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Roles = req.Roles

	if req.PlainPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.PlainPassword), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "could not hash password")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "could not update user")
		return
	}

	httpresp.OK(c, dto.NewUserRead(&user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	caller := callerFrom(c)

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	if err := authz.Allow(caller, authz.ActionDelete, authz.ResourceUser, &user); err != nil {
		httperr.WriteError(c, err)
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "could not delete user")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.Status(http.StatusNoContent)
}
