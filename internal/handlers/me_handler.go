package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// Me returns the authenticated user's own profile.
func (h *MeHandler) Me(c *gin.Context) {
	caller := callerFrom(c)

	var user models.User
	if err := h.db.
		Preload("AssistantAppointments").
		Preload("VeterinarianAppointments").
		First(&user, caller.ID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	httpresp.OK(c, dto.NewUserDetail(&user))
}
