package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List is director-only. Entries come back newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	caller := callerFrom(c)
	if caller == nil || !caller.HasRole(models.RoleDirector) {
		httperr.WriteError(c, httperr.PermissionError{
			Action:   "list",
			Resource: "audit_log",
		})
		return
	}

	page, perPage := pagination(c)

	query := h.db.Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := query.
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "could not list audit logs")
		return
	}

	httpresp.List(c, logs, page, perPage)
}
