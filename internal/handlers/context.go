package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/middleware"
)

// callerFrom rebuilds the policy caller from the auth middleware context.
// Returns nil on unauthenticated routes.
func callerFrom(c *gin.Context) *authz.Caller {
	idVal, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := idVal.(uint)
	if !ok {
		return nil
	}

	roles, _ := c.Get(middleware.ContextUserRoles)
	r, _ := roles.([]string)

	return &authz.Caller{ID: id, Roles: r}
}
