package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navdrishti/platform-api/internal/access"
	"github.com/navdrishti/platform-api/internal/domain/entity"
	"github.com/navdrishti/platform-api/internal/interface/middleware"
	"github.com/navdrishti/platform-api/pkg/response"
)

// PermissionHandler serves the capability record for the signed-in account so
// the front end can show and hide actions without duplicating the rules.
type PermissionHandler struct{}

func NewPermissionHandler() *PermissionHandler { return &PermissionHandler{} }

// Get returns the resolved capability record plus a human-readable reason for
// every capability the account does not hold.
func (h *PermissionHandler) Get(c *gin.Context) {
	u := middleware.UserFromContext(c)
	perms := access.Resolve(u)

	reasons := map[access.Capability]string{}
	for _, capability := range perms.Denied() {
		reasons[capability] = access.ExplainDenial(capability, u)
	}

	response.Success(c, http.StatusOK, gin.H{
		"permissions": perms,
		"denied":      reasons,
	}, "permissions", nil)
}

// CheckRoute reports whether the signed-in account may open a front-end path.
func (h *PermissionHandler) CheckRoute(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.Error[any](c, http.StatusBadRequest, "missing path", nil)
		return
	}
	u := middleware.UserFromContext(c)
	var t entity.UserType
	if u != nil {
		t = u.UserType
	}
	response.Success(c, http.StatusOK, gin.H{
		"path":    path,
		"allowed": access.RouteAllowed(t, path),
	}, "route access", nil)
}
