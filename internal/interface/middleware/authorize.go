package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navdrishti/platform-api/internal/access"
	"github.com/navdrishti/platform-api/pkg/response"
)

// RequirePermission is the single authorization funnel for protected routes.
// It consults the shared capability resolver against the account snapshot
// hydrated by Auth; the denial text in the 403 body comes from the same table
// the UI uses, so both surfaces stay in lockstep.
func RequirePermission(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFromContext(c)
		if u == nil {
			response.Error[any](c, http.StatusUnauthorized, access.ExplainDenial(capability, nil), nil)
			c.Abort()
			return
		}
		if !access.Has(u, capability) {
			response.Error[any](c, http.StatusForbidden, access.ExplainDenial(capability, u), gin.H{
				"permission": capability,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoute guards a role-scoped dashboard path using the static route
// allow-list. Paths absent from the list pass through untouched.
func RequireRoute(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFromContext(c)
		if u == nil {
			if !access.RouteAllowed("", path) {
				response.Error[any](c, http.StatusUnauthorized, "Please sign in to continue.", nil)
				c.Abort()
				return
			}
			c.Next()
			return
		}
		if !access.RouteAllowed(u.UserType, path) {
			response.Error[any](c, http.StatusForbidden, "This area is not available for your account type.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
