package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/navdrishti/platform-api/internal/access"
	"github.com/navdrishti/platform-api/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithUser(t *testing.T, u *entity.User, mw gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.GET("/t", func(c *gin.Context) {
		if u != nil {
			c.Set(CtxUserIDKey, u.ID)
			c.Set(CtxUserKey, u)
		}
		c.Next()
	}, mw, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequirePermissionUnauthenticated(t *testing.T) {
	w := performWithUser(t, nil, RequirePermission(access.CapCreatePosts))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "sign in")
}

func TestRequirePermissionDenied(t *testing.T) {
	u := &entity.User{
		ID:                 "u1",
		UserType:           entity.UserTypeIndividual,
		VerificationStatus: entity.VerificationVerified,
	}
	w := performWithUser(t, u, RequirePermission(access.CapCreateServiceRequests))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Only NGOs")
}

func TestRequirePermissionVerificationGate(t *testing.T) {
	u := &entity.User{
		ID:                 "u2",
		UserType:           entity.UserTypeNGO,
		VerificationStatus: entity.VerificationUnverified,
		EmailVerified:      true,
	}
	w := performWithUser(t, u, RequirePermission(access.CapCreateServiceRequests))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "NGO verification")
}

func TestRequirePermissionAllowed(t *testing.T) {
	u := &entity.User{
		ID:                 "u3",
		UserType:           entity.UserTypeNGO,
		VerificationStatus: entity.VerificationVerified,
		EmailVerified:      true,
	}
	w := performWithUser(t, u, RequirePermission(access.CapCreateServiceRequests))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRequireRouteWrongType(t *testing.T) {
	u := &entity.User{
		ID:                 "u4",
		UserType:           entity.UserTypeIndividual,
		VerificationStatus: entity.VerificationVerified,
	}
	w := performWithUser(t, u, RequireRoute("/ngos/dashboard"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRouteMatchingType(t *testing.T) {
	u := &entity.User{
		ID:                 "u5",
		UserType:           entity.UserTypeNGO,
		VerificationStatus: entity.VerificationUnverified,
	}
	w := performWithUser(t, u, RequireRoute("/ngos/dashboard"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRouteUnlistedOpen(t *testing.T) {
	w := performWithUser(t, nil, RequireRoute("/some/unlisted/route"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRouteGuardedNoUser(t *testing.T) {
	w := performWithUser(t, nil, RequireRoute("/ngos/dashboard"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
