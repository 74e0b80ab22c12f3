package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/navdrishti/platform-api/internal/domain/entity"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
	"github.com/navdrishti/platform-api/pkg/helpers"
	"github.com/navdrishti/platform-api/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "authUser"
)

// Auth validates the access token, ensures an active session exists in Redis,
// and hydrates the full account snapshot into the Gin context. Authorization
// decisions downstream (RequirePermission, RequireRoute) read this snapshot;
// handlers never re-derive permission rules.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		// Session must still be live; a logout or rotation invalidates it.
		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		// Fresh snapshot per request: verification changes take effect
		// immediately, no staleness window.
		u, err := users.GetByID(claims.UserID)
		if err != nil || u == nil {
			response.Error[any](c, http.StatusUnauthorized, "account not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// UserFromContext returns the account snapshot hydrated by Auth, or nil.
func UserFromContext(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
