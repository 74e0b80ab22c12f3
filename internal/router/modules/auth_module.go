package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/navdrishti/platform-api/internal/container"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
	handlers "github.com/navdrishti/platform-api/internal/interface/http"
	"github.com/navdrishti/platform-api/internal/interface/middleware"
	"github.com/navdrishti/platform-api/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Users   repo.UserRepository
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, users repo.UserRepository) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	confirmLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetInitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/verify/email/confirm", confirmLimiter, m.Handler.EmailVerifyConfirm)
	rg.POST("/auth/reset/init", resetInitLimiter, m.Handler.ResetInit)
	rg.POST("/auth/reset/confirm", confirmLimiter, m.Handler.ResetConfirm)

	// Protected init endpoints with user-based rate limit
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT, m.Users))
	initLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil)
	{
		auth.POST("/auth/verify/email/init", initLimiter, m.Handler.EmailVerifyInit)
		auth.POST("/auth/verify/phone/init", initLimiter, m.Handler.PhoneVerifyInit)
		auth.POST("/auth/verify/phone/confirm", confirmLimiter, m.Handler.PhoneVerifyConfirm)
		auth.POST("/auth/verify/submit", initLimiter, m.Handler.SubmitReview)
	}
}
