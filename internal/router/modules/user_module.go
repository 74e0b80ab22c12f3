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

// Module wires account HTTP handlers and session middleware into routes
// Public: POST /api/register, POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET/PUT /api/profile, GET /api/permissions,
// GET /api/users/search, plus the role-scoped dashboard paths.
// All routes are registered under the given RouterGroup (usually /api)

type Module struct {
	Handler *handlers.UserHandler
	Perms   *handlers.PermissionHandler
	JWT     *helpers.JWTManager
	Users   repo.UserRepository
}

func New(h *handlers.UserHandler, p *handlers.PermissionHandler, jwt *helpers.JWTManager, users repo.UserRepository) *Module {
	return &Module{Handler: h, Perms: p, JWT: jwt, Users: users}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil) // 5 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)          // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)        // 60 req/min per IP

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	// Route access check works signed-out too: absent context means the
	// public answer.
	rg.GET("/permissions/route", m.Perms.CheckRoute)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT, m.Users))
	// Apply a softer per-IP limiter to all protected routes
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.GET("/permissions", m.Perms.Get)
		// Search users via Elasticsearch
		auth.GET("/users/search", m.Handler.Search)

		// Role-scoped dashboards share the permission summary payload.
		for _, path := range []string{"/ngos/dashboard", "/companies/dashboard", "/individuals/dashboard"} {
			auth.GET(path, middleware.RequireRoute(path), m.Perms.Get)
		}
	}
}
