package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/navdrishti/platform-api/internal/access"
	"github.com/navdrishti/platform-api/internal/container"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
	handlers "github.com/navdrishti/platform-api/internal/interface/http"
	"github.com/navdrishti/platform-api/internal/interface/middleware"
	"github.com/navdrishti/platform-api/pkg/helpers"
)

type MarketplaceModule struct {
	Handler *handlers.MarketplaceHandler
	JWT     *helpers.JWTManager
	Users   repo.UserRepository
}

func NewMarketplaceModule(h *handlers.MarketplaceHandler, jwt *helpers.JWTManager, users repo.UserRepository) *MarketplaceModule {
	return &MarketplaceModule{Handler: h, JWT: jwt, Users: users}
}

func (m *MarketplaceModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT, m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		browse := middleware.RequirePermission(access.CapAccessMarketplace)
		auth.GET("/marketplace/listings", browse, m.Handler.ListListings)
		auth.GET("/marketplace/listings/:id", browse, m.Handler.GetListing)
		// Search listings via Elasticsearch
		auth.GET("/marketplace/search", browse, m.Handler.Search)

		auth.POST("/marketplace/listings",
			middleware.RequirePermission(access.CapCreateMarketplaceListings), m.Handler.CreateListing)
		auth.POST("/marketplace/listings/:id/purchase",
			middleware.RequirePermission(access.CapPurchaseFromMarketplace), m.Handler.Purchase)
	}
}
