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

// ExchangeModule registers the service exchange routes. Every mutation goes
// through RequirePermission; handlers contain no capability checks of their own.
type ExchangeModule struct {
	Handler *handlers.ExchangeHandler
	JWT     *helpers.JWTManager
	Users   repo.UserRepository
}

func NewExchangeModule(h *handlers.ExchangeHandler, jwt *helpers.JWTManager, users repo.UserRepository) *ExchangeModule {
	return &ExchangeModule{Handler: h, JWT: jwt, Users: users}
}

func (m *ExchangeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT, m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/services/requests", m.Handler.ListRequests)
		auth.GET("/services/offers", m.Handler.ListOffers)

		auth.POST("/services/requests",
			middleware.RequirePermission(access.CapCreateServiceRequests), m.Handler.CreateRequest)
		auth.POST("/services/offers",
			middleware.RequirePermission(access.CapCreateServiceOffers), m.Handler.CreateOffer)

		auth.POST("/services/requests/:id/apply",
			middleware.RequirePermission(access.CapApplyToServiceRequests), m.Handler.ApplyToRequest)
		auth.POST("/services/offers/:id/apply",
			middleware.RequirePermission(access.CapApplyToServiceOffers), m.Handler.ApplyToOffer)

		// Owner check happens in the service layer.
		auth.GET("/services/requests/:id/applications", m.Handler.ListRequestApplications)
		auth.GET("/services/offers/:id/applications", m.Handler.ListOfferApplications)
	}
}
