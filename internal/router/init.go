package router

import (
	app "github.com/navdrishti/platform-api/internal/application"
	"github.com/navdrishti/platform-api/internal/container"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
	pginfra "github.com/navdrishti/platform-api/internal/infrastructure/postgres"
	handlers "github.com/navdrishti/platform-api/internal/interface/http"
	"github.com/navdrishti/platform-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repo.UserRepository
	Service *app.UserService
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := app.NewUserService(
		repo,
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESUsersIndex,
	)

	handler := handlers.NewUserHandler(
		service,
		container.GetJWT(),
		container.GetLogger(),
		container.GetConfig().CookieDomain,
		container.GetConfig().CookieSecure,
	)

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

func buildAuthHandler(users repo.UserRepository) *handlers.AuthHandler {
	service := app.NewVerificationService(
		users,
		container.GetRedis(),
		container.GetLogger(),
		container.GetConfig(),
		container.GetRabbitPub(),
	)
	return handlers.NewAuthHandler(service, container.GetLogger())
}

func buildExchangeHandler(users repo.UserRepository) *handlers.ExchangeHandler {
	serviceRepo := pginfra.NewServiceRepository(container.GetPGPool())
	service := app.NewExchangeService(
		serviceRepo,
		users,
		container.GetRabbitPub(),
		container.GetLogger(),
		container.GetConfig(),
	)
	return handlers.NewExchangeHandler(service, container.GetLogger())
}

func buildMarketplaceHandler() *handlers.MarketplaceHandler {
	listingRepo := pginfra.NewListingRepository(container.GetPGPool())
	service := app.NewMarketplaceService(
		listingRepo,
		container.GetLogger(),
		container.GetES(),
		container.GetConfig().ESListingsIndex,
	)
	return handlers.NewMarketplaceHandler(service, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	jwt := container.GetJWT()

	r.Add(modules.New(userDeps.Handler, handlers.NewPermissionHandler(), jwt, userDeps.Repo))
	r.Add(modules.NewAuthModule(buildAuthHandler(userDeps.Repo), jwt, userDeps.Repo))
	r.Add(modules.NewExchangeModule(buildExchangeHandler(userDeps.Repo), jwt, userDeps.Repo))
	r.Add(modules.NewMarketplaceModule(buildMarketplaceHandler(), jwt, userDeps.Repo))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
