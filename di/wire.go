//go:build wireinject
// +build wireinject

package di

import (
	"chrono/config"
	"chrono/infras/otel"
	"chrono/infras/redis"
	"chrono/shared/cache"
	"chrono/transport/http"
	"chrono/transport/http/middleware"
	"chrono/transport/http/router"

	clockService "chrono/internal/domains/clock/service"
	clockHandler "chrono/internal/handlers/clock"
	healthHandler "chrono/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var clockDomain = wire.NewSet(
	clockService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clockHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		clockDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
