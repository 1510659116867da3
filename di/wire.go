//go:build wireinject
// +build wireinject

package di

import (
	"siesta/config"
	"siesta/infras/jwt"
	"siesta/infras/otel"
	"siesta/infras/redis"
	"siesta/infras/remote"
	"siesta/infras/s3"
	"siesta/infras/sqlite"
	"siesta/internal/netmon"
	"siesta/shared/cache"
	"siesta/transport/http"
	"siesta/transport/http/middleware"
	"siesta/transport/http/router"

	archiveService "siesta/internal/domains/archive/service"
	bookingRepository "siesta/internal/domains/booking/repository"
	bookingService "siesta/internal/domains/booking/service"
	pricingRepository "siesta/internal/domains/pricing/repository"
	pricingService "siesta/internal/domains/pricing/service"
	syncService "siesta/internal/domains/sync/service"

	bookingHandler "siesta/internal/handlers/booking"
	pricingHandler "siesta/internal/handlers/pricing"
	syncHandler "siesta/internal/handlers/sync"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	remote.New,
	netmon.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var syncDomain = wire.NewSet(
	syncService.New,
	providePusher,
)

var archiveDomain = wire.NewSet(
	archiveService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	pricingDomain,
	syncDomain,
	archiveDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	pricingHandler.New,
	syncHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
