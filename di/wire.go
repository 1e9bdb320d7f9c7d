//go:build wireinject
// +build wireinject

package di

import (
	"staybook/config"
	"staybook/infras/otel"
	bookingHandler "staybook/internal/handlers/booking"
	propertyHandler "staybook/internal/handlers/property"
	"staybook/transport/http"
	"staybook/transport/http/middleware"
	"staybook/transport/http/router"

	bookingRepository "staybook/internal/domains/booking/repository"
	bookingService "staybook/internal/domains/booking/service"
	propertyRepository "staybook/internal/domains/property/repository"
	propertyService "staybook/internal/domains/property/service"
	reviewRepository "staybook/internal/domains/review/repository"
	reviewService "staybook/internal/domains/review/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	reviewDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
