//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/database"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/shared/cache"
	"frontdesk/shared/events"
	"frontdesk/shared/lock"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	storeRepository "frontdesk/internal/domains/store/repository"
	"frontdesk/internal/domains/store/snapshot"

	bookingService "frontdesk/internal/domains/booking/service"
	occupancyService "frontdesk/internal/domains/occupancy/service"
	reservationService "frontdesk/internal/domains/reservation/service"
	transferService "frontdesk/internal/domains/transfer/service"

	bookingHandler "frontdesk/internal/handlers/booking"
	dashboardHandler "frontdesk/internal/handlers/dashboard"
	reservationHandler "frontdesk/internal/handlers/reservation"
	roomHandler "frontdesk/internal/handlers/room"
	transferHandler "frontdesk/internal/handlers/transfer"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.New,
	events.New,
)

var storeDomain = wire.NewSet(
	storeRepository.New,
	snapshot.New,
)

var occupancyDomain = wire.NewSet(
	occupancyService.NewFloorPlan,
	occupancyService.New,
)

var domains = wire.NewSet(
	storeDomain,
	occupancyDomain,
	bookingService.New,
	transferService.New,
	reservationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dashboardHandler.New,
	roomHandler.New,
	bookingHandler.New,
	transferHandler.New,
	reservationHandler.New,
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
