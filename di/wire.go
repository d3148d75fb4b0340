//go:build wireinject
// +build wireinject

package di

import (
	"garage/config"
	"garage/infras/jwt"
	"garage/infras/kafka"
	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/infras/redis"
	"garage/internal/events"
	"garage/internal/worker"
	"garage/permissions"
	"garage/shared/cache"
	"garage/transport/http"
	"garage/transport/http/middleware"
	"garage/transport/http/router"

	bookingHandler "garage/internal/handlers/booking"
	catalogHandler "garage/internal/handlers/catalog"
	scheduleHandler "garage/internal/handlers/schedule"

	bookingRepository "garage/internal/domains/booking/repository"
	bookingService "garage/internal/domains/booking/service"
	catalogRepository "garage/internal/domains/catalog/repository"
	catalogService "garage/internal/domains/catalog/service"
	historyRepository "garage/internal/domains/history/repository"
	scheduleRepository "garage/internal/domains/schedule/repository"
	scheduleService "garage/internal/domains/schedule/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewDispatcher,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	historyRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	scheduleDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	scheduleHandler.New,
	bookingHandler.New,
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

func InitializeReminderWorker() *worker.Reminder {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		events.NewDispatcher,
		bookingRepository.New,
		worker.NewReminder,
	)

	return &worker.Reminder{}
}
