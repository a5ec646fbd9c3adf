//go:build wireinject
// +build wireinject

package di

import (
	"autocare/config"
	"autocare/infras/jwt"
	"autocare/infras/kafka"
	"autocare/infras/otel"
	"autocare/infras/postgres"
	"autocare/infras/redis"
	"autocare/permissions"
	"autocare/shared/cache"
	"autocare/transport/http"
	"autocare/transport/http/middleware"
	"autocare/transport/http/router"

	"github.com/google/wire"

	authService "autocare/internal/domains/auth/service"
	blogRepository "autocare/internal/domains/blog/repository"
	blogService "autocare/internal/domains/blog/service"
	bookingRepository "autocare/internal/domains/booking/repository"
	bookingService "autocare/internal/domains/booking/service"
	carServiceRepository "autocare/internal/domains/carservice/repository"
	carServiceService "autocare/internal/domains/carservice/service"
	contactRepository "autocare/internal/domains/contact/repository"
	contactService "autocare/internal/domains/contact/service"
	dashboardService "autocare/internal/domains/dashboard/service"
	userRepository "autocare/internal/domains/user/repository"
	userService "autocare/internal/domains/user/service"

	authHandler "autocare/internal/handlers/auth"
	blogHandler "autocare/internal/handlers/blog"
	bookingHandler "autocare/internal/handlers/booking"
	carServiceHandler "autocare/internal/handlers/carservice"
	contactHandler "autocare/internal/handlers/contact"
	dashboardHandler "autocare/internal/handlers/dashboard"
	userHandler "autocare/internal/handlers/user"
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
	wire.Bind(new(dashboardService.Pinger), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var carServiceDomain = wire.NewSet(
	carServiceRepository.New,
	carServiceService.New,
)

var blogDomain = wire.NewSet(
	blogRepository.New,
	blogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	carServiceDomain,
	blogDomain,
	bookingDomain,
	contactDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	carServiceHandler.New,
	blogHandler.New,
	bookingHandler.New,
	contactHandler.New,
	userHandler.New,
	dashboardHandler.New,
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
