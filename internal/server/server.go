// Package server assembles the mock API: store, services, handlers and middleware.
package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/mock-bank-api/internal/api/http"
	"github.com/spec-kit/mock-bank-api/internal/api/http/handlers"
	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/events"
	"github.com/spec-kit/mock-bank-api/internal/observability"
	"github.com/spec-kit/mock-bank-api/internal/repository"
	"github.com/spec-kit/mock-bank-api/internal/service"
	"github.com/spec-kit/mock-bank-api/internal/worker"
)

// Server is a fully wired mock API instance. Each instance owns its own store, so tests can
// run one per worker without sharing state.
type Server struct {
	App     *fiber.App
	Store   *repository.Store
	Metrics *observability.Metrics
}

// New builds a server from configuration.
func New(cfg config.AppConfig, logger *zap.Logger) *Server {
	var ids repository.IDGenerator = repository.UUIDGenerator{}
	if cfg.IDStrategy == config.IDStrategySequence {
		ids = repository.NewSequenceGenerator()
	}

	store := repository.NewStore(ids)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	userRepo := repository.NewUserRepository(store)
	txRepo := repository.NewTransactionRepository(store)

	userService := service.NewUserService(userRepo, dispatcher, logger)
	txService := service.NewTransactionService(service.TransactionDependencies{
		UserRepo:        userRepo,
		TransactionRepo: txRepo,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	adminService := service.NewAdminService(store, dispatcher, logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		DisableStartupMessage: true,
		Immutable:             true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.Name, cfg.Version, adminService),
		Users:        handlers.NewUsersHandler(userService),
		Transactions: handlers.NewTransactionsHandler(txService),
		Admin:        handlers.NewAdminHandler(adminService, metrics),
	})

	return &Server{App: app, Store: store, Metrics: metrics}
}
