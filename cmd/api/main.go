package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ticketdesk/backend/internal/api/http"
	"github.com/ticketdesk/backend/internal/api/http/handlers"
	"github.com/ticketdesk/backend/internal/auth"
	"github.com/ticketdesk/backend/internal/config"
	"github.com/ticketdesk/backend/internal/events"
	"github.com/ticketdesk/backend/internal/notify"
	"github.com/ticketdesk/backend/internal/observability"
	"github.com/ticketdesk/backend/internal/persistence"
	"github.com/ticketdesk/backend/internal/repository"
	"github.com/ticketdesk/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)

	dispatcher := events.NewAsyncDispatcher(64, logger)
	defer dispatcher.Close()

	sender := notify.NewEmailSender(cfg.SMTP, logger)
	notificationService := service.NewNotificationService(dispatcher, sender, redis, logger)
	notificationService.RegisterHandlers()

	var statusPolicy service.StatusPolicy = service.PermissiveStatusPolicy{}
	if cfg.Tickets.StrictStatus {
		statusPolicy = service.StrictStatusPolicy{}
	}

	authService := service.NewAuthService(cfg.Auth, userRepo)
	userService := service.NewUserService(userRepo, logger)
	ticketService := service.NewTicketService(ticketRepo, statusPolicy, dispatcher, logger)
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		AssignmentRepo: assignmentRepo,
		TicketRepo:     ticketRepo,
		UserRepo:       userRepo,
		Dispatcher:     dispatcher,
	})

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService, userService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Assignments:    handlers.NewAssignmentsHandler(assignmentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
