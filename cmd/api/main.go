package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/employee-directory/internal/api/http"
	"github.com/spec-kit/employee-directory/internal/api/http/handlers"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/observability"
	"github.com/spec-kit/employee-directory/internal/persistence"
	"github.com/spec-kit/employee-directory/internal/repository"
	"github.com/spec-kit/employee-directory/internal/service"
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
		if err := persistence.RunMigrations(pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	policy, err := auth.LoadPolicy(cfg.Auth.PolicyPath)
	if err != nil {
		logger.Fatal("failed to load access policy", zap.Error(err))
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	pool := pg.PoolHandle()
	accountRepo := repository.NewAccountRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	var redisPinger handlers.Pinger
	if ttl := cfg.Cache.EmployeesTTL(); ttl > 0 {
		redis := persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		employeeRepo = repository.NewCachedEmployeeRepository(employeeRepo, redis, ttl, logger)
		redisPinger = redis
	}

	metrics := observability.NewMetrics()

	authService := service.NewAuthService(accountRepo, tokens, logger)
	accountService := service.NewAccountService(accountRepo, cfg.Auth.BcryptCost, logger)
	employeeService := service.NewEmployeeService(employeeRepo, logger)
	jokeService := service.NewJokeService(service.NewHTTPJokeSource(cfg.Joke.URL, cfg.Joke.Timeout()), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	cookie := auth.CookieOptions{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Gate:      auth.NewGate(tokens, policy, cfg.Auth.CookieName, logger),
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redisPinger, metrics),
		Auth:      handlers.NewAuthHandler(authService, cookie),
		Accounts:  handlers.NewAccountsHandler(accountService),
		Employees: handlers.NewEmployeesHandler(employeeService),
		Jokes:     handlers.NewJokeHandler(jokeService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
