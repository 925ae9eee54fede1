package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/iliyamo/gig-booking-dashboard/internal/config"
	"github.com/iliyamo/gig-booking-dashboard/internal/database"
	"github.com/iliyamo/gig-booking-dashboard/internal/handler"
	"github.com/iliyamo/gig-booking-dashboard/internal/logging"
	"github.com/iliyamo/gig-booking-dashboard/internal/middleware"
	"github.com/iliyamo/gig-booking-dashboard/internal/queue"
	"github.com/iliyamo/gig-booking-dashboard/internal/repository"
	"github.com/iliyamo/gig-booking-dashboard/internal/router"
	"github.com/iliyamo/gig-booking-dashboard/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable; response cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	users := repository.NewUserRepo(db)
	if cfg.BootstrapEmail != "" && cfg.BootstrapPass != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := users.EnsureAdmin(ctx, cfg.BootstrapEmail, cfg.BootstrapPass, cfg.BcryptCost)
		cancel()
		if err != nil {
			logger.Fatal("bootstrap admin", zap.Error(err))
		}
		logger.Info("bootstrap admin ready", zap.String("email", cfg.BootstrapEmail), zap.Bool("created", created))
	}

	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	queueCfg := config.LoadQueueConfig()
	consumer := queue.NewConsumer(queueCfg, cache, repository.NewAuditRepo(db), logger)
	publisher := service.NewPublisher(queueCfg, logger, consumer.Apply)

	bg, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go func() {
		if err := consumer.Run(bg); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("changes consumer stopped", zap.Error(err))
		}
	}()

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger.Named("http")))

	assignments := repository.NewAssignmentRepo(db)
	router.RegisterRoutes(e, db)
	router.RegisterAuth(e,
		handler.NewAuthHandler(cfg, users, repository.NewTokenRepo(db), logger.Named("auth")),
		cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger.Named("ratelimit")))
	router.RegisterAdmin(e,
		handler.NewAdminHandler(cfg, handler.AdminDeps{
			Customers:   repository.NewCustomerRepo(db),
			Venues:      repository.NewVenueRepo(db),
			Gigs:        repository.NewGigRepo(db),
			Assignments: assignments,
			DJs:         repository.NewDJRepo(db),
			Users:       users,
		}, publisher, logger.Named("admin")),
		cfg.JWTSecret, cache)
	router.RegisterDJ(e, handler.NewDJHandler(assignments, logger.Named("dj")), cfg.JWTSecret)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}).Handler(e),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	stopBackground()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
