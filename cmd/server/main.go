package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/content"
	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/adapters/relay"
	"github.com/khoahotran/portfolio/internal/application/service"
	authUC "github.com/khoahotran/portfolio/internal/application/usecase/auth"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracing", err)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Content
	store := content.NewJSONStore(cfg.Content.Path, appLogger)
	if _, err := store.Load(context.Background()); err != nil {
		appLogger.Fatal("Cannot load portfolio content", err, zap.String("path", cfg.Content.Path))
	}
	aggregator := experience.NewAggregator(time.Now)

	// Services
	images, err := media_storage.NewImageResolver(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init image resolver", err)
	}

	formRelay, err := relay.NewPageclipRelay(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init form relay", err)
	}

	lockStore, closeLockStore, err := persistence.NewLockStore(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init submission lock store", err)
	}
	defer closeLockStore()
	submissionLock := contact.NewLock(lockStore)

	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, contact messages will not be archived")
	}

	// Use Cases
	now := time.Now
	handlers := httpAdapter.Handlers{
		Portfolio: httpAdapter.NewPortfolioHandler(
			portfolioUC.NewGetPortfolioUseCase(store, aggregator, images),
			experienceUC.NewGetTimelineUseCase(store, aggregator),
			skillUC.NewListSkillsUseCase(store),
		),
		Project: httpAdapter.NewProjectHandler(
			projectUC.NewListProjectsUseCase(store, images),
			projectUC.NewGetProjectUseCase(store, images),
		),
		RSS: httpAdapter.NewRSSHandler(projectUC.NewRSSUseCase(store, cfg.App.SiteURL, now, appLogger), appLogger),
	}

	submitUseCase := contactUC.NewSubmitContactUseCase(submissionLock, formRelay, publisher, cfg.Pageclip.FormName, now, appLogger)
	statusUseCase := contactUC.NewContactStatusUseCase(submissionLock, formRelay, cfg.Pageclip.FormName)

	// Admin area needs Postgres
	var listMessagesUseCase *contactUC.ListMessagesUseCase
	if cfg.DB.DSN != "" {
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Postgres", err)
		}
		defer dbPool.Close()

		userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
		contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
		jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

		listMessagesUseCase = contactUC.NewListMessagesUseCase(contactRepo)
		handlers.Auth = httpAdapter.NewAuthHandler(authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger))
		handlers.JWT = jwtSvc
	} else {
		appLogger.Warn("DB_DSN not set, admin routes disabled")
	}
	handlers.Contact = httpAdapter.NewContactHandler(submitUseCase, statusUseCase, listMessagesUseCase)

	router := httpAdapter.NewRouter(handlers, cfg.App.Env == "production", appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		appLogger.Error("Failed to flush traces", err)
	}
}
