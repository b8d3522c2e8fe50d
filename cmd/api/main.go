package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fcamara/consultores-api/docs"
	httphandlers "github.com/fcamara/consultores-api/internal/handlers/http"
	"github.com/fcamara/consultores-api/internal/infrastructure/config"
	"github.com/fcamara/consultores-api/internal/infrastructure/i18n"
	"github.com/fcamara/consultores-api/internal/infrastructure/logging"
	"github.com/fcamara/consultores-api/internal/infrastructure/persistence/postgres"
	"github.com/fcamara/consultores-api/internal/infrastructure/security"
	"github.com/fcamara/consultores-api/internal/infrastructure/storage"
	"github.com/fcamara/consultores-api/internal/infrastructure/validation"
	"github.com/fcamara/consultores-api/internal/services"
)

// @title          Consultores API
// @version        1.0
// @description    Cadastro e perfil de consultores vinculados ao diretório de colaboradores.
// @BasePath       /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	envFile := flag.String("env-file", ".env", "arquivo .env opcional")
	flag.Parse()

	// Carregar configurações
	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level, os.Stdout)
	logger.Info("starting consultores api",
		"env", cfg.Env,
		"storage_driver", cfg.Storage.Driver,
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		os.Exit(1)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	avatarStorage, err := storage.New(context.Background(), &cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize avatar storage", "error", err)
		os.Exit(1)
	}

	// Repositories
	consultorRepo := postgres.NewConsultorRepository(db, cfg.Database.QueryTimeout)
	diretorioRepo := postgres.NewDiretorioRepository(db, cfg.Database.QueryTimeout)
	uow := postgres.NewUnitOfWork(db)

	// Services
	consultorService := services.NewConsultorService(
		consultorRepo,
		diretorioRepo,
		uow,
		avatarStorage,
		security.NewBcryptHasher(security.BcryptCost),
		validation.NewConsultorValidator(),
		logger,
	)

	// Handlers
	errorWriter := httphandlers.NewErrorWriter(logger)
	consultorHandler := httphandlers.NewConsultorHandler(consultorService, errorWriter)
	healthHandler := httphandlers.NewHealthHandler(httphandlers.PingerFunc(func(ctx context.Context) error {
		return postgres.Ping(ctx, db)
	}), cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if baseURL, err := url.Parse(cfg.Server.BaseURL); err == nil && baseURL.Host != "" {
		docs.SwaggerInfo.Host = baseURL.Host
	}

	routerCfg := httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
		I18n:           i18nService,
		Verifier:       security.NewJWTVerifier(cfg.JWT.Secret),
		Consultores:    consultorHandler,
		Health:         healthHandler,
		ErrorWriter:    errorWriter,
		Registry:       registry,
		Swagger:        !cfg.IsProduction(),
	}
	if disk, ok := avatarStorage.(*storage.DiskStore); ok {
		routerCfg.AvatarDir = disk.DataDir()
	}

	router := httphandlers.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
