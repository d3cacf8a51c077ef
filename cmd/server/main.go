package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/logger"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	appCfg, err := config.LoadAppConfig()
	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load app config")
	}
	log = logger.New(appCfg.LogLevel, appCfg.LogFormat)
	if envErr != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load DB config")
	}

	ctx := context.Background()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, dbCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	jwtUtil := utils.NewJWTUtil(appCfg.JWTSecret, appCfg.JWTTTL)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	productRepo := repository.NewProductRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)
	employeeRepo := repository.NewEmployeeRepository(dbPool)
	catalogRepo := repository.NewCatalogRepository(dbPool)

	// --- Services ---
	services := handler.Services{
		Auth:    service.NewAuthService(userRepo, jwtUtil, appCfg.InitialAdminEmail),
		Users:   service.NewUserService(userRepo),
		Product: service.NewProductService(productRepo),
		Orders:  service.NewOrderService(orderRepo, employeeRepo, userRepo, service.NewRandomAssignment(nil)),
		Catalog: service.NewCatalogService(catalogRepo, employeeRepo),
	}

	gin.SetMode(appCfg.GinMode)
	router := handler.NewRouter(services, jwtUtil, dbPool, log)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + appCfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", appCfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
