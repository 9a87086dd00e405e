package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/config"
	"github.com/ecocycle/ecocycle/internal/pkg/database"
	"github.com/ecocycle/ecocycle/internal/pkg/health"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	"github.com/ecocycle/ecocycle/internal/pkg/server"
	"github.com/ecocycle/ecocycle/services/marketplace/handler"
	httpHandler "github.com/ecocycle/ecocycle/services/marketplace/handler/http"
	"github.com/ecocycle/ecocycle/services/marketplace/repository"
	"github.com/ecocycle/ecocycle/services/marketplace/usecase"
)

func main() {
	appName := "marketplace-service"
	configs := config.InitConfig("config/marketplace.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	listingRepo := repository.NewListingRepository(configs, postgresClient.GetDB())
	listingUC := usecase.NewListingUC(configs, listingRepo)

	listingHandler := httpHandler.NewListingHandler(listingUC)
	h := handler.NewHandler(listingHandler, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
