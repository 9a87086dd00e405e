package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/ecocycle/ecocycle/internal/pkg/config"
	"github.com/ecocycle/ecocycle/internal/pkg/database"
	"github.com/ecocycle/ecocycle/internal/pkg/health"
	"github.com/ecocycle/ecocycle/internal/pkg/logger"
	"github.com/ecocycle/ecocycle/internal/pkg/middleware"
	nsqpkg "github.com/ecocycle/ecocycle/internal/pkg/nsq"
	"github.com/ecocycle/ecocycle/internal/pkg/server"
	"github.com/ecocycle/ecocycle/services/transactions/gateway"
	"github.com/ecocycle/ecocycle/services/transactions/handler"
	httpHandler "github.com/ecocycle/ecocycle/services/transactions/handler/http"
	"github.com/ecocycle/ecocycle/services/transactions/repository"
	"github.com/ecocycle/ecocycle/services/transactions/usecase"
)

func main() {
	appName := "transactions-service"
	configs := config.InitConfig("config/transactions.env")

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

	// Event publishing stays off unless NSQ is configured; completed
	// transactions are then only recorded, not announced.
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
	}

	transactionRepo := repository.NewTransactionRepository(configs, postgresClient.GetDB())
	transactionGW := gateway.NewTransactionGW(configs, producer)
	transactionUC := usecase.NewTransactionUC(configs, transactionRepo, transactionGW)

	transactionHandler := httpHandler.NewTransactionHandler(transactionUC)
	h := handler.NewHandler(transactionHandler, configs)

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
