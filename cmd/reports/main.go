package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/peacelink/peacelink/internal/pkg/config"
	"github.com/peacelink/peacelink/internal/pkg/database"
	"github.com/peacelink/peacelink/internal/pkg/health"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/middleware"
	nrpkg "github.com/peacelink/peacelink/internal/pkg/newrelic"
	nsqpkg "github.com/peacelink/peacelink/internal/pkg/nsq"
	"github.com/peacelink/peacelink/internal/pkg/server"
	"github.com/peacelink/peacelink/services/reports/gateway"
	"github.com/peacelink/peacelink/services/reports/handler"
	httpHandler "github.com/peacelink/peacelink/services/reports/handler/http"
	"github.com/peacelink/peacelink/services/reports/repository"
	"github.com/peacelink/peacelink/services/reports/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "reports-service"
	configs := config.InitConfig("config/reports.env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize NSQ producer when event publishing is enabled
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		defer producer.Stop()
	}

	// Initialize repository
	reportRepo := repository.NewReportRepo(configs, postgresClient.GetDB())

	// Initialize Gateway
	reportGW := gateway.NewReportGW(producer)

	// Initialize UseCase
	reportUC := usecase.NewReportUC(reportRepo, reportGW, configs)

	// Handlers for HTTP
	reportHandler := httpHandler.NewReportHandler(reportUC)
	Handler := handler.NewHandler(reportHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, postgresClient.Ping)
	Handler.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.New(e, zapLogger, configs.Server.Port)
	if err := srv.Run(); err != nil {
		zapLogger.Fatal("Server stopped",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
