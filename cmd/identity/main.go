package main

import (
	"context"
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
	"github.com/peacelink/peacelink/internal/pkg/roles"
	"github.com/peacelink/peacelink/internal/pkg/server"
	"github.com/peacelink/peacelink/services/identity"
	"github.com/peacelink/peacelink/services/identity/gateway"
	"github.com/peacelink/peacelink/services/identity/handler"
	httpHandler "github.com/peacelink/peacelink/services/identity/handler/http"
	"github.com/peacelink/peacelink/services/identity/navigation"
	"github.com/peacelink/peacelink/services/identity/repository"
	"github.com/peacelink/peacelink/services/identity/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "identity-service"
	configs := config.InitConfig("config/identity.env")

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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize repositories; the relational account store is opt-in.
	var accountRepo identity.AccountRepo
	if configs.Database.Driver == "postgres" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer postgresClient.Close()
		accountRepo = repository.NewPostgresAccountRepo(configs, postgresClient.GetDB())
	} else {
		accountRepo = repository.NewAccountRepo(configs, redisClient)
	}
	challengeRepo := repository.NewChallengeRepo(redisClient)

	// Initialize NSQ producer when event publishing is enabled
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		defer producer.Stop()
	}

	// Load role requirements table
	roleTable := roles.Defaults()
	if configs.Roles.FilePath != "" {
		roleTable, err = roles.Load(configs.Roles.FilePath)
		if err != nil {
			zapLogger.Fatal("Failed to load role requirements", zap.Error(err))
		}
	}

	// Initialize Gateway
	identityGW := gateway.NewIdentityGW(producer)

	// Initialize UseCase
	identityUC := usecase.NewUserUC(accountRepo, challengeRepo, identityGW, roleTable, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(identityUC)
	navHandler := httpHandler.NewNavigationHandler(navigation.NewRouter(identityUC.Sessions()))

	Handler := handler.NewHandler(authHandler, navHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx)
	})
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
