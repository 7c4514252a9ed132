package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"audit-service/internal/app/config"
	"audit-service/internal/app/delivery/http/middlewares"
	"audit-service/internal/app/delivery/http/routers"
	"audit-service/internal/app/drivers/database"
	"audit-service/internal/app/drivers/logger"
	"audit-service/internal/app/drivers/messaging"
	"audit-service/internal/app/services/core/audits"
	"audit-service/internal/app/services/core/auth"
	"audit-service/internal/app/services/core/samples"
	"audit-service/internal/app/services/core/templates"
	"audit-service/internal/app/services/shared/events"
	sharedRedis "audit-service/internal/app/services/shared/redis"
	"audit-service/internal/app/services/shared/session"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	eventPublisher, err := events.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.AuditCompletedQueue,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("failed to initialize event publisher", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Templates
	templateMongoRepository := templates.NewTemplateMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	templateUsecase := templates.NewTemplateUsecase(templateMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	templateController := templates.NewTemplateController(bootstrap.Logger, templateUsecase)

	// Audits
	auditMongoRepository := audits.NewAuditMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	auditUsecase := audits.NewAuditUsecase(auditMongoRepository, templateUsecase, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	auditController := audits.NewAuditController(bootstrap.Logger, auditUsecase)

	// Samples
	sampleUsecase := samples.NewSampleUsecase()
	sampleController := samples.NewSampleController(bootstrap.Logger, sampleUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		templateController,
		auditController,
		sampleController,
	)
}
