package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gridline/raceboard-backend/internal/api"
	events_service "github.com/gridline/raceboard-backend/internal/business/events"
	"github.com/gridline/raceboard-backend/internal/config"
	"github.com/gridline/raceboard-backend/internal/database"
	"github.com/gridline/raceboard-backend/internal/database/events"
	"github.com/gridline/raceboard-backend/internal/redis"
	"github.com/gridline/raceboard-backend/internal/worker"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	redisPool := redis.NewRedisPool(logger, config.RedisURL())
	snapshots := redis.NewReconciliationSnapshotRepository(redisPool, logger, config.SnapshotTTL())

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}
	eventsRepository := events.NewRepository()

	eventsService := events_service.NewService(db, logger, eventsRepository, config.EventFallbackDuration())

	reconciler := worker.NewReconciler(logger, eventsService, snapshots, config.ReconcileSchedule())
	if err := reconciler.Start(ctx); err != nil {
		logger.Fatalw("unable to start reconciler", "err", err)
	}

	api, err := api.NewApi(logger, eventsService, snapshots)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
