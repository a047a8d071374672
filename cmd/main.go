package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/config"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/db"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/router"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.Load(".env")

	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithError(err).Warn("invalid LOG_LEVEL, using info")
	}

	// Connect to MongoDB; without a database every store call reports "not configured"
	var (
		client   *mongo.Client
		database *mongo.Database
	)
	if cfg.DatabaseConfigured() {
		var err error
		client, database, err = db.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			logger.WithError(err).Error("Failed to create MongoDB client, running without database")
		}
	} else {
		logger.Warn("DATABASE_URL or DATABASE_NAME not set, running without database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Disconnect(ctx, client); err != nil {
			logger.WithError(err).Error("Error disconnecting from MongoDB")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.New(services.NewMongoStore(database), logger, reg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
}
