package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvmorais/daily-diet-api/internal/api"
	"github.com/dvmorais/daily-diet-api/internal/config"
	"github.com/dvmorais/daily-diet-api/internal/db"
	"github.com/dvmorais/daily-diet-api/internal/logger"
	"github.com/dvmorais/daily-diet-api/internal/metrics"
	"github.com/dvmorais/daily-diet-api/internal/repository/sqldb"
	"github.com/dvmorais/daily-diet-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer database.Close()

	// sqlite files start empty, so always bring them up to date; postgres
	// schemas are managed explicitly and only migrate when asked.
	if cfg.DatabaseClient == config.ClientSQLite || os.Getenv("APP_MIGRATE") == "true" {
		if err := db.Migrate(database, cfg); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := sqldb.NewRepositories(database)
	userSvc := services.NewUserService(repos.Users)
	foodSvc := services.NewFoodService(repos.Foods)

	metrics.Init()
	r := api.NewRouter(cfg, userSvc, foodSvc, repos.Users)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "database", cfg.DatabaseClient)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
