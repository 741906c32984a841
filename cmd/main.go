package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamcamp/internal/app"
	"teamcamp/internal/config"
	"teamcamp/internal/objectstore"
	"teamcamp/internal/storage"
	"teamcamp/internal/util/logger"
	_ "teamcamp/swagger" // swagger docs

	"github.com/gin-gonic/gin"
)

// @title TeamCamp Backend API
// @version 1.0
// @description Project management API: projects, tasks, members and files

// @host localhost:4010
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := storage.Connect(cfg.DatabaseDsn)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := storage.Close(db); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	if err := storage.Migrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	objects := objectstore.NewClient(cfg.StorageURL, cfg.StorageServiceKey, cfg.StorageBucket)

	application := app.New(db, objects, cfg, log)

	startServerWithGracefulShutdown(log, cfg, application.Router())
}

func startServerWithGracefulShutdown(log *slog.Logger, cfg *config.Config, engine *gin.Engine) {
	host := ""
	if cfg.EnvMode == config.EnvModeDevelopment {
		// localhost in dev avoids firewall prompts on each run
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":4010",
		Handler: engine,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}
