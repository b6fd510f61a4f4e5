package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garden-planner-backend/internal/api/routes"
	"garden-planner-backend/internal/companion"
	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/database"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "garden-planner-backend/docs" // This is needed for swag
)

//	@title			Garden Planner Backend API
//	@version		1.0
//	@description	Builds companion planting lists for a square garden and lays the plants out on a grid.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Configure(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, db, err := buildSource(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize companion dataset source:", err)
	}

	store := companion.NewStore(source)
	stats, err := store.Reload(ctx)
	if err != nil {
		logrus.Fatal("Failed to load companion dataset:", err)
	}
	logrus.WithFields(logrus.Fields{
		"source":  source.Describe(),
		"edges":   stats.Edges,
		"skipped": stats.Skipped,
		"plants":  stats.Plants,
	}).Info("Companion dataset loaded")

	if cfg.CompanionWatch && !cfg.UsesDatabase() {
		startWatcher(ctx, store, source.(companion.FileSource).Path, cfg.CompanionDebounce)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, store, db)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}

// buildSource returns the configured dataset source. The database handle is
// nil for the file source.
func buildSource(cfg *config.Config) (companion.Source, *gorm.DB, error) {
	if !cfg.UsesDatabase() {
		path, err := companion.ResolvePath(cfg.CompanionDatasetPath)
		if err != nil {
			return nil, nil, err
		}
		return companion.FileSource{Path: path}, nil, nil
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, nil, err
	}
	return companion.DatabaseSource{Repo: repository.NewCompanionEdgeRepository(db)}, db, nil
}

func startWatcher(ctx context.Context, store *companion.Store, path string, debounce time.Duration) {
	watcher, err := companion.NewWatcher(store, path, debounce)
	if err != nil {
		logrus.WithError(err).Warn("Dataset watcher disabled")
		return
	}
	go watcher.Run(ctx)
	logrus.WithField("path", path).Info("Watching companion dataset for changes")
}
