// Package main provides the entry point for the Courtside API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/api"
	"github.com/yourusername/courtside/internal/cache"
	"github.com/yourusername/courtside/internal/config"
	"github.com/yourusername/courtside/internal/database"
	"github.com/yourusername/courtside/internal/datasource"
	"github.com/yourusername/courtside/internal/ensemble"
	"github.com/yourusername/courtside/internal/gamelog"
	"github.com/yourusername/courtside/internal/health"
	"github.com/yourusername/courtside/internal/logger"
	"github.com/yourusername/courtside/internal/metrics"
	"github.com/yourusername/courtside/internal/players"
	"github.com/yourusername/courtside/internal/repository"
	"github.com/yourusername/courtside/internal/scheduler"
	"github.com/yourusername/courtside/internal/service"
	"github.com/yourusername/courtside/internal/staking"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     version,
	}).Info("Courtside API server starting")

	// Initialize metrics registry
	metrics.InitRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	appLog.Info("Database connection established")

	// Load the model bundle
	var bundle *ensemble.Bundle
	if cfg.Prediction.ModelArtifactPath != "" {
		bundle, err = ensemble.LoadBundleFromFile(cfg.Prediction.ModelArtifactPath)
	} else {
		bundle, err = ensemble.LoadDefaultBundle()
	}
	if err != nil {
		appLog.WithError(err).Fatal("Failed to load model bundle")
	}
	appLog.WithFields(logrus.Fields{
		"version":  bundle.Version(),
		"members":  len(bundle.Members()),
		"degraded": bundle.Degraded(),
	}).Info("Model bundle loaded")

	// Initialize repositories
	projectRepo := repository.NewPostgresProjectRepository(db)
	eventRepo := repository.NewPostgresEventRepository(db)

	// Initialize upstream game-log source
	httpCfg := datasource.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.DataSource.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.DataSource.MaxRetries
	httpCfg.RateLimit = cfg.DataSource.RateLimit
	httpClient := datasource.NewRateLimitedHTTPClient(httpCfg, nil)
	defer httpClient.Close()

	source := datasource.NewBasketballReferenceSource(cfg.DataSource.BaseURL, httpClient, appLog)

	// Initialize services
	predCache := cache.NewPredictionCache(
		time.Duration(cfg.Prediction.CacheTTLSeconds)*time.Second,
		cfg.Prediction.CacheMaxSize,
	)
	predictor := ensemble.NewPredictor(bundle, cfg.Prediction.MinGames, appLog)

	predictionSvc := service.NewPredictionService(gamelog.NewParser(), predictor, predCache, appLog)
	stakingSvc := service.NewStakingService(staking.NewEngine(appLog), appLog)
	projectSvc := service.NewProjectService(projectRepo, eventRepo, appLog)
	playerSvc := service.NewPlayerService(players.NewDefaultRegistry(), source, appLog)

	if err := projectSvc.SyncActiveGauge(ctx); err != nil {
		appLog.WithError(err).Warn("Failed to sync active-projects gauge")
	}

	// Start health check server
	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     version,
		Port:        strconv.Itoa(cfg.Health.Port),
		Logger:      appLog,
		Checkers: []health.Checker{
			health.CheckerFunc{CheckName: "database", Fn: db.Ping},
		},
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}

	// Start metrics server
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle(cfg.Metrics.Path, metrics.Handler())
			addr := ":" + strconv.Itoa(cfg.Metrics.Port)
			appLog.WithField("addr", addr).Info("Metrics server starting")
			if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
				appLog.WithError(err).Error("Metrics server error")
			}
		}()
	}

	// Start the game-log refresh scheduler
	var refresher *scheduler.Scheduler
	if cfg.DataSource.Enabled && cfg.DataSource.RefreshSchedule != "" {
		refresher = scheduler.New(projectRepo, eventRepo, playerSvc, predictionSvc, cfg.DataSource.DefaultSeason, appLog)
		if err := refresher.ScheduleRefresh(cfg.DataSource.RefreshSchedule); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule game-log refresh")
		}
		refresher.Start()
	}

	// Build the API server
	handler := api.New(api.Config{
		Prediction:    predictionSvc,
		Staking:       stakingSvc,
		Projects:      projectSvc,
		Players:       playerSvc,
		DefaultSeason: cfg.DataSource.DefaultSeason,
		Logger:        appLog,
	})

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      api.NewRouter(handler, cfg.Server.CORSAllowedOrigins),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.WithField("addr", server.Addr).Info("API server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("API server error")
		}
	}()

	healthServer.SetReady(true)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)
	if refresher != nil {
		refresher.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("API server shutdown error")
	}

	cancel()
	appLog.Info("Courtside API server shut down successfully")
}
