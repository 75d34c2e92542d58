package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/akgolfgroup/player-insights/internal/bounty"
	"github.com/akgolfgroup/player-insights/internal/insights"
	"github.com/akgolfgroup/player-insights/internal/journey"
	"github.com/akgolfgroup/player-insights/internal/repository"
	"github.com/akgolfgroup/player-insights/internal/skilldna"
	"github.com/akgolfgroup/player-insights/pkg/config"
	"github.com/akgolfgroup/player-insights/pkg/database"
	"github.com/akgolfgroup/player-insights/pkg/logger"
	"github.com/akgolfgroup/player-insights/pkg/metrics"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: insights <player-uuid>")
		os.Exit(2)
	}
	playerID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid player id %q: %v\n", os.Args[1], err)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	// Connect to database
	db, err := database.NewInsightsConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		log.Fatalf("Database health check failed: %v", err)
	}

	mgr := metrics.NewManager(prometheus.DefaultRegisterer, cfg.EnableMetrics)

	// Readers with circuit breakers
	readers := repository.BreakerReaders(repository.NewGormReaders(db), repository.BreakerSettings{
		Threshold: cfg.CircuitBreakerThreshold,
		Timeout:   cfg.CircuitBreakerTimeout,
	}, log)

	service := insights.NewService(
		journey.NewBuilder(readers.TestResults, cfg.SGHistoryLimit, cfg.SGRecentWindow),
		skilldna.NewBuilder(readers.TestResults, readers.Players, cfg.ProMatchLimit),
		bounty.NewEngine(),
		readers.BreakingPoints,
		mgr,
		time.Duration(cfg.InsightsTimeout)*time.Second,
	)

	result, err := service.GetInsights(context.Background(), playerID)
	if err != nil {
		log.Fatalf("Failed to build insights: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode insights: %v", err)
	}
}
