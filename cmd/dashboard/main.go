package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/oceanguardio/oceanguard/internal/adapter/httpapi"
	"github.com/oceanguardio/oceanguard/internal/config"
	"github.com/oceanguardio/oceanguard/internal/dashboard"
	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/geo"
	"github.com/oceanguardio/oceanguard/internal/markers"
	"github.com/oceanguardio/oceanguard/internal/observability"
	"github.com/oceanguardio/oceanguard/internal/persist"
	"github.com/oceanguardio/oceanguard/internal/session"
	"github.com/oceanguardio/oceanguard/internal/simulate"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	kv, err := persist.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open preference store", "error", err)
		os.Exit(1)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	logger.Info("random seed", "seed", seed)

	region := domain.Geo{Lat: cfg.RegionLat, Lon: cfg.RegionLon}

	ctrl := dashboard.New(dashboard.Deps{
		Clock:           clock,
		Logger:          logger,
		Metrics:         metrics,
		KV:              kv,
		Checker:         session.NewMockChecker(clock),
		Renderer:        &markers.LogRenderer{Logger: logger},
		Locator:         &geo.FixedLocator{Position: region},
		Rand:            rand.New(rand.NewSource(seed)),
		Region:          region,
		NotificationTTL: cfg.NotificationTTL,
		StartupDelay:    cfg.StartupDelay,
		NetworkLatency:  cfg.NetworkLatency,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl.Init(ctx)

	// The simulator and manual refresh share the draft pools, but each
	// side draws from its own source; rand.Rand is not goroutine safe.
	sim := simulate.New(ctrl, clock, rand.New(rand.NewSource(seed+1)), region, logger,
		simulate.WithInterval(cfg.SimulationInterval),
		simulate.WithTickHook(metrics.SimulatorTicks.Inc),
	)
	ctrl.SetRefreshSource(sim.RandomReportDraft)

	srv := httpapi.NewServer(cfg.HTTPAddr, ctrl, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go sim.Run(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	ctrl.Dispose()
	if err := kv.Close(); err != nil {
		logger.Error("preference store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
