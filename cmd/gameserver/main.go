package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/velrin/bestiago/internal/config"
	"github.com/velrin/bestiago/internal/data"
	"github.com/velrin/bestiago/internal/db"
	"github.com/velrin/bestiago/internal/game/battle"
	"github.com/velrin/bestiago/internal/model"
	"github.com/velrin/bestiago/internal/telemetry"
)

const GameConfigPath = "config/gameserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := GameConfigPath
	if p := os.Getenv("BESTIA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("bestiago server starting", "log_level", cfg.LogLevel)

	bal := config.DefaultBalance()
	if cfg.BalancePath != "" {
		bal, err = config.LoadBalance(cfg.BalancePath)
		if err != nil {
			return fmt.Errorf("loading balance config: %w", err)
		}
		slog.Info("balance overrides loaded", "path", cfg.BalancePath)
	}
	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServerName, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		if err := shutdownTracing(shCtx); err != nil {
			slog.Error("telemetry shutdown", "err", err)
		}
	}()

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if err := data.LoadTechniques(); err != nil {
		return fmt.Errorf("loading techniques: %w", err)
	}
	if err := data.LoadSpecies(); err != nil {
		return fmt.Errorf("loading species: %w", err)
	}
	if err := data.LoadItems(); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	slog.Info("game data loaded",
		"techniques", len(data.TechniqueTable),
		"species", len(data.SpeciesTable),
		"items", len(data.ItemTable))

	creatureRepo := db.NewCreatureRepository(database.Pool())
	roster := db.NewRosterService(database.Pool(), creatureRepo)

	battles := battle.NewManager(
		bal,
		time.Duration(cfg.SessionSweepSeconds)*time.Second,
		time.Duration(cfg.SessionIdleSeconds)*time.Second,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting battle session manager",
			"sweep_every", time.Duration(cfg.SessionSweepSeconds)*time.Second,
			"idle_after", time.Duration(cfg.SessionIdleSeconds)*time.Second)
		battles.Start()
		<-gctx.Done()
		battles.Stop()
		return nil
	})

	if cfg.AutosaveSeconds > 0 {
		g.Go(func() error {
			interval := time.Duration(cfg.AutosaveSeconds) * time.Second
			slog.Info("starting roster autosave loop", "interval", interval)
			runAutosave(gctx, battles, roster, interval)
			return nil
		})
	}

	slog.Info("bestiago server ready", "server", cfg.ServerName)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("bestiago server stopped")
	return nil
}

// runAutosave periodically persists every tamed creature participating in
// an active battle, so experience and technique unlocks earned mid-fight
// survive a crash. Wild creatures are skipped.
func runAutosave(ctx context.Context, battles *battle.Manager, roster *db.RosterService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			autosaveRosters(ctx, battles, roster)
		}
	}
}

func autosaveRosters(ctx context.Context, battles *battle.Manager, roster *db.RosterService) {
	byTamer := make(map[string][]*model.Creature)
	for _, sess := range battles.Sessions() {
		for _, c := range sess.Creatures() {
			if id := c.TamerID(); id != "" {
				byTamer[id] = append(byTamer[id], c)
			}
		}
	}
	for tamerID, creatures := range byTamer {
		if err := roster.SaveRoster(ctx, tamerID, creatures); err != nil {
			slog.Error("roster autosave failed", "tamer_id", tamerID, "err", err)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
