package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BonheurByiringiro/PACMAN-Game/config"
	"github.com/BonheurByiringiro/PACMAN-Game/game/agent"
	"github.com/BonheurByiringiro/PACMAN-Game/game/grid"
	"github.com/BonheurByiringiro/PACMAN-Game/game/search"
	"github.com/BonheurByiringiro/PACMAN-Game/game/sim"
	"github.com/BonheurByiringiro/PACMAN-Game/scheduler"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Sim.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	// ---- Grid ----
	g, err := grid.Load(cfg.Sim.GridFile)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	logger.Info("grid loaded",
		zap.String("file", cfg.Sim.GridFile),
		zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()),
		zap.Int("rewards", g.CountRewards()))

	// ---- Session ----
	algo, err := search.ParseAlgorithm(cfg.Collector.Algorithm)
	if err != nil {
		log.Fatalf("collector: %v", err)
	}
	strategy, err := agent.ParseStrategy(cfg.Collector.Strategy)
	if err != nil {
		log.Fatalf("collector: %v", err)
	}
	spawns := make([]sim.PursuerSpawn, 0, len(cfg.Pursuit.Spawns))
	for _, sp := range cfg.Pursuit.Spawns {
		spawns = append(spawns, sim.PursuerSpawn{
			Start:   grid.Position{Row: wrap(sp.Row, g.Rows()), Col: wrap(sp.Col, g.Cols())},
			Cadence: sp.Cadence,
		})
	}
	session, err := sim.New(g, sim.Options{
		CollectorStart:   grid.Position{Row: cfg.Collector.StartRow, Col: cfg.Collector.StartCol},
		CollectorCadence: cfg.Collector.Cadence,
		Algorithm:        algo,
		Strategy:         strategy,
		DangerRadius:     cfg.Collector.DangerRadius,
		RecalcEvery:      cfg.Collector.RecalcEvery,
		Difficulty:       cfg.Pursuit.Difficulty,
		Pursuers:         spawns,
		Seed:             cfg.Sim.Seed,
		MaxTicks:         cfg.Sim.MaxTicks,
	}, logger)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	// ---- Tick loop ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	sched.Every("sim_tick", time.Duration(cfg.Sim.TickMs)*time.Millisecond, session.Tick)
	if cfg.Sim.StatusS > 0 {
		sched.Every("status", time.Duration(cfg.Sim.StatusS)*time.Second, session.LogStatus)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-session.Done():
	case <-sig:
		logger.Info("interrupted")
	}
	logger.Info("exiting",
		zap.String("state", session.State().String()),
		zap.Int("ticks", session.Ticks()),
		zap.Int("score", session.Score()))
}

// wrap resolves negative spawn coordinates against the grid size, so -4
// means "4 from the far edge".
func wrap(v, size int) int {
	if v < 0 {
		return size + v
	}
	return v
}
