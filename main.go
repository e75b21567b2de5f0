package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/game"
	"github.com/pthm-cable/rps/telemetry"
)

// A resumed run keeps the snapshot's seed but not its position in the random
// stream, so it diverges from the uninterrupted run.
const loadSnapshotUsage = "Resume from a snapshot file (random stream restarts from the seed)"

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and result")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = use config)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	loadSnapshot := flag.String("load-snapshot", "", loadSnapshotUsage)
	hold := flag.Float64("hold", 0, "Seconds to keep the winner on screen (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	var snapshot *telemetry.Snapshot
	if *loadSnapshot != "" {
		s, err := telemetry.LoadSnapshot(*loadSnapshot)
		if err != nil {
			slog.Error("failed to load snapshot", "error", err)
			os.Exit(1)
		}
		snapshot = s
	}

	// Set up seed. A resumed run keeps the snapshot's seed unless overridden.
	rngSeed := *seed
	if rngSeed == 0 && snapshot == nil {
		rngSeed = time.Now().UnixNano()
	}

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	// Build game options
	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: statsWindowSec,
		SnapshotDir:    *snapshotDir,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		MaxTicks:       int32(*maxTicks),
		HoldSec:        *hold,
		Snapshot:       snapshot,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib window
		if *maxTicks == 0 && cfg.Run.MaxTicks == 0 {
			slog.Warn("headless run has no tick cap; a run that never reaches a monoculture will not stop")
		}

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", g.Seed(),
			"stats_window", statsWindowSec,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for !g.Done() {
			g.UpdateHeadless()
		}
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Rock Paper Scissors")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.Done() {
		g.Update()
		g.Draw()
	}
}
