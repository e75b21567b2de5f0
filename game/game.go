// Package game drives the simulation: it owns the population, runs the step
// at a fixed rate, detects the winner and feeds telemetry and the renderer.
package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/rps/camera"
	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/renderer"
	"github.com/pthm-cable/rps/systems"
	"github.com/pthm-cable/rps/telemetry"
	"github.com/pthm-cable/rps/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	SnapshotDir    string
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	MaxTicks       int32   // 0 = use config run.max_ticks
	HoldSec        float64 // 0 = use config display.winner_hold_sec

	// Config overrides the global config when set.
	Config *config.Config

	// Snapshot resumes from a saved state instead of spawning a fresh population.
	Snapshot *telemetry.Snapshot

	// StatsCallback receives every flushed window, for tools driving
	// headless runs.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete game state.
type Game struct {
	cfg     *config.Config
	rng     *systems.RandSource
	rngSeed int64

	pop    *systems.Population
	step   *systems.StepSystem
	counts systems.Counts

	// Render buffer, reused every frame
	agents []systems.AgentState

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
	maxTicks       int32
	headless       bool
	startTime      time.Time

	// Termination
	winner     components.Kind
	decided    bool
	capped     bool
	holdFrames int
	holdTotal  int

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool
	snapshotDir      string
	lastFlushTick    int32

	// Rendering, nil when headless
	camera   *camera.Camera
	field    *renderer.FieldBackground
	hud      *ui.HUD
	banner   *ui.WinnerBanner
	controls *ui.ControlsPanel

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. In graphical mode the raylib window must
// already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = int32(cfg.Run.MaxTicks)
	}
	seed := opts.Seed
	if seed == 0 && opts.Snapshot != nil {
		seed = opts.Snapshot.RNGSeed
	}

	rng := systems.NewRandSource(seed)

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		rngSeed:        seed,
		step:           systems.NewStepSystem(systems.ParamsFromConfig(cfg), rng),
		stepsPerUpdate: steps,
		maxTicks:       maxTicks,
		headless:       opts.Headless,
		startTime:      time.Now(),

		collector:        telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize, cfg.Bookmarks),
		statsCallback:    opts.StatsCallback,
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
	}

	if opts.Snapshot != nil {
		g.restoreSnapshot(opts.Snapshot)
	} else {
		g.spawnInitialPopulation()
	}
	g.counts = g.pop.Counts()

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !opts.Headless {
		holdSec := opts.HoldSec
		if holdSec <= 0 {
			holdSec = cfg.Display.WinnerHoldSec
		}
		g.holdTotal = int(holdSec * float64(cfg.Screen.TargetFPS))
		g.initRendering()
	}

	return g
}

// Update advances the game by one frame: input, then up to stepsPerUpdate
// ticks. Once the run is over it only counts down the winner hold.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.Over() {
		if g.holdFrames > 0 {
			g.holdFrames--
		}
		return
	}
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate && !g.Over(); i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate && !g.Over(); i++ {
		g.simulationStep()
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Counts returns the per-kind counts after the last step.
func (g *Game) Counts() systems.Counts {
	return g.counts
}

// Winner returns the winning kind once one kind holds the whole population.
func (g *Game) Winner() (components.Kind, bool) {
	return g.winner, g.decided
}

// Over reports whether the simulation has stopped stepping, either because a
// winner was decided or the tick cap was reached.
func (g *Game) Over() bool {
	return g.decided || g.capped
}

// Done reports whether the driver loop should exit: the run is over and the
// winner hold has elapsed.
func (g *Game) Done() bool {
	return g.Over() && g.holdFrames <= 0
}

// Paused reports whether stepping is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes stepping.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Population returns the agent store.
func (g *Game) Population() *systems.Population {
	return g.pop
}

// Seed returns the RNG seed the run was started with.
func (g *Game) Seed() int64 {
	return g.rngSeed
}

// Result summarises the run so far.
func (g *Game) Result() telemetry.Result {
	r := telemetry.NewResult(g.rngSeed, g.tick, g.cfg.Derived.DT, g.counts, g.collector.TotalConversions())
	r.WallTimeSec = time.Since(g.startTime).Seconds()
	return r
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.field != nil {
		g.field.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
