package game

import (
	"log/slog"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
	"github.com/pthm-cable/rps/telemetry"
)

// spawnInitialPopulation places each kind's agents at random integer
// coordinates in [0, width] x [0, height], one block per kind in Rock,
// Paper, Scissors order.
func (g *Game) spawnInitialPopulation() {
	cfg := g.cfg
	g.pop = systems.NewPopulation()

	initial := [components.NumKinds]int{
		components.KindRock:     cfg.Population.Rock,
		components.KindPaper:    cfg.Population.Paper,
		components.KindScissors: cfg.Population.Scissors,
	}
	w := int(cfg.Derived.WorldW)
	h := int(cfg.Derived.WorldH)

	for _, k := range components.Kinds {
		for i := 0; i < initial[k]; i++ {
			x := g.rng.Intn(w + 1)
			y := g.rng.Intn(h + 1)
			g.pop.Spawn(float64(x), float64(y), k)
		}
	}
}

// restoreSnapshot replaces spawning with a saved population and tick.
func (g *Game) restoreSnapshot(s *telemetry.Snapshot) {
	g.pop = s.Restore()
	g.tick = s.Tick
	g.lastFlushTick = s.Tick
	g.collector.StartAt(s.Tick)

	if s.WorldWidth != g.cfg.Derived.WorldW || s.WorldHeight != g.cfg.Derived.WorldH {
		slog.Warn("snapshot field size differs from config",
			"snapshot_w", s.WorldWidth, "snapshot_h", s.WorldHeight,
			"config_w", g.cfg.Derived.WorldW, "config_h", g.cfg.Derived.WorldH,
		)
	}
	slog.Info("snapshot loaded", "tick", s.Tick, "agents", g.pop.Len(), "seed", g.rngSeed)
}

// finish flushes the last partial window and writes the run result.
func (g *Game) finish() {
	g.flushTelemetry(true)

	r := g.Result()
	slog.Info("run finished", "result", r)
	if err := g.outputManager.WriteResult(r); err != nil {
		slog.Error("failed to write result", "error", err)
	}
}
