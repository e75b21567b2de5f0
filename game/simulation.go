package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/rps/telemetry"
)

// simulationStep runs a single simulation tick.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseStep)
	counts := g.step.Update(g.pop)
	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseCount)
	g.counts = counts
	for _, c := range g.step.Conversions() {
		g.collector.RecordConversion(c.From, c.To)
	}
	g.collector.Sample(counts)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	if g.checkTermination() {
		g.finish()
	} else {
		g.flushTelemetry(false)
	}

	g.perfCollector.EndTick()
}

// checkTermination decides the run after a step. It reports true exactly
// once, on the tick the run ends.
func (g *Game) checkTermination() bool {
	if k, ok := g.counts.Winner(); ok {
		g.winner = k
		g.decided = true
		g.holdFrames = g.holdTotal
		slog.Info("winner decided",
			"kind", k.String(),
			"tick", g.tick,
			"elapsed", time.Since(g.startTime).Round(time.Millisecond).String(),
		)
		return true
	}
	if g.maxTicks > 0 && g.tick >= g.maxTicks {
		g.capped = true
		slog.Info("max ticks reached", "tick", g.tick, "counts", g.counts)
		return true
	}
	return false
}
