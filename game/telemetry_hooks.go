package game

import (
	"log/slog"

	"github.com/pthm-cable/rps/telemetry"
)

// defaultSnapshotDir is used by the manual snapshot key when -snapshot-dir is unset.
const defaultSnapshotDir = "snapshots"

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
// force flushes a partial window, unless nothing happened since the last flush.
func (g *Game) flushTelemetry(force bool) {
	if force {
		if g.tick == g.lastFlushTick {
			return
		}
	} else if !g.collector.ShouldFlush(g.tick) {
		return
	}
	g.lastFlushTick = g.tick

	stats := g.collector.Flush(g.tick, g.counts)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}

		// Save snapshot on bookmark
		if g.snapshotDir != "" {
			g.saveSnapshot(g.snapshotDir, &bm)
		}
	}
}

// saveSnapshot creates and saves a snapshot to disk.
func (g *Game) saveSnapshot(dir string, bookmark *telemetry.Bookmark) {
	snapshot := g.createSnapshot(bookmark)

	path, err := telemetry.SaveSnapshot(snapshot, dir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", g.tick)
}

// createSnapshot builds a snapshot from the current state.
func (g *Game) createSnapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	snapshot := telemetry.NewSnapshot(g.pop, g.rngSeed, g.cfg.Derived.WorldW, g.cfg.Derived.WorldH, g.tick)
	if bookmark != nil {
		bm := *bookmark
		snapshot.Bookmark = &bm
	}
	return snapshot
}
