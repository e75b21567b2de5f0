package game

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/telemetry"
)

func testConfig(t *testing.T, overrides string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(overrides))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	return cfg
}

func newHeadless(t *testing.T, cfg *config.Config, opts Options) *Game {
	t.Helper()
	opts.Headless = true
	opts.Config = cfg
	if opts.Seed == 0 && opts.Snapshot == nil {
		opts.Seed = 42
	}
	g := NewGameWithOptions(opts)
	t.Cleanup(g.Unload)
	return g
}

func runUntilDone(t *testing.T, g *Game, limit int) {
	t.Helper()
	for i := 0; i < limit && !g.Done(); i++ {
		g.UpdateHeadless()
	}
	if !g.Done() {
		t.Fatalf("game not done after %d updates (tick %d, counts %v)", limit, g.Tick(), g.Counts())
	}
}

func TestInitialPopulation(t *testing.T) {
	g := newHeadless(t, config.Default(), Options{})
	cfg := config.Default()

	agents := g.Population().Snapshot()
	if len(agents) != cfg.Derived.Total {
		t.Fatalf("spawned %d agents, want %d", len(agents), cfg.Derived.Total)
	}

	// Blocks of 50 in Rock, Paper, Scissors order.
	for i, a := range agents {
		want := components.Kinds[i/cfg.Population.Rock]
		if a.Kind != want {
			t.Fatalf("agent %d is %v, want %v", i, a.Kind, want)
		}
		if a.X != math.Trunc(a.X) || a.Y != math.Trunc(a.Y) {
			t.Errorf("agent %d at non-integer (%v, %v)", i, a.X, a.Y)
		}
		if a.X < 0 || a.X > cfg.Derived.WorldW || a.Y < 0 || a.Y > cfg.Derived.WorldH {
			t.Errorf("agent %d at (%v, %v) outside the field", i, a.X, a.Y)
		}
	}

	c := g.Counts()
	if c[components.KindRock] != 50 || c[components.KindPaper] != 50 || c[components.KindScissors] != 50 {
		t.Errorf("counts = %v, want 50 each", c)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := newHeadless(t, config.Default(), Options{Seed: 7})
	b := newHeadless(t, config.Default(), Options{Seed: 7})

	for i := 0; i < 120; i++ {
		a.UpdateHeadless()
		b.UpdateHeadless()
	}

	sa, sb := a.Population().Snapshot(), b.Population().Snapshot()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("agent %d diverged: %+v vs %+v", i, sa[i], sb[i])
		}
	}
}

func TestPopulationConservedByDriver(t *testing.T) {
	g := newHeadless(t, config.Default(), Options{StepsPerUpdate: 5})
	total := g.Counts().Total()

	for i := 0; i < 100 && !g.Over(); i++ {
		g.UpdateHeadless()
		if got := g.Counts().Total(); got != total {
			t.Fatalf("tick %d: total %d, want %d", g.Tick(), got, total)
		}
		if g.Population().Len() != total {
			t.Fatalf("population length changed to %d", g.Population().Len())
		}
	}
}

func TestSingleKindWinsOnFirstTick(t *testing.T) {
	cfg := testConfig(t, "population: {rock: 0, paper: 8, scissors: 0}")
	g := newHeadless(t, cfg, Options{StepsPerUpdate: 10})

	if _, ok := g.Winner(); ok {
		t.Fatal("winner decided before any step")
	}

	g.UpdateHeadless()

	k, ok := g.Winner()
	if !ok || k != components.KindPaper {
		t.Fatalf("Winner() = %v, %v; want paper, true", k, ok)
	}
	if g.Tick() != 1 {
		t.Errorf("stepping continued after the win: tick %d", g.Tick())
	}
	if !g.Done() {
		t.Error("headless game should be done without a hold")
	}
}

func TestMaxTicksCap(t *testing.T) {
	// Nothing is ever detected, so no kind can win.
	cfg := testConfig(t, "radii: {detection: 0, conversion: 0}")
	g := newHeadless(t, cfg, Options{MaxTicks: 25, StepsPerUpdate: 4})

	runUntilDone(t, g, 100)

	if g.Tick() != 25 {
		t.Errorf("stopped at tick %d, want 25", g.Tick())
	}
	if _, ok := g.Winner(); ok {
		t.Error("capped run should have no winner")
	}
	if r := g.Result(); r.Decided || r.Winner != "" {
		t.Errorf("result = %+v, want undecided", r)
	}
}

func TestConfigMaxTicksUsedByDefault(t *testing.T) {
	cfg := testConfig(t, "radii: {detection: 0}\nrun: {max_ticks: 12}")
	g := newHeadless(t, cfg, Options{})

	runUntilDone(t, g, 100)
	if g.Tick() != 12 {
		t.Errorf("stopped at tick %d, want 12", g.Tick())
	}
}

func TestStatsCallbackWindows(t *testing.T) {
	cfg := testConfig(t, "radii: {detection: 0}")
	var windows []telemetry.WindowStats
	g := newHeadless(t, cfg, Options{
		StatsWindowSec: 1,
		MaxTicks:       150,
		StatsCallback:  func(s telemetry.WindowStats) { windows = append(windows, s) },
	})

	runUntilDone(t, g, 1000)

	// Two full 60-tick windows, then the partial one flushed at the cap.
	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	ends := []int32{60, 120, 150}
	for i, w := range windows {
		if w.WindowEndTick != ends[i] {
			t.Errorf("window %d ends at %d, want %d", i, w.WindowEndTick, ends[i])
		}
		if w.Total() != 150 {
			t.Errorf("window %d total = %d, want 150", i, w.Total())
		}
	}
}

func TestFinalWindowNotFlushedTwice(t *testing.T) {
	cfg := testConfig(t, "radii: {detection: 0}")
	var windows int
	g := newHeadless(t, cfg, Options{
		StatsWindowSec: 1,
		MaxTicks:       120,
		StatsCallback:  func(telemetry.WindowStats) { windows++ },
	})

	runUntilDone(t, g, 1000)
	if windows != 2 {
		t.Errorf("got %d windows, want 2", windows)
	}
}

func TestOutputFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, "population: {rock: 4, paper: 0, scissors: 0}")
	g := newHeadless(t, cfg, Options{OutputDir: dir, Seed: 3})

	runUntilDone(t, g, 10)
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "result.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "result.json"))
	if err != nil {
		t.Fatal(err)
	}
	var r telemetry.Result
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatal(err)
	}
	if r.Winner != "rock" || !r.Decided || r.Rock != 4 || r.Seed != 3 || r.Ticks != 1 {
		t.Errorf("result = %+v", r)
	}
}

func TestResumeFromSnapshot(t *testing.T) {
	cfg := config.Default()
	g := newHeadless(t, cfg, Options{Seed: 11})
	for i := 0; i < 30; i++ {
		g.UpdateHeadless()
	}

	snap := g.createSnapshot(nil)
	path, err := telemetry.SaveSnapshot(snap, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := telemetry.LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}

	resumed := newHeadless(t, cfg, Options{Snapshot: loaded})
	if resumed.Tick() != 30 {
		t.Errorf("resumed at tick %d, want 30", resumed.Tick())
	}
	if resumed.Seed() != 11 {
		t.Errorf("resumed seed = %d, want the snapshot's 11", resumed.Seed())
	}
	if resumed.Counts() != g.Counts() {
		t.Errorf("counts = %v, want %v", resumed.Counts(), g.Counts())
	}

	want := g.Population().Snapshot()
	got := resumed.Population().Snapshot()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("agent %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	resumed.UpdateHeadless()
	if resumed.Tick() != 31 {
		t.Errorf("tick after one step = %d, want 31", resumed.Tick())
	}
}

func TestBookmarkSnapshots(t *testing.T) {
	dir := t.TempDir()
	// Rock holds 10 of 11 agents, so the first flushed window is a takeover
	// whether or not the lone scissors has been caught yet.
	cfg := testConfig(t, "population: {rock: 10, paper: 0, scissors: 1}\nworld: {width: 200, height: 200}")
	g := newHeadless(t, cfg, Options{SnapshotDir: dir, StatsWindowSec: 0.5, MaxTicks: 600})

	runUntilDone(t, g, 1000)

	matches, err := filepath.Glob(filepath.Join(dir, "snapshot_*_takeover.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("found %d takeover snapshots, want 1", len(matches))
	}

	snap, err := telemetry.LoadSnapshot(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if snap.Bookmark == nil || snap.Bookmark.Type != telemetry.BookmarkTakeover {
		t.Errorf("snapshot bookmark = %+v", snap.Bookmark)
	}
	if len(snap.Agents) != 11 {
		t.Errorf("snapshot has %d agents, want 11", len(snap.Agents))
	}
}
