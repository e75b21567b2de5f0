package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Only the step phase does measurable work; count is entered and left
	// immediately, so the ordering below holds with a wide margin.
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		time.Sleep(5 * time.Millisecond)
		pc.StartPhase(PhaseCount)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration < 5*time.Millisecond {
		t.Errorf("average tick = %v, want at least 5ms", stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseStep] < 5*time.Millisecond {
		t.Errorf("step phase = %v, want at least 5ms", stats.PhaseAvg[PhaseStep])
	}
	if stats.PhaseAvg[PhaseTelemetry] != 0 {
		t.Error("telemetry phase never ran and should be zero")
	}
	if stats.PhaseAvg[PhaseCount] >= stats.PhaseAvg[PhaseStep] {
		t.Errorf("count phase %v should be shorter than step phase %v", stats.PhaseAvg[PhaseCount], stats.PhaseAvg[PhaseStep])
	}
	total := stats.PhasePct[PhaseStep] + stats.PhasePct[PhaseCount] + stats.PhasePct[PhaseTelemetry]
	if total > 100.0001 {
		t.Errorf("phase shares sum to %v%%, want at most 100%%", total)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 12; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseStep)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("expected min <= avg <= max, got %v %v %v", stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
	if stats.AvgTickDuration > 0 && stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Error("expected zero stats for empty collector")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70], got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	var s PerfStats
	s.AvgTickDuration = 1500 * time.Microsecond
	s.PhasePct[PhaseStep] = 90
	s.PhasePct[PhaseTelemetry] = 4

	row := s.ToCSV(600)
	if row.WindowEnd != 600 || row.AvgTickUS != 1500 {
		t.Errorf("row = %+v", row)
	}
	if row.StepPct != 90 || row.CountPct != 0 || row.TelemetryPct != 4 {
		t.Errorf("phase pct = %v/%v/%v, want 90/0/4", row.StepPct, row.CountPct, row.TelemetryPct)
	}
}

func TestPhaseString(t *testing.T) {
	for ph, want := range map[Phase]string{PhaseStep: "step", PhaseCount: "count", PhaseTelemetry: "telemetry", NumPhases: "unknown"} {
		if got := ph.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", ph, got, want)
		}
	}
}
