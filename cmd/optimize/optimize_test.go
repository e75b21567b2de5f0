package main

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s default %v, config has %v", spec.Name, spec.Default, got[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	values := []float64{1000, -5, 10, 3.5, 2}
	pv.ApplyToConfig(cfg, values)

	if cfg.Radii.Detection != 250 {
		t.Errorf("detection = %v, want clamped 250", cfg.Radii.Detection)
	}
	if cfg.Radii.Conversion != 5 {
		t.Errorf("conversion = %v, want clamped 5", cfg.Radii.Conversion)
	}
	if cfg.Radii.Repulsion != 10 || cfg.Movement.Speed != 3.5 {
		t.Errorf("repulsion/speed = %v/%v, want 10/3.5", cfg.Radii.Repulsion, cfg.Movement.Speed)
	}
	if cfg.Movement.Jitter != 1 {
		t.Errorf("jitter = %v, want clamped 1", cfg.Movement.Jitter)
	}

	back := pv.ExtractFromConfig(cfg)
	if len(back) != pv.Dim() {
		t.Fatalf("extracted %d values, want %d", len(back), pv.Dim())
	}
}

func TestEvaluateUsesTicksToMonoculture(t *testing.T) {
	// One kind only: every seed ends on the first tick.
	cfg, err := config.Parse([]byte("population: {rock: 6, paper: 0, scissors: 0}"))
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 100, []int64{1, 2, 3}, cfg)

	fitness := fe.Evaluate(pv.DefaultVector())
	if fitness != -1 {
		t.Errorf("fitness = %v, want -1", fitness)
	}
	if s := fe.Last(); s.DecidedFrac != 1 || s.MeanTicks != 1 {
		t.Errorf("summary = %+v", s)
	}
}

func TestEvaluateCapsRuns(t *testing.T) {
	cfg, err := config.Parse([]byte("population: {rock: 3, paper: 3, scissors: 3}"))
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 50, []int64{1, 2}, cfg)

	fitness := fe.Evaluate(pv.DefaultVector())
	if fitness > -1 || fitness < -50 {
		t.Errorf("fitness = %v, want within [-50, -1]", fitness)
	}
	s := fe.Last()
	if s.MeanTicks != -fitness {
		t.Errorf("mean ticks %v does not match fitness %v", s.MeanTicks, fitness)
	}
	if s.Balance <= 0 || s.Balance > 1 {
		t.Errorf("balance = %v, want in (0, 1]", s.Balance)
	}
}

func TestEvaluatorKeepsBest(t *testing.T) {
	cfg, err := config.Parse([]byte("population: {rock: 6, paper: 0, scissors: 0}"))
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 100, []int64{1}, cfg)

	if _, params := fe.Best(); params != nil {
		t.Fatalf("Best() before any evaluation returned params %v", params)
	}

	// Out-of-range values are recorded as the clamped values actually run.
	x := []float64{1000, -5, 10, 3.5, 2}
	fitness := fe.Evaluate(x)

	best, params := fe.Best()
	if best != fitness {
		t.Errorf("best fitness = %v, want %v", best, fitness)
	}
	want := pv.Clamp(x)
	for i := range want {
		if params[i] != want[i] {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, params[i], want[i])
		}
	}
}

func TestDefaultPopulation(t *testing.T) {
	tests := []struct {
		dim, want int
	}{
		{1, 4},
		{5, 8},
		{10, 10},
		{100, 17},
	}
	for _, tt := range tests {
		if got := defaultPopulation(tt.dim); got != tt.want {
			t.Errorf("defaultPopulation(%d) = %d, want %d", tt.dim, got, tt.want)
		}
	}
}

func TestBalance(t *testing.T) {
	even := telemetry.WindowStats{Diversity: math.Log(3)}
	mono := telemetry.WindowStats{Diversity: 0}

	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		want    float64
	}{
		{"none", nil, 0},
		{"even", []telemetry.WindowStats{even, even}, 1},
		{"half", []telemetry.WindowStats{even, mono}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := balance(tt.windows); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("balance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Second, "1m30s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h02m03s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
