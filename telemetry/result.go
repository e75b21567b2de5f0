package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
)

// Result summarises a finished (or interrupted) run.
type Result struct {
	Seed        int64   `json:"seed"`
	Ticks       int32   `json:"ticks"`
	SimTimeSec  float64 `json:"sim_time_sec"`
	WallTimeSec float64 `json:"wall_time_sec"`

	// Winner is empty when the run stopped before one kind took the field.
	Winner  string `json:"winner,omitempty"`
	Decided bool   `json:"decided"`

	Rock     int `json:"rock"`
	Paper    int `json:"paper"`
	Scissors int `json:"scissors"`

	Conversions int `json:"conversions"`
}

// NewResult fills the population fields of a Result from counts.
func NewResult(seed int64, ticks int32, dt float64, counts systems.Counts, conversions int) Result {
	r := Result{
		Seed:        seed,
		Ticks:       ticks,
		SimTimeSec:  float64(ticks) * dt,
		Rock:        counts[components.KindRock],
		Paper:       counts[components.KindPaper],
		Scissors:    counts[components.KindScissors],
		Conversions: conversions,
	}
	if k, ok := counts.Winner(); ok {
		r.Winner = k.String()
		r.Decided = true
	}
	return r
}

// LogValue implements slog.LogValuer for structured logging.
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", r.Seed),
		slog.Int("ticks", int(r.Ticks)),
		slog.Float64("sim_time", r.SimTimeSec),
		slog.Float64("wall_time", r.WallTimeSec),
		slog.Bool("decided", r.Decided),
		slog.String("winner", r.Winner),
		slog.Int("rock", r.Rock),
		slog.Int("paper", r.Paper),
		slog.Int("scissors", r.Scissors),
		slog.Int("conversions", r.Conversions),
	)
}
