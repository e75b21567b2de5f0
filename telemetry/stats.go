package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	Rock     int `csv:"rock"`
	Paper    int `csv:"paper"`
	Scissors int `csv:"scissors"`

	// Conversions made by each kind during the window
	RockConversions     int `csv:"rock_conversions"`
	PaperConversions    int `csv:"paper_conversions"`
	ScissorsConversions int `csv:"scissors_conversions"`
	Conversions         int `csv:"conversions"`

	// Per-tick count distribution over the window
	RockMean     float64 `csv:"rock_mean"`
	RockStd      float64 `csv:"rock_std"`
	PaperMean    float64 `csv:"paper_mean"`
	PaperStd     float64 `csv:"paper_std"`
	ScissorsMean float64 `csv:"scissors_mean"`
	ScissorsStd  float64 `csv:"scissors_std"`

	// Shannon entropy of the kind shares at window end, in nats (max ln 3)
	Diversity  float64 `csv:"diversity"`
	AliveKinds int     `csv:"alive_kinds"`
}

// Counts returns the end-of-window population as a Counts value.
func (s WindowStats) Counts() systems.Counts {
	var c systems.Counts
	c[components.KindRock] = s.Rock
	c[components.KindPaper] = s.Paper
	c[components.KindScissors] = s.Scissors
	return c
}

// Total returns the end-of-window population size.
func (s WindowStats) Total() int {
	return s.Rock + s.Paper + s.Scissors
}

// MeanOf returns the window mean count for kind k.
func (s WindowStats) MeanOf(k components.Kind) float64 {
	switch k {
	case components.KindRock:
		return s.RockMean
	case components.KindPaper:
		return s.PaperMean
	case components.KindScissors:
		return s.ScissorsMean
	}
	return 0
}

// StdOf returns the window standard deviation of kind k's count.
func (s WindowStats) StdOf(k components.Kind) float64 {
	switch k {
	case components.KindRock:
		return s.RockStd
	case components.KindPaper:
		return s.PaperStd
	case components.KindScissors:
		return s.ScissorsStd
	}
	return 0
}

// Diversity returns the Shannon entropy of the kind shares in c.
// An empty population has zero diversity.
func Diversity(c systems.Counts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	p := make([]float64, len(c))
	for i, v := range c {
		p[i] = float64(v) / float64(total)
	}
	return stat.Entropy(p)
}

// ComputeCountStats returns the mean and sample standard deviation of a
// count series. Fewer than two samples give zero spread.
func ComputeCountStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("rock", s.Rock),
		slog.Int("paper", s.Paper),
		slog.Int("scissors", s.Scissors),
		slog.Int("rock_conversions", s.RockConversions),
		slog.Int("paper_conversions", s.PaperConversions),
		slog.Int("scissors_conversions", s.ScissorsConversions),
		slog.Int("conversions", s.Conversions),
		slog.Float64("rock_mean", s.RockMean),
		slog.Float64("rock_std", s.RockStd),
		slog.Float64("paper_mean", s.PaperMean),
		slog.Float64("paper_std", s.PaperStd),
		slog.Float64("scissors_mean", s.ScissorsMean),
		slog.Float64("scissors_std", s.ScissorsStd),
		slog.Float64("diversity", s.Diversity),
		slog.Int("alive_kinds", s.AliveKinds),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
