package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/game"
	"github.com/pthm-cable/rps/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu          sync.Mutex
	bestFitness float64
	bestParams  []float64   // clamped values behind bestFitness
	last        evalSummary // from the most recent Evaluate call
}

// evalSummary describes one evaluation across all seeds, for progress output.
type evalSummary struct {
	MeanTicks   float64
	DecidedFrac float64 // share of seeds that reached a monoculture
	Balance     float64 // mean three-way balance in [0, 1]
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 10.0, // 10 seconds per window
		bestFitness: math.Inf(1),
	}
}

// Last returns the summary of the most recent evaluation.
func (fe *FitnessEvaluator) Last() evalSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Best returns the lowest fitness seen so far and the clamped parameter
// values that produced it. params is nil before the first evaluation.
func (fe *FitnessEvaluator) Best() (fitness float64, params []float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestFitness, fe.bestParams
}

// runResult holds the results from a single simulation run.
type runResult struct {
	ticks       int32                   // ticks to monoculture, or maxTicks if capped
	decided     bool                    // a kind took the whole field
	windowStats []telemetry.WindowStats // collected via StatsCallback each window
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negative mean number of ticks before one kind holds the
// whole field: longer struggles score better. Runs are capped at maxTicks.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel; each run owns its own world.
	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	var summary evalSummary
	for _, r := range results {
		summary.MeanTicks += float64(r.ticks)
		summary.Balance += balance(r.windowStats)
		if r.decided {
			summary.DecidedFrac++
		}
	}
	n := float64(len(results))
	summary.MeanTicks /= n
	summary.Balance /= n
	summary.DecidedFrac /= n

	fitness := -summary.MeanTicks

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestParams = fe.params.Clamp(x)
	}
	fe.last = summary
	fe.mu.Unlock()

	return fitness
}

// runSimulation executes a single headless simulation run.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) *runResult {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}

	g := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: 64,
		MaxTicks:       fe.maxTicks,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	defer g.Unload()

	for !g.Done() {
		g.UpdateHeadless()
	}

	result.ticks = g.Tick()
	_, result.decided = g.Winner()
	return result
}

// balance scores how evenly the three kinds shared the field over a run, as
// the mean window diversity normalised by its maximum ln(3). Windows with a
// kind extinct still count, at their lower diversity.
func balance(windows []telemetry.WindowStats) float64 {
	if len(windows) == 0 {
		return 0
	}
	d := make([]float64, len(windows))
	for i, w := range windows {
		d[i] = w.Diversity / math.Log(3)
	}
	return clamp01(stat.Mean(d, nil))
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
