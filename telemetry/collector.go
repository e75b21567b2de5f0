// Package telemetry tracks the struggle between kinds: window stats, bookmarks,
// snapshots, performance timing and run output.
package telemetry

import (
	"math"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Conversions in the current window, indexed by the converting kind
	conversions [components.NumKinds]int
	// Agents lost in the current window, indexed by their former kind
	losses [components.NumKinds]int

	// Per-tick counts sampled during the window
	samples [components.NumKinds][]float64

	totalConversions int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	c := &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
	for k := range c.samples {
		c.samples[k] = make([]float64, 0, ticksPerWindow)
	}
	return c
}

// RecordConversion records an agent of kind from becoming kind to.
func (c *Collector) RecordConversion(from, to components.Kind) {
	c.conversions[to]++
	c.losses[from]++
	c.totalConversions++
}

// Sample records the population counts for one tick.
func (c *Collector) Sample(counts systems.Counts) {
	for k, v := range counts {
		c.samples[k] = append(c.samples[k], float64(v))
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the counts at currentTick and resets the
// window counters.
func (c *Collector) Flush(currentTick int32, counts systems.Counts) WindowStats {
	rock, paper, scissors := components.KindRock, components.KindPaper, components.KindScissors

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Rock:     counts[rock],
		Paper:    counts[paper],
		Scissors: counts[scissors],

		RockConversions:     c.conversions[rock],
		PaperConversions:    c.conversions[paper],
		ScissorsConversions: c.conversions[scissors],
		Conversions:         c.conversions[rock] + c.conversions[paper] + c.conversions[scissors],

		Diversity:  Diversity(counts),
		AliveKinds: counts.Alive(),
	}
	stats.RockMean, stats.RockStd = ComputeCountStats(c.samples[rock])
	stats.PaperMean, stats.PaperStd = ComputeCountStats(c.samples[paper])
	stats.ScissorsMean, stats.ScissorsStd = ComputeCountStats(c.samples[scissors])

	// Reset for next window
	c.windowStartTick = currentTick
	c.conversions = [components.NumKinds]int{}
	c.losses = [components.NumKinds]int{}
	for k := range c.samples {
		c.samples[k] = c.samples[k][:0]
	}

	return stats
}

// Losses returns how many agents of kind k were converted away in the
// current window.
func (c *Collector) Losses(k components.Kind) int {
	return c.losses[k]
}

// TotalConversions returns the number of conversions since creation.
func (c *Collector) TotalConversions() int {
	return c.totalConversions
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// StartAt begins the first window at tick, for runs resumed from a snapshot.
func (c *Collector) StartAt(tick int32) {
	c.windowStartTick = tick
}
