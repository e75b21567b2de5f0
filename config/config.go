// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Movement   MovementConfig   `yaml:"movement"`
	Radii      RadiiConfig      `yaml:"radii"`
	Run        RunConfig        `yaml:"run"`
	Display    DisplayConfig    `yaml:"display"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the field dimensions agents move in.
// The field can be larger than the window; the camera scales it to fit.
type WorldConfig struct {
	Width  int `yaml:"width"`  // Field width in world units (0 = use screen width)
	Height int `yaml:"height"` // Field height in world units (0 = use screen height)
}

// PopulationConfig holds the initial agent count per kind.
type PopulationConfig struct {
	Rock     int `yaml:"rock"`
	Paper    int `yaml:"paper"`
	Scissors int `yaml:"scissors"`
}

// MovementConfig holds the per-step displacement parameters.
type MovementConfig struct {
	Speed  float64 `yaml:"speed"`  // Base displacement per movement call
	Jitter float64 `yaml:"jitter"` // Half-width of the uniform speed noise
}

// RadiiConfig holds the interaction distances.
type RadiiConfig struct {
	Detection  float64 `yaml:"detection"`   // React to threats/prey closer than this
	Conversion float64 `yaml:"conversion"`  // Convert prey closer than this after pursuing
	Repulsion  float64 `yaml:"repulsion"`   // Same-kind agents push apart below this
	EdgeMargin float64 `yaml:"edge_margin"` // Steer back inward within this of a border
}

// RunConfig holds loop and termination parameters.
type RunConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per simulated second
	MaxTicks int `yaml:"max_ticks"` // Safety cap on run length (0 = unlimited)
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	WinnerHoldSec  float64 `yaml:"winner_hold_sec"` // How long the winner banner stays up
	IconSize       float64 `yaml:"icon_size"`       // Agent glyph size in world units
	BackgroundSeed int64   `yaml:"background_seed"` // Seed for the procedural field texture
	BackgroundCell int     `yaml:"background_cell"` // Texture pixels per noise sample
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	BookmarkHistorySize int     `yaml:"bookmark_history_size"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// BookmarksConfig holds bookmark detection thresholds.
type BookmarksConfig struct {
	Dominance DominanceConfig `yaml:"dominance"`
	Stalemate StalemateConfig `yaml:"stalemate"`
}

// DominanceConfig controls when a kind is considered to have taken over.
type DominanceConfig struct {
	Share float64 `yaml:"share"` // Fraction of the population held by one kind
}

// StalemateConfig controls detection of long-lived three-way balance.
type StalemateConfig struct {
	MinShare      float64 `yaml:"min_share"`      // Every kind holds at least this fraction
	CVThreshold   float64 `yaml:"cv_threshold"`   // Max coefficient of variation of counts in a window
	StableWindows int     `yaml:"stable_windows"` // Consecutive windows required
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT        float64 // Seconds per tick
	WorldW    float64 // Effective field width
	WorldH    float64 // Effective field height
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	Total     int     // Sum of per-kind initial counts
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Parse(nil)
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse builds a configuration from embedded defaults overlaid with data.
// A nil data returns the defaults unvalidated; Load validates.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if data == nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(err)
	}
	if err := cfg.finish(); err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) finish() error {
	c.computeDerived()
	return c.Validate()
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the loaded values describe a runnable simulation.
func (c *Config) Validate() error {
	if c.Derived.WorldW <= 0 || c.Derived.WorldH <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.Derived.WorldW, c.Derived.WorldH)
	}
	if c.Population.Rock < 0 || c.Population.Paper < 0 || c.Population.Scissors < 0 {
		return fmt.Errorf("%w: negative population count", ErrInvalid)
	}
	if c.Derived.Total == 0 {
		return fmt.Errorf("%w: population is empty", ErrInvalid)
	}
	if c.Movement.Speed < 0 || c.Movement.Jitter < 0 {
		return fmt.Errorf("%w: negative speed or jitter", ErrInvalid)
	}
	r := c.Radii
	if r.Detection < 0 || r.Conversion < 0 || r.Repulsion < 0 || r.EdgeMargin < 0 {
		return fmt.Errorf("%w: negative radius", ErrInvalid)
	}
	if c.Run.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalid)
	}
	if c.Run.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks must not be negative", ErrInvalid)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	if c.Run.TickRate > 0 {
		c.Derived.DT = 1.0 / float64(c.Run.TickRate)
	}
	c.Derived.Total = c.Population.Rock + c.Population.Paper + c.Population.Scissors
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Clone returns a deep copy, used by tools that mutate parameters per run.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
