package systems

import "github.com/pthm-cable/rps/config"

// Params holds the tunable constants of the movement and decision rules.
type Params struct {
	Width, Height float64 // Field bounds used by edge avoidance and wandering

	Speed  float64 // Base displacement per movement call
	Jitter float64 // Speed noise is drawn uniformly from [-Jitter, +Jitter]

	DetectionRadius  float64
	ConversionRadius float64
	RepulsionRadius  float64
	EdgeMargin       float64
}

// DefaultParams returns the default rule constants on an 810x1440 field.
func DefaultParams() Params {
	return Params{
		Width:            810,
		Height:           1440,
		Speed:            3.0,
		Jitter:           0.3,
		DetectionRadius:  100,
		ConversionRadius: 20,
		RepulsionRadius:  20,
		EdgeMargin:       50,
	}
}

// ParamsFromConfig reads the rule constants from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Width:            cfg.Derived.WorldW,
		Height:           cfg.Derived.WorldH,
		Speed:            cfg.Movement.Speed,
		Jitter:           cfg.Movement.Jitter,
		DetectionRadius:  cfg.Radii.Detection,
		ConversionRadius: cfg.Radii.Conversion,
		RepulsionRadius:  cfg.Radii.Repulsion,
		EdgeMargin:       cfg.Radii.EdgeMargin,
	}
}
