// Package main provides CMA-ES optimization for rock-paper-scissors rule
// parameters.
package main

import (
	"github.com/pthm-cable/rps/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Radii
			{Name: "detection_radius", Path: "radii.detection", Min: 30, Max: 250, Default: 100},
			{Name: "conversion_radius", Path: "radii.conversion", Min: 5, Max: 40, Default: 20},
			{Name: "repulsion_radius", Path: "radii.repulsion", Min: 0, Max: 40, Default: 20},
			// Movement
			{Name: "speed", Path: "movement.speed", Min: 1, Max: 6, Default: 3},
			{Name: "jitter", Path: "movement.jitter", Min: 0, Max: 1, Default: 0.3},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Radii.Detection = clamped[0]
	cfg.Radii.Conversion = clamped[1]
	cfg.Radii.Repulsion = clamped[2]
	cfg.Movement.Speed = clamped[3]
	cfg.Movement.Jitter = clamped[4]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Radii.Detection,
		cfg.Radii.Conversion,
		cfg.Radii.Repulsion,
		cfg.Movement.Speed,
		cfg.Movement.Jitter,
	}
}
