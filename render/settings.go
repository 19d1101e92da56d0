// Package render implements the adaptive rendering engine for Trellis graph
// visualization: importance-based node filtering, degree-based size scaling,
// graph-size-aware force-simulation tuning and zoom-aware level of detail.
//
// Everything in this package is a pure function of a graph snapshot plus
// settings. Nothing here draws pixels or integrates positions; outputs are
// consumed by a rendering adapter outside this module.
package render

import (
	"github.com/trellis-research/trellis/config"
)

// Defaults applied by Settings.Normalize for malformed values.
// Visualization settings are cosmetic configuration, so bad values fall back
// to defaults instead of failing the render.
const (
	DefaultNodeSize            = 10.0
	DefaultForceStrength       = 300.0
	DefaultFilterThreshold     = 100
	DefaultImportanceThreshold = 0.5
)

// Settings holds the visualization knobs threaded through every engine call.
// There is no ambient configuration lookup inside the engine; hosts pass a
// Settings value explicitly.
type Settings struct {
	NodeSize            float64 `json:"node_size"`
	ForceStrength       float64 `json:"force_strength"`
	FilterThreshold     int     `json:"filter_threshold"`     // Graphs below this size are never filtered
	ImportanceThreshold float64 `json:"importance_threshold"` // Importance above this is always retained
	DarkMode            bool    `json:"dark_mode"`
	ProgressiveLoading  bool    `json:"progressive_loading"`
	LevelOfDetail       bool    `json:"level_of_detail"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		NodeSize:            DefaultNodeSize,
		ForceStrength:       DefaultForceStrength,
		FilterThreshold:     DefaultFilterThreshold,
		ImportanceThreshold: DefaultImportanceThreshold,
		ProgressiveLoading:  true,
		LevelOfDetail:       true,
	}
}

// FromConfig converts loaded configuration into engine settings.
func FromConfig(cfg config.VisualizationConfig) Settings {
	s := Settings{
		NodeSize:            cfg.NodeSize,
		ForceStrength:       cfg.ForceStrength,
		FilterThreshold:     cfg.FilterThreshold,
		ImportanceThreshold: cfg.ImportanceThreshold,
		DarkMode:            cfg.DarkMode,
		ProgressiveLoading:  cfg.ProgressiveLoading,
		LevelOfDetail:       cfg.LevelOfDetail,
	}
	return s.Normalize()
}

// Normalize replaces malformed values with documented defaults and returns
// the result. The receiver is not modified.
func (s Settings) Normalize() Settings {
	if s.NodeSize <= 0 {
		s.NodeSize = DefaultNodeSize
	}
	if s.ForceStrength <= 0 {
		s.ForceStrength = DefaultForceStrength
	}
	if s.FilterThreshold <= 0 {
		s.FilterThreshold = DefaultFilterThreshold
	}
	if s.ImportanceThreshold < 0 || s.ImportanceThreshold > 1 {
		s.ImportanceThreshold = DefaultImportanceThreshold
	}
	return s
}
