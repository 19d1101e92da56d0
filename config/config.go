// Package config loads Trellis configuration via Viper.
//
// Configuration is merged from defaults, an optional trellis.toml found by
// walking up from the working directory, and TRELLIS_* environment
// variables, in increasing precedence.
package config

// Config is the root Trellis configuration
type Config struct {
	Visualization VisualizationConfig `mapstructure:"visualization"`
	Bench         BenchConfig         `mapstructure:"bench"`
	Log           LogConfig           `mapstructure:"log"`
}

// VisualizationConfig holds cosmetic rendering knobs.
// These map 1:1 onto render.Settings; render.Settings.Normalize applies
// documented defaults for malformed values.
type VisualizationConfig struct {
	NodeSize            float64 `mapstructure:"node_size"`
	ForceStrength       float64 `mapstructure:"force_strength"`
	FilterThreshold     int     `mapstructure:"filter_threshold"`
	ImportanceThreshold float64 `mapstructure:"importance_threshold"`
	DarkMode            bool    `mapstructure:"dark_mode"`
	ProgressiveLoading  bool    `mapstructure:"progressive_loading"`
	LevelOfDetail       bool    `mapstructure:"level_of_detail"`
}

// BenchConfig holds benchmark harness settings
type BenchConfig struct {
	Sizes          []int   `mapstructure:"sizes"`            // Dataset sizes to run
	TargetFPS      float64 `mapstructure:"target_fps"`       // Frame-rate target for classification
	SampleWindowMS int     `mapstructure:"sample_window_ms"` // Frame-rate sampling window
}

// LogConfig holds logging settings
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}
