package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Visualization defaults
	v.SetDefault("visualization.node_size", 10.0)
	v.SetDefault("visualization.force_strength", 300.0)
	v.SetDefault("visualization.filter_threshold", 100)     // Graphs below this size are never filtered
	v.SetDefault("visualization.importance_threshold", 0.5) // Importance above this is always visible
	v.SetDefault("visualization.dark_mode", false)
	v.SetDefault("visualization.progressive_loading", true)
	v.SetDefault("visualization.level_of_detail", true)

	// Benchmark defaults
	v.SetDefault("bench.sizes", []int{100, 500, 1000, 5000})
	v.SetDefault("bench.target_fps", 30.0)
	v.SetDefault("bench.sample_window_ms", 2000)

	// Logging defaults
	v.SetDefault("log.json", false)
}
