package logger

// Standard field names for consistent structured logging across Trellis.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Graph dimensions
	FieldNodeCount    = "node_count"
	FieldLinkCount    = "link_count"
	FieldVisibleCount = "visible_count"
	FieldSelectedID   = "selected_id"

	// Rendering
	FieldScale     = "scale"
	FieldFrameRate = "frame_rate"
	FieldSizeLabel = "size_label"

	// Timing
	FieldDurationMS = "duration_ms"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"

	// Errors
	FieldError = "error"

	// Benchmark identity
	FieldRunID = "run_id"
)
