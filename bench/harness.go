// Package bench exercises the rendering pipeline across dataset sizes and
// reports aggregate timing and frame-rate metrics.
//
// Sizes run strictly one at a time: concurrent runs would contend for the
// same rendering surface and invalidate every timing measurement.
// Cancellation is cooperative and checked only at size boundaries, never
// mid-render, so each recorded result covers a complete pass.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trellis-research/trellis/graph"
	"github.com/trellis-research/trellis/logger"
)

// DefaultSampleWindow is how long a render pass samples simulation ticks to
// estimate frame rate.
const DefaultSampleWindow = 2000 * time.Millisecond

// FrameStats reports how many simulation ticks a render pass completed over
// its sampling window. The harness turns this into a ticks-per-second frame
// rate.
type FrameStats struct {
	Ticks  int
	Window time.Duration
}

// RenderFunc runs one full render pass over a dataset: filtering, scaling,
// simulation and the actual draw. The host supplies it; PipelineRenderFunc
// provides a draw-free default that exercises just the engine.
type RenderFunc func(ctx context.Context, g *graph.Graph) (FrameStats, error)

// Result records one dataset size's benchmark outcome. A failed size keeps
// its slot with Success=false; it is never dropped from the suite.
type Result struct {
	SizeLabel      string        `json:"size_label"`
	NodeCount      int           `json:"node_count"`
	LinkCount      int           `json:"link_count"`
	LoadTime       time.Duration `json:"load_time"`
	RenderTime     time.Duration `json:"render_time"`
	SimulationTime time.Duration `json:"simulation_time"`
	FrameRate      float64       `json:"frame_rate"`   // Simulation ticks per second
	MemoryUsage    uint64        `json:"memory_usage"` // Heap bytes in use after the pass
	Success        bool          `json:"success"`
	Error          string        `json:"error,omitempty"`
}

// Suite collects per-size results, keyed by size label, in run order.
type Suite struct {
	RunID     string            `json:"run_id"`
	StartedAt time.Time         `json:"started_at"`
	TargetFPS float64           `json:"target_fps"`
	Order     []string          `json:"order"`
	Results   map[string]Result `json:"results"`
}

// Harness drives benchmark runs.
type Harness struct {
	sampleWindow time.Duration
	targetFPS    float64
	generate     func(size int) *graph.Graph
	logger       *zap.SugaredLogger
}

// Option configures a Harness.
type Option func(*Harness)

// WithSampleWindow overrides the frame-rate sampling window.
func WithSampleWindow(window time.Duration) Option {
	return func(h *Harness) {
		if window > 0 {
			h.sampleWindow = window
		}
	}
}

// WithTargetFPS overrides the frame-rate target used for classification.
func WithTargetFPS(fps float64) Option {
	return func(h *Harness) {
		if fps > 0 {
			h.targetFPS = fps
		}
	}
}

// WithDataset overrides the dataset source, e.g. to benchmark against
// real-world graphs loaded by the host instead of synthetic ones.
func WithDataset(generate func(size int) *graph.Graph) Option {
	return func(h *Harness) {
		if generate != nil {
			h.generate = generate
		}
	}
}

// New creates a Harness with synthetic datasets and default sampling.
func New(opts ...Option) *Harness {
	h := &Harness{
		sampleWindow: DefaultSampleWindow,
		targetFPS:    30,
		generate:     GenerateDataset,
		logger:       logger.Named("bench"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SampleWindow returns the configured frame-rate sampling window.
func (h *Harness) SampleWindow() time.Duration {
	return h.sampleWindow
}

// Run executes one render pass per size, sequentially, and returns the
// collected suite. A failing size records its error and the run continues
// with the remaining sizes. Context cancellation is honored between sizes;
// the partial suite collected so far is returned.
func (h *Harness) Run(ctx context.Context, sizes []int, renderFn RenderFunc) *Suite {
	suite := &Suite{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		TargetFPS: h.targetFPS,
		Results:   make(map[string]Result, len(sizes)),
	}

	h.logger.Infow("benchmark run starting",
		logger.FieldRunID, suite.RunID,
		"sizes", sizes)

	for _, size := range sizes {
		if ctx.Err() != nil {
			h.logger.Warnw("benchmark run cancelled",
				logger.FieldRunID, suite.RunID,
				"completed", len(suite.Order))
			break
		}

		label := sizeLabel(size)
		result := h.runSize(ctx, size, label, renderFn)
		suite.Order = append(suite.Order, label)
		suite.Results[label] = result
	}

	return suite
}

func (h *Harness) runSize(ctx context.Context, size int, label string, renderFn RenderFunc) Result {
	loadStart := time.Now()
	g := h.generate(size)
	loadTime := time.Since(loadStart)

	result := Result{
		SizeLabel: label,
		NodeCount: len(g.Nodes),
		LinkCount: len(g.Links),
		LoadTime:  loadTime,
	}

	renderStart := time.Now()
	stats, err := renderFn(ctx, g)
	result.RenderTime = time.Since(renderStart)

	if err != nil {
		result.Error = err.Error()
		h.logger.Errorw("benchmark size failed",
			logger.FieldSizeLabel, label,
			logger.FieldError, err)
		return result
	}

	result.Success = true
	result.SimulationTime = stats.Window
	if stats.Window > 0 {
		result.FrameRate = float64(stats.Ticks) / stats.Window.Seconds()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	result.MemoryUsage = mem.HeapInuse

	h.logger.Infow("benchmark size complete",
		logger.FieldSizeLabel, label,
		logger.FieldNodeCount, result.NodeCount,
		logger.FieldLinkCount, result.LinkCount,
		logger.FieldDurationMS, result.RenderTime.Milliseconds(),
		logger.FieldFrameRate, result.FrameRate)

	return result
}

func sizeLabel(size int) string {
	return fmt.Sprintf("%d-nodes", size)
}
