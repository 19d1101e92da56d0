package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-research/trellis/errors"
	"github.com/trellis-research/trellis/graph"
	"github.com/trellis-research/trellis/render"
)

// instantRender is a RenderFunc that completes immediately with a fixed
// frame rate, keeping harness tests fast.
func instantRender(fps float64) RenderFunc {
	return func(ctx context.Context, g *graph.Graph) (FrameStats, error) {
		return FrameStats{Ticks: int(fps * 2), Window: 2 * time.Second}, nil
	}
}

func TestRunCollectsAllSizes(t *testing.T) {
	h := New(WithSampleWindow(10 * time.Millisecond))

	suite := h.Run(context.Background(), []int{10, 50, 100}, instantRender(60))

	require.Equal(t, []string{"10-nodes", "50-nodes", "100-nodes"}, suite.Order)
	require.Len(t, suite.Results, 3)
	assert.NotEmpty(t, suite.RunID)

	for _, label := range suite.Order {
		r := suite.Results[label]
		assert.True(t, r.Success, label)
		assert.InDelta(t, 60.0, r.FrameRate, 1e-9, label)
		assert.Greater(t, r.NodeCount, 0, label)
	}
}

func TestRunIsolatesPerSizeFailure(t *testing.T) {
	// The 500 case fails; 100 and 1000 must still succeed and all three
	// must appear in the report.
	failing := func(ctx context.Context, g *graph.Graph) (FrameStats, error) {
		if len(g.Nodes) == 500 {
			return FrameStats{}, errors.New("renderer exploded")
		}
		return FrameStats{Ticks: 90, Window: 2 * time.Second}, nil
	}

	h := New()
	suite := h.Run(context.Background(), []int{100, 500, 1000}, failing)

	require.Len(t, suite.Results, 3)
	assert.True(t, suite.Results["100-nodes"].Success)
	assert.True(t, suite.Results["1000-nodes"].Success)

	failed := suite.Results["500-nodes"]
	assert.False(t, failed.Success)
	assert.Contains(t, failed.Error, "renderer exploded")

	report := Report(suite)
	for _, label := range []string{"100-nodes", "500-nodes", "1000-nodes"} {
		assert.Contains(t, report, label, "report must list every size, failed or not")
	}
	assert.Contains(t, report, "FAILED: renderer exploded")
}

func TestRunCancellationAtSizeBoundary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	counting := func(_ context.Context, g *graph.Graph) (FrameStats, error) {
		calls++
		if calls == 2 {
			cancel() // takes effect before the third size starts
		}
		return FrameStats{Ticks: 60, Window: time.Second}, nil
	}

	h := New()
	suite := h.Run(ctx, []int{10, 20, 30, 40}, counting)

	assert.Equal(t, 2, calls, "render must not start after cancellation")
	assert.Equal(t, []string{"10-nodes", "20-nodes"}, suite.Order, "partial results are returned")
}

func TestRunWithCustomDataset(t *testing.T) {
	h := New(WithDataset(func(size int) *graph.Graph {
		g := GenerateDataset(size)
		g.Meta.Config["source"] = "fixture"
		return g
	}))

	var sawNodes int
	probe := func(_ context.Context, g *graph.Graph) (FrameStats, error) {
		sawNodes = len(g.Nodes)
		return FrameStats{Ticks: 60, Window: time.Second}, nil
	}

	suite := h.Run(context.Background(), []int{25}, probe)
	assert.Equal(t, 25, sawNodes)
	assert.True(t, suite.Results["25-nodes"].Success)
}

func TestPipelineRenderFunc(t *testing.T) {
	renderFn := PipelineRenderFunc(render.DefaultSettings(), 30*time.Millisecond)

	g := GenerateDataset(200)
	stats, err := renderFn(context.Background(), g)
	require.NoError(t, err)

	assert.Greater(t, stats.Ticks, 0, "the tick loop must make progress")
	assert.Equal(t, 30*time.Millisecond, stats.Window)
}

func TestPipelineRenderFuncPropagatesIndexError(t *testing.T) {
	renderFn := PipelineRenderFunc(render.DefaultSettings(), 10*time.Millisecond)

	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "a"}},
		Links: []graph.Link{{ID: "e1", Source: graph.Ref("a"), Target: graph.Ref("ghost")}},
	}

	_, err := renderFn(context.Background(), g)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidReferenceError(err))
}

func TestHarnessRunEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timed benchmark pass in -short mode")
	}

	h := New(WithSampleWindow(50*time.Millisecond), WithTargetFPS(30))
	renderFn := PipelineRenderFunc(render.DefaultSettings(), h.SampleWindow())

	suite := h.Run(context.Background(), []int{50, 200}, renderFn)

	require.Len(t, suite.Results, 2)
	for _, label := range suite.Order {
		r := suite.Results[label]
		require.True(t, r.Success, "%s: %s", label, r.Error)
		assert.Greater(t, r.FrameRate, 0.0, label)
		assert.Greater(t, r.RenderTime, time.Duration(0), label)
	}

	report := Report(suite)
	assert.Contains(t, report, "Classification:")
	assert.True(t, strings.Contains(report, "50-nodes") && strings.Contains(report, "200-nodes"))
}
