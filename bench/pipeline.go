package bench

import (
	"context"
	"time"

	"github.com/trellis-research/trellis/graph"
	"github.com/trellis-research/trellis/render"
)

// PipelineRenderFunc returns a RenderFunc that drives the full engine
// pipeline without drawing: index, filter, force parameterization, then a
// tick loop that recomputes per-node sizes and level of detail for the
// sampling window. Each loop iteration stands in for one simulation tick,
// so the resulting frame rate tracks how per-tick engine cost scales with
// graph size.
func PipelineRenderFunc(settings render.Settings, window time.Duration) RenderFunc {
	settings = settings.Normalize()

	return func(ctx context.Context, g *graph.Graph) (FrameStats, error) {
		idx, err := graph.NewIndex(g.Nodes, g.Links)
		if err != nil {
			return FrameStats{}, err
		}

		selected := ""
		if len(g.Nodes) > 0 {
			selected = g.Nodes[0].ID
		}

		visible := render.FilterNodesIndexed(idx, g.Nodes, selected, settings)
		_ = render.OptimizeForceParameters(len(visible), settings)

		ticks := 0
		scale := 0.5
		deadline := time.Now().Add(window)
		for time.Now().Before(deadline) {
			// Sweep the zoom range so LOD transitions are exercised too
			scale += 0.05
			if scale > 4 {
				scale = 0.5
			}
			_ = render.SizeAll(visible, idx, settings.NodeSize)
			_ = render.ComputeLevelOfDetail(scale, len(visible))
			ticks++
		}

		return FrameStats{Ticks: ticks, Window: window}, nil
	}
}
