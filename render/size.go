package render

import (
	"math"

	"github.com/trellis-research/trellis/graph"
)

// sizeBoost caps how much a hub node can grow: the scaled radius stays in
// [base, base*(1+sizeBoost)].
const sizeBoost = 1.5

// NodeSize computes the render radius for a node of the given degree.
//
// The formula base * (1 + ln(degree+1)/ln(maxDegree+1) * 1.5) is monotonic
// non-decreasing in degree and bounded by [base, 2.5*base]. maxDegree must
// be computed once per snapshot (graph.Index does this), never per node.
func NodeSize(degree, maxDegree int, base float64) float64 {
	if degree < 0 {
		degree = 0
	}
	if maxDegree <= 0 || degree == 0 {
		return base
	}
	if degree > maxDegree {
		degree = maxDegree
	}

	ratio := math.Log(float64(degree)+1) / math.Log(float64(maxDegree)+1)
	return base * (1 + ratio*sizeBoost)
}

// SizeOf computes the render radius for one node using a snapshot index.
func SizeOf(node graph.Node, idx *graph.Index, base float64) float64 {
	return NodeSize(idx.Degree(node.ID), idx.MaxDegree(), base)
}

// SizeAll computes render radii for a node subset in one pass, keyed by id.
func SizeAll(nodes []graph.Node, idx *graph.Index, base float64) map[string]float64 {
	sizes := make(map[string]float64, len(nodes))
	for _, node := range nodes {
		sizes[node.ID] = SizeOf(node, idx, base)
	}
	return sizes
}
