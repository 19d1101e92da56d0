package render

import (
	"math"

	"github.com/trellis-research/trellis/graph"
)

// FilterNodes selects the node subset worth rendering for the current
// selection. Small graphs (below Settings.FilterThreshold) pass through
// untouched. For larger graphs a node is retained when any of these holds:
//
//   - it is the selected node
//   - it is directly connected to the selected node
//   - its importance exceeds Settings.ImportanceThreshold
//   - its degree is at least max(2, ln(N)/2)
//
// The selected node's neighborhood is therefore always visible regardless
// of importance scores, while low-degree low-importance nodes are hidden to
// bound render cost on dense graphs. The result preserves input order.
func FilterNodes(g *graph.Graph, selectedID string, settings Settings) ([]graph.Node, error) {
	idx, err := graph.NewIndex(g.Nodes, g.Links)
	if err != nil {
		return nil, err
	}
	return FilterNodesIndexed(idx, g.Nodes, selectedID, settings), nil
}

// FilterNodesIndexed is FilterNodes for callers that already hold an Index
// over the snapshot, avoiding a redundant O(N+E) pass.
func FilterNodesIndexed(idx *graph.Index, nodes []graph.Node, selectedID string, settings Settings) []graph.Node {
	settings = settings.Normalize()

	if len(nodes) < settings.FilterThreshold {
		return nodes
	}

	dynamicThreshold := degreeThreshold(len(nodes))
	neighbors := idx.Neighbors(selectedID)

	visible := make([]graph.Node, 0, len(nodes))
	for _, node := range nodes {
		switch {
		case node.ID == selectedID:
			visible = append(visible, node)
		case isNeighbor(neighbors, node.ID):
			visible = append(visible, node)
		case node.ImportanceOf() > settings.ImportanceThreshold:
			visible = append(visible, node)
		case float64(idx.Degree(node.ID)) >= dynamicThreshold:
			visible = append(visible, node)
		}
	}
	return visible
}

// degreeThreshold computes the minimum degree for a node to stay visible on
// its own merit. Grows logarithmically so dense graphs hide proportionally
// more of their periphery.
func degreeThreshold(nodeCount int) float64 {
	return math.Max(2, math.Log(float64(nodeCount))/2)
}

func isNeighbor(neighbors map[string]struct{}, id string) bool {
	_, ok := neighbors[id]
	return ok
}
