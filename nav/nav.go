// Package nav implements keyboard navigation over a graph snapshot.
//
// Two movement modes are supported: sequential next/previous over the node
// list with wraparound, and directional movement constrained to nodes
// directly connected to the focused node. The connection constraint is an
// accessibility requirement: focus must always land on a visible, reachable
// node, never jump to an unrelated part of the graph.
package nav

import (
	"math"

	"github.com/trellis-research/trellis/graph"
	"github.com/trellis-research/trellis/internal/util"
)

// Direction is a spatial movement direction in screen coordinates
// (Y grows downward).
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Target identifies the node that focus should move to.
type Target struct {
	ID    string
	Index int
}

// BuildIndex assigns each node a stable index 0..N-1 in input order.
func BuildIndex(nodes []graph.Node) map[string]int {
	index := make(map[string]int, len(nodes))
	for i, node := range nodes {
		index[node.ID] = i
	}
	return index
}

// Next returns the node that sequential navigation should focus next.
//
// direction is +1 (forward) or -1 (backward). With no current focus the
// first node (forward) or last node (backward) is returned. Movement wraps
// around both ends of the list. Returns false only for an empty node list.
// An unknown currentID behaves like no focus.
func Next(currentID string, nodes []graph.Node, direction int) (Target, bool) {
	if len(nodes) == 0 {
		return Target{}, false
	}
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	index := BuildIndex(nodes)
	current, focused := index[currentID]
	if currentID == "" || !focused {
		if direction == 1 {
			return Target{ID: nodes[0].ID, Index: 0}, true
		}
		last := len(nodes) - 1
		return Target{ID: nodes[last].ID, Index: last}, true
	}

	next := (current + direction + len(nodes)) % len(nodes)
	return Target{ID: nodes[next].ID, Index: next}, true
}

// Directional returns the connected node that best matches a spatial
// movement direction, or "" when no connected node lies that way.
//
// Candidates are restricted to direct neighbors of currentID. A candidate
// strictly on the wrong side of the movement axis is rejected outright;
// the rest are scored by Manhattan distance and the closest wins.
func Directional(currentID string, dir Direction, nodes []graph.Node, links []graph.Link) (string, error) {
	idx, err := graph.NewIndex(nodes, links)
	if err != nil {
		return "", err
	}
	return DirectionalIndexed(idx, currentID, dir, nodes), nil
}

// DirectionalIndexed is Directional for callers that already hold an Index
// over the snapshot.
func DirectionalIndexed(idx *graph.Index, currentID string, dir Direction, nodes []graph.Node) string {
	pos, ok := idx.Position(currentID)
	if !ok {
		return ""
	}
	current := nodes[pos]
	neighbors := idx.Neighbors(currentID)

	bestID := ""
	bestCost := math.Inf(1)
	for _, node := range nodes {
		if _, connected := neighbors[node.ID]; !connected || node.ID == currentID {
			continue
		}
		cost := directionalCost(current, node, dir)
		if cost < bestCost {
			bestCost = cost
			bestID = node.ID
		}
	}
	return bestID
}

// directionalCost scores a candidate for movement in dir. Candidates that
// make no progress along the movement axis cost +Inf; the rest cost their
// Manhattan distance from the current node.
func directionalCost(current, candidate graph.Node, dir Direction) float64 {
	dx := candidate.X - current.X
	dy := candidate.Y - current.Y

	switch dir {
	case DirUp:
		if dy >= 0 {
			return math.Inf(1)
		}
	case DirDown:
		if dy <= 0 {
			return math.Inf(1)
		}
	case DirLeft:
		if dx >= 0 {
			return math.Inf(1)
		}
	case DirRight:
		if dx <= 0 {
			return math.Inf(1)
		}
	default:
		return math.Inf(1)
	}

	return util.AbsFloat64(dx) + util.AbsFloat64(dy)
}
