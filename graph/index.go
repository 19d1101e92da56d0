package graph

import (
	"github.com/trellis-research/trellis/errors"
)

// Index provides O(1) lookup structures over one graph snapshot: per-node
// degree, id to input-order position, and adjacency sets. It is built in a
// single O(N+E) pass and never mutated afterwards.
type Index struct {
	degree    map[string]int
	position  map[string]int
	adjacency map[string]map[string]struct{}
	maxDegree int
}

// NewIndex builds an Index from a snapshot's nodes and links.
//
// Every link endpoint must resolve to a node present in nodes; a dangling
// endpoint returns an error wrapping errors.ErrInvalidReference. Dangling
// edges are a data integrity violation, not something to drop silently.
func NewIndex(nodes []Node, links []Link) (*Index, error) {
	idx := &Index{
		degree:    make(map[string]int, len(nodes)),
		position:  make(map[string]int, len(nodes)),
		adjacency: make(map[string]map[string]struct{}),
	}

	for i, node := range nodes {
		idx.position[node.ID] = i
		idx.degree[node.ID] = 0
	}

	for _, link := range links {
		sourceID := link.SourceID()
		targetID := link.TargetID()

		if _, ok := idx.position[sourceID]; !ok {
			return nil, errors.NewInvalidReferenceError(
				"link %s: source %q not present in nodes", link.ID, sourceID)
		}
		if _, ok := idx.position[targetID]; !ok {
			return nil, errors.NewInvalidReferenceError(
				"link %s: target %q not present in nodes", link.ID, targetID)
		}

		// Both endpoints count toward degree, including self-loops
		idx.degree[sourceID]++
		idx.degree[targetID]++

		idx.addNeighbor(sourceID, targetID)
		idx.addNeighbor(targetID, sourceID)
	}

	for _, d := range idx.degree {
		if d > idx.maxDegree {
			idx.maxDegree = d
		}
	}

	return idx, nil
}

func (idx *Index) addNeighbor(from, to string) {
	set, ok := idx.adjacency[from]
	if !ok {
		set = make(map[string]struct{})
		idx.adjacency[from] = set
	}
	set[to] = struct{}{}
}

// Degree returns the number of link endpoints incident to the node,
// or 0 for an unknown id.
func (idx *Index) Degree(id string) int {
	return idx.degree[id]
}

// MaxDegree returns the highest degree in the snapshot.
func (idx *Index) MaxDegree() int {
	return idx.maxDegree
}

// Position returns the node's position in the snapshot's input order.
func (idx *Index) Position(id string) (int, bool) {
	pos, ok := idx.position[id]
	return pos, ok
}

// Contains reports whether the id names a node in the snapshot.
func (idx *Index) Contains(id string) bool {
	_, ok := idx.position[id]
	return ok
}

// Neighbors returns the set of ids directly connected to id. The returned
// map is owned by the index; callers must not modify it.
func (idx *Index) Neighbors(id string) map[string]struct{} {
	return idx.adjacency[id]
}

// Connected reports whether a and b share a link.
func (idx *Index) Connected(a, b string) bool {
	_, ok := idx.adjacency[a][b]
	return ok
}

// NodeCount returns the number of nodes in the indexed snapshot.
func (idx *Index) NodeCount() int {
	return len(idx.position)
}
