package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-research/trellis/graph"
)

func navNodes(n int) []graph.Node {
	nodes := make([]graph.Node, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, graph.Node{ID: fmt.Sprintf("n%d", i)})
	}
	return nodes
}

func navLink(source, target string) graph.Link {
	return graph.Link{
		ID:     source + "-" + target,
		Source: graph.Ref(source),
		Target: graph.Ref(target),
		Type:   "related_to",
	}
}

func TestBuildIndex(t *testing.T) {
	nodes := navNodes(5)
	index := BuildIndex(nodes)

	require.Len(t, index, 5)
	seen := make(map[int]bool)
	for i, node := range nodes {
		idx, ok := index[node.ID]
		require.True(t, ok, "every node gets an index")
		assert.Equal(t, i, idx, "order-preserving")
		assert.False(t, seen[idx], "indices are unique")
		seen[idx] = true
	}
}

func TestNextFromNoFocus(t *testing.T) {
	nodes := navNodes(4)

	target, ok := Next("", nodes, 1)
	require.True(t, ok)
	assert.Equal(t, Target{ID: "n0", Index: 0}, target, "forward from no focus: first node")

	target, ok = Next("", nodes, -1)
	require.True(t, ok)
	assert.Equal(t, Target{ID: "n3", Index: 3}, target, "backward from no focus: last node")
}

func TestNextWrapsAround(t *testing.T) {
	nodes := navNodes(3)

	target, ok := Next("n2", nodes, 1)
	require.True(t, ok)
	assert.Equal(t, Target{ID: "n0", Index: 0}, target, "forward past last wraps to first")

	target, ok = Next("n0", nodes, -1)
	require.True(t, ok)
	assert.Equal(t, Target{ID: "n2", Index: 2}, target, "backward past first wraps to last")
}

func TestNextSequential(t *testing.T) {
	nodes := navNodes(5)

	target, ok := Next("n1", nodes, 1)
	require.True(t, ok)
	assert.Equal(t, "n2", target.ID)

	target, ok = Next("n1", nodes, -1)
	require.True(t, ok)
	assert.Equal(t, "n0", target.ID)
}

func TestNextEmptyList(t *testing.T) {
	_, ok := Next("", nil, 1)
	assert.False(t, ok)
}

func TestNextUnknownFocus(t *testing.T) {
	nodes := navNodes(3)

	// Stale focus id (node was filtered out) behaves like no focus
	target, ok := Next("gone", nodes, 1)
	require.True(t, ok)
	assert.Equal(t, "n0", target.ID)
}

func TestDirectionalPicksNearestInDirection(t *testing.T) {
	// Screen coordinates: Y grows downward.
	//        n1 (0,-10)
	//  n2 (-10,0)  c (0,0)  n3 (10,0)
	//        n4 (0,10)           n5 (30,2) also right, farther
	nodes := []graph.Node{
		{ID: "c", X: 0, Y: 0},
		{ID: "n1", X: 0, Y: -10},
		{ID: "n2", X: -10, Y: 0},
		{ID: "n3", X: 10, Y: 0},
		{ID: "n4", X: 0, Y: 10},
		{ID: "n5", X: 30, Y: 2},
	}
	links := []graph.Link{
		navLink("c", "n1"),
		navLink("c", "n2"),
		navLink("c", "n3"),
		navLink("c", "n4"),
		navLink("c", "n5"),
	}

	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "n1"},
		{DirLeft, "n2"},
		{DirRight, "n3"},
		{DirDown, "n4"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			got, err := Directional("c", tt.dir, nodes, links)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionalNeverReturnsUnconnected(t *testing.T) {
	// n9 is directly above c but not linked to it; n1 is linked but far
	nodes := []graph.Node{
		{ID: "c", X: 0, Y: 0},
		{ID: "n9", X: 0, Y: -5},
		{ID: "n1", X: 2, Y: -50},
	}
	links := []graph.Link{navLink("c", "n1")}

	got, err := Directional("c", DirUp, nodes, links)
	require.NoError(t, err)
	assert.Equal(t, "n1", got, "connection constraint beats proximity")
}

func TestDirectionalRejectsWrongSide(t *testing.T) {
	// The only neighbor is below; moving up has nowhere to go
	nodes := []graph.Node{
		{ID: "c", X: 0, Y: 0},
		{ID: "n1", X: 0, Y: 10},
	}
	links := []graph.Link{navLink("c", "n1")}

	got, err := Directional("c", DirUp, nodes, links)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	// A neighbor exactly on the axis makes no progress either
	got, err = Directional("n1", DirLeft, nodes, links)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDirectionalUnknownCurrent(t *testing.T) {
	nodes := navNodes(2)
	got, err := Directional("ghost", DirUp, nodes, nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDirectionalInvalidReference(t *testing.T) {
	nodes := navNodes(2)
	links := []graph.Link{navLink("n0", "ghost")}

	_, err := Directional("n0", DirUp, nodes, links)
	assert.Error(t, err)
}
