// Package graph defines the graph snapshot model consumed by the Trellis
// rendering engine, plus the lookup index built over a snapshot.
package graph

import (
	"time"
)

// Graph represents a complete graph snapshot for visualization.
// Snapshots are immutable for the duration of one filtering/scaling pass;
// derived structures (Index, force parameters, LOD settings) are recomputed
// from the snapshot, never mutated in place.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node represents an entity in the graph
type Node struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`                 // Entity type ("person", "paper", "concept") or "untyped"
	Importance *float64 `json:"importance,omitempty"` // Optional [0,1] weight; nil means unscored
	Color      string   `json:"color,omitempty"`      // Hex color or rgba() string
	X          float64  `json:"x,omitempty"`          // Position, written by the simulation adapter
	Y          float64  `json:"y,omitempty"`
}

// Link represents a relationship between nodes
type Link struct {
	ID     string  `json:"id"`
	Source NodeRef `json:"source"` // Bare id or embedded node, see NodeRef
	Target NodeRef `json:"target"`
	Type   string  `json:"type"`            // Relationship predicate (e.g. "cites", "authored_by")
	Weight float64 `json:"value,omitempty"` // Link strength/weight (D3 uses "value")
	Label  string  `json:"label,omitempty"`
}

// Meta contains metadata about the graph
type Meta struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Stats       Stats             `json:"stats"`
	Config      map[string]string `json:"config,omitempty"`
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes,omitempty"`
	TotalEdges int `json:"total_edges,omitempty"`
}

// ImportanceOf returns the node's importance score, or 0 when unscored.
func (n Node) ImportanceOf() float64 {
	if n.Importance == nil {
		return 0
	}
	return *n.Importance
}
