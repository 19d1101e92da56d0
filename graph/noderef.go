package graph

import (
	"encoding/json"

	"github.com/trellis-research/trellis/errors"
)

// NodeRef identifies one endpoint of a link.
//
// Wire data may carry either a bare node id ("n42") or an embedded node
// object ({"id": "n42", "x": 1.5, ...}) because force-simulation libraries
// rewrite link endpoints in place to attach positions. Both forms decode to
// the node id; the accessor on Link is the only way other packages should
// resolve endpoints.
type NodeRef struct {
	ID string
}

// Ref constructs a NodeRef from a node id.
func Ref(id string) NodeRef {
	return NodeRef{ID: id}
}

// MarshalJSON always emits the bare-id form.
func (r NodeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts either a bare id string or an embedded node object.
func (r *NodeRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var embedded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		return errors.Wrap(err, "link endpoint is neither an id nor a node object")
	}
	if embedded.ID == "" {
		return errors.New("embedded link endpoint has no id")
	}
	r.ID = embedded.ID
	return nil
}

// SourceID returns the normalized source node id.
func (l Link) SourceID() string {
	return l.Source.ID
}

// TargetID returns the normalized target node id.
func (l Link) TargetID() string {
	return l.Target.ID
}
