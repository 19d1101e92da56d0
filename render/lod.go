package render

import (
	"math"

	"github.com/trellis-research/trellis/internal/util"
)

// LevelOfDetailSettings describe how much visual information to draw at the
// current zoom level. Derived and ephemeral: recomputed on every zoom/pan
// tick, so ComputeLevelOfDetail must stay O(1) and allocation-free.
type LevelOfDetailSettings struct {
	ShowLabels             bool    `json:"show_labels"`
	ShowRelationshipLabels bool    `json:"show_relationship_labels"`
	NodeOpacity            float64 `json:"node_opacity"`
	LinkOpacity            float64 `json:"link_opacity"`
	LabelFontSize          float64 `json:"label_font_size"`
	NodeBorderWidth        float64 `json:"node_border_width"`
	NodeRadiusMultiplier   float64 `json:"node_radius_multiplier"`
}

// relationshipLabelFactor keeps the edge-label threshold strictly above the
// node-label threshold: edges become readable later than nodes.
const relationshipLabelFactor = 1.6

// ComputeLevelOfDetail derives LOD settings from the zoom scale and the
// number of visible nodes. Label thresholds rise with node count, since a
// denser graph needs more zoom before labels stop overlapping; opacity and
// font size scale continuously with the zoom scale.
func ComputeLevelOfDetail(scale float64, nodeCount int) LevelOfDetailSettings {
	if scale <= 0 {
		scale = 1
	}
	if nodeCount < 0 {
		nodeCount = 0
	}

	labelThreshold := labelScaleThreshold(nodeCount)

	return LevelOfDetailSettings{
		ShowLabels:             scale >= labelThreshold,
		ShowRelationshipLabels: scale >= labelThreshold*relationshipLabelFactor,
		NodeOpacity:            util.Clamp(0.55+0.15*scale, 0.55, 1.0),
		LinkOpacity:            util.Clamp(0.25+0.1*scale, 0.25, 0.8),
		LabelFontSize:          util.Clamp(12*math.Sqrt(scale), 8, 24),
		NodeBorderWidth:        util.Clamp(0.5+0.5*scale, 0.5, 2.0),
		NodeRadiusMultiplier:   util.Clamp(1/math.Sqrt(scale), 0.75, 1.5),
	}
}

// labelScaleThreshold computes the minimum zoom scale at which node labels
// are drawn. Roughly 0.96 for 50 nodes, 1.5 for 500 and 2.0 for 2000.
func labelScaleThreshold(nodeCount int) float64 {
	return 0.8 * (1 + 0.5*math.Log(float64(nodeCount)/100.0+1))
}
