package bench

import (
	"fmt"
	"strings"
)

// Classification labels for an overall benchmark run.
const (
	ClassExcellent = "excellent"
	ClassGood      = "good"
	ClassFair      = "fair"
	ClassPoor      = "poor"
)

// Size-band weights for classification. Large graphs count most: keeping a
// 5000-node view interactive matters more than a 100-node toy staying fast.
const (
	weightSmall  = 1.0 // < 500 nodes
	weightMedium = 2.0 // 500-1999
	weightLarge  = 3.0 // >= 2000
)

// Report renders a suite as a deterministic markdown document: one table
// row per size in run order (failed sizes marked, never omitted) followed
// by the overall classification.
func Report(suite *Suite) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Render benchmark %s\n\n", suite.RunID)
	fmt.Fprintf(&b, "Started: %s  \n", suite.StartedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "Target frame rate: %.0f fps\n\n", suite.TargetFPS)

	b.WriteString("| Size | Nodes | Links | Load (ms) | Render (ms) | FPS | Status |\n")
	b.WriteString("|------|-------|-------|-----------|-------------|-----|--------|\n")

	for _, label := range suite.Order {
		r := suite.Results[label]
		if r.Success {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %.1f | ok |\n",
				r.SizeLabel, r.NodeCount, r.LinkCount,
				r.LoadTime.Milliseconds(), r.RenderTime.Milliseconds(), r.FrameRate)
		} else {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | - | FAILED: %s |\n",
				r.SizeLabel, r.NodeCount, r.LinkCount,
				r.LoadTime.Milliseconds(), r.RenderTime.Milliseconds(), r.Error)
		}
	}

	fmt.Fprintf(&b, "\nClassification: **%s**\n", Classify(suite))

	return b.String()
}

// Classify reduces a suite to one of excellent/good/fair/poor.
//
// Each size contributes min(1, frameRate/target), weighted by its size
// band (small:medium:large = 1:2:3). Failed sizes contribute zero; an
// empty suite classifies as poor.
func Classify(suite *Suite) string {
	target := suite.TargetFPS
	if target <= 0 {
		target = 30
	}

	var weightedSum, totalWeight float64
	for _, label := range suite.Order {
		r := suite.Results[label]
		weight := bandWeight(r.NodeCount)
		totalWeight += weight

		if !r.Success {
			continue
		}
		ratio := r.FrameRate / target
		if ratio > 1 {
			ratio = 1
		}
		weightedSum += ratio * weight
	}

	if totalWeight == 0 {
		return ClassPoor
	}

	score := weightedSum / totalWeight
	switch {
	case score >= 0.9:
		return ClassExcellent
	case score >= 0.75:
		return ClassGood
	case score >= 0.5:
		return ClassFair
	default:
		return ClassPoor
	}
}

func bandWeight(nodeCount int) float64 {
	switch {
	case nodeCount < 500:
		return weightSmall
	case nodeCount < 2000:
		return weightMedium
	default:
		return weightLarge
	}
}
