package greedy

import (
	"math"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
)

// buildResult snapshots state into a Result: its replayable Sequence,
// completeness, total length, and swirl-penalized Score.
func buildResult(state *embedding.State, settings Settings) *Result {
	layout := state.Layout()
	swirls := 0
	if settings.UseSwirlDetection {
		for e := 0; e < layout.EdgeCount(); e++ {
			length, err := state.PathLength(mesh.EdgeID(e))
			if err != nil {
				continue
			}
			a, b := layout.EdgeVertices(mesh.EdgeID(e))
			ta, _ := state.Landmark(a)
			tb, _ := state.Landmark(b)
			straight := state.Target().Position(ta).Dist(state.Target().Position(tb))
			if straight > 0 && length/straight > settings.SwirlDetourRatio {
				swirls++
			}
		}
	}

	total := state.TotalEmbeddedPathLength()
	score := total
	if settings.UseSwirlDetection && layout.EdgeCount() > 0 {
		score = total * (1 + settings.SwirlPenaltyFactor*float64(swirls)/float64(layout.EdgeCount()))
	}
	// spec.md §4.3: a greedy run with no feasible candidate at some step
	// fails with Infeasible and reports cost = +∞, not the finite partial
	// total accumulated before the stall.
	if !state.IsComplete() {
		total = math.Inf(1)
		score = math.Inf(1)
	}

	return &Result{
		State:       state,
		Sequence:    state.Sequence(),
		Variant:     settings.Variant,
		Complete:    state.IsComplete(),
		TotalLength: total,
		SwirlCount:  swirls,
		Score:       score,
	}
}
