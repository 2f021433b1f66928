package bnb

import (
	"math"
	"sort"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/oracle"
)

// branchOrder returns every layout edge state still needs embedded,
// sorted ascending by the straight-line distance between its landmarks —
// the same "shortest span first" heuristic as greedy's VariantKraevoy,
// computed once at the root so every DFS node branches over a stable,
// deterministic sequence (tsp.bbEngine.buildNeighborOrder's rationale:
// deterministic branching tightens the incumbent early and keeps repeated
// runs reproducible).
func branchOrder(state *embedding.State) []mesh.EdgeID {
	layout := state.Layout()
	target := state.Target()
	edges := state.RemainingEdges()
	span := func(e mesh.EdgeID) float64 {
		a, b := layout.EdgeVertices(e)
		ta, _ := state.Landmark(a)
		tb, _ := state.Landmark(b)
		return target.Position(ta).Dist(target.Position(tb))
	}
	sort.SliceStable(edges, func(i, j int) bool { return span(edges[i]) < span(edges[j]) })
	return edges
}

// lowerBound returns an admissible lower bound on the cost of completing
// the current partial embedding: costSoFar plus, for every not-yet-decided
// edge in order[depth:], the length of the oracle's current Geodesic
// shortest path for it, whatever metric the search uses for candidates
// (the shortest feasible path under today's blocking — so it can only
// be an underestimate of that edge's eventual cost once further edges are
// also fixed, per the disjoint-oracle bound of spec.md §4.4). If any
// remaining edge is already infeasible under the current blocking, the
// whole branch is dead and the bound is +Inf.
func (e *engine) lowerBound(depth int, costSoFar float64) float64 {
	total := costSoFar
	for _, eL := range e.order[depth:] {
		hL := e.state.Layout().Edge(eL).HalfEdge
		_, length, err := e.oracle.ShortestPathForLayoutEdge(hL, oracle.Geodesic)
		if err != nil {
			return math.Inf(1)
		}
		total += length
	}
	return total
}

// swirlPenaltyEstimate sums, over every not-yet-decided edge in
// order[depth:], a swirl penalty for its current oracle candidate whose
// length/straight-line-landmark-distance ratio exceeds swirlDetourRatio —
// spec.md §4.4's proactive-pruning swirl estimate. A node is pruned when
// this exceeds the remaining budget (bestCost - costSoFar), since no
// completion through it can undercut that much projected swirl cost.
func (e *engine) swirlPenaltyEstimate(depth int) float64 {
	layout := e.state.Layout()
	target := e.state.Target()
	var total float64
	for _, eL := range e.order[depth:] {
		hL := layout.Edge(eL).HalfEdge
		_, length, err := e.oracle.ShortestPathForLayoutEdge(hL, e.metric)
		if err != nil {
			continue
		}
		a, b := layout.EdgeVertices(eL)
		ta, _ := e.state.Landmark(a)
		tb, _ := e.state.Landmark(b)
		straight := target.Position(ta).Dist(target.Position(tb))
		if straight > 0 && length/straight > e.swirlDetourRatio {
			total += length * e.swirlPenaltyFactor
		}
	}
	return total
}

// checkOptimalityGap latches gapMet once (bestCost-rootLB)/bestCost drops
// below optimalityGap, the early-stop half of spec.md §4.4's termination
// criteria. A zero or negative optimalityGap never triggers (the default:
// the search always proves optimality or runs out of time).
func (e *engine) checkOptimalityGap() {
	if e.optimalityGap <= 0 || math.IsInf(e.bestCost, 1) {
		return
	}
	if e.bestCost <= 0 {
		e.gapMet = true
		return
	}
	if (e.bestCost-e.rootLB)/e.bestCost < e.optimalityGap {
		e.gapMet = true
	}
}
