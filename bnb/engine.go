package bnb

import (
	"time"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/oracle"
	"github.com/patchgraph/layoutembed/virtual"
)

// engine holds all search data and policies, grounded on tsp.bbEngine.
type engine struct {
	state  *embedding.State
	oracle *oracle.Oracle
	metric oracle.Metric
	order  []mesh.EdgeID // fixed branch order, computed once at the root

	eps    float64
	extend bool

	useDeadline bool
	deadline    time.Time
	steps       int

	bestSeq  embedding.InsertionSequence
	bestCost float64
	foundAny bool

	numIters int
	maxDepth int
	timedOut bool

	seenHashes map[string]float64

	ubEvents []UpperBoundEvent
	lbEvents []LowerBoundEvent

	// optimalityGap, rootLB and gapMet implement spec.md §4.4's early-stop
	// termination criterion: rootLB is a single, always-valid global lower
	// bound (the disjoint-oracle sum over every layout edge computed once
	// before any branching); gapMet latches once (bestCost-rootLB)/bestCost
	// drops below optimalityGap, after which dfs bails out like a deadline.
	optimalityGap float64
	rootLB        float64
	gapMet        bool

	// useProactivePruning, swirlPenaltyFactor and swirlDetourRatio drive
	// the swirl-based half of spec.md §4.4's proactive pruning.
	useProactivePruning bool
	swirlPenaltyFactor  float64
	swirlDetourRatio    float64
}

// deadlineCheck performs a rare deadline test (every 4096 node events),
// matching tsp.bbEngine.deadlineCheck's cadence.
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	if !time.Now().After(e.deadline) {
		return false
	}
	if e.extend && !e.foundAny {
		return false // no incumbent yet: keep running past the deadline
	}
	e.timedOut = true
	return true
}

// candidatePaths returns the ordered set of distinct paths the search will
// try for hL, geodesic first and — when the search metric is
// VertexRepulsive — a repulsive-biased alternative second, when it
// differs from the geodesic one. Two candidates is a deliberately small
// branching factor: see DESIGN.md for why a full k-shortest-paths
// enumeration was not pursued.
func (e *engine) candidatePaths(hL mesh.HalfEdgeID) []virtual.Path {
	var out []virtual.Path
	if p, _, err := e.oracle.ShortestPathForLayoutEdge(hL, oracle.Geodesic); err == nil {
		out = append(out, p)
	}
	if e.metric == oracle.VertexRepulsive {
		if p, _, err := e.oracle.ShortestPathForLayoutEdge(hL, oracle.VertexRepulsive); err == nil && !pathEqual(p, out) {
			out = append(out, p)
		}
	}
	return out
}

func pathEqual(p virtual.Path, existing []virtual.Path) bool {
	for _, q := range existing {
		if len(p) != len(q) {
			continue
		}
		same := true
		for i := range p {
			if !p[i].Equal(q[i]) {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

// dfs is the core search: deterministic branching over e.order, admissible
// bound pruning, and state-hash pruning, mirroring tsp.bbEngine.dfs.
func (e *engine) dfs(depth int, costSoFar float64) {
	e.numIters++
	if depth > e.maxDepth {
		e.maxDepth = depth
	}
	if e.deadlineCheck() {
		return
	}
	if e.gapMet {
		return
	}

	lb := e.lowerBound(depth, costSoFar)
	if depth == 0 {
		e.lbEvents = append(e.lbEvents, LowerBoundEvent{Iteration: e.numIters, Bound: lb})
	}
	if lb >= e.bestCost-e.eps {
		return
	}
	if e.useProactivePruning {
		if swirl := e.swirlPenaltyEstimate(depth); swirl > e.bestCost-costSoFar {
			return
		}
	}

	hash := e.stateHash()
	if prevCost, seen := e.seenHashes[hash]; seen && prevCost <= costSoFar+e.eps {
		return
	}
	e.seenHashes[hash] = costSoFar

	if depth == len(e.order) {
		if costSoFar < e.bestCost-e.eps {
			e.bestCost = costSoFar
			e.bestSeq = e.state.Sequence()
			e.foundAny = true
			e.ubEvents = append(e.ubEvents, UpperBoundEvent{Iteration: e.numIters, Cost: costSoFar})
			e.checkOptimalityGap()
		}
		return
	}

	eL := e.order[depth]
	hL := e.state.Layout().Edge(eL).HalfEdge
	for _, path := range e.candidatePaths(hL) {
		if err := e.state.EmbedPath(hL, path); err != nil {
			continue
		}
		e.oracle.InvalidateField()
		length := path.Length(e.state.Target())
		e.dfs(depth+1, costSoFar+length)
		_ = e.state.UnembedPath(hL)
		e.oracle.InvalidateField()
		if e.timedOut || e.gapMet {
			return
		}
	}
}
