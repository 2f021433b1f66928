package bnb

import (
	"math"
	"time"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/oracle"
)

// Run performs an exhaustive branch-and-bound search for the cheapest
// complete embedding of in.Layout onto in.Target, returning the winning
// InsertionSequence. Mirrors tsp.TSPBranchAndBound's shape: engine setup,
// optional incumbent seeding, DFS, then finalization.
func Run(in embedding.Input, opts ...Option) (*Result, error) {
	settings := DefaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	state, err := embedding.NewState(in)
	if err != nil {
		return nil, err
	}
	o, err := oracle.NewOracle(state)
	if err != nil {
		return nil, err
	}

	e := &engine{
		state:               state,
		oracle:              o,
		metric:              settings.Metric,
		order:               branchOrder(state),
		eps:                 settings.Eps,
		extend:              settings.ExtendTimeLimitToEnsureSolution,
		bestCost:            math.Inf(1),
		seenHashes:          make(map[string]float64),
		optimalityGap:       settings.OptimalityGap,
		useProactivePruning: settings.UseProactivePruning,
		swirlPenaltyFactor:  settings.SwirlPenaltyFactor,
		swirlDetourRatio:    settings.SwirlDetourRatio,
	}
	if settings.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(settings.TimeLimit)
	}

	// rootLB is a single, always-valid global lower bound (spec.md §8's
	// oracle monotonicity: no blocking has been added yet, so this can
	// only underestimate the true optimum) used both for the optimality-gap
	// early stop and, should the search end without proving optimality, as
	// the reported Result.LowerBound.
	e.rootLB = e.lowerBound(0, 0)

	if settings.UseGreedyInit {
		if seq, cost, ok := seedIncumbent(in, settings.Metric); ok {
			e.bestSeq = seq
			e.bestCost = cost
			e.foundAny = true
			e.checkOptimalityGap()
		}
	}

	if !e.gapMet {
		e.dfs(0, 0)
	}

	if !e.foundAny {
		if e.timedOut {
			return nil, ErrTimeLimit
		}
		return nil, ErrInfeasible
	}

	final, err := embedding.NewState(in)
	if err != nil {
		return nil, err
	}
	if err := final.Apply(e.bestSeq); err != nil {
		return nil, err
	}

	// The search proved optimality only when it neither timed out nor hit
	// the optimality-gap early stop: in that case every branch was either
	// completed into bestCost or pruned below it, so LB_global == bestCost
	// and gap == 0 exactly (spec.md §4.4 "open set empty").
	// e.foundAny is guaranteed true here (the !e.foundAny case returned
	// above), so e.bestCost is always a finite completed cost at this point.
	provenOptimal := !e.timedOut && !e.gapMet
	lowerBound := e.rootLB
	if provenOptimal {
		lowerBound = e.bestCost
	}
	gap := 0.0
	if e.bestCost > 0 {
		gap = (e.bestCost - lowerBound) / e.bestCost
	}

	return &Result{
		Sequence:                        e.bestSeq,
		TotalLength:                     e.bestCost,
		Complete:                        final.IsComplete(),
		TimedOut:                        e.timedOut,
		NumIters:                        e.numIters,
		LowerBound:                      lowerBound,
		Gap:                             gap,
		GapMet:                          e.gapMet,
		UpperBoundEvents:                e.ubEvents,
		LowerBoundEvents:                e.lbEvents,
		MaxStateTreeMemoryEstimateBytes: int64(e.maxDepth) * estimatedBytesPerSearchNode,
	}, nil
}
