package bnb

import (
	"errors"
	"time"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/greedy"
	"github.com/patchgraph/layoutembed/oracle"
)

// Sentinel errors for the bnb package.
var (
	// ErrTimeLimit indicates the search's time budget elapsed before any
	// feasible complete embedding was found.
	ErrTimeLimit = errors.New("bnb: time limit exceeded with no feasible embedding")

	// ErrInfeasible indicates the search exhausted every branch without
	// finding a complete embedding (the layout cannot be embedded onto
	// this target under the given landmarks).
	ErrInfeasible = errors.New("bnb: layout embedding is infeasible")
)

// Settings configures one Run call. Construct via DefaultSettings and
// Option values, mirroring tsp.Options.
type Settings struct {
	Metric oracle.Metric

	// UseGreedyInit seeds the incumbent upper bound with
	// greedy.EmbedCompetitors/Best before branching begins, exactly as
	// tsp.bbEngine.seedUB seeds from TSPApprox. A good incumbent prunes
	// far more of the tree.
	UseGreedyInit bool

	// TimeLimit bounds wall-clock search time; zero means unbounded.
	TimeLimit time.Duration

	// ExtendTimeLimitToEnsureSolution allows the search to keep running
	// past TimeLimit while no incumbent exists yet: the deadline is
	// ignored until the first complete embedding is found, and honored
	// from then on.
	ExtendTimeLimitToEnsureSolution bool

	// Eps is the pruning slack: a node is pruned when
	// lowerBound >= bestCost - Eps.
	Eps float64

	// OptimalityGap is spec.md §4.4's optimality_gap ∈ [0,1]: the search
	// stops early, reporting Result.Gap, once (UB-LB_global)/UB drops
	// below this threshold. Zero (the default) means "prove optimality or
	// exhaust the time limit" — no early stop.
	OptimalityGap float64

	// UseProactivePruning enables spec.md §4.4's proactive pruning: in
	// addition to the ordinary bound test, a node is also pruned when the
	// swirl penalty estimated over its still-unembedded edges would alone
	// exceed the remaining budget (UB - cost(S)). The infeasible-candidate
	// half of proactive pruning is already covered unconditionally by
	// lowerBound returning +Inf for a blocked edge; this setting only
	// gates the swirl-based half.
	UseProactivePruning bool

	// SwirlPenaltyFactor and SwirlDetourRatio parameterize the proactive
	// swirl estimate the same way greedy.Settings does: a remaining edge's
	// oracle path counts as a swirl when its length exceeds
	// SwirlDetourRatio times the straight-line landmark distance, and each
	// swirl contributes length*SwirlPenaltyFactor to the estimate.
	SwirlPenaltyFactor float64
	SwirlDetourRatio   float64
}

// Option mutates a Settings during construction.
type Option func(*Settings)

// WithMetric overrides the oracle cost metric used for candidate paths.
func WithMetric(m oracle.Metric) Option { return func(s *Settings) { s.Metric = m } }

// WithGreedyInit toggles incumbent seeding via the greedy package.
func WithGreedyInit(enabled bool) Option { return func(s *Settings) { s.UseGreedyInit = enabled } }

// WithTimeLimit overrides the search's wall-clock budget.
func WithTimeLimit(d time.Duration) Option { return func(s *Settings) { s.TimeLimit = d } }

// WithExtendTimeLimitToEnsureSolution toggles running past TimeLimit until
// the first complete embedding is found, when no incumbent exists yet.
func WithExtendTimeLimitToEnsureSolution(enabled bool) Option {
	return func(s *Settings) { s.ExtendTimeLimitToEnsureSolution = enabled }
}

// WithEps overrides the pruning slack.
func WithEps(eps float64) Option { return func(s *Settings) { s.Eps = eps } }

// WithOptimalityGap overrides the early-stop gap threshold.
func WithOptimalityGap(gap float64) Option { return func(s *Settings) { s.OptimalityGap = gap } }

// WithProactivePruning toggles the swirl-estimate half of proactive
// pruning.
func WithProactivePruning(enabled bool) Option {
	return func(s *Settings) { s.UseProactivePruning = enabled }
}

// WithSwirlPenaltyFactor overrides the proactive swirl-estimate penalty.
func WithSwirlPenaltyFactor(f float64) Option {
	return func(s *Settings) { s.SwirlPenaltyFactor = f }
}

// WithSwirlDetourRatio overrides the proactive swirl-estimate detour
// threshold.
func WithSwirlDetourRatio(r float64) Option {
	return func(s *Settings) { s.SwirlDetourRatio = r }
}

// DefaultSettings returns the bnb package's default tuning.
func DefaultSettings() Settings {
	return Settings{
		Metric:              oracle.Geodesic,
		UseGreedyInit:       true,
		TimeLimit:           60 * time.Second,
		Eps:                 1e-9,
		OptimalityGap:       0,
		UseProactivePruning: false,
		SwirlPenaltyFactor:  2.0,
		SwirlDetourRatio:    2.0,
	}
}

// UpperBoundEvent records one incumbent improvement during the search.
type UpperBoundEvent struct {
	Iteration int
	Cost      float64
}

// LowerBoundEvent records the root (or any recorded) lower-bound estimate.
type LowerBoundEvent struct {
	Iteration int
	Bound     float64
}

// Result is the outcome of one Run call.
type Result struct {
	Sequence    embedding.InsertionSequence
	TotalLength float64
	Complete    bool
	TimedOut    bool
	NumIters    int

	// LowerBound is LB_global at termination: TotalLength itself when the
	// search proved optimality (the open set was exhausted without hitting
	// the time limit or the optimality gap), otherwise the root's
	// disjoint-oracle bound (spec.md §4.4/§8: "cost >= lower_bound >= 0").
	LowerBound float64

	// Gap is (TotalLength-LowerBound)/TotalLength, clamped to 0 when
	// TotalLength is 0 (spec.md §9 Open Question (b)).
	Gap float64

	// GapMet reports whether OptimalityGap's early-stop threshold, rather
	// than open-set exhaustion or the time limit, ended the search.
	GapMet bool

	UpperBoundEvents []UpperBoundEvent
	LowerBoundEvents []LowerBoundEvent

	// MaxStateTreeMemoryEstimateBytes is a conservative upper bound on peak
	// search memory, following spec.md §9's "sizeof(node) x |open| + |closed|"
	// style accounting: the deepest DFS stack depth reached times a fixed
	// per-node byte estimate (one InsertionSequence entry plus bookkeeping).
	MaxStateTreeMemoryEstimateBytes int64
}

// estimatedBytesPerSearchNode is the fixed per-node footprint used by
// MaxStateTreeMemoryEstimateBytes: one InsertionSequence entry (a layout
// EdgeID plus a short virtual.Path) together with the engine's small
// per-node bookkeeping (hash map entry, heap/stack frame overhead).
const estimatedBytesPerSearchNode = 128

// seedIncumbent runs greedy.EmbedCompetitors/Best against in and returns
// its sequence/cost as a starting incumbent, or ok=false if every variant
// left the embedding incomplete.
func seedIncumbent(in embedding.Input, metric oracle.Metric) (seq embedding.InsertionSequence, cost float64, ok bool) {
	results, err := greedy.EmbedCompetitors(in, greedy.WithMetric(metric))
	if err != nil {
		return nil, 0, false
	}
	best, err := greedy.Best(results)
	if err != nil || !best.Complete {
		return nil, 0, false
	}
	return best.Sequence, best.TotalLength, true
}
