package greedy

import (
	"errors"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/oracle"
)

// Sentinel errors for the greedy package.
var (
	// ErrNoCompetitors indicates Best was called with an empty result set.
	ErrNoCompetitors = errors.New("greedy: no competitor results to choose from")
)

// Variant selects a layout-edge visitation order (spec.md §4.3) under
// InsertionOrder == Arbitrary, and is otherwise only a label identifying
// which named competitor produced a Result.
type Variant int

const (
	// VariantPraun visits layout edges in ascending EdgeID order — the
	// simplest baseline ordering.
	VariantPraun Variant = iota

	// VariantKraevoy visits layout edges shortest-estimated-span first
	// (ascending straight-line landmark distance), reducing the chance a
	// long edge claims territory a short one later needs.
	VariantKraevoy

	// VariantSchreiner first visits every edge around the top
	// ExtremalVertexRatio fraction of layout vertices, taken in descending
	// degree order (the most "extremal" vertices first), one vertex at a
	// time; the remaining edges follow in ascending EdgeID order.
	VariantSchreiner

	// VariantBlocking labels EmbedCompetitors' fourth, blocking-aware
	// competitor (spec.md §4.3: "embed_competitors runs the three named
	// variants and a blocking-aware one"). It visits edges in the same
	// ascending-EdgeID order as VariantPraun but is always run with
	// UseBlockingCondition forced on.
	VariantBlocking
)

// InsertionOrder selects the top-level scoring skeleton of spec.md §4.3's
// pseudocode.
type InsertionOrder int

const (
	// BestFirst recomputes a candidate path for every unembedded layout
	// edge at each step, scores them, and embeds the best-scoring one
	// (tie-break ascending layout edge id) — spec.md §4.3's "BestFirst"
	// insertion_order.
	BestFirst InsertionOrder = iota

	// Arbitrary visits layout edges once, in Variant's fixed order,
	// embedding each one's oracle candidate immediately without scoring
	// against the rest — spec.md §4.3's "Arbitrary" insertion_order.
	Arbitrary
)

// Settings configures one greedy run. Construct via DefaultSettings and
// Option values, mirroring builder.builderConfig/BuilderOption.
type Settings struct {
	Variant        Variant
	Metric         oracle.Metric
	InsertionOrder InsertionOrder

	// UseSwirlDetection toggles spec.md §6's use_swirl_detection option.
	// When false, candidate scoring and the final Result.Score/SwirlCount
	// ignore the swirl penalty entirely (every path is scored on raw
	// length alone). Default true.
	UseSwirlDetection bool

	// SwirlPenaltyFactor scales the scoring penalty applied for each
	// embedded (or candidate, under BestFirst) path whose length
	// substantially exceeds the straight-line distance between its
	// landmarks (a "swirl": a path that loops back on itself instead of
	// heading directly toward its target). Only applied when
	// UseSwirlDetection is true. Default 2.0.
	SwirlPenaltyFactor float64

	// SwirlDetourRatio is the path-length/straight-line-distance
	// threshold above which a path counts as a swirl. Default 2.0.
	SwirlDetourRatio float64

	// ExtremalVertexRatio is the fraction (by count, rounded up) of
	// highest-degree layout vertices VariantSchreiner prioritizes before
	// falling back to ascending EdgeID for the remainder. Default 0.25.
	ExtremalVertexRatio float64

	// UseBlockingCondition toggles spec.md §4.3's "Blocking condition"
	// scoring option: a candidate is rejected if hypothetically embedding
	// it would leave some other unembedded layout edge with no feasible
	// sector. Default false (only EmbedCompetitors' blocking-aware
	// competitor forces this on).
	UseBlockingCondition bool
}

// Option mutates a Settings during construction.
type Option func(*Settings)

// WithVariant overrides the visitation order variant.
func WithVariant(v Variant) Option { return func(s *Settings) { s.Variant = v } }

// WithMetric overrides the oracle cost metric used by ShortestPathForLayoutEdge.
func WithMetric(m oracle.Metric) Option { return func(s *Settings) { s.Metric = m } }

// WithSwirlPenaltyFactor overrides the swirl scoring penalty.
func WithSwirlPenaltyFactor(f float64) Option {
	return func(s *Settings) { s.SwirlPenaltyFactor = f }
}

// WithSwirlDetection toggles use_swirl_detection.
func WithSwirlDetection(enabled bool) Option {
	return func(s *Settings) { s.UseSwirlDetection = enabled }
}

// WithInsertionOrder overrides the top-level scoring skeleton
// (BestFirst/Arbitrary).
func WithInsertionOrder(o InsertionOrder) Option {
	return func(s *Settings) { s.InsertionOrder = o }
}

// WithBlockingCondition toggles the look-ahead feasibility check that
// forbids a candidate which would leave some other unembedded edge
// without a feasible sector.
func WithBlockingCondition(enabled bool) Option {
	return func(s *Settings) { s.UseBlockingCondition = enabled }
}

// WithExtremalVertexRatio overrides VariantSchreiner's extremal-vertex
// fraction.
func WithExtremalVertexRatio(r float64) Option {
	return func(s *Settings) { s.ExtremalVertexRatio = r }
}

// DefaultSettings returns the greedy package's default tuning.
func DefaultSettings() Settings {
	return Settings{
		Variant:              VariantPraun,
		Metric:               oracle.Geodesic,
		InsertionOrder:       BestFirst,
		UseSwirlDetection:    true,
		SwirlPenaltyFactor:   2.0,
		SwirlDetourRatio:     2.0,
		ExtremalVertexRatio:  0.25,
		UseBlockingCondition: false,
	}
}

// Result is the outcome of one greedy run.
type Result struct {
	State       *embedding.State
	Sequence    embedding.InsertionSequence
	Variant     Variant
	Complete    bool
	TotalLength float64
	SwirlCount  int
	Score       float64
}
