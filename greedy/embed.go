package greedy

import (
	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/oracle"
	"github.com/patchgraph/layoutembed/virtual"
)

// EmbedGreedy runs one of spec.md §4.3's two insertion_order skeletons
// against state: BestFirst rescans every unembedded layout edge at each
// step and embeds the best-scoring candidate, while Arbitrary visits
// settings.Variant's fixed order once, embedding each edge's oracle
// candidate immediately. An edge the oracle or embedding layer rejects is
// simply left unembedded; EmbedGreedy always returns a Result, with
// Complete reporting whether every edge made it in.
func EmbedGreedy(state *embedding.State, opts ...Option) (*Result, error) {
	settings := DefaultSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	o, err := oracle.NewOracle(state)
	if err != nil {
		return nil, err
	}

	if settings.InsertionOrder == Arbitrary {
		return embedArbitrary(state, o, settings), nil
	}
	return embedBestFirst(state, o, settings), nil
}

// embedArbitrary realizes insertion_order == Arbitrary: a single pass over
// settings.Variant's fixed visitation order, embedding each edge's oracle
// candidate as soon as it is found feasible.
func embedArbitrary(state *embedding.State, o *oracle.Oracle, settings Settings) *Result {
	order := computeOrder(state, settings)
	layout := state.Layout()
	for _, eL := range order {
		if state.IsEmbeddedEdge(eL) {
			continue
		}
		hL := layout.Edge(eL).HalfEdge
		path, _, err := o.ShortestPathForLayoutEdge(hL, settings.Metric)
		if err != nil {
			continue // infeasible under current blocking; leave unembedded
		}
		if settings.UseBlockingCondition {
			if blocked, err := wouldDisconnect(state, o, hL, path); err != nil || blocked {
				continue
			}
		}
		if err := state.EmbedPath(hL, path); err != nil {
			continue // oracle's path violated the far-end sector; skip
		}
		o.InvalidateField()
	}
	return buildResult(state, settings)
}

// bestFirstCandidate is one unembedded edge's current best-known path and
// its scalar score, as scanned fresh at each embedBestFirst step.
type bestFirstCandidate struct {
	eL    mesh.EdgeID
	hL    mesh.HalfEdgeID
	path  virtual.Path
	score float64
}

// embedBestFirst realizes spec.md §4.3's pseudocode literally: while any
// layout edge remains unembedded, compute a candidate for every one of
// them, score each, and embed the single best-scoring candidate
// (ties broken by ascending layout edge id, via state.RemainingEdges'
// ascending order and a strict '<' comparison). Edges whose candidate
// fails to actually embed (far-end sector rejection) are permanently
// excluded from further consideration in this run, since the state that
// produced the failure has not changed and recomputing would simply fail
// again.
func embedBestFirst(state *embedding.State, o *oracle.Oracle, settings Settings) *Result {
	excluded := make(map[mesh.EdgeID]bool)
	layout := state.Layout()
	for {
		var best *bestFirstCandidate
		for _, eL := range state.RemainingEdges() {
			if excluded[eL] {
				continue
			}
			hL := layout.Edge(eL).HalfEdge
			path, length, err := o.ShortestPathForLayoutEdge(hL, settings.Metric)
			if err != nil {
				continue
			}
			if settings.UseBlockingCondition {
				if blocked, err := wouldDisconnect(state, o, hL, path); err != nil || blocked {
					continue
				}
			}
			score := candidateScore(state, settings, eL, length)
			if best == nil || score < best.score {
				best = &bestFirstCandidate{eL: eL, hL: hL, path: path, score: score}
			}
		}
		if best == nil {
			break // no feasible candidate anywhere: stop, leaving the rest unembedded
		}
		if err := state.EmbedPath(best.hL, best.path); err != nil {
			excluded[best.eL] = true
			continue
		}
		o.InvalidateField()
	}
	return buildResult(state, settings)
}

// candidateScore is BestFirst's choice function: raw path length, scaled
// up when UseSwirlDetection is on and the path detours past
// SwirlDetourRatio times the straight-line landmark distance.
func candidateScore(state *embedding.State, settings Settings, eL mesh.EdgeID, length float64) float64 {
	score := length
	if !settings.UseSwirlDetection {
		return score
	}
	layout := state.Layout()
	a, b := layout.EdgeVertices(eL)
	ta, _ := state.Landmark(a)
	tb, _ := state.Landmark(b)
	straight := state.Target().Position(ta).Dist(state.Target().Position(tb))
	if straight > 0 && length/straight > settings.SwirlDetourRatio {
		score *= 1 + settings.SwirlPenaltyFactor
	}
	return score
}

// wouldDisconnect implements spec.md §4.3's "Blocking condition": it
// hypothetically embeds path for hL and checks whether every other
// still-unembedded layout edge retains a non-empty embeddable sector,
// undoing the trial embedding before returning. A nil-error, true result
// means path must be rejected as a candidate; a non-nil error means path
// could not even be hypothetically embedded (also a rejection).
func wouldDisconnect(state *embedding.State, o *oracle.Oracle, hL mesh.HalfEdgeID, path virtual.Path) (bool, error) {
	if err := state.EmbedPath(hL, path); err != nil {
		return false, err
	}
	defer func() {
		_ = state.UnembedPath(hL)
		o.InvalidateField()
	}()
	o.InvalidateField()
	layout := state.Layout()
	for _, eL := range state.RemainingEdges() {
		hLx := layout.Edge(eL).HalfEdge
		sector, err := state.EmbeddableSector(hLx)
		if err != nil || len(sector) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// EmbedPraun runs EmbedGreedy with VariantPraun.
func EmbedPraun(state *embedding.State, opts ...Option) (*Result, error) {
	return EmbedGreedy(state, append([]Option{WithVariant(VariantPraun)}, opts...)...)
}

// EmbedKraevoy runs EmbedGreedy with VariantKraevoy.
func EmbedKraevoy(state *embedding.State, opts ...Option) (*Result, error) {
	return EmbedGreedy(state, append([]Option{WithVariant(VariantKraevoy)}, opts...)...)
}

// EmbedSchreiner runs EmbedGreedy with VariantSchreiner.
func EmbedSchreiner(state *embedding.State, opts ...Option) (*Result, error) {
	return EmbedGreedy(state, append([]Option{WithVariant(VariantSchreiner)}, opts...)...)
}

// EmbedBlockingAware runs EmbedGreedy with VariantBlocking and
// UseBlockingCondition forced on, realizing spec.md §4.3's "blocking
// condition" scoring option as its own named competitor.
func EmbedBlockingAware(state *embedding.State, opts ...Option) (*Result, error) {
	forced := append([]Option{WithVariant(VariantBlocking)}, opts...)
	forced = append(forced, WithBlockingCondition(true))
	return EmbedGreedy(state, forced...)
}

// EmbedCompetitors runs the three named variants plus a blocking-aware
// competitor against independent clones of in, via independent
// embedding.State constructions, and returns all four results for Best to
// choose among (spec.md §4.3: "embed_competitors runs the three named
// variants and a blocking-aware one and returns all results").
func EmbedCompetitors(in embedding.Input, opts ...Option) ([]*Result, error) {
	variants := []Variant{VariantPraun, VariantKraevoy, VariantSchreiner}
	results := make([]*Result, 0, len(variants)+1)
	for _, v := range variants {
		st, err := embedding.NewState(in)
		if err != nil {
			return nil, err
		}
		res, err := EmbedGreedy(st, append([]Option{WithVariant(v)}, opts...)...)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	stB, err := embedding.NewState(in)
	if err != nil {
		return nil, err
	}
	resB, err := EmbedBlockingAware(stB, opts...)
	if err != nil {
		return nil, err
	}
	results = append(results, resB)

	return results, nil
}

// Best returns the lowest-Score result in results, preferring any Complete
// result over an incomplete one regardless of score.
func Best(results []*Result) (*Result, error) {
	if len(results) == 0 {
		return nil, ErrNoCompetitors
	}
	best := results[0]
	for _, r := range results[1:] {
		if better(r, best) {
			best = r
		}
	}
	return best, nil
}

func better(a, b *Result) bool {
	if a.Complete != b.Complete {
		return a.Complete
	}
	return a.Score < b.Score
}
