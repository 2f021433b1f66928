package oracle

import (
	"errors"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
)

// Sentinel errors for the oracle package.
var (
	// ErrInfeasible indicates no legal path exists between the requested
	// endpoints under the current blocked-element set and sector
	// constraints.
	ErrInfeasible = errors.New("oracle: no feasible path")

	// ErrNilState indicates a nil *embedding.State was given to NewOracle.
	// ShortestPathForLayoutEdge also returns it when an endpoint of the
	// layout half-edge has no landmark in the State.
	ErrNilState = errors.New("oracle: nil embedding state")
)

// Metric selects the edge-cost model used by a search.
type Metric int

const (
	// Geodesic costs each traversed edge at its Euclidean length —
	// equivalent to an edge-unfolding straight-line distance once the
	// search graph is restricted to the mesh's own edges.
	Geodesic Metric = iota

	// VertexRepulsive scales each edge's Geodesic cost by a harmonic
	// scalar field (field.go) that is high near landmarks and vertices
	// already claimed by other paths, steering new paths away from
	// congestion.
	VertexRepulsive
)

// Options configures a single Oracle. Mirrors dijkstra.Options: a small
// struct of tunables applied via functional Option values, constructed
// through DefaultOptions.
type Options struct {
	// RepulsionStrength scales the VertexRepulsive field's contribution to
	// edge cost; 0 degenerates to plain Geodesic. Must be >= 0.
	RepulsionStrength float64
}

// Option mutates an Options during construction.
type Option func(*Options)

// WithRepulsionStrength overrides the default VertexRepulsive field
// weighting.
func WithRepulsionStrength(strength float64) Option {
	return func(o *Options) { o.RepulsionStrength = strength }
}

// DefaultOptions returns the oracle's default tuning.
func DefaultOptions() Options {
	return Options{RepulsionStrength: 4.0}
}

// Oracle answers shortest-path queries against a *embedding.State's target
// mesh, honoring its current blocked-element set and per-landmark
// embeddable sectors. It is not safe for concurrent use; an Oracle is
// meant to be owned by a single greedy or branch-and-bound search.
type Oracle struct {
	state   *embedding.State
	target  *mesh.Mesh
	options Options

	ws workspace

	field      []float64 // cached VertexRepulsive scalar field, one entry per target vertex
	fieldValid bool
}

// NewOracle returns an Oracle reading blocked-element and sector state
// from state.
func NewOracle(state *embedding.State, opts ...Option) (*Oracle, error) {
	if state == nil {
		return nil, ErrNilState
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	target := state.Target()
	return &Oracle{
		state:   state,
		target:  target,
		options: cfg,
		ws:      newWorkspace(target.VertexCount()),
	}, nil
}

// InvalidateField forces the VertexRepulsive field to be recomputed on its
// next use. Callers must invoke this after any EmbedPath/UnembedPath call
// on the underlying state, since the field depends on which vertices are
// currently blocked.
func (o *Oracle) InvalidateField() { o.fieldValid = false }
