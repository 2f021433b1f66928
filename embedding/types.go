package embedding

import (
	"errors"

	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// Sentinel errors for the embedding package.
var (
	// ErrInvalidInput indicates a malformed Input: a non-bijective landmark
	// correspondence, a coincident-landmark layout edge (zero-length target
	// span), or a mesh missing required structure.
	ErrInvalidInput = errors.New("embedding: invalid input")

	// ErrConstraintViolation indicates an EmbedPath call whose path would
	// violate spec.md §3's invariants: a blocked target vertex/edge reused,
	// a path not respecting the embeddable sector, or an already-embedded
	// layout edge re-embedded without first calling UnembedPath.
	ErrConstraintViolation = errors.New("embedding: constraint violation")

	// ErrNotEmbedded indicates a query or UnembedPath call against a layout
	// half-edge that currently has no stored path.
	ErrNotEmbedded = errors.New("embedding: layout edge is not embedded")

	// ErrIncomplete indicates GetPatch was called on a layout face with a
	// bounding half-edge that is not yet embedded. WriteEmb does not
	// return it: it serializes whatever is embedded at the time.
	ErrIncomplete = errors.New("embedding: embedding is not complete")
)

// Input bundles the two meshes and the landmark correspondence μ that seed
// a State (spec.md §3's EmbeddingInput).
type Input struct {
	Layout *mesh.Mesh
	Target *mesh.Mesh

	// LayoutToTarget is μ: V(L) → V(T). It must be total (every layout
	// vertex present as a key) and injective (spec.md §3: "a bijection onto
	// a subset — typically all — of the target's vertices").
	LayoutToTarget map[mesh.VertexID]mesh.VertexID
}

// embeddedEdge is the realized path for one layout Edge, stored in the
// direction of that edge's canonical half-edge (mesh.Edge.HalfEdge).
type embeddedEdge struct {
	path   virtual.Path
	length float64
}

// State is the mutable embedding record described in spec.md §3/§4.2. It
// owns a private clone of the target mesh; the layout mesh is referenced
// read-only. State is not safe for concurrent use (see doc.go).
type State struct {
	layout *mesh.Mesh
	target *mesh.Mesh

	layoutToTarget map[mesh.VertexID]mesh.VertexID
	targetToLayout map[mesh.VertexID]mesh.VertexID

	embedded map[mesh.EdgeID]*embeddedEdge // keyed by layout Edge id

	// blockedEdges/blockedVertices record which *target* elements are
	// currently occupied by an embedded path, and which layout edge
	// claimed them — so UnembedPath can release exactly what EmbedPath
	// claimed, without rescanning every other stored path.
	blockedEdges    map[mesh.EdgeID]mesh.EdgeID
	blockedVertices map[mesh.VertexID]mesh.EdgeID

	totalLength float64
}

// Layout returns the read-only layout mesh L.
func (s *State) Layout() *mesh.Mesh { return s.layout }

// Target returns the State's private target mesh T. Callers must not
// mutate it; treat it as read-only.
func (s *State) Target() *mesh.Mesh { return s.target }

// Landmark returns μ(v), the target vertex corresponding to layout vertex
// v, and whether v is a recognized layout vertex.
func (s *State) Landmark(v mesh.VertexID) (mesh.VertexID, bool) {
	t, ok := s.layoutToTarget[v]
	return t, ok
}

// LandmarkInverse returns μ⁻¹(v), the layout vertex mapping to target
// vertex v, and whether v is a landmark at all.
func (s *State) LandmarkInverse(v mesh.VertexID) (mesh.VertexID, bool) {
	l, ok := s.targetToLayout[v]
	return l, ok
}
