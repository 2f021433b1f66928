package virtual

import (
	"errors"
	"fmt"

	"github.com/patchgraph/layoutembed/mesh"
)

// Sentinel errors for the virtual package.
var (
	// ErrBadParameter indicates a barycentric parameter outside (0,1) was
	// given for an edge-kind Vertex (values of exactly 0 or 1 normalize to
	// the vertex variant instead — see NewOnEdge).
	ErrBadParameter = errors.New("virtual: barycentric parameter out of (0,1)")

	// ErrEmptyPath indicates an operation required at least one VirtualVertex.
	ErrEmptyPath = errors.New("virtual: path is empty")

	// ErrEndpointNotVertex indicates a VirtualPath's first or last element
	// was not a target-vertex-kind VirtualVertex (spec.md §3 invariant:
	// "endpoints are target vertices").
	ErrEndpointNotVertex = errors.New("virtual: path endpoint is not a target vertex")

	// ErrDisconnectedStep indicates two consecutive VirtualVertex values in
	// a VirtualPath are not connected by a valid half-edge traversal.
	ErrDisconnectedStep = errors.New("virtual: consecutive path elements are not adjacent on the target mesh")
)

// Kind discriminates the two payload shapes a Vertex may carry.
type Kind int

const (
	// KindVertex holds a target mesh vertex (a path endpoint, or any
	// interior vertex the path happens to pass through).
	KindVertex Kind = iota

	// KindEdge holds a point on a target mesh edge at barycentric
	// parameter Param ∈ (0,1), measured from EdgeVertices(Edge) first
	// endpoint toward its second.
	KindEdge
)

// Vertex is the tagged union described in spec.md §3: either a target
// vertex or a point on a target edge. Equality is defined so that
// Param == 0 or Param == 1 collapse to the corresponding vertex variant —
// callers should always construct edge-kind values via NewOnEdge, which
// performs this normalization, rather than the Vertex literal directly.
type Vertex struct {
	Kind  Kind
	V     mesh.VertexID // valid when Kind == KindVertex
	Edge  mesh.EdgeID   // valid when Kind == KindEdge
	Param float64       // valid when Kind == KindEdge, in (0,1)
}

// NewOnVertex returns a Vertex wrapping a target mesh vertex.
func NewOnVertex(v mesh.VertexID) Vertex {
	return Vertex{Kind: KindVertex, V: v}
}

// NewOnEdge returns a Vertex at parameter t along edge e, measured from
// its first EdgeVertices endpoint toward its second. t == 0 or t == 1
// normalize to the incident vertex variant (spec.md §3 edge case); any
// other t outside (0,1) is rejected with ErrBadParameter.
func NewOnEdge(m *mesh.Mesh, e mesh.EdgeID, t float64) (Vertex, error) {
	a, b := m.EdgeVertices(e)
	switch {
	case t == 0:
		return NewOnVertex(a), nil
	case t == 1:
		return NewOnVertex(b), nil
	case t > 0 && t < 1:
		return Vertex{Kind: KindEdge, Edge: e, Param: t}, nil
	default:
		return Vertex{}, fmt.Errorf("virtual: t=%v: %w", t, ErrBadParameter)
	}
}

// Equal reports whether v and w denote the same point (after Kind==KindEdge
// normalization, which NewOnEdge already guarantees for well-formed
// values).
func (v Vertex) Equal(w Vertex) bool {
	if v.Kind != w.Kind {
		return false
	}
	if v.Kind == KindVertex {
		return v.V == w.V
	}
	return v.Edge == w.Edge && v.Param == w.Param
}

// Pos returns the 3D position of v by linear interpolation along its edge
// (or directly, for a vertex-kind value).
func (v Vertex) Pos(m *mesh.Mesh) mesh.Point {
	if v.Kind == KindVertex {
		return m.Position(v.V)
	}
	a, b := m.EdgeVertices(v.Edge)
	return m.Position(a).Lerp(m.Position(b), v.Param)
}

// IsVertex reports whether v wraps a target mesh vertex.
func (v Vertex) IsVertex() bool { return v.Kind == KindVertex }

// HashKey returns a comparable value suitable for use as a Go map key: the
// VertexID for a vertex-kind value, the (Edge, Param) pair otherwise.
func (v Vertex) HashKey() any {
	if v.Kind == KindVertex {
		return v.V
	}
	return [2]any{v.Edge, v.Param}
}
