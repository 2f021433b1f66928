package virtual

import (
	"fmt"

	"github.com/patchgraph/layoutembed/mesh"
)

// Path is an ordered sequence of Vertex values realizing one embedded
// layout edge on the target mesh, per spec.md §3: endpoints are target
// vertices, and each consecutive pair is connected by a half-edge
// traversal (vertex-to-vertex adjacent; vertex-to-edge requires the edge
// incident to the vertex; edge-to-edge requires both edges to share a
// common triangle face).
type Path []Vertex

// NewPath validates elems against the spec.md §3 VirtualPath invariants
// and returns it as a Path, or an error describing the first violation.
func NewPath(m *mesh.Mesh, elems []Vertex) (Path, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyPath
	}
	if !elems[0].IsVertex() || !elems[len(elems)-1].IsVertex() {
		return nil, ErrEndpointNotVertex
	}
	for i := 0; i+1 < len(elems); i++ {
		if !adjacent(m, elems[i], elems[i+1]) {
			return nil, fmt.Errorf("virtual: step %d→%d: %w", i, i+1, ErrDisconnectedStep)
		}
	}
	return Path(elems), nil
}

// adjacent reports whether consecutive path elements a, b satisfy the
// spec.md §3 traversal rule for their respective kinds.
func adjacent(m *mesh.Mesh, a, b Vertex) bool {
	switch {
	case a.Kind == KindVertex && b.Kind == KindVertex:
		_, ok := m.HalfEdgeBetween(a.V, b.V)
		return ok
	case a.Kind == KindVertex && b.Kind == KindEdge:
		return edgeIncidentToVertex(m, b.Edge, a.V)
	case a.Kind == KindEdge && b.Kind == KindVertex:
		return edgeIncidentToVertex(m, a.Edge, b.V)
	default: // both KindEdge
		return edgesShareTriangle(m, a.Edge, b.Edge)
	}
}

func edgeIncidentToVertex(m *mesh.Mesh, e mesh.EdgeID, v mesh.VertexID) bool {
	p, q := m.EdgeVertices(e)
	return p == v || q == v
}

func edgesShareTriangle(m *mesh.Mesh, e1, e2 mesh.EdgeID) bool {
	facesOf := func(e mesh.EdgeID) [2]mesh.FaceID {
		h := m.Edge(e).HalfEdge
		return [2]mesh.FaceID{m.FaceOf(h), m.FaceOf(m.Opposite(h))}
	}
	f1, f2 := facesOf(e1), facesOf(e2)
	for _, a := range f1 {
		if a == mesh.NoFace {
			continue
		}
		for _, b := range f2 {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Length returns the sum of Euclidean distances between consecutive
// elements of p, via their 3D positions. Complexity: O(len(p)).
func (p Path) Length(m *mesh.Mesh) float64 {
	var total float64
	for i := 0; i+1 < len(p); i++ {
		total += p[i].Pos(m).Dist(p[i+1].Pos(m))
	}
	return total
}

// Reverse returns a new Path visiting p's elements in reverse order.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// StartVertex and EndVertex return the target vertex at either end of a
// well-formed Path (both are guaranteed KindVertex by NewPath).
func (p Path) StartVertex() mesh.VertexID { return p[0].V }
func (p Path) EndVertex() mesh.VertexID   { return p[len(p)-1].V }

// InteriorVertices returns every KindVertex element strictly between the
// two endpoints (i.e. excluding p[0] and p[len(p)-1]).
func (p Path) InteriorVertices() []mesh.VertexID {
	var out []mesh.VertexID
	for i := 1; i < len(p)-1; i++ {
		if p[i].Kind == KindVertex {
			out = append(out, p[i].V)
		}
	}
	return out
}

// TraversedEdges returns every target Edge the path passes along, in path
// order, including the edges touching either endpoint. Two distinct
// embedded layout edges must never return an overlapping set from this
// method (spec.md §3 invariant 2 / §8 "Non-overlap").
func (p Path) TraversedEdges(m *mesh.Mesh) []mesh.EdgeID {
	var out []mesh.EdgeID
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		switch {
		case a.Kind == KindEdge:
			out = append(out, a.Edge)
		case b.Kind == KindEdge:
			out = append(out, b.Edge)
		default: // vertex-to-vertex hop
			if e, ok := m.EdgeBetween(a.V, b.V); ok {
				out = append(out, e)
			}
		}
	}
	return out
}
