package embedding

import (
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// IsEmbedded reports whether the layout edge underlying hL already has a
// stored path.
func (s *State) IsEmbedded(hL mesh.HalfEdgeID) bool {
	_, ok := s.embedded[s.layout.HalfEdge(hL).Edge]
	return ok
}

// IsEmbeddedEdge is IsEmbedded keyed directly by layout EdgeID.
func (s *State) IsEmbeddedEdge(eL mesh.EdgeID) bool {
	_, ok := s.embedded[eL]
	return ok
}

// IsBlockedVertex reports whether target vertex vT is claimed by some
// already-embedded path (as an interior vertex; landmark endpoints are
// never blocked against themselves).
func (s *State) IsBlockedVertex(vT mesh.VertexID) bool {
	_, ok := s.blockedVertices[vT]
	return ok
}

// IsBlockedEdge reports whether target edge eT lies along some
// already-embedded path.
func (s *State) IsBlockedEdge(eT mesh.EdgeID) bool {
	_, ok := s.blockedEdges[eT]
	return ok
}

// IsBlocked reports whether virtual vertex vv (a point on the target mesh)
// is blocked, dispatching on its Kind.
func (s *State) IsBlocked(vv virtual.Vertex) bool {
	if vv.Kind == virtual.KindVertex {
		return s.IsBlockedVertex(vv.V)
	}
	return s.IsBlockedEdge(vv.Edge)
}

// GetEmbeddedPath returns the sequence of target vertices realizing layout
// half-edge hL, in hL's own direction. Embedded paths produced by this
// package's EmbedPath always consist of KindVertex elements only (the
// combinatorial search routes exclusively along existing target edges;
// see DESIGN.md), so the vertex chain below is a full, lossless
// description of the path.
func (s *State) GetEmbeddedPath(hL mesh.HalfEdgeID) ([]mesh.VertexID, error) {
	eL := s.layout.HalfEdge(hL).Edge
	ee, ok := s.embedded[eL]
	if !ok {
		return nil, ErrNotEmbedded
	}
	path := ee.path
	if s.layout.Edge(eL).HalfEdge != hL {
		path = path.Reverse()
	}
	out := make([]mesh.VertexID, len(path))
	for i, v := range path {
		out[i] = v.V
	}
	return out, nil
}

// GetEmbeddedVirtualPath is GetEmbeddedPath without the KindVertex-only
// projection, returned in hL's own direction.
func (s *State) GetEmbeddedVirtualPath(hL mesh.HalfEdgeID) (virtual.Path, error) {
	eL := s.layout.HalfEdge(hL).Edge
	ee, ok := s.embedded[eL]
	if !ok {
		return nil, ErrNotEmbedded
	}
	if s.layout.Edge(eL).HalfEdge != hL {
		return ee.path.Reverse(), nil
	}
	return ee.path, nil
}

// PathLength returns the already-embedded path length for layout edge eL,
// or 0/ErrNotEmbedded if it has none yet.
func (s *State) PathLength(eL mesh.EdgeID) (float64, error) {
	ee, ok := s.embedded[eL]
	if !ok {
		return 0, ErrNotEmbedded
	}
	return ee.length, nil
}

// TotalEmbeddedPathLength returns the sum of lengths of every path
// embedded so far (the branch-and-bound objective, spec.md §5).
func (s *State) TotalEmbeddedPathLength() float64 { return s.totalLength }

// IsComplete reports whether every layout edge has an embedded path.
func (s *State) IsComplete() bool {
	return len(s.embedded) == s.layout.EdgeCount()
}

// RemainingEdges returns the layout edges with no stored path yet, in
// ascending EdgeID order. Used by the greedy and branch-and-bound search
// to pick the next candidate.
func (s *State) RemainingEdges() []mesh.EdgeID {
	out := make([]mesh.EdgeID, 0, s.layout.EdgeCount()-len(s.embedded))
	for e := 0; e < s.layout.EdgeCount(); e++ {
		if _, ok := s.embedded[mesh.EdgeID(e)]; !ok {
			out = append(out, mesh.EdgeID(e))
		}
	}
	return out
}
