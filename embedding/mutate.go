package embedding

import (
	"fmt"

	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// EmbedPath records path as the realization of layout half-edge hL,
// reversibly: a later UnembedPath(hL) restores the State to exactly its
// pre-call condition. EmbedPath rejects any path that would violate
// spec.md §3's invariants (endpoints not matching the landmarks of hL,
// a blocked interior vertex or edge reused, a starting direction outside
// EmbeddableSector(hL), or hL already embedded) with ErrConstraintViolation.
func (s *State) EmbedPath(hL mesh.HalfEdgeID, path virtual.Path) error {
	eL := s.layout.HalfEdge(hL).Edge
	if s.IsEmbeddedEdge(eL) {
		return fmt.Errorf("%w: layout edge %d already embedded", ErrConstraintViolation, eL)
	}
	for _, v := range path {
		if v.Kind != virtual.KindVertex {
			return fmt.Errorf("%w: path for layout edge %d touches edge interior, unsupported by the combinatorial embedder", ErrConstraintViolation, eL)
		}
	}

	wantFrom, ok := s.Landmark(s.layout.From(hL))
	if !ok {
		return fmt.Errorf("%w: layout vertex %d has no landmark", ErrInvalidInput, s.layout.From(hL))
	}
	wantTo, ok := s.Landmark(s.layout.To(hL))
	if !ok {
		return fmt.Errorf("%w: layout vertex %d has no landmark", ErrInvalidInput, s.layout.To(hL))
	}
	if len(path) < 2 || path.StartVertex() != wantFrom || path.EndVertex() != wantTo {
		return fmt.Errorf("%w: path endpoints do not match landmarks of layout edge %d", ErrConstraintViolation, eL)
	}

	sector, err := s.EmbeddableSector(hL)
	if err != nil {
		return err
	}
	hStart, ok := s.target.HalfEdgeBetween(path[0].V, path[1].V)
	if !ok || !halfEdgeIn(sector, hStart) {
		return fmt.Errorf("%w: path for layout edge %d starts outside its embeddable sector", ErrConstraintViolation, eL)
	}

	hOpp := s.layout.Opposite(hL)
	sectorOpp, err := s.EmbeddableSector(hOpp)
	if err != nil {
		return err
	}
	hEnd, ok := s.target.HalfEdgeBetween(path[len(path)-1].V, path[len(path)-2].V)
	if !ok || !halfEdgeIn(sectorOpp, hEnd) {
		return fmt.Errorf("%w: path for layout edge %d ends outside the opposite landmark's embeddable sector", ErrConstraintViolation, eL)
	}

	for _, v := range path.InteriorVertices() {
		if s.IsBlockedVertex(v) {
			return fmt.Errorf("%w: target vertex %d already claimed by another path", ErrConstraintViolation, v)
		}
	}
	traversed := path.TraversedEdges(s.target)
	for _, e := range traversed {
		if s.IsBlockedEdge(e) {
			return fmt.Errorf("%w: target edge %d already claimed by another path", ErrConstraintViolation, e)
		}
	}

	canonical := path
	if s.layout.Edge(eL).HalfEdge != hL {
		canonical = path.Reverse()
	}
	length := path.Length(s.target)
	s.embedded[eL] = &embeddedEdge{path: canonical, length: length}
	for _, v := range path.InteriorVertices() {
		s.blockedVertices[v] = eL
	}
	for _, e := range traversed {
		s.blockedEdges[e] = eL
	}
	s.totalLength += length
	return nil
}

// UnembedPath removes the stored path for layout half-edge hL, releasing
// every target vertex/edge it had claimed, and is the exact inverse of the
// EmbedPath call that installed it.
func (s *State) UnembedPath(hL mesh.HalfEdgeID) error {
	eL := s.layout.HalfEdge(hL).Edge
	ee, ok := s.embedded[eL]
	if !ok {
		return ErrNotEmbedded
	}
	for _, v := range ee.path.InteriorVertices() {
		delete(s.blockedVertices, v)
	}
	for _, e := range ee.path.TraversedEdges(s.target) {
		delete(s.blockedEdges, e)
	}
	s.totalLength -= ee.length
	delete(s.embedded, eL)
	return nil
}

func halfEdgeIn(hs []mesh.HalfEdgeID, h mesh.HalfEdgeID) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}
