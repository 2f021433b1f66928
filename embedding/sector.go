package embedding

import (
	"fmt"

	"github.com/patchgraph/layoutembed/mesh"
)

// EmbeddableSector returns the target half-edges, outgoing from
// μ(From(hL)), that a new path for hL is permitted to start along without
// violating spec.md §3 invariant 4 (embedded paths leave each landmark in
// the same cyclic order as their layout half-edges).
//
// The sector is the open rotational arc between the target directions of
// hL's nearest already-embedded layout neighbors at the same layout
// vertex, walking forward and backward through From(hL)'s layout rotation
// (mesh.Mesh.OutgoingHalfEdges). If neither neighbor is embedded yet, the
// sector is every outgoing target half-edge not already blocked.
//
// Grounded on dijkstra's runner, which likewise derives its legal next
// states from a small neighborhood scan rather than a precomputed table.
func (s *State) EmbeddableSector(hL mesh.HalfEdgeID) ([]mesh.HalfEdgeID, error) {
	vL := s.layout.From(hL)
	vT, ok := s.Landmark(vL)
	if !ok {
		return nil, fmt.Errorf("%w: layout vertex %d has no landmark", ErrInvalidInput, vL)
	}

	rotation := s.layout.OutgoingHalfEdges(vL)
	idx := indexOf(rotation, hL)
	if idx < 0 {
		return nil, fmt.Errorf("%w: half-edge %d does not originate at a rotation member", ErrInvalidInput, hL)
	}

	lowerDir, haveLower := s.firstEmbeddedDirection(rotation, idx, -1)
	upperDir, haveUpper := s.firstEmbeddedDirection(rotation, idx, +1)

	targetRotation := s.target.OutgoingHalfEdges(vT)
	if !haveLower && !haveUpper {
		out := make([]mesh.HalfEdgeID, 0, len(targetRotation))
		for _, h := range targetRotation {
			if !s.IsBlockedVertex(s.target.To(h)) {
				out = append(out, h)
			}
		}
		return out, nil
	}

	anchor := upperDir
	if haveLower {
		anchor = lowerDir
	}
	tIdx := indexOf(targetRotation, anchor)
	if tIdx < 0 {
		return nil, fmt.Errorf("%w: embedded neighbor direction not found in target rotation", ErrConstraintViolation)
	}

	var out []mesh.HalfEdgeID
	n := len(targetRotation)
	for step := 1; step < n; step++ {
		h := targetRotation[(tIdx+step)%n]
		if haveUpper && h == upperDir {
			break
		}
		if !s.IsBlockedVertex(s.target.To(h)) {
			out = append(out, h)
		}
	}
	return out, nil
}

// firstEmbeddedDirection scans rotation starting at idx+dir, wrapping,
// until it finds an already-embedded half-edge distinct from rotation[idx],
// returning the target half-edge its stored path departs along.
func (s *State) firstEmbeddedDirection(rotation []mesh.HalfEdgeID, idx, dir int) (mesh.HalfEdgeID, bool) {
	n := len(rotation)
	for step := 1; step < n; step++ {
		i := ((idx+dir*step)%n + n) % n
		h := rotation[i]
		if !s.IsEmbedded(h) {
			continue
		}
		path, err := s.GetEmbeddedVirtualPath(h)
		if err != nil || len(path) < 2 {
			continue
		}
		vT, _ := s.Landmark(s.layout.From(h))
		if hT, ok := s.target.HalfEdgeBetween(vT, path[1].V); ok {
			return hT, true
		}
	}
	return 0, false
}

func indexOf(hs []mesh.HalfEdgeID, target mesh.HalfEdgeID) int {
	for i, h := range hs {
		if h == target {
			return i
		}
	}
	return -1
}
