package smoothing

import (
	"fmt"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// Subdivide returns a new *embedding.State whose target mesh has had
// nIters rounds of Loop subdivision applied, with every already-embedded
// path re-expressed over the denser mesh (restored from
// original_source/pig/PathSmoothing.hh's `subdivide`; spec.md §1 lists
// "loop subdivision of T" as an external-collaborator concern the
// distilled text otherwise only mentions in passing).
func Subdivide(state *embedding.State, nIters int) (*embedding.State, error) {
	cur := state
	for i := 0; i < nIters; i++ {
		next, err := subdivideOnce(cur)
		if err != nil {
			return nil, fmt.Errorf("smoothing: subdivide iteration %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

// subdivideOnce performs exactly one level of Loop subdivision.
func subdivideOnce(state *embedding.State) (*embedding.State, error) {
	target := state.Target()
	refined, midpoint, err := loopSubdivideMesh(target)
	if err != nil {
		return nil, err
	}

	layout := state.Layout()
	landmarks := make(map[mesh.VertexID]mesh.VertexID, layout.VertexCount())
	for lv := 0; lv < layout.VertexCount(); lv++ {
		tv, ok := state.Landmark(mesh.VertexID(lv))
		if !ok {
			continue
		}
		landmarks[mesh.VertexID(lv)] = tv // even (original) vertex IDs are preserved
	}

	refinedState, err := embedding.NewState(embedding.Input{
		Layout:         layout,
		Target:         refined,
		LayoutToTarget: landmarks,
	})
	if err != nil {
		return nil, err
	}

	for e := 0; e < layout.EdgeCount(); e++ {
		hL := layout.Edge(mesh.EdgeID(e)).HalfEdge
		if !state.IsEmbedded(hL) {
			continue
		}
		verts, err := state.GetEmbeddedPath(hL)
		if err != nil {
			return nil, err
		}
		expanded := expandPathThroughMidpoints(target, verts, midpoint)
		path := make(virtual.Path, len(expanded))
		for i, v := range expanded {
			path[i] = virtual.NewOnVertex(v)
		}
		if err := refinedState.EmbedPath(hL, path); err != nil {
			return nil, fmt.Errorf("re-embedding layout edge %d after subdivision: %w", e, err)
		}
	}
	return refinedState, nil
}

// expandPathThroughMidpoints rewrites a vertex chain over the
// pre-subdivision mesh into one over the subdivided mesh, by inserting the
// new edge-midpoint vertex between every consecutive original pair (every
// original edge is always split, so no original pair survives as a direct
// hop).
func expandPathThroughMidpoints(orig *mesh.Mesh, verts []mesh.VertexID, midpoint map[mesh.EdgeID]mesh.VertexID) []mesh.VertexID {
	if len(verts) == 0 {
		return nil
	}
	out := make([]mesh.VertexID, 0, 2*len(verts)-1)
	out = append(out, verts[0])
	for i := 0; i+1 < len(verts); i++ {
		e, ok := orig.EdgeBetween(verts[i], verts[i+1])
		if ok {
			out = append(out, midpoint[e], verts[i+1])
		} else {
			out = append(out, verts[i+1])
		}
	}
	return out
}

// loopSubdivideMesh returns a new mesh with one level of Loop subdivision
// applied to m, plus the map from each original edge to its new midpoint
// vertex. Even (original) vertices keep their VertexID in the refined
// mesh. m must be purely triangular (ErrNonTriangleTarget otherwise).
func loopSubdivideMesh(m *mesh.Mesh) (*mesh.Mesh, map[mesh.EdgeID]mesh.VertexID, error) {
	for f := 0; f < m.FaceCount(); f++ {
		if !m.IsTriangle(mesh.FaceID(f)) {
			return nil, nil, fmt.Errorf("face %d: %w", f, ErrNonTriangleTarget)
		}
	}

	out := mesh.NewMesh()
	for v := 0; v < m.VertexCount(); v++ {
		out.AddVertex(evenVertexPosition(m, mesh.VertexID(v)))
	}

	midpoint := make(map[mesh.EdgeID]mesh.VertexID, m.EdgeCount())
	for e := 0; e < m.EdgeCount(); e++ {
		eid := mesh.EdgeID(e)
		midpoint[eid] = out.AddVertex(oddVertexPosition(m, eid))
	}

	for f := 0; f < m.FaceCount(); f++ {
		fid := mesh.FaceID(f)
		hs := m.FaceHalfEdges(fid)
		a, b, c := m.From(hs[0]), m.From(hs[1]), m.From(hs[2])
		mab := midpoint[m.HalfEdge(hs[0]).Edge]
		mbc := midpoint[m.HalfEdge(hs[1]).Edge]
		mca := midpoint[m.HalfEdge(hs[2]).Edge]

		corners := [][]mesh.VertexID{
			{a, mab, mca},
			{mab, b, mbc},
			{mca, mbc, c},
			{mab, mbc, mca},
		}
		for _, tri := range corners {
			if _, err := out.AddFace(tri); err != nil {
				return nil, nil, fmt.Errorf("smoothing: internal: %w", err)
			}
		}
	}
	if err := out.Finalize(); err != nil {
		return nil, nil, fmt.Errorf("smoothing: internal: %w", err)
	}
	return out, midpoint, nil
}

// evenVertexPosition applies Loop's even-vertex rule: an interior vertex
// of degree n is pulled toward its one-ring average by beta(n); a
// boundary vertex is pulled only toward its two boundary neighbors.
func evenVertexPosition(m *mesh.Mesh, v mesh.VertexID) mesh.Point {
	orig := m.Position(v)
	if m.IsBoundaryVertex(v) {
		var sum mesh.Point
		count := 0
		for _, h := range m.OutgoingHalfEdges(v) {
			if m.IsBoundary(h) || m.IsBoundary(m.Opposite(h)) {
				sum = sum.Add(m.Position(m.To(h)))
				count++
			}
		}
		if count == 0 {
			return orig
		}
		return orig.Scale(0.75).Add(sum.Scale(0.125))
	}

	n := m.VertexDegree(v)
	if n == 0 {
		return orig
	}
	var sum mesh.Point
	for _, h := range m.OutgoingHalfEdges(v) {
		sum = sum.Add(m.Position(m.To(h)))
	}
	beta := 3.0 / 16.0
	if n != 3 {
		beta = 3.0 / (8.0 * float64(n))
	}
	return orig.Scale(1 - float64(n)*beta).Add(sum.Scale(beta))
}

// oddVertexPosition applies Loop's odd-vertex (edge-midpoint) rule: an
// interior edge's midpoint is 3/8 its two endpoints plus 1/8 the two
// triangles' opposite apex vertices; a boundary edge's midpoint is the
// plain average of its endpoints.
func oddVertexPosition(m *mesh.Mesh, e mesh.EdgeID) mesh.Point {
	h := m.Edge(e).HalfEdge
	a, b := m.From(h), m.To(h)
	posA, posB := m.Position(a), m.Position(b)

	hOpp := m.Opposite(h)
	fA, fB := m.FaceOf(h), m.FaceOf(hOpp)
	if fA == mesh.NoFace || fB == mesh.NoFace {
		return posA.Add(posB).Scale(0.5)
	}

	apex1 := m.To(m.Next(h))
	apex2 := m.To(m.Next(hOpp))
	sum := posA.Add(posB).Scale(3.0 / 8.0)
	sum = sum.Add(m.Position(apex1).Add(m.Position(apex2)).Scale(1.0 / 8.0))
	return sum
}
