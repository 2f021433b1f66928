package embedding_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// buildTargetQuad returns a quad ABCD (A,B,C,D at the corners) triangulated
// along the A-C diagonal, so that B and D are not directly adjacent and any
// path between their landmarks must route through C.
func buildTargetQuad(t *testing.T) (m *mesh.Mesh, a, b, c, d mesh.VertexID) {
	t.Helper()
	m = mesh.NewMesh()
	a = m.AddVertex(mesh.Point{X: 0, Y: 0})
	b = m.AddVertex(mesh.Point{X: 2, Y: 0})
	c = m.AddVertex(mesh.Point{X: 2, Y: 2})
	d = m.AddVertex(mesh.Point{X: 0, Y: 2})
	_, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)
	_, err = m.AddFace([]mesh.VertexID{a, c, d})
	require.NoError(t, err)
	require.NoError(t, m.Finalize())
	return m, a, b, c, d
}

func buildLayoutTriangle(t *testing.T) (m *mesh.Mesh, l0, l1, l2 mesh.VertexID, face mesh.FaceID) {
	t.Helper()
	m = mesh.NewMesh()
	l0 = m.AddVertex(mesh.Point{X: 0, Y: 0})
	l1 = m.AddVertex(mesh.Point{X: 1, Y: 0})
	l2 = m.AddVertex(mesh.Point{X: 0, Y: 1})
	face, err := m.AddFace([]mesh.VertexID{l0, l1, l2})
	require.NoError(t, err)
	require.NoError(t, m.Finalize())
	return m, l0, l1, l2, face
}

func newTriangleOverQuad(t *testing.T) (*embedding.State, mesh.VertexID, mesh.VertexID, mesh.VertexID, mesh.FaceID) {
	t.Helper()
	layout, l0, l1, l2, face := buildLayoutTriangle(t)
	target, a, b, _, d := buildTargetQuad(t)

	s, err := embedding.NewState(embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			l0: a,
			l1: b,
			l2: d,
		},
	})
	require.NoError(t, err)
	return s, l0, l1, l2, face
}

func TestNewState_RejectsCoincidentLandmarks(t *testing.T) {
	layout, l0, l1, _, _ := buildLayoutTriangle(t)
	target, a, _, _, _ := buildTargetQuad(t)
	_, err := embedding.NewState(embedding.Input{
		Layout:         layout,
		Target:         target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{l0: a, l1: a},
	})
	assert.ErrorIs(t, err, embedding.ErrInvalidInput)
}

func TestEmbeddableSector_FreeCaseReturnsFullRotation(t *testing.T) {
	s, l0, l1, _, _ := newTriangleOverQuad(t)
	hL, ok := s.Layout().HalfEdgeBetween(l0, l1)
	require.True(t, ok)

	sector, err := s.EmbeddableSector(hL)
	require.NoError(t, err)
	assert.Len(t, sector, s.Target().VertexDegree(mustLandmark(t, s, l0)))
}

func mustLandmark(t *testing.T, s *embedding.State, v mesh.VertexID) mesh.VertexID {
	t.Helper()
	tv, ok := s.Landmark(v)
	require.True(t, ok)
	return tv
}

func TestEmbedAndUnembedPath_RoundTrip(t *testing.T) {
	s, l0, l1, l2, face := newTriangleOverQuad(t)

	a := mustLandmark(t, s, l0)
	b := mustLandmark(t, s, l1)
	d := mustLandmark(t, s, l2)
	c := otherQuadVertex(t, s, a, b, d)

	hAB, ok := s.Layout().HalfEdgeBetween(l0, l1)
	require.True(t, ok)
	hDA, ok := s.Layout().HalfEdgeBetween(l2, l0)
	require.True(t, ok)
	hBD, ok := s.Layout().HalfEdgeBetween(l1, l2)
	require.True(t, ok)

	require.NoError(t, s.EmbedPath(hAB, mustPath(t, a, b)))
	require.NoError(t, s.EmbedPath(hDA, mustPath(t, d, a)))
	assert.False(t, s.IsComplete())

	require.NoError(t, s.EmbedPath(hBD, mustPath(t, b, c, d)))
	assert.True(t, s.IsComplete())
	assert.True(t, s.IsBlockedVertex(c))

	patch, err := s.GetPatch(face)
	require.NoError(t, err)
	assert.Len(t, patch, 2) // both triangles of the quad

	require.NoError(t, s.UnembedPath(hBD))
	assert.False(t, s.IsComplete())
	assert.False(t, s.IsBlockedVertex(c))

	// Re-embed and round-trip through the .emb text format.
	require.NoError(t, s.EmbedPath(hBD, mustPath(t, b, c, d)))
	var buf bytes.Buffer
	require.NoError(t, s.WriteEmb(&buf))

	loaded, err := embedding.LoadEmb(&buf, s.Layout(), s.Target())
	require.NoError(t, err)
	assert.InDelta(t, s.TotalEmbeddedPathLength(), loaded.TotalEmbeddedPathLength(), 1e-9)
	assert.True(t, loaded.IsComplete())
}

func TestEmbedPath_RejectsBlockedVertexReuse(t *testing.T) {
	s, l0, l1, l2, _ := newTriangleOverQuad(t)
	a := mustLandmark(t, s, l0)
	b := mustLandmark(t, s, l1)
	d := mustLandmark(t, s, l2)
	c := otherQuadVertex(t, s, a, b, d)

	hBD, ok := s.Layout().HalfEdgeBetween(l1, l2)
	require.True(t, ok)
	hAB, ok := s.Layout().HalfEdgeBetween(l0, l1)
	require.True(t, ok)
	require.NoError(t, s.EmbedPath(hBD, mustPath(t, b, c, d)))

	// A second, distinct layout edge trying to reuse c must fail: c is now
	// an interior vertex of the b-c-d path.
	err := s.EmbedPath(hAB, mustPath(t, a, c, b))
	assert.ErrorIs(t, err, embedding.ErrConstraintViolation)
}

func mustPath(t *testing.T, verts ...mesh.VertexID) virtual.Path {
	t.Helper()
	out := make(virtual.Path, len(verts))
	for i, v := range verts {
		out[i] = virtual.NewOnVertex(v)
	}
	return out
}

func otherQuadVertex(t *testing.T, s *embedding.State, a, b, d mesh.VertexID) mesh.VertexID {
	t.Helper()
	for v := 0; v < s.Target().VertexCount(); v++ {
		vv := mesh.VertexID(v)
		if vv != a && vv != b && vv != d {
			return vv
		}
	}
	t.Fatal("no fourth vertex found")
	return 0
}
