package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/mesh"
)

// tetrahedron builds a regular tetrahedron of edge length 2√2: 4 vertices,
// 6 edges, 4 triangular faces, no boundary.
func tetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(mesh.Point{X: 1, Y: 1, Z: 1})
	v1 := m.AddVertex(mesh.Point{X: 1, Y: -1, Z: -1})
	v2 := m.AddVertex(mesh.Point{X: -1, Y: 1, Z: -1})
	v3 := m.AddVertex(mesh.Point{X: -1, Y: -1, Z: 1})

	faces := [][]mesh.VertexID{
		{v0, v1, v2},
		{v0, v2, v3},
		{v0, v3, v1},
		{v1, v3, v2},
	}
	for _, f := range faces {
		_, err := m.AddFace(f)
		require.NoError(t, err)
	}
	require.NoError(t, m.Finalize())
	return m
}

func TestTetrahedron_Counts(t *testing.T) {
	m := tetrahedron(t)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 6, m.EdgeCount())
	// Each triangular face contributes 3 half-edges; closed manifold ⇒ no
	// boundary half-edges are synthesized.
	assert.Equal(t, 12, m.HalfEdgeCount())
}

func TestTetrahedron_NoBoundary(t *testing.T) {
	m := tetrahedron(t)
	for v := 0; v < m.VertexCount(); v++ {
		assert.False(t, m.IsBoundaryVertex(mesh.VertexID(v)))
		assert.Equal(t, 3, m.VertexDegree(mesh.VertexID(v)))
	}
}

func TestTetrahedron_OppositeSymmetry(t *testing.T) {
	m := tetrahedron(t)
	for h := 0; h < m.HalfEdgeCount(); h++ {
		hid := mesh.HalfEdgeID(h)
		opp := m.Opposite(hid)
		assert.Equal(t, hid, m.Opposite(opp))
		assert.Equal(t, m.From(hid), m.To(opp))
		assert.Equal(t, m.To(hid), m.From(opp))
	}
}

func TestAddFace_NonManifoldDuplicateDirectedEdge(t *testing.T) {
	m := mesh.NewMesh()
	a := m.AddVertex(mesh.Point{})
	b := m.AddVertex(mesh.Point{})
	c := m.AddVertex(mesh.Point{})
	d := m.AddVertex(mesh.Point{})

	_, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)

	// Declares the directed edge a→b a second time with the same winding:
	// non-manifold / inconsistent orientation.
	_, err = m.AddFace([]mesh.VertexID{a, b, d})
	assert.ErrorIs(t, err, mesh.ErrNonManifold)
}

func TestAddFace_DegenerateAndRepeated(t *testing.T) {
	m := mesh.NewMesh()
	a := m.AddVertex(mesh.Point{})
	b := m.AddVertex(mesh.Point{})

	_, err := m.AddFace([]mesh.VertexID{a, b})
	assert.ErrorIs(t, err, mesh.ErrDegenerateFace)

	_, err = m.AddFace([]mesh.VertexID{a, b, a})
	assert.ErrorIs(t, err, mesh.ErrRepeatedVertex)
}

// openQuad is a single quad face (a boundary fan): 4 vertices, 1 face, 4
// boundary half-edges paired with the 4 interior ones.
func openQuad(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	a := m.AddVertex(mesh.Point{X: 0, Y: 0})
	b := m.AddVertex(mesh.Point{X: 1, Y: 0})
	c := m.AddVertex(mesh.Point{X: 1, Y: 1})
	d := m.AddVertex(mesh.Point{X: 0, Y: 1})
	_, err := m.AddFace([]mesh.VertexID{a, b, c, d})
	require.NoError(t, err)
	require.NoError(t, m.Finalize())
	return m
}

func TestOpenQuad_Boundary(t *testing.T) {
	m := openQuad(t)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 4, m.EdgeCount())
	assert.Equal(t, 8, m.HalfEdgeCount()) // 4 interior + 4 boundary

	boundaryCount := 0
	for h := 0; h < m.HalfEdgeCount(); h++ {
		if m.IsBoundary(mesh.HalfEdgeID(h)) {
			boundaryCount++
		}
	}
	assert.Equal(t, 4, boundaryCount)

	for v := 0; v < m.VertexCount(); v++ {
		assert.True(t, m.IsBoundaryVertex(mesh.VertexID(v)))
	}
}

func TestOpenQuad_BoundaryLoopIsCyclic(t *testing.T) {
	m := openQuad(t)
	// Walk from any boundary half-edge; after 4 Next steps we must return.
	var start mesh.HalfEdgeID = -1
	for h := 0; h < m.HalfEdgeCount(); h++ {
		if m.IsBoundary(mesh.HalfEdgeID(h)) {
			start = mesh.HalfEdgeID(h)
			break
		}
	}
	require.NotEqual(t, mesh.HalfEdgeID(-1), start)
	cur := start
	for i := 0; i < 4; i++ {
		cur = m.Next(cur)
	}
	assert.Equal(t, start, cur)
}

func TestClone_Independence(t *testing.T) {
	m := tetrahedron(t)
	clone := m.Clone()
	clone.SetPosition(0, mesh.Point{X: 100, Y: 100, Z: 100})
	assert.NotEqual(t, m.Position(0), clone.Position(0))
}

func TestTriangleArea(t *testing.T) {
	m := mesh.NewMesh()
	a := m.AddVertex(mesh.Point{X: 0, Y: 0, Z: 0})
	b := m.AddVertex(mesh.Point{X: 2, Y: 0, Z: 0})
	c := m.AddVertex(mesh.Point{X: 0, Y: 2, Z: 0})
	f, err := m.AddFace([]mesh.VertexID{a, b, c})
	require.NoError(t, err)
	require.NoError(t, m.Finalize())

	area, err := m.TriangleArea(f)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, area, 1e-9)
}
