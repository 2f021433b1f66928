package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/oracle"
)

func buildQuad(t *testing.T) (m *mesh.Mesh, a, b, c, d mesh.VertexID) {
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

func buildLayoutTriangle(t *testing.T) (m *mesh.Mesh, l0, l1, l2 mesh.VertexID) {
	t.Helper()
	m = mesh.NewMesh()
	l0 = m.AddVertex(mesh.Point{X: 0, Y: 0})
	l1 = m.AddVertex(mesh.Point{X: 1, Y: 0})
	l2 = m.AddVertex(mesh.Point{X: 0, Y: 1})
	_, err := m.AddFace([]mesh.VertexID{l0, l1, l2})
	require.NoError(t, err)
	require.NoError(t, m.Finalize())
	return m, l0, l1, l2
}

func TestShortestPathForLayoutEdge_RoutesThroughOnlyAvailableVertex(t *testing.T) {
	layout, l0, l1, l2 := buildLayoutTriangle(t)
	target, a, b, _, d := buildQuad(t)

	st, err := embedding.NewState(embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			l0: a,
			l1: b,
			l2: d,
		},
	})
	require.NoError(t, err)

	o, err := oracle.NewOracle(st)
	require.NoError(t, err)

	hBD, ok := layout.HalfEdgeBetween(l1, l2)
	require.True(t, ok)

	path, length, err := o.ShortestPathForLayoutEdge(hBD, oracle.Geodesic)
	require.NoError(t, err)
	assert.Equal(t, b, path.StartVertex())
	assert.Equal(t, d, path.EndVertex())
	assert.Len(t, path, 3) // b -> c -> d
	assert.Greater(t, length, 0.0)
}

func TestShortestPathForLayoutEdge_RejectsReembeddingAlreadyClaimedEdge(t *testing.T) {
	layout, l0, l1, l2 := buildLayoutTriangle(t)
	target, a, b, _, d := buildQuad(t)

	st, err := embedding.NewState(embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			l0: a,
			l1: b,
			l2: d,
		},
	})
	require.NoError(t, err)

	hAB, ok := layout.HalfEdgeBetween(l0, l1)
	require.True(t, ok)
	o, err := oracle.NewOracle(st)
	require.NoError(t, err)
	path, _, err := o.ShortestPathForLayoutEdge(hAB, oracle.Geodesic)
	require.NoError(t, err)
	require.NoError(t, st.EmbedPath(hAB, path))

	err = st.EmbedPath(hAB, path)
	assert.ErrorIs(t, err, embedding.ErrConstraintViolation)
}

func TestShortestPath_VertexRepulsiveRunsWithoutError(t *testing.T) {
	layout, l0, l1, l2 := buildLayoutTriangle(t)
	target, a, b, _, d := buildQuad(t)

	st, err := embedding.NewState(embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			l0: a,
			l1: b,
			l2: d,
		},
	})
	require.NoError(t, err)

	o, err := oracle.NewOracle(st, oracle.WithRepulsionStrength(2.0))
	require.NoError(t, err)

	hBD, ok := layout.HalfEdgeBetween(l1, l2)
	require.True(t, ok)
	path, _, err := o.ShortestPathForLayoutEdge(hBD, oracle.VertexRepulsive)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
