package smoothing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/smoothing"
	"github.com/patchgraph/layoutembed/virtual"
)

func tetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	v0 := m.AddVertex(mesh.Point{X: 1, Y: 1, Z: 1})
	v1 := m.AddVertex(mesh.Point{X: 1, Y: -1, Z: -1})
	v2 := m.AddVertex(mesh.Point{X: -1, Y: 1, Z: -1})
	v3 := m.AddVertex(mesh.Point{X: -1, Y: -1, Z: 1})
	for _, f := range [][]mesh.VertexID{{v0, v1, v2}, {v0, v2, v3}, {v0, v3, v1}, {v1, v3, v2}} {
		_, err := m.AddFace(f)
		require.NoError(t, err)
	}
	require.NoError(t, m.Finalize())
	return m
}

func identityState(t *testing.T) *embedding.State {
	t.Helper()
	layout := tetrahedron(t)
	target := tetrahedron(t)
	landmarks := map[mesh.VertexID]mesh.VertexID{0: 0, 1: 1, 2: 2, 3: 3}
	state, err := embedding.NewState(embedding.Input{Layout: layout, Target: target, LayoutToTarget: landmarks})
	require.NoError(t, err)
	for e := 0; e < layout.EdgeCount(); e++ {
		hL := layout.Edge(mesh.EdgeID(e)).HalfEdge
		a, b := layout.EdgeVertices(mesh.EdgeID(e))
		path := virtual.Path{virtual.NewOnVertex(a), virtual.NewOnVertex(b)}
		require.NoError(t, state.EmbedPath(hL, path))
	}
	return state
}

func TestSubdivide_GrowsTargetAndKeepsCompleteness(t *testing.T) {
	state := identityState(t)
	before := state.Target().VertexCount()

	refined, err := smoothing.Subdivide(state, 1)
	require.NoError(t, err)

	assert.Greater(t, refined.Target().VertexCount(), before)
	assert.True(t, refined.IsComplete())
	// Loop subdivision's odd-vertex rule pulls edge midpoints off the
	// original straight chord, so total length need not match exactly —
	// it should still be finite and of the same order of magnitude.
	assert.Greater(t, refined.TotalEmbeddedPathLength(), 0.0)
}

func TestSmoothPaths_PreservesEndpoints(t *testing.T) {
	state := identityState(t)
	result, err := smoothing.SmoothPaths(state, 2, false)
	require.NoError(t, err)
	require.Len(t, result.Paths, state.Layout().EdgeCount())

	for _, sp := range result.Paths {
		hL := state.Layout().Edge(sp.LayoutEdge).HalfEdge
		verts, err := state.GetEmbeddedPath(hL)
		require.NoError(t, err)
		assert.Equal(t, state.Target().Position(verts[0]), sp.Points[0])
		assert.Equal(t, state.Target().Position(verts[len(verts)-1]), sp.Points[len(sp.Points)-1])
	}
}

func TestSmoothPathsSubset_OnlySmoothsGivenEdges(t *testing.T) {
	state := identityState(t)
	result, err := smoothing.SmoothPathsSubset(state, []mesh.EdgeID{0}, 1, false)
	require.NoError(t, err)
	assert.Len(t, result.Paths, 1)
	assert.Equal(t, mesh.EdgeID(0), result.Paths[0].LayoutEdge)
}
