package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/greedy"
	"github.com/patchgraph/layoutembed/mesh"
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

func triangleInput(t *testing.T) embedding.Input {
	t.Helper()
	layout, l0, l1, l2 := buildLayoutTriangle(t)
	target, a, b, _, d := buildQuad(t)
	return embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			l0: a,
			l1: b,
			l2: d,
		},
	}
}

func TestEmbedPraun_CompletesSimpleTriangle(t *testing.T) {
	st, err := embedding.NewState(triangleInput(t))
	require.NoError(t, err)

	res, err := greedy.EmbedPraun(st)
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, greedy.VariantPraun, res.Variant)
	assert.Greater(t, res.TotalLength, 0.0)
}

func TestEmbedCompetitorsAndBest(t *testing.T) {
	in := triangleInput(t)
	results, err := greedy.EmbedCompetitors(in)
	require.NoError(t, err)
	require.Len(t, results, 4)

	best, err := greedy.Best(results)
	require.NoError(t, err)
	assert.True(t, best.Complete)
	for _, r := range results {
		if r.Complete {
			assert.LessOrEqual(t, best.Score, r.Score)
		}
	}
}

func TestBest_RejectsEmpty(t *testing.T) {
	_, err := greedy.Best(nil)
	assert.ErrorIs(t, err, greedy.ErrNoCompetitors)
}

func TestEmbedGreedy_SequenceReplaysToSameResult(t *testing.T) {
	in := triangleInput(t)
	st, err := embedding.NewState(in)
	require.NoError(t, err)
	res, err := greedy.EmbedPraun(st)
	require.NoError(t, err)

	st2, err := embedding.NewState(in)
	require.NoError(t, err)
	require.NoError(t, st2.Apply(res.Sequence))
	assert.InDelta(t, st.TotalEmbeddedPathLength(), st2.TotalEmbeddedPathLength(), 1e-9)
}
