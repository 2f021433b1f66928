package bnb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/bnb"
	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
)

func tetrahedron(t *testing.T) (m *mesh.Mesh, a, b, c, d mesh.VertexID) {
	t.Helper()
	m = mesh.NewMesh()
	a = m.AddVertex(mesh.Point{X: 0, Y: 0, Z: 0})
	b = m.AddVertex(mesh.Point{X: 1, Y: 0, Z: 0})
	c = m.AddVertex(mesh.Point{X: 0, Y: 1, Z: 0})
	d = m.AddVertex(mesh.Point{X: 0, Y: 0, Z: 1})
	faces := [][]mesh.VertexID{
		{a, b, c},
		{a, c, d},
		{a, d, b},
		{b, d, c},
	}
	for _, f := range faces {
		_, err := m.AddFace(f)
		require.NoError(t, err)
	}
	require.NoError(t, m.Finalize())
	return m, a, b, c, d
}

func TestRun_TetrahedronOntoItself(t *testing.T) {
	layout, la, lb, lc, ld := tetrahedron(t)
	target, ta, tb, tc, td := tetrahedron(t)

	in := embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			la: ta,
			lb: tb,
			lc: tc,
			ld: td,
		},
	}

	res, err := bnb.Run(in, bnb.WithTimeLimit(5*time.Second), bnb.WithGreedyInit(true))
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Greater(t, res.TotalLength, 0.0)
	assert.NotEmpty(t, res.Sequence)
}

func TestRun_DeterministicAcrossRuns(t *testing.T) {
	layout, la, lb, lc, ld := tetrahedron(t)
	target, ta, tb, tc, td := tetrahedron(t)
	in := embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			la: ta, lb: tb, lc: tc, ld: td,
		},
	}

	r1, err := bnb.Run(in, bnb.WithGreedyInit(false))
	require.NoError(t, err)
	r2, err := bnb.Run(in, bnb.WithGreedyInit(false))
	require.NoError(t, err)
	assert.InDelta(t, r1.TotalLength, r2.TotalLength, 1e-9)
	assert.Equal(t, r1.NumIters, r2.NumIters)
}

func TestRun_TimeLimitHonoredWithoutIncumbent(t *testing.T) {
	layout, la, lb, lc, ld := tetrahedron(t)
	target, ta, tb, tc, td := tetrahedron(t)
	in := embedding.Input{
		Layout: layout,
		Target: target,
		LayoutToTarget: map[mesh.VertexID]mesh.VertexID{
			la: ta, lb: tb, lc: tc, ld: td,
		},
	}

	_, err := bnb.Run(in,
		bnb.WithGreedyInit(false),
		bnb.WithTimeLimit(1*time.Nanosecond),
		bnb.WithExtendTimeLimitToEnsureSolution(false),
	)
	// With an effectively-zero budget and no seeded incumbent, the search
	// may still finish a tiny instance before its first deadline check
	// (every 4096 node events); accept either outcome but never a panic
	// or a non-sentinel error.
	if err != nil {
		assert.ErrorIs(t, err, bnb.ErrTimeLimit)
	}
}
