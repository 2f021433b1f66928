package objio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/objio"
)

const tetrahedronOBJ = `
# a regular tetrahedron, edge length 2*sqrt(2)
v 1 1 1
v 1 -1 -1
v -1 1 -1
v -1 -1 1
f 1 2 3
f 1 3 4
f 1 4 2
f 2 4 3
`

func TestReadOBJ_Tetrahedron(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 6, m.EdgeCount())
}

func TestReadOBJ_IgnoresVtVn(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 2/2/1 3/3/1\n"
	m, err := objio.ReadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())
}

func TestReadOBJ_OutOfRangeFaceIndex(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"
	_, err := objio.ReadOBJ(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, objio.ErrInvalidInput)
}

func TestWriteOBJ_RoundTrip(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, objio.WriteOBJ(&buf, m))

	m2, err := objio.ReadOBJ(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.VertexCount(), m2.VertexCount())
	assert.Equal(t, m.FaceCount(), m2.FaceCount())
	assert.Equal(t, m.EdgeCount(), m2.EdgeCount())
}

func TestLoadLandmarks_FormatID(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)

	lm, warnings, err := objio.LoadLandmarks(strings.NewReader("0\n1\n2\n3\n"), objio.FormatID, m)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, mesh.VertexID(0), lm[0])
	assert.Equal(t, mesh.VertexID(3), lm[3])
}

func TestLoadLandmarks_FormatIDPosMismatchWarns(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)

	src := "0 1 1 1\n1 999 999 999\n"
	lm, warnings, err := objio.LoadLandmarks(strings.NewReader(src), objio.FormatIDPos, m)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].Line)
	assert.Equal(t, mesh.VertexID(1), lm[1])
}

func TestNormalizeSurfaceArea(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)
	objio.NormalizeSurfaceArea(m)
	assert.InDelta(t, 1.0, m.SurfaceArea(), 1e-9)
}

func TestCenterTranslation(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)
	objio.CenterTranslation(m)

	var centroid mesh.Point
	for v := 0; v < m.VertexCount(); v++ {
		p := m.Position(mesh.VertexID(v))
		centroid.X += p.X
		centroid.Y += p.Y
		centroid.Z += p.Z
	}
	n := float64(m.VertexCount())
	assert.InDelta(t, 0, centroid.X/n, 1e-9)
	assert.InDelta(t, 0, centroid.Y/n, 1e-9)
	assert.InDelta(t, 0, centroid.Z/n, 1e-9)
}

func TestInvertLayout_PreservesVertexCount(t *testing.T) {
	m, err := objio.ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)
	inv := objio.InvertLayout(m)
	assert.Equal(t, m.VertexCount(), inv.VertexCount())
	assert.Equal(t, m.FaceCount(), inv.FaceCount())
}
