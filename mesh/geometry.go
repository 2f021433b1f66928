package mesh

import "math"

// Add, Sub, Scale, and Lerp implement the minimal vector arithmetic this
// package needs for unfolding, barycentric interpolation, and subdivision.
func (p Point) Add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s, p.Z * s} }

// Lerp linearly interpolates between p and q at parameter t∈[0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Dot returns the dot product of p and q treated as vectors from the origin.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the cross product p×q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// TriangleArea returns the area of triangle face f.
// Returns ErrNotTriangle if f is not a triangle.
func (m *Mesh) TriangleArea(f FaceID) (float64, error) {
	if !m.IsTriangle(f) {
		return 0, ErrNotTriangle
	}
	vs := m.FaceVertices(f)
	a, b, c := m.Position(vs[0]), m.Position(vs[1]), m.Position(vs[2])
	cr := b.Sub(a).Cross(c.Sub(a))
	return 0.5 * cr.Norm(), nil
}

// SurfaceArea returns the sum of triangle areas over every triangular face.
// Non-triangular faces are skipped (used on the layout mesh L, which is a
// polygonal complex; on the triangulated target mesh T it covers the
// entire surface).
func (m *Mesh) SurfaceArea() float64 {
	var total float64
	for f := range m.faces {
		if !m.IsTriangle(FaceID(f)) {
			continue
		}
		a, _ := m.TriangleArea(FaceID(f))
		total += a
	}
	return total
}

// Clone returns a deep, independent copy of the mesh: no slice, map, or
// Point is aliased between m and the result. EmbeddingState uses Clone to
// take ownership of its own target-mesh copy (spec.md §3's "the embedding
// owns the target mesh copy; references to the input remain non-owning").
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		vertices:  append([]Vertex(nil), m.vertices...),
		halfEdges: append([]HalfEdge(nil), m.halfEdges...),
		edges:     append([]Edge(nil), m.edges...),
		faces:     append([]Face(nil), m.faces...),
		edgeIndex: make(map[vertexPairKey]EdgeID, len(m.edgeIndex)),
	}
	for k, v := range m.edgeIndex {
		out.edgeIndex[k] = v
	}
	return out
}
