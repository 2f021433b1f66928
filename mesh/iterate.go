package mesh

// VertexCount, HalfEdgeCount, EdgeCount, and FaceCount return the number of
// elements of each kind currently stored. Complexity: O(1).
func (m *Mesh) VertexCount() int   { return len(m.vertices) }
func (m *Mesh) HalfEdgeCount() int { return len(m.halfEdges) }
func (m *Mesh) EdgeCount() int     { return len(m.edges) }
func (m *Mesh) FaceCount() int     { return len(m.faces) }

// Vertex, HalfEdge, Edge, and Face return the element stored at the given
// ID. Callers must ensure the ID is in range; out-of-range access panics,
// matching the teacher corpus's convention of trusting internally-derived
// indices and reserving sentinel errors for externally-supplied input
// (see objio, which validates OBJ indices before they ever reach a Mesh).
func (m *Mesh) Vertex(v VertexID) Vertex     { return m.vertices[v] }
func (m *Mesh) HalfEdge(h HalfEdgeID) HalfEdge { return m.halfEdges[h] }
func (m *Mesh) Edge(e EdgeID) Edge           { return m.edges[e] }
func (m *Mesh) Face(f FaceID) Face           { return m.faces[f] }

// SetPosition overwrites the position of vertex v. Used by subdivision and
// harmonic smoothing, which relocate vertices without changing topology.
func (m *Mesh) SetPosition(v VertexID, p Point) { m.vertices[v].Pos = p }

// Position returns the 3D position of vertex v. Complexity: O(1).
func (m *Mesh) Position(v VertexID) Point { return m.vertices[v].Pos }

// From returns the vertex a directed half-edge originates from:
// From(h) == To(Opposite(h)). Complexity: O(1).
func (m *Mesh) From(h HalfEdgeID) VertexID {
	return m.halfEdges[m.halfEdges[h].Opposite].To
}

// To returns the vertex a half-edge points to. Complexity: O(1).
func (m *Mesh) To(h HalfEdgeID) VertexID { return m.halfEdges[h].To }

// Opposite, Next, and Prev return the corresponding linked half-edge.
// Complexity: O(1).
func (m *Mesh) Opposite(h HalfEdgeID) HalfEdgeID { return m.halfEdges[h].Opposite }
func (m *Mesh) Next(h HalfEdgeID) HalfEdgeID     { return m.halfEdges[h].Next }
func (m *Mesh) Prev(h HalfEdgeID) HalfEdgeID     { return m.halfEdges[h].Prev }

// IsBoundary reports whether a half-edge bounds the mesh boundary rather
// than an interior face. Complexity: O(1).
func (m *Mesh) IsBoundary(h HalfEdgeID) bool { return m.halfEdges[h].Face == NoFace }

// FaceOf returns the face a half-edge bounds, or NoFace on the boundary.
// Complexity: O(1).
func (m *Mesh) FaceOf(h HalfEdgeID) FaceID { return m.halfEdges[h].Face }

// IsTriangle reports whether face f has exactly 3 sides. Complexity: O(1).
func (m *Mesh) IsTriangle(f FaceID) bool { return m.faces[f].degree == 3 }

// FaceDegree returns the number of sides (vertices) of face f.
// Complexity: O(1).
func (m *Mesh) FaceDegree(f FaceID) int { return m.faces[f].degree }

// FaceHalfEdges returns the cyclic list of half-edges bounding face f, in
// face order. Complexity: O(degree).
func (m *Mesh) FaceHalfEdges(f FaceID) []HalfEdgeID {
	start := m.faces[f].HalfEdge
	out := make([]HalfEdgeID, 0, m.faces[f].degree)
	cur := start
	for {
		out = append(out, cur)
		cur = m.halfEdges[cur].Next
		if cur == start {
			break
		}
	}
	return out
}

// FaceVertices returns the cyclic list of vertices bounding face f, in
// face order (vertex i is the From() of half-edge i in FaceHalfEdges).
// Complexity: O(degree).
func (m *Mesh) FaceVertices(f FaceID) []VertexID {
	hes := m.FaceHalfEdges(f)
	out := make([]VertexID, len(hes))
	for i, h := range hes {
		out[i] = m.From(h)
	}
	return out
}

// OutgoingHalfEdges returns every half-edge originating at vertex v, in
// consistent CCW rotational order starting from the vertex's boundary gap
// (if any). Complexity: O(degree(v)).
func (m *Mesh) OutgoingHalfEdges(v VertexID) []HalfEdgeID {
	start := m.vertices[v].out
	if start == unsetID {
		return nil
	}
	out := []HalfEdgeID{start}
	cur := rotateCCW(m, start)
	for cur != start {
		out = append(out, cur)
		cur = rotateCCW(m, cur)
	}
	return out
}

// rotateCCW returns the next outgoing half-edge when rotating CCW around
// From(h) (equivalently the start vertex of h).
func rotateCCW(m *Mesh, h HalfEdgeID) HalfEdgeID {
	return m.halfEdges[m.halfEdges[h].Prev].Opposite
}

// VertexDegree returns the number of edges incident to vertex v.
// Complexity: O(degree(v)).
func (m *Mesh) VertexDegree(v VertexID) int { return len(m.OutgoingHalfEdges(v)) }

// IsBoundaryVertex reports whether v lies on the mesh boundary.
// Complexity: O(degree(v)).
func (m *Mesh) IsBoundaryVertex(v VertexID) bool {
	for _, h := range m.OutgoingHalfEdges(v) {
		if m.IsBoundary(h) {
			return true
		}
	}
	return false
}

// HalfEdgeBetween returns the half-edge from a to b, if the two vertices
// are adjacent, and ok==true. Complexity: O(degree(a)).
func (m *Mesh) HalfEdgeBetween(a, b VertexID) (h HalfEdgeID, ok bool) {
	for _, he := range m.OutgoingHalfEdges(a) {
		if m.halfEdges[he].To == b {
			return he, true
		}
	}
	return 0, false
}

// EdgeBetween returns the Edge connecting a and b, if adjacent.
// Complexity: O(degree(a)).
func (m *Mesh) EdgeBetween(a, b VertexID) (EdgeID, bool) {
	h, ok := m.HalfEdgeBetween(a, b)
	if !ok {
		return 0, false
	}
	return m.halfEdges[h].Edge, true
}

// EdgeVertices returns the two endpoints of an edge, in an arbitrary but
// stable order (From/To of the edge's stored half-edge).
// Complexity: O(1).
func (m *Mesh) EdgeVertices(e EdgeID) (VertexID, VertexID) {
	h := m.edges[e].HalfEdge
	return m.From(h), m.To(h)
}

// EdgeLength returns the Euclidean length of edge e. Complexity: O(1).
func (m *Mesh) EdgeLength(e EdgeID) float64 {
	a, b := m.EdgeVertices(e)
	return m.Position(a).Dist(m.Position(b))
}

// OppositeFaceAcross returns the face on the far side of half-edge h's
// edge (the face of h's Opposite), or NoFace on the boundary.
func (m *Mesh) OppositeFaceAcross(h HalfEdgeID) FaceID {
	return m.halfEdges[m.halfEdges[h].Opposite].Face
}
