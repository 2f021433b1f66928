package mesh

// unsetID marks a HalfEdgeID field that has not yet been assigned during
// incremental construction.
const unsetID HalfEdgeID = -1

// AddVertex appends a new vertex at the given position and returns its ID.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(p Point) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{ID: id, Pos: p, out: unsetID})
	return id
}

// AddFace declares a new face bounded by the given cyclic (CCW, looking
// from outside the surface) list of vertex IDs and wires its half-edges.
// Opposite-pairing and boundary stitching across faces is deferred to
// Finalize, so faces may be added in any order.
//
// Returns ErrDegenerateFace if fewer than 3 vertices are given,
// ErrRepeatedVertex if a vertex appears twice, ErrUnknownVertex if an ID is
// out of range, and ErrNonManifold if the same directed edge (a→b) is
// declared by two different faces (inconsistent winding or a true
// non-manifold edge).
//
// Complexity: O(k) for a face with k vertices.
func (m *Mesh) AddFace(vertexIDs []VertexID) (FaceID, error) {
	k := len(vertexIDs)
	if k < 3 {
		return -1, ErrDegenerateFace
	}
	seen := make(map[VertexID]struct{}, k)
	for _, v := range vertexIDs {
		if int(v) < 0 || int(v) >= len(m.vertices) {
			return -1, ErrUnknownVertex
		}
		if _, dup := seen[v]; dup {
			return -1, ErrRepeatedVertex
		}
		seen[v] = struct{}{}
	}

	faceID := FaceID(len(m.faces))
	firstHE := HalfEdgeID(len(m.halfEdges))

	// Stage 1: allocate one half-edge per face edge, recording its directed
	// key so Finalize can pair opposites across faces.
	for i := 0; i < k; i++ {
		a, b := vertexIDs[i], vertexIDs[(i+1)%k]
		key := directedKey{from: a, to: b}
		if _, exists := m.directedIndex()[key]; exists {
			return -1, ErrNonManifold
		}
		heID := HalfEdgeID(len(m.halfEdges))
		m.halfEdges = append(m.halfEdges, HalfEdge{
			ID:       heID,
			To:       b,
			Next:     unsetID,
			Prev:     unsetID,
			Opposite: unsetID,
			Face:     faceID,
			Edge:     -1,
		})
		m.directedIndex()[key] = heID
		if m.vertices[a].out == unsetID {
			m.vertices[a].out = heID
		}
	}

	// Stage 2: link Next/Prev around the face's own cycle.
	for i := 0; i < k; i++ {
		cur := firstHE + HalfEdgeID(i)
		nxt := firstHE + HalfEdgeID((i+1)%k)
		m.halfEdges[cur].Next = nxt
		m.halfEdges[nxt].Prev = cur
	}

	m.faces = append(m.faces, Face{ID: faceID, HalfEdge: firstHE, degree: k})
	return faceID, nil
}

// directedKey identifies a directed (ordered) vertex pair.
type directedKey struct {
	from, to VertexID
}

// directedIndex lazily allocates and returns the build-time directed-edge
// index. It is not part of the persistent Mesh state consulted by any
// method other than AddFace/Finalize.
func (m *Mesh) directedIndex() map[directedKey]HalfEdgeID {
	if m.directedBuild == nil {
		m.directedBuild = make(map[directedKey]HalfEdgeID)
	}
	return m.directedBuild
}

// Finalize pairs every half-edge with its Opposite (creating synthetic
// boundary half-edges, Face == NoFace, for directed edges with no
// reverse-facing counterpart) and links boundary half-edges' Next/Prev so
// that the full surface — interior and boundary alike — is one consistent
// half-edge structure. Finalize is idempotent: calling it again after no
// further AddFace calls is a no-op.
//
// Complexity: O(V + H) where H is the half-edge count.
func (m *Mesh) Finalize() error {
	idx := m.directedIndex()

	// Pass 1: pair or synthesize Opposite for every interior half-edge.
	n := len(m.halfEdges)
	for i := 0; i < n; i++ {
		he := HalfEdgeID(i)
		if m.halfEdges[he].Opposite != unsetID {
			continue
		}
		a := m.From(he)
		b := m.halfEdges[he].To
		if rev, ok := idx[directedKey{from: b, to: a}]; ok {
			if m.halfEdges[rev].Opposite != unsetID {
				continue // already paired from the other side
			}
			edgeID := EdgeID(len(m.edges))
			m.edges = append(m.edges, Edge{ID: edgeID, HalfEdge: he})
			m.halfEdges[he].Opposite = rev
			m.halfEdges[rev].Opposite = he
			m.halfEdges[he].Edge = edgeID
			m.halfEdges[rev].Edge = edgeID
			m.edgeIndex[makeVertexPairKey(a, b)] = edgeID
			continue
		}

		// No reverse face-owned half-edge exists: this is a boundary edge.
		boundaryID := HalfEdgeID(len(m.halfEdges))
		m.halfEdges = append(m.halfEdges, HalfEdge{
			ID:       boundaryID,
			To:       a,
			Next:     unsetID,
			Prev:     unsetID,
			Opposite: he,
			Face:     NoFace,
			Edge:     -1,
		})
		edgeID := EdgeID(len(m.edges))
		m.edges = append(m.edges, Edge{ID: edgeID, HalfEdge: he})
		m.halfEdges[he].Opposite = boundaryID
		m.halfEdges[he].Edge = edgeID
		m.halfEdges[boundaryID].Edge = edgeID
		m.edgeIndex[makeVertexPairKey(a, b)] = edgeID
		idx[directedKey{from: b, to: a}] = boundaryID
	}

	// Pass 2: link Next/Prev for every boundary half-edge by rotating
	// around its destination vertex until the next boundary gap is found.
	n = len(m.halfEdges)
	for i := 0; i < n; i++ {
		b := HalfEdgeID(i)
		if m.halfEdges[b].Face != NoFace || m.halfEdges[b].Next != unsetID {
			continue
		}
		cur := m.halfEdges[b].Opposite // interior half-edge outgoing from To(b)
		for m.halfEdges[cur].Face != NoFace {
			cur = m.halfEdges[m.halfEdges[cur].Prev].Opposite
		}
		m.halfEdges[b].Next = cur
		m.halfEdges[cur].Prev = b
	}

	// Prefer a boundary outgoing half-edge as a vertex's iteration anchor,
	// so OutgoingHalfEdges starts (and stops) at the boundary gap
	// instead of wrapping past it.
	for v := range m.vertices {
		vid := VertexID(v)
		it := m.vertices[v].out
		if it == unsetID {
			continue
		}
		start := it
		for {
			if m.halfEdges[it].Face == NoFace {
				m.vertices[v].out = it
				break
			}
			it = m.halfEdges[m.halfEdges[it].Prev].Opposite
			if it == start {
				break // fully interior vertex; keep the arbitrary anchor
			}
		}
		_ = vid
	}

	m.directedBuild = nil
	return nil
}
