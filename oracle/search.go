package oracle

import (
	"container/heap"

	"github.com/patchgraph/layoutembed/mesh"
	"github.com/patchgraph/layoutembed/virtual"
)

// ShortestPathForLayoutEdge finds the cheapest simple path on the target
// mesh realizing layout half-edge hL under metric, starting inside
// EmbeddableSector(hL), touching no vertex or edge already blocked by
// another embedded path and passing through no other landmark. The
// returned float64 is the path's Euclidean length on the target mesh
// (under either metric). It does not itself re-check the arrival-side
// sector at the far landmark — embedding.State.EmbedPath validates both
// ends before committing, so a path this method returns may still be
// rejected there; callers (greedy, bnb) must treat that rejection as
// "try a different path", not a bug. See DESIGN.md.
func (o *Oracle) ShortestPathForLayoutEdge(hL mesh.HalfEdgeID, metric Metric) (virtual.Path, float64, error) {
	layout := o.state.Layout()
	vTFrom, ok := o.state.Landmark(layout.From(hL))
	if !ok {
		return nil, 0, ErrNilState
	}
	vTTo, ok := o.state.Landmark(layout.To(hL))
	if !ok {
		return nil, 0, ErrNilState
	}
	sector, err := o.state.EmbeddableSector(hL)
	if err != nil {
		return nil, 0, err
	}
	if metric == VertexRepulsive {
		o.ensureField()
	}
	return o.search(vTFrom, vTTo, sector, metric)
}

// ShortestPath is the sector-unconstrained form, seeding the search from
// every outgoing half-edge at src. It still avoids blocked elements and
// landmarks other than dst.
func (o *Oracle) ShortestPath(src, dst mesh.VertexID, metric Metric) (virtual.Path, float64, error) {
	if metric == VertexRepulsive {
		o.ensureField()
	}
	return o.search(src, dst, o.target.OutgoingHalfEdges(src), metric)
}

func (o *Oracle) search(src, dst mesh.VertexID, seed []mesh.HalfEdgeID, metric Metric) (virtual.Path, float64, error) {
	n := o.target.VertexCount()
	o.ws.reset(n)
	o.ws.dist[src] = 0
	o.ws.visited[src] = true

	for _, h := range seed {
		to := o.target.To(h)
		if o.blockedForSearch(h, to, dst) {
			continue
		}
		d := o.edgeCost(h, metric)
		if d < o.ws.dist[to] {
			o.ws.dist[to] = d
			o.ws.prev[to] = h
			heap.Push(&o.ws.pq, &nodeItem{vertex: to, dist: d, via: h, edge: o.target.HalfEdge(h).Edge})
		}
	}

	for o.ws.pq.Len() > 0 {
		item := heap.Pop(&o.ws.pq).(*nodeItem)
		u := item.vertex
		if o.ws.visited[u] {
			continue
		}
		o.ws.visited[u] = true
		if u == dst {
			break
		}
		for _, h := range o.target.OutgoingHalfEdges(u) {
			v := o.target.To(h)
			if o.ws.visited[v] || o.blockedForSearch(h, v, dst) {
				continue
			}
			nd := o.ws.dist[u] + o.edgeCost(h, metric)
			if nd < o.ws.dist[v] {
				o.ws.dist[v] = nd
				o.ws.prev[v] = h
				heap.Push(&o.ws.pq, &nodeItem{vertex: v, dist: nd, via: h, edge: o.target.HalfEdge(h).Edge})
			}
		}
	}

	if o.ws.dist[dst] >= posInf {
		return nil, 0, ErrInfeasible
	}

	verts := []mesh.VertexID{dst}
	cur := dst
	for cur != src {
		h := o.ws.prev[cur]
		if h == unsetPrev {
			return nil, 0, ErrInfeasible
		}
		cur = o.target.From(h)
		verts = append(verts, cur)
	}
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}

	elems := make([]virtual.Vertex, len(verts))
	for i, v := range verts {
		elems[i] = virtual.NewOnVertex(v)
	}
	path, err := virtual.NewPath(o.target, elems)
	if err != nil {
		return nil, 0, err
	}
	return path, path.Length(o.target), nil
}

// blockedForSearch reports whether traversing h into vertex v should be
// excluded from the search: v is blocked or is a landmark (unless it is the
// search's destination), or h's edge is blocked.
func (o *Oracle) blockedForSearch(h mesh.HalfEdgeID, v, dst mesh.VertexID) bool {
	if v != dst {
		if o.state.IsBlockedVertex(v) {
			return true
		}
		if _, isLandmark := o.state.LandmarkInverse(v); isLandmark {
			return true
		}
	}
	return o.state.IsBlockedEdge(o.target.HalfEdge(h).Edge)
}

func (o *Oracle) edgeCost(h mesh.HalfEdgeID, metric Metric) float64 {
	e := o.target.HalfEdge(h).Edge
	base := o.target.EdgeLength(e)
	if metric == Geodesic {
		return base
	}
	to := o.target.To(h)
	return base * (1 + o.options.RepulsionStrength*o.field[to])
}

// PathLength returns p's Euclidean length on the Oracle's target mesh.
func (o *Oracle) PathLength(p virtual.Path) float64 { return p.Length(o.target) }
