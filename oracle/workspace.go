package oracle

import "github.com/patchgraph/layoutembed/mesh"

// workspace holds the scratch arrays and heap an Oracle reuses across
// ShortestPath calls, grounded on dijkstra.runner's dist/prev/visited maps
// and nodePQ heap — here sized arrays instead of maps, since target
// vertices are already dense small integers.
type workspace struct {
	dist    []float64
	prev    []mesh.HalfEdgeID // the half-edge used to reach each vertex, or unsetPrev
	visited []bool
	pq      nodePQ
}

const unsetPrev mesh.HalfEdgeID = -1

func newWorkspace(n int) workspace {
	return workspace{
		dist:    make([]float64, n),
		prev:    make([]mesh.HalfEdgeID, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// reset reinitializes the workspace for a fresh search over n vertices
// (n may have grown since construction, e.g. after subdivision).
func (w *workspace) reset(n int) {
	if cap(w.dist) < n {
		w.dist = make([]float64, n)
		w.prev = make([]mesh.HalfEdgeID, n)
		w.visited = make([]bool, n)
	} else {
		w.dist = w.dist[:n]
		w.prev = w.prev[:n]
		w.visited = w.visited[:n]
	}
	for i := 0; i < n; i++ {
		w.dist[i] = posInf
		w.prev[i] = unsetPrev
		w.visited[i] = false
	}
	w.pq = w.pq[:0]
}

const posInf = 1e18

// nodeItem is one priority-queue entry: a candidate best-known distance to
// a target vertex, identified by the half-edge that produced it.
type nodeItem struct {
	vertex mesh.VertexID
	dist   float64
	via    mesh.HalfEdgeID
	edge   mesh.EdgeID // incident target edge of via, for deterministic tie-break
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// same lazy-decrease-key discipline as dijkstra.nodePQ: stale entries are
// pushed rather than updated in place, and skipped on Pop via
// workspace.visited. Ties break by spec.md §4.1: lower node id of the next
// step, then lower incident-edge id, so equal-cost candidates resolve
// deterministically instead of by heap insertion order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].vertex != pq[j].vertex {
		return pq[i].vertex < pq[j].vertex
	}
	return pq[i].edge < pq[j].edge
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
