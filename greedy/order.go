package greedy

import (
	"math"
	"sort"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
)

// computeOrder returns the layout edges state still needs to embed, in the
// visitation order settings.Variant prescribes.
func computeOrder(state *embedding.State, settings Settings) []mesh.EdgeID {
	remaining := state.RemainingEdges()
	switch settings.Variant {
	case VariantKraevoy:
		return orderByEstimatedSpan(state, remaining)
	case VariantSchreiner:
		return orderByExtremalVertex(state, remaining, settings.ExtremalVertexRatio)
	default: // VariantPraun
		return remaining // RemainingEdges is already ascending EdgeID
	}
}

// orderByEstimatedSpan sorts ascending by the straight-line distance
// between the two landmarks an edge connects, on the target mesh.
func orderByEstimatedSpan(state *embedding.State, edges []mesh.EdgeID) []mesh.EdgeID {
	layout := state.Layout()
	target := state.Target()
	out := append([]mesh.EdgeID(nil), edges...)
	span := func(e mesh.EdgeID) float64 {
		a, b := layout.EdgeVertices(e)
		ta, _ := state.Landmark(a)
		tb, _ := state.Landmark(b)
		return target.Position(ta).Dist(target.Position(tb))
	}
	sort.SliceStable(out, func(i, j int) bool { return span(out[i]) < span(out[j]) })
	return out
}

// orderByExtremalVertex visits every edge incident to the top
// ceil(ratio*|V(L)|) highest-degree layout vertices first (by descending
// degree, ties broken by ascending VertexID), then falls back to
// ascending EdgeID for whatever remains.
func orderByExtremalVertex(state *embedding.State, edges []mesh.EdgeID, ratio float64) []mesh.EdgeID {
	layout := state.Layout()
	n := layout.VertexCount()
	if n == 0 {
		return edges
	}
	verts := make([]mesh.VertexID, n)
	for i := range verts {
		verts[i] = mesh.VertexID(i)
	}
	sort.SliceStable(verts, func(i, j int) bool {
		di, dj := layout.VertexDegree(verts[i]), layout.VertexDegree(verts[j])
		if di != dj {
			return di > dj
		}
		return verts[i] < verts[j]
	})

	k := int(math.Ceil(ratio * float64(n)))
	if k > n {
		k = n
	}
	priority := verts[:k]

	remaining := make(map[mesh.EdgeID]bool, len(edges))
	for _, e := range edges {
		remaining[e] = true
	}

	var out []mesh.EdgeID
	seen := make(map[mesh.EdgeID]bool, len(edges))
	for _, v := range priority {
		for _, h := range layout.OutgoingHalfEdges(v) {
			e := layout.HalfEdge(h).Edge
			if remaining[e] && !seen[e] {
				out = append(out, e)
				seen[e] = true
			}
		}
	}
	for _, e := range edges {
		if !seen[e] {
			out = append(out, e)
			seen[e] = true
		}
	}
	return out
}
