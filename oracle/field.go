package oracle

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/patchgraph/layoutembed/mesh"
)

// ensureField (re)solves the VertexRepulsive harmonic scalar field if it
// was invalidated since the last call. Boundary (value 1) vertices are
// every landmark and every vertex currently blocked by an embedded path;
// every other vertex solves the discrete Laplace equation with
// inverse-edge-length weights, via gonum.org/v1/gonum/mat's dense linear
// solve — the field then biases ShortestPath away from congested regions
// without forbidding them outright.
func (o *Oracle) ensureField() {
	if o.fieldValid {
		return
	}
	n := o.target.VertexCount()
	boundary := make([]bool, n)
	for v := 0; v < n; v++ {
		vid := mesh.VertexID(v)
		if _, ok := o.state.LandmarkInverse(vid); ok {
			boundary[v] = true
			continue
		}
		if o.state.IsBlockedVertex(vid) {
			boundary[v] = true
		}
	}
	o.field = solveHarmonicField(o.target, boundary)
	o.fieldValid = true
}

func solveHarmonicField(target *mesh.Mesh, boundary []bool) []float64 {
	n := len(boundary)
	field := make([]float64, n)
	freeIndex := make([]int, n)
	var free []int
	for v := 0; v < n; v++ {
		if boundary[v] {
			field[v] = 1.0
			freeIndex[v] = -1
			continue
		}
		freeIndex[v] = len(free)
		free = append(free, v)
	}
	if len(free) == 0 {
		return field
	}

	m := len(free)
	a := mat.NewDense(m, m, nil)
	b := mat.NewVecDense(m, nil)
	for li, v := range free {
		vid := mesh.VertexID(v)
		var wSum float64
		for _, h := range target.OutgoingHalfEdges(vid) {
			w := 1.0 / math.Max(target.EdgeLength(target.HalfEdge(h).Edge), 1e-9)
			wSum += w
			u := int(target.To(h))
			if boundary[u] {
				b.SetVec(li, b.AtVec(li)+w)
			} else {
				lj := freeIndex[u]
				a.Set(li, lj, a.At(li, lj)-w)
			}
		}
		a.Set(li, li, a.At(li, li)+wSum)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		// Singular system (e.g. a free component with no boundary vertex
		// reachable) — leave those entries at their zero value rather than
		// failing the whole search.
		return field
	}
	for li, v := range free {
		field[v] = x.AtVec(li)
	}
	return field
}
