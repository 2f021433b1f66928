package smoothing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/patchgraph/layoutembed/embedding"
	"github.com/patchgraph/layoutembed/mesh"
)

// SmoothedPath is one layout edge's post-processed 3D polyline. Unlike
// embedding.State's stored paths, Points is not constrained to the
// combinatorial non-crossing/sector invariants of spec.md §3 — smoothing
// is explicitly a post-process external collaborator (spec.md §1's
// Non-goals: "producing smoothed/curved paths (post-process)"), so its
// output is a plain renderable curve, not something fed back into
// EmbedPath.
type SmoothedPath struct {
	LayoutEdge mesh.EdgeID
	Points     []mesh.Point
}

// Result is the outcome of one SmoothPaths/SmoothPathsSubset call.
type Result struct {
	Paths []SmoothedPath
}

// smoothingStrength controls how aggressively the harmonic relaxation of
// harmonicRelax pulls interior points toward a straight line between
// their neighbors on each iteration; original_source/pig/PathSmoothing.hh
// does not expose this as a tunable, so it is fixed rather than plumbed
// through as another Option.
const smoothingStrength = 4.0

// SmoothPaths smooths every currently-embedded layout edge's path
// (original_source/pig/PathSmoothing.hh's `smooth_paths`, the full-patch
// overload).
func SmoothPaths(state *embedding.State, nIters int, quadFlapToRectangle bool) (*Result, error) {
	layout := state.Layout()
	var edges []mesh.EdgeID
	for e := 0; e < layout.EdgeCount(); e++ {
		if state.IsEmbeddedEdge(mesh.EdgeID(e)) {
			edges = append(edges, mesh.EdgeID(e))
		}
	}
	return SmoothPathsSubset(state, edges, nIters, quadFlapToRectangle)
}

// SmoothPathsSubset smooths only the given layout edges
// (original_source/pig/PathSmoothing.hh's edge-subset `smooth_paths`
// overload).
func SmoothPathsSubset(state *embedding.State, edges []mesh.EdgeID, nIters int, quadFlapToRectangle bool) (*Result, error) {
	layout := state.Layout()
	target := state.Target()

	out := &Result{Paths: make([]SmoothedPath, 0, len(edges))}
	for _, eL := range edges {
		hL := layout.Edge(eL).HalfEdge
		verts, err := state.GetEmbeddedPath(hL)
		if err != nil {
			return nil, fmt.Errorf("smoothing: layout edge %d: %w", eL, err)
		}
		points := make([]mesh.Point, len(verts))
		for i, v := range verts {
			points[i] = target.Position(v)
		}
		for i := 0; i < nIters; i++ {
			points = harmonicRelax(points)
			if quadFlapToRectangle {
				points = pullTowardFlapCentroids(target, verts, points)
			}
		}
		out.Paths = append(out.Paths, SmoothedPath{LayoutEdge: eL, Points: points})
	}
	return out, nil
}

// harmonicRelax solves, for the interior points of p (endpoints p[0] and
// p[len(p)-1] held fixed), the regularized harmonic system
//
//	x_i + smoothingStrength * (2 x_i - x_{i-1} - x_{i+1}) = p_i
//
// per coordinate — a discrete Laplace/Tikhonov smoother: purely harmonic
// (Praun2001's "harmonic mapping") in the limit of large smoothingStrength,
// damped by the data term so successive iterations converge toward the
// straight-line chord rather than jumping there in one step.
func harmonicRelax(p []mesh.Point) []mesh.Point {
	n := len(p)
	if n < 3 {
		return append([]mesh.Point(nil), p...)
	}
	m := n - 2 // interior point count
	a := mat.NewDense(m, m, nil)
	bx := mat.NewVecDense(m, nil)
	by := mat.NewVecDense(m, nil)
	bz := mat.NewVecDense(m, nil)

	lambda := smoothingStrength
	for i := 0; i < m; i++ {
		a.Set(i, i, 1+2*lambda)
		if i > 0 {
			a.Set(i, i-1, -lambda)
		}
		if i < m-1 {
			a.Set(i, i+1, -lambda)
		}
		bx.SetVec(i, p[i+1].X)
		by.SetVec(i, p[i+1].Y)
		bz.SetVec(i, p[i+1].Z)
	}
	// Fold the fixed endpoints into the right-hand side.
	bx.SetVec(0, bx.AtVec(0)+lambda*p[0].X)
	by.SetVec(0, by.AtVec(0)+lambda*p[0].Y)
	bz.SetVec(0, bz.AtVec(0)+lambda*p[0].Z)
	bx.SetVec(m-1, bx.AtVec(m-1)+lambda*p[n-1].X)
	by.SetVec(m-1, by.AtVec(m-1)+lambda*p[n-1].Y)
	bz.SetVec(m-1, bz.AtVec(m-1)+lambda*p[n-1].Z)

	var x, y, z mat.VecDense
	if err := x.SolveVec(a, bx); err != nil {
		return append([]mesh.Point(nil), p...)
	}
	if err := y.SolveVec(a, by); err != nil {
		return append([]mesh.Point(nil), p...)
	}
	if err := z.SolveVec(a, bz); err != nil {
		return append([]mesh.Point(nil), p...)
	}

	out := make([]mesh.Point, n)
	out[0] = p[0]
	out[n-1] = p[n-1]
	for i := 0; i < m; i++ {
		out[i+1] = mesh.Point{X: x.AtVec(i), Y: y.AtVec(i), Z: z.AtVec(i)}
	}
	return out
}

// pullTowardFlapCentroids nudges each interior smoothed point a small
// fraction toward the centroid of the triangle apexes flanking the target
// edge from the previous original path vertex to the original vertex at
// the same index — a simplified stand-in for
// PathSmoothing.hh's `quad_flap_to_rectangle` option, which reshapes the
// two triangles flanking each path segment into a planar rectangle before
// solving the full per-patch harmonic parametrization. Doing that
// construction properly needs the per-quad-flap boundary conditions
// Praun2001 describes; see DESIGN.md for why this module instead applies
// a single corrective blend term to the already-harmonic 1D curve.
func pullTowardFlapCentroids(target *mesh.Mesh, originalVerts []mesh.VertexID, points []mesh.Point) []mesh.Point {
	const blend = 0.15
	out := append([]mesh.Point(nil), points...)
	for i := 1; i+1 < len(originalVerts); i++ {
		a, b := originalVerts[i-1], originalVerts[i]
		h, ok := target.HalfEdgeBetween(a, b)
		if !ok {
			continue
		}
		var apexSum mesh.Point
		count := 0
		if f := target.FaceOf(h); f != mesh.NoFace {
			apexSum = apexSum.Add(target.Position(target.To(target.Next(h))))
			count++
		}
		if f := target.FaceOf(target.Opposite(h)); f != mesh.NoFace {
			apexSum = apexSum.Add(target.Position(target.To(target.Next(target.Opposite(h)))))
			count++
		}
		if count == 0 {
			continue
		}
		centroid := apexSum.Scale(1.0 / float64(count))
		out[i] = out[i].Scale(1 - blend).Add(centroid.Scale(blend))
	}
	return out
}
