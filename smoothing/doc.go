// Package smoothing is the post-processing external collaborator named in
// spec.md §1 and §6: loop subdivision of the target mesh, and harmonic-
// parametrization path smoothing ("following the approach described in
// [Praun2001]", per original_source/pig/PathSmoothing.hh). Neither
// operation is part of the combinatorial search core — both consume a
// finished (or in-progress) *embedding.State without mutating it.
// Subdivide returns a new *embedding.State over a denser target mesh;
// SmoothPaths returns a *Result of 3D polylines, one per embedded layout
// edge, rather than a State.
//
// Grounded on gonum.org/v1/gonum/mat for the per-path 1D Laplace solve of
// harmonicRelax (the same dense-solve facility oracle/field.go uses for
// the VertexRepulsive metric).
package smoothing
