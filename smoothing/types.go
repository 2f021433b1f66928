package smoothing

import "errors"

// Sentinel errors for the smoothing package.
var (
	// ErrNonTriangleTarget indicates Subdivide was given a target mesh
	// containing a non-triangular face; Loop subdivision is defined only
	// over triangle meshes.
	ErrNonTriangleTarget = errors.New("smoothing: target mesh is not purely triangular")

	// ErrNoInteriorVertices names the case of a path with no interior
	// point to smooth. SmoothPaths and SmoothPathsSubset do not return it:
	// such a path is kept unchanged in the Result.
	ErrNoInteriorVertices = errors.New("smoothing: patch has no interior vertices to smooth")
)
