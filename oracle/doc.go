// Package oracle implements the shortest-path oracle (spec.md §4.1): given
// a layout half-edge whose endpoints are already-placed landmarks, find
// the shortest simple path on the target mesh between them that starts
// inside the embeddable sector at its first landmark, touches no vertex or
// edge already claimed by another embedded path, and passes through no
// other landmark. The sector at the far landmark is not checked here;
// embedding.State.EmbedPath checks it before committing a path.
//
// The search itself is a lazy-decrease-key Dijkstra over the target
// mesh's vertex/edge adjacency graph, grounded directly on
// dijkstra.runner's nodePQ heap and relax loop: a reusable scratch
// workspace (dist/prev arrays and a binary heap, see workspace.go) is
// owned by the Oracle and reset per call rather than reallocated, exactly
// as dijkstra.runner reuses its maps across Run calls.
//
// Two cost metrics are supported (Metric): Geodesic, plain Euclidean edge
// length; and VertexRepulsive, edge length scaled by a harmonic scalar
// field that peaks at landmarks and already-traced vertices, biasing the
// search away from congested regions of the mesh (spec.md §4.1's
// "repulsive" oracle variant). The field is solved with
// gonum.org/v1/gonum/mat as a sparse-ish dense Poisson solve over the
// target mesh's vertices — see field.go.
package oracle
