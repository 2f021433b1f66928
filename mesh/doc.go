// Package mesh provides a half-edge surface representation shared by the
// layout mesh L and the target mesh T of a layout-embedding problem.
//
// A Mesh stores vertices, half-edges, edges, and faces in parallel,
// index-addressed slices (VertexID, HalfEdgeID, EdgeID, FaceID are plain
// ints) rather than as a web of mutually-owning pointers. Every half-edge
// has a To vertex, a Next, a Prev, an Opposite, and a (possibly boundary)
// Face. Two half-edges sharing an undirected Edge are always Opposite of
// one another. The surface is assumed manifold and consistently oriented;
// AddFace returns ErrNonManifold the moment that assumption would be
// violated.
//
// Style note: this package favors the teacher corpus's pointer-linked
// Vertex/Edge design (github.com/katalvlaran/lvlath's graph package) over
// its map-of-maps sibling (core), because half-edge navigation is
// overwhelmingly "follow a handle to its neighbor" rather than "look up an
// edge by its two endpoint IDs" — the latter is still supported (via a
// build-time directed-edge index) for the one place it is genuinely
// needed: pairing opposite half-edges while building a face from a
// polygon soup.
package mesh
