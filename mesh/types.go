package mesh

import "errors"

// Sentinel errors for mesh package operations.
var (
	// ErrNonManifold indicates that adding a face would violate the
	// two-half-edges-per-edge manifold invariant (a third face would share
	// an already-paired directed edge).
	ErrNonManifold = errors.New("mesh: non-manifold edge")

	// ErrDegenerateFace indicates a face was declared with fewer than 3
	// distinct vertices.
	ErrDegenerateFace = errors.New("mesh: degenerate face (fewer than 3 vertices)")

	// ErrUnknownVertex indicates a referenced VertexID does not exist.
	ErrUnknownVertex = errors.New("mesh: unknown vertex")

	// ErrUnknownHalfEdge indicates a referenced HalfEdgeID does not exist.
	ErrUnknownHalfEdge = errors.New("mesh: unknown half-edge")

	// ErrUnknownEdge indicates a referenced EdgeID does not exist.
	ErrUnknownEdge = errors.New("mesh: unknown edge")

	// ErrUnknownFace indicates a referenced FaceID does not exist.
	ErrUnknownFace = errors.New("mesh: unknown face")

	// ErrNotTriangle indicates an operation that requires a triangular face
	// (e.g. geodesic unfolding) was given a face with != 3 sides.
	ErrNotTriangle = errors.New("mesh: face is not a triangle")

	// ErrRepeatedVertex indicates a face lists the same vertex more than once.
	ErrRepeatedVertex = errors.New("mesh: face repeats a vertex")
)

// VertexID, HalfEdgeID, EdgeID, and FaceID are index handles into a Mesh's
// parallel element slices. The zero value is a valid index (element 0);
// use NoFace to represent "no face" (boundary) and check other handles
// against the owning Mesh's element counts before use.
type (
	VertexID   int
	HalfEdgeID int
	EdgeID     int
	FaceID     int
)

// NoFace marks a half-edge as bounding the mesh boundary rather than an
// interior face.
const NoFace FaceID = -1

// Point is a position in 3D space. Mesh never interprets Point beyond
// linear interpolation (Lerp) and Euclidean distance (Dist); it carries no
// UV, normal, or color channel, matching spec.md §6's "positions and
// connectivity only" I/O contract.
type Point struct {
	X, Y, Z float64
}

// Vertex is one point of the surface plus a handle to one of its outgoing
// half-edges (used as an entry point for neighborhood iteration).
type Vertex struct {
	ID  VertexID
	Pos Point

	// out is an arbitrary outgoing half-edge incident to this vertex, or -1
	// if the vertex has not yet been given any incident face.
	out HalfEdgeID
}

// HalfEdge is one directed traversal step of an edge, bounding a face (or
// the mesh boundary) on its left.
type HalfEdge struct {
	ID HalfEdgeID

	// To is the vertex this half-edge points to. From(h) == To(Opposite(h)).
	To VertexID

	Next     HalfEdgeID
	Prev     HalfEdgeID
	Opposite HalfEdgeID
	Face     FaceID
	Edge     EdgeID
}

// Edge is the undirected pair of opposite half-edges connecting two
// vertices.
type Edge struct {
	ID EdgeID

	// HalfEdge is one of the two half-edges sharing this edge; its
	// Opposite is the other.
	HalfEdge HalfEdgeID
}

// Face is a (possibly non-triangular, for the layout mesh L) polygon
// bounded by a cyclic chain of half-edges.
type Face struct {
	ID       FaceID
	HalfEdge HalfEdgeID
	degree   int
}

// Mesh is a manifold, oriented half-edge surface. The zero value is not
// usable; construct with NewMesh.
type Mesh struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	edges     []Edge
	faces     []Face

	// edgeIndex maps an unordered vertex pair (as a packed key) to the
	// EdgeID connecting them, populated by Finalize and copied by Clone.
	// EdgeBetween does not consult it; it resolves adjacency through
	// HalfEdgeBetween.
	edgeIndex map[vertexPairKey]EdgeID

	// directedBuild is a build-time-only index from directed vertex pairs
	// to the half-edge declared for that direction; used by AddFace and
	// Finalize, and released once Finalize completes.
	directedBuild map[directedKey]HalfEdgeID
}

// vertexPairKey packs two VertexIDs into a canonical, order-independent
// map key.
type vertexPairKey struct {
	lo, hi VertexID
}

func makeVertexPairKey(a, b VertexID) vertexPairKey {
	if a > b {
		a, b = b, a
	}
	return vertexPairKey{lo: a, hi: b}
}

// NewMesh returns an empty Mesh ready for AddVertex/AddFace calls.
func NewMesh() *Mesh {
	return &Mesh{
		edgeIndex: make(map[vertexPairKey]EdgeID),
	}
}
