// Package virtual implements VirtualVertex and VirtualPath: the tagged
// union that lets the shortest-path oracle and the embedding state treat a
// target vertex and a point on a target edge uniformly (spec.md §4.5).
//
// Per spec.md §9's design note on variant nodes ("use a tagged sum type.
// Do not model via class hierarchy; pattern match on the tag at each use
// site"), Vertex is a small struct with a Kind discriminant, not an
// interface with two concrete implementations — mirroring how the teacher
// corpus's matrix.Option/tsp.BoundAlgo enums are plain int-backed types
// switched on at the call site, never dispatched through a method set.
package virtual
