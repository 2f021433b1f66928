// Package bnb implements the exhaustive branch-and-bound search of
// spec.md §4.4: find the globally shortest non-crossing embedding of
// every layout edge, backtracking when a partial assignment cannot beat
// the best complete assignment found so far.
//
// Grounded directly on tsp.bbEngine (tsp/bb.go): a dedicated engine
// struct carries the search's mutable state (here, the shared
// *embedding.State itself, mutated in place via EmbedPath/UnembedPath
// rather than cloned per node — spec.md §5's reversible-mutation
// invariant is exactly what lets this engine use DFS-with-backtracking
// instead of tsp's own flat visited/path arrays), a best-known incumbent
// (bestSequence/bestCost in place of bestTour/bestCost), an admissible
// lower bound checked before each recursive call, sparse deadline checks
// every 4096 node events, and deterministic branch ordering so repeated
// runs over the same input always explore nodes in the same order.
//
// Differences from tsp.bbEngine, each forced by the domain: there is no
// fixed-size distance matrix (the search graph is the target mesh, routed
// through oracle.Oracle per layout edge); the lower bound is a sum of
// per-remaining-edge oracle shortest-path lengths under the current
// blocking (bound.go) rather than a degree-1 relaxation; and a
// visited-state hash set (hash.go)
// prunes partial assignments already explored with an equal-or-better
// cost, which tsp's tree-shaped Hamiltonian-cycle search has no
// equivalent need for (its branching order alone makes every node
// distinct).
package bnb
