// Package embedding implements EmbeddingState (spec.md §3/§4.2): the
// mutable record of which layout half-edges have been realized as target
// paths, the derived blocked-element sets, and the reversible embed/unembed
// operations the branch-and-bound and greedy searches drive.
//
// State owns a private clone of the target mesh (spec.md §9: "the
// embedding owns the target mesh copy; references to the input remain
// non-owning") and is deliberately not safe for concurrent use — per
// spec.md §5 the core is single-threaded and synchronous, so unlike the
// teacher corpus's core.Graph (guarded by sync.RWMutex), State carries no
// lock at all. See DESIGN.md for this intentional departure from the
// teacher's default concurrency stance.
package embedding
