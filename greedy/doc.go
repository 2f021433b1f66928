// Package greedy implements the non-exhaustive embedding heuristics of
// spec.md §4.3: visit layout edges in some deterministic order and embed
// each one with the oracle's shortest path, never backtracking. Three
// named variants (Praun, Kraevoy, Schreiner) differ only in their
// edge-visitation order and tie-breaking rule under insertion_order ==
// Arbitrary; EmbedGreedy takes the order as a Settings field so all three
// share one implementation. insertion_order == BestFirst (the default)
// instead rescans every unembedded edge at each step and embeds whichever
// scores best, exactly as spec.md §4.3's pseudocode describes; scoring
// applies the swirl-detection and blocking-condition options when
// enabled. EmbedCompetitors/Best run the three named variants plus a
// fourth, blocking-aware competitor side by side and keep the cheapest
// result — the bnb package uses that result to seed its incumbent upper
// bound.
//
// Grounded on builder.builderConfig/BuilderOption (config.go): Settings
// plays the same role as builderConfig, built through DefaultSettings and
// mutated by a chain of Option values, applied once at the top of
// EmbedGreedy exactly as newBuilderConfig applies BuilderOptions.
package greedy
