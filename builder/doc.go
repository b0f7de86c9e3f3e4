// Package builder provides reusable "functional-options"-style fixtures for
// contact maps. It lives alongside the contactmap and sadp packages so that
// tests, examples and benchmarks share one deterministic way of describing
// synthetic protein topologies.
//
// The package offers the following key components:
//
//   - Orchestrator:
//       - Build(n, opts, cons...): overlays constructors on an n-residue map.
//   - Configuration primitives:
//       - BuilderOption:   a function that mutates builderConfig before use.
//       - WithSeed/WithRand: RNG for stochastic constructors.
//       - WithName:        name of the resulting contact map.
//   - Constructors (Constructor closures):
//       - Path:            backbone contacts (i, i+1).
//       - Cycle:           Path plus the closing contact (0, n-1).
//       - Complete:        every pair of residues in contact.
//       - Star(center):    one hub residue touching all others.
//       - Band(k):         every pair with 1 ≤ |i-j| ≤ k, a helix-like band.
//       - RandomSparse(p): each pair independently with probability p.
//       - Contacts(pairs): an explicit contact list.
//
// Guarantees:
//
//   - Idempotent composition: overlapping constructors never duplicate
//     contacts; the contactmap normalizes the final list.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, wrapping the
//     sentinels of errors.go with the constructor name.
//   - Determinism: the same n, options, seed and constructor order always
//     produce the same map.
package builder
