// SPDX-License-Identifier: MIT
// Package: cmalign/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and the constructor name.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that the map is smaller than the constructor's
// minimum (e.g. Cycle on fewer than 3 residues).
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidBand indicates a band width below 1.
var ErrInvalidBand = errors.New("builder: band width must be at least 1")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in composition, such as a
// nil constructor or a negative residue count.
var ErrConstructFailed = errors.New("builder: construction failed")
