// SPDX-License-Identifier: MIT
// Package: cmalign/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Creates the canvas, resolves
//     cfg, runs cons in order and normalizes the result into a ContactMap.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cmalign/contactmap"
)

// Constructor adds contacts to the canvas using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit contacts in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(c *canvas, cfg builderConfig) error

// canvas accumulates contacts over a fixed number of residues. Duplicates
// are allowed here and collapse when the ContactMap is built.
type canvas struct {
	n        int
	contacts []contactmap.Contact
}

// add appends the contact (i,j). Self contacts are skipped so that range
// constructors need no special cases; out-of-range residues are an error.
func (c *canvas) add(method string, i, j int) error {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return fmt.Errorf("%s: contact (%d,%d) outside %d residues: %w",
			method, i, j, c.n, contactmap.ErrNodeOutOfRange)
	}
	if i != j {
		c.contacts = append(c.contacts, contactmap.Contact{I: i, J: j})
	}

	return nil
}

// Build creates an n-residue contact map, resolves the builder configuration
// from opts and applies all constructors in order. Any constructor error is
// wrapped with the context "Build: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Normalization: O(E log E) over the emitted contacts.
//
// Errors:
//   - ErrConstructFailed for n < 0 or a nil constructor.
//   - Constructor sentinels (ErrTooFewNodes, ErrInvalidProbability, ...).
func Build(n int, opts []BuilderOption, cons ...Constructor) (*contactmap.ContactMap, error) {
	if n < 0 {
		return nil, fmt.Errorf("Build: n=%d: %w", n, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	c := &canvas{n: n}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	cm, err := contactmap.FromEdges(n, c.contacts)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if cfg.name != "" {
		cm.SetName(cfg.name)
	}

	return cm, nil
}

// MustBuild is Build for fixtures known to be valid; it panics on error.
func MustBuild(n int, opts []BuilderOption, cons ...Constructor) *contactmap.ContactMap {
	cm, err := Build(n, opts, cons...)
	if err != nil {
		panic(err)
	}

	return cm
}
