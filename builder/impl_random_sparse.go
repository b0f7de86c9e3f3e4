// SPDX-License-Identifier: MIT
// Package: cmalign/builder
//
// impl_random_sparse.go - RandomSparse(p) and Contacts(...) constructors.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity: O(n²) Bernoulli trials.
// Determinism: stable trial order (i asc, j asc), so a fixed seed always
// yields the same map.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse = "RandomSparse"
	methodContacts     = "Contacts"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples each residue pair with
// probability p.
func RandomSparse(p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < c.n; i++ {
			for j := i + 1; j < c.n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := c.add(methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Contacts returns a Constructor that adds an explicit list of [i, j]
// pairs. Out-of-range residues fail with contactmap.ErrNodeOutOfRange;
// self pairs are ignored.
func Contacts(pairs ...[2]int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		for _, p := range pairs {
			if err := c.add(methodContacts, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
