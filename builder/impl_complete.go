// SPDX-License-Identifier: MIT
// Package: cmalign/builder
//
// impl_complete.go - Complete and Star constructors.
//
// Contract:
//   • Complete: n ≥ 1, every unordered pair {i,j}, i<j, exactly once.
//   • Star:     n ≥ 2, 0 ≤ center < n, contacts (center, i) for i ≠ center.
//
// Complexity: O(n²) for Complete, O(n) for Star.
// Determinism: lexicographic pair order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cmalign/contactmap"
)

const (
	methodComplete   = "Complete"
	methodStar       = "Star"
	minCompleteNodes = 1
	minStarNodes     = 2
)

// Complete returns a Constructor that puts every pair of residues in contact.
func Complete() Constructor {
	return func(c *canvas, _ builderConfig) error {
		if c.n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, c.n, minCompleteNodes, ErrTooFewNodes)
		}
		for i := 0; i < c.n; i++ {
			for j := i + 1; j < c.n; j++ {
				if err := c.add(methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that connects center to every other residue.
func Star(center int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if c.n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, c.n, minStarNodes, ErrTooFewNodes)
		}
		if center < 0 || center >= c.n {
			return fmt.Errorf("%s: center=%d outside %d residues: %w",
				methodStar, center, c.n, contactmap.ErrNodeOutOfRange)
		}
		for i := 0; i < c.n; i++ {
			if err := c.add(methodStar, center, i); err != nil {
				return err
			}
		}

		return nil
	}
}
