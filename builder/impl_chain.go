// SPDX-License-Identifier: MIT
// Package: cmalign/builder
//
// impl_chain.go - Path, Cycle and Band constructors.
//
// Contract:
//   • Path:  n ≥ 2, contacts (i, i+1) for i = 0..n-2.
//   • Cycle: n ≥ 3, Path plus (0, n-1).
//   • Band:  k ≥ 1, n ≥ 2, contacts (i, j) with 1 ≤ j-i ≤ k.
//
// Complexity: O(n) for Path/Cycle, O(n·k) for Band.
// Determinism: contacts are emitted by ascending i, then ascending j.

package builder

import "fmt"

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	methodBand   = "Band"
	minPathNodes = 2
	minCycleNode = 3
	minBandWidth = 1
)

// Path returns a Constructor that adds the backbone contacts (i, i+1).
func Path() Constructor {
	return func(c *canvas, _ builderConfig) error {
		if c.n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, c.n, minPathNodes, ErrTooFewNodes)
		}

		return chain(c, methodPath, 1)
	}
}

// Cycle returns a Constructor that adds the backbone plus the contact
// closing the ring, (0, n-1).
func Cycle() Constructor {
	return func(c *canvas, _ builderConfig) error {
		if c.n < minCycleNode {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, c.n, minCycleNode, ErrTooFewNodes)
		}
		if err := chain(c, methodCycle, 1); err != nil {
			return err
		}

		return c.add(methodCycle, 0, c.n-1)
	}
}

// Band returns a Constructor that adds every contact within sequence
// separation k, the pattern of a tightly packed helix.
func Band(k int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if k < minBandWidth {
			return fmt.Errorf("%s: k=%d: %w", methodBand, k, ErrInvalidBand)
		}
		if c.n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBand, c.n, minPathNodes, ErrTooFewNodes)
		}

		return chain(c, methodBand, k)
	}
}

// chain adds (i, j) for every 1 ≤ j-i ≤ k.
func chain(c *canvas, method string, k int) error {
	for i := 0; i < c.n; i++ {
		for j := i + 1; j <= i+k && j < c.n; j++ {
			if err := c.add(method, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
