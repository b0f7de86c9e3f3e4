// SPDX-License-Identifier: MIT

package sadp

import "errors"

// Sentinel errors for matcher construction and the exported building blocks.
var (
	// ErrInvalidOptions indicates an annealing or iteration parameter outside its domain.
	ErrInvalidOptions = errors.New("sadp: invalid options")

	// ErrNilContactMap indicates a nil contact map passed to New or Verify.
	ErrNilContactMap = errors.New("sadp: nil contact map")

	// ErrNoFreeColumn indicates that discretization ran out of unclaimed
	// columns, which only happens when a caller breaks the n1 ≤ n2 contract.
	ErrNoFreeColumn = errors.New("sadp: no unclaimed column left for row")

	// ErrShapeMismatch indicates a matrix whose shape does not fit the contact maps.
	ErrShapeMismatch = errors.New("sadp: matrix shape does not match contact maps")
)
