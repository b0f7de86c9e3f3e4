// SPDX-License-Identifier: MIT

package alignment

import "errors"

var (
	// ErrCrossingPairs indicates pairs that are not strictly increasing in both coordinates.
	ErrCrossingPairs = errors.New("alignment: pairs cross or repeat")

	// ErrPairOutOfRange indicates a pair referencing a residue beyond the sequence.
	ErrPairOutOfRange = errors.New("alignment: pair out of range")

	// ErrSequenceLength indicates a residue string that disagrees with the declared length.
	ErrSequenceLength = errors.New("alignment: sequence length mismatch")
)
