// SPDX-License-Identifier: MIT

package contactmap

import "errors"

// Sentinel errors for contact map construction and parsing.
var (
	// ErrNegativeSize indicates a negative node count.
	ErrNegativeSize = errors.New("contactmap: negative node count")

	// ErrNodeOutOfRange indicates a contact endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("contactmap: node index out of range")

	// ErrSelfContact indicates a contact between a residue and itself.
	ErrSelfContact = errors.New("contactmap: self contact not allowed")

	// ErrNotSquare indicates a non-square adjacency matrix.
	ErrNotSquare = errors.New("contactmap: adjacency matrix is not square")

	// ErrAsymmetric indicates an adjacency that is not symmetric.
	ErrAsymmetric = errors.New("contactmap: adjacency is not symmetric")

	// ErrUnsorted indicates an adjacency list that is unsorted or has duplicates.
	ErrUnsorted = errors.New("contactmap: adjacency list not strictly increasing")

	// ErrBadHeader indicates a missing or malformed node count line.
	ErrBadHeader = errors.New("contactmap: missing or malformed node count")

	// ErrBadLine indicates a malformed contact line.
	ErrBadLine = errors.New("contactmap: malformed contact line")
)
