// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 storage used by the
// contact map aligner.
//
// The softassign matcher keeps one (n1+1)×(n2+1) match matrix plus a few
// scratch buffers of the same shape alive for the duration of a run, and it
// touches every cell several times per iteration. Dense therefore stores its
// elements in one flat slice (offset = i*cols + j) and exposes Row(i) as a
// no-copy view for hot loops, while At/Set stay bounds-checked for everything
// else.
//
// ✨ Key features:
//   - zero-sized shapes are legal (an empty contact map has an empty real block)
//   - bounds-checked At/Set returning sentinel errors, never panics
//   - Fill, CopyFrom and Clone for buffer reuse without reallocation
//   - RowSum / ColSum / NonZero helpers for normalization and extraction
//
// Complexity quicksheet:
//
//	NewDense: O(r*c); At/Set/Row: O(1); Fill/CopyFrom/Clone: O(r*c).
package matrix
