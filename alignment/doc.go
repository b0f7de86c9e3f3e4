// SPDX-License-Identifier: MIT

// Package alignment renders a residue matching as a pairwise sequence
// alignment.
//
// A matching produced by package sadp pairs residue i of the first map with
// residue j of the second. Between two consecutive matches the unmatched
// residues are laid out as follows:
//
//	1. min(len1, len2) "untrusted" columns: both residues, no contact support;
//	2. the remainder as gaps in the shorter stretch.
//
// The same rule lays out the residues after the last match. For example,
// with matches (0,2) (1,4) (2,5) (4,9):
//
//	first:  --A-BCD--EFGH
//	second: ABCDEFGHIJK--
//
// Missing sequences are rendered with the undefined residue 'X', so an
// alignment can be built from residue counts alone.
package alignment
