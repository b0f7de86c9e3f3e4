// SPDX-License-Identifier: MIT

// Package contactmap defines ContactMap, the immutable residue contact graph
// that the softassign aligner consumes.
//
// A contact map is an undirected simple graph: nodes are residues in
// sequence order (0..n-1) and an edge marks two residues that are spatially
// close. The aligner only needs node count, edge count and sorted,
// duplicate-free adjacency lists, so ContactMap stores exactly that and
// nothing is mutable after construction.
//
// ⚙️ Construction:
//
//	cm, err := contactmap.FromEdges(4, []contactmap.Contact{{0, 1}, {1, 2}, {2, 3}})
//	cm, err := contactmap.FromMatrix(adj)           // [][]bool, symmetric
//	cm, err := contactmap.ReadFile("1bkr.sadp")     // SADP contact file
//
// File format (SADP contact file):
//
//	<number of nodes>
//	i<TAB>j[<TAB>weight[<TAB>flag]]
//	...
//
// Indices are 0-based; weight and flag columns are accepted and ignored.
// Blank lines and lines starting with '#' are skipped.
package contactmap
