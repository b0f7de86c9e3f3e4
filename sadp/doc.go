// SPDX-License-Identifier: MIT

// Package sadp aligns two protein contact maps by joining softassign with
// dynamic programming.
//
// 🚀 What does it solve?
//
//	Given two contact maps X (n1 residues) and Y (n2 residues), find a
//	non-crossing correspondence between their residues that maximizes the
//	number of shared contacts: edges (i,k) of X and (j,l) of Y with i↔j and
//	k↔l matched. This is the contact map overlap problem; the score does not
//	depend on any rigid 3-D superposition.
//
// ✨ How it works:
//
//	A-loop  b = b0, b0·br, … while b < bf           (deterministic annealing)
//	  B-loop up to I0 times                         (assignment iterations)
//	    softmax   M[i][j] = exp(min(b·Q[i][j], cap)) (softmax.go)
//	    Sinkhorn  rows/cols → 1, up to I1 passes    (sinkhorn.go)
//	    stop when Σ|M-M0| over the real block < eps0
//	cleanup      greedy one column per row          (cleanup.go)
//	noncrossing  LIS-style DP + backtrack           (noncrossing.go)
//	verify       count shared, ordered contacts     (score.go)
//
//	M is (n1+1)×(n2+1): the extra row and column are slack sinks that keep
//	row/column normalization well defined when n1 ≠ n2. X is the first map
//	only if it has strictly fewer nodes; otherwise the maps are swapped.
//
// ⚙️ Usage:
//
//	m, err := sadp.New(x, y, sadp.DefaultOptions(),
//		sadp.WithProgress(func(pct float64) { fmt.Printf("%.0f%%\n", pct) }))
//	if err != nil {
//		// ErrInvalidOptions or ErrNilContactMap
//	}
//	res := m.Run()
//	if res.Feasible() {
//		fmt.Println(res.Score, res.SharedContacts, res.Pairs)
//	}
//
// Concurrency:
//
//	A Matcher owns its match matrix and scratch buffers and must not be
//	driven from several goroutines at once. Independent Matchers share no
//	state, so batch workloads simply run one Matcher per goroutine (see
//	package batch).
//
// Reference: B. J. Jain, M. Lappe, "Joining Softassign and Dynamic
// Programming for the Contact Map Overlap Problem", BIRD 2007.
package sadp
