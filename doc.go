// Package cmalign aligns protein contact maps: given two residue contact
// graphs it finds a non-crossing, order-preserving residue matching that
// maximizes the number of shared contacts.
//
// 🚀 What is cmalign?
//
//	A small library plus CLI built around the SADP aligner:
//		• Contact maps: load, validate, summarise and traverse residue graphs
//		• Softassign: deterministic annealing with Sinkhorn balancing
//		• Cleanup: greedy discretization and a non-crossing DP
//		• Scoring: shared contacts over the smaller contact count
//		• Alignments: gapped sequence rows and FASTA output
//		• Batch: bounded-parallel pair lists with Prometheus metrics
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/      dense row-major float64 matrices with row/column sums
//	contactmap/  immutable contact graphs, file I/O, BFS and components
//	builder/     deterministic and seeded random contact map constructors
//	sadp/        the aligner: Matcher, Balance, Discretize, NonCrossing, Verify
//	alignment/   matchings rendered as gapped sequence pairs
//	batch/       many alignments over an errgroup worker pool
//	cmd/cmalign  the command line front end
//
// Quick example:
//
//	x, _ := contactmap.ReadFile("1bkr.sadp")
//	y, _ := contactmap.ReadFile("1dxx.sadp")
//	m, _ := sadp.New(x, y, sadp.DefaultOptions())
//	res := m.Run()
//	fmt.Println(res.Score, res.SharedContacts, res.Pairs)
//
// Determinism: the aligner draws no random numbers, so identical inputs
// and options always give bit-identical matchings.
package cmalign
