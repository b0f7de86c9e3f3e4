// SPDX-License-Identifier: MIT

package sadp

import "time"

// Feasibility tags a Result as feasible or infeasible.
type Feasibility int

const (
	// Feasible results carry a meaningful Score and SharedContacts.
	Feasible Feasibility = iota
	// Infeasible results contain crossing contacts; Score and SharedContacts
	// are undefined. Under a correct DP this never happens, so an
	// Infeasible result signals a defect worth auditing.
	Infeasible
)

// String implements fmt.Stringer.
func (f Feasibility) String() string {
	if f == Feasible {
		return "feasible"
	}

	return "infeasible"
}

// Pair is one matched residue pair, X indexing the first contact map passed
// to New and Y the second, regardless of any internal swap.
type Pair struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Result is the read-only outcome of one Matcher.Run.
type Result struct {
	// Pairs is the non-crossing matching in the caller's orientation,
	// sorted by X.
	Pairs []Pair
	// Feasibility tags whether Score and SharedContacts are meaningful.
	Feasibility Feasibility
	// Score is RawScore rounded to two decimals.
	Score float64
	// RawScore is shared contacts / min(edges_X, edges_Y).
	RawScore float64
	// SharedContacts is the number of contacts common to both maps.
	SharedContacts int
	// Iterations counts assignment (softmax) iterations over the whole run.
	Iterations int
	// OuterSteps counts annealing steps actually taken.
	OuterSteps int
	// Elapsed is the wall time of the optimization, excluding verification.
	Elapsed time.Duration
}

// Feasible reports whether the result passed verification.
func (r Result) Feasible() bool { return r.Feasibility == Feasible }

// LegacyScore returns Score, or -1 for an infeasible result.
func (r Result) LegacyScore() float64 {
	if !r.Feasible() {
		return -1
	}

	return r.Score
}

// LegacyNCC returns SharedContacts, or -1 for an infeasible result.
func (r Result) LegacyNCC() int {
	if !r.Feasible() {
		return -1
	}

	return r.SharedContacts
}
