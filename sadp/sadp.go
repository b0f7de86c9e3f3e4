// SPDX-License-Identifier: MIT

package sadp

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cmalign/contactmap"
	"github.com/katalvlaran/cmalign/matrix"
)

// Matcher aligns one pair of contact maps. It owns the match matrix and all
// scratch buffers; see the package documentation for the concurrency rules.
type Matcher struct {
	// x has no more nodes than y; preserved records whether that is the
	// caller's order.
	x, y      *contactmap.ContactMap
	preserved bool
	n1, n2    int

	opts Options
	cfg  config

	// m is the (n1+1)×(n2+1) match matrix during the relaxation and the
	// n1×n2 binary matching after Run.
	m *matrix.Dense
	// Scratch buffers, allocated once in New and reused by every iteration.
	q             *matrix.Dense // n1×n2 compatibility scores
	prevIteration *matrix.Dense // M before the current assignment iteration
	prevSinkhorn  *matrix.Dense // M before the current Sinkhorn pass
	// Row views over m and prevSinkhorn for the balancer, rebuilt once per
	// Run.
	rows, snapshotRows [][]float64

	expCap float64

	b          float64
	iterations int
	outerSteps int
	elapsed    time.Duration
	verdict    Verdict
	done       bool
}

// New prepares a matcher for x and y. X is used internally as the smaller
// map only when it has strictly fewer nodes; otherwise the maps are swapped,
// equal sizes included. Results are always reported in the caller's
// orientation.
//
// Errors: ErrNilContactMap, ErrInvalidOptions (wrapped with the field).
//
// Complexity: O(n1·n2) for the buffers.
func New(x, y *contactmap.ContactMap, opts Options, mopts ...Option) (*Matcher, error) {
	if x == nil || y == nil {
		return nil, ErrNilContactMap
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mt := &Matcher{x: x, y: y, preserved: true, opts: opts, cfg: newConfig(mopts...)}
	if x.NumNodes() >= y.NumNodes() {
		mt.x, mt.y, mt.preserved = y, x, false
	}
	mt.n1, mt.n2 = mt.x.NumNodes(), mt.y.NumNodes()
	mt.expCap = exponentCap(mt.n2)

	var err error
	if mt.q, err = matrix.NewDense(mt.n1, mt.n2); err != nil {
		return nil, err
	}
	if mt.prevIteration, err = matrix.NewDense(mt.n1+1, mt.n2+1); err != nil {
		return nil, err
	}
	if mt.prevSinkhorn, err = matrix.NewDense(mt.n1+1, mt.n2+1); err != nil {
		return nil, err
	}
	mt.snapshotRows = rowViews(mt.prevSinkhorn)

	return mt, nil
}

// Run anneals the match matrix with softmax and Sinkhorn balancing, cleans
// it up into a non-crossing matching and verifies the result.
// Run may be called again; every call starts from the same initial state
// and yields a bit-identical result.
//
// Run panics if discretization fails, which requires n1 > n2 and so cannot
// happen for a Matcher built by New.
func (m *Matcher) Run() Result {
	log := m.cfg.logger.WithFields(logrus.Fields{
		"x":  m.x.Name(),
		"y":  m.y.Name(),
		"n1": m.n1,
		"n2": m.n2,
	})
	start := m.cfg.clock()

	m.anneal(log)

	hard, err := Discretize(m.m, m.n1, m.n2)
	if err != nil {
		panic(fmt.Errorf("sadp: cleanup of %dx%d match matrix: %w", m.n1, m.n2, err))
	}
	m.m = NonCrossing(hard)
	m.elapsed = m.cfg.clock().Sub(start)

	// Shapes are fixed by construction; Verify cannot fail here.
	m.verdict, _ = Verify(m.m, m.x, m.y)
	m.done = true

	res := m.Result()
	entry := log.WithFields(logrus.Fields{
		"score":      res.Score,
		"ncc":        res.SharedContacts,
		"iterations": res.Iterations,
		"elapsed":    res.Elapsed,
	})
	if res.Feasible() {
		entry.Info("contact maps aligned")
	} else {
		entry.WithField("crossing", m.verdict.Crossing).
			Warn("non-crossing extraction produced crossing contacts; audit the DP")
	}
	if m.cfg.metrics != nil {
		m.cfg.metrics.observe(res)
	}

	return res
}

// anneal runs the continuation loop on a freshly initialized match matrix.
func (m *Matcher) anneal(log *logrus.Entry) {
	var err error
	if m.m, err = matrix.NewFilled(m.n1+1, m.n2+1, initialMatch); err != nil {
		panic(err) // shapes are non-negative by construction
	}
	m.rows = rowViews(m.m)
	trace := log.Logger.IsLevelEnabled(logrus.TraceLevel)
	debug := log.Logger.IsLevelEnabled(logrus.DebugLevel)
	m.b = m.opts.B0
	m.iterations, m.outerSteps = 0, 0

	r := 1.0
	if m.n1 > 0 {
		r = float64(max(m.n1, m.n2)) / float64(m.n1)
	}
	total := OuterSteps(m.opts)

	for m.b < m.opts.Bf {
		for t0 := 0; t0 < m.opts.I0; t0++ {
			m.iterations++
			_ = m.prevIteration.CopyFrom(m.m)

			m.softmax(m.b, r)
			st := balance(m.rows, m.snapshotRows, m.n2+1, m.opts.I1, m.opts.Eps1)

			err0, _ := m.m.AbsDiff(m.prevIteration, m.n1, m.n2)
			if trace {
				log.WithFields(logrus.Fields{
					"b":         m.b,
					"iteration": m.iterations,
					"passes":    st.Passes,
					"residual":  st.Residual,
					"change":    err0,
				}).Trace("assignment iteration")
			}
			if err0 < m.opts.Eps0 {
				break
			}
		}
		m.b *= m.opts.Br
		m.outerSteps++

		if debug {
			log.WithFields(logrus.Fields{"b": m.b, "step": m.outerSteps, "of": total}).
				Debug("annealing step")
		}
		reportProgress(m.cfg.progress, log, m.outerSteps, total)
	}
}

// Result returns the outcome of the last Run (the zero Result before Run).
func (m *Matcher) Result() Result {
	if !m.done {
		return Result{}
	}
	res := Result{
		Pairs:      m.Matching(),
		Iterations: m.iterations,
		OuterSteps: m.outerSteps,
		Elapsed:    m.elapsed,
	}
	if m.verdict.Feasible {
		res.Feasibility = Feasible
		res.RawScore = m.verdict.Score
		res.Score = roundScore(m.verdict.Score)
		res.SharedContacts = m.verdict.SharedContacts
	} else {
		res.Feasibility = Infeasible
	}

	return res
}

// Matching returns the matched pairs in the caller's orientation, sorted by
// X. Nil before Run.
func (m *Matcher) Matching() []Pair {
	if !m.done {
		return nil
	}
	cells := m.m.NonZero()
	pairs := make([]Pair, 0, len(cells))
	for _, c := range cells {
		if m.preserved {
			pairs = append(pairs, Pair{X: c.Row, Y: c.Col})
		} else {
			pairs = append(pairs, Pair{X: c.Col, Y: c.Row})
		}
	}
	if !m.preserved {
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].X < pairs[b].X })
	}

	return pairs
}

// MatchMatrix returns a copy of the current match matrix: (n1+1)×(n2+1)
// before Run, the n1×n2 binary matching after. Rows index the smaller map.
func (m *Matcher) MatchMatrix() *matrix.Dense {
	if m.m == nil {
		return nil
	}

	return m.m.CloneDense()
}

// InputOrderPreserved reports whether rows of MatchMatrix index the first
// map passed to New.
func (m *Matcher) InputOrderPreserved() bool { return m.preserved }

// Options returns the matcher's parameters.
func (m *Matcher) Options() Options { return m.opts }

// Score returns the rounded score of the last Run, or -1 if it was infeasible.
func (m *Matcher) Score() float64 { return m.Result().LegacyScore() }

// SharedContacts returns the shared contact count of the last Run, or -1
// if it was infeasible.
func (m *Matcher) SharedContacts() int { return m.Result().LegacyNCC() }

// Iterations returns the assignment iterations of the last Run.
func (m *Matcher) Iterations() int { return m.iterations }

// Elapsed returns the optimization wall time of the last Run.
func (m *Matcher) Elapsed() time.Duration { return m.elapsed }
