// SPDX-License-Identifier: MIT

package sadp

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Default parameter values, set after Gold & Rangarajan. The annealing
// parameter is b = 1/T rather than the temperature T.
const (
	DefaultB0   = 0.5   // initial annealing parameter, typically within (0,2]
	DefaultBf   = 10.0  // final annealing parameter, typically within (5,20]
	DefaultBr   = 1.075 // annealing multiplier, typically within [1.075,3.0]
	DefaultI0   = 4     // assignment iterations per temperature, typically 1..10
	DefaultI1   = 30    // Sinkhorn passes per assignment iteration, typically 1..30
	DefaultEps0 = 0.5   // assignment-level convergence threshold
	DefaultEps1 = 0.05  // Sinkhorn convergence threshold

	// initialMatch is the uniform value every cell of M starts from.
	initialMatch = 0.1
)

// Options holds the immutable numeric parameters of one matcher.
//
// Fields:
//   - B0, Bf, Br: annealing schedule: b runs B0, B0·Br, … while b < Bf.
//   - I0: maximum assignment (softmax) iterations per temperature.
//   - I1: maximum Sinkhorn passes per assignment iteration.
//   - Eps0: assignment loop stops early once Σ|M−M0| < Eps0.
//   - Eps1: Sinkhorn stops early once its residual < Eps1.
//
// Options is a plain value: every Matcher holds its own copy, so matchers
// never influence each other.
type Options struct {
	B0   float64
	Bf   float64
	Br   float64
	I0   int
	I1   int
	Eps0 float64
	Eps1 float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		B0:   DefaultB0,
		Bf:   DefaultBf,
		Br:   DefaultBr,
		I0:   DefaultI0,
		I1:   DefaultI1,
		Eps0: DefaultEps0,
		Eps1: DefaultEps1,
	}
}

// Validate rejects parameter combinations under which the annealing or
// Sinkhorn loops would never run or never terminate meaningfully.
//
// Errors: ErrInvalidOptions, wrapped with the offending field.
//
// Complexity: O(1).
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"b0", o.B0}, {"bf", o.Bf}, {"br", o.Br}, {"eps0", o.Eps0}, {"eps1", o.Eps1}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s=%g is not finite", ErrInvalidOptions, f.name, f.v)
		}
	}
	switch {
	case o.B0 <= 0:
		return fmt.Errorf("%w: b0=%g must be > 0", ErrInvalidOptions, o.B0)
	case o.Bf <= o.B0:
		return fmt.Errorf("%w: bf=%g must exceed b0=%g", ErrInvalidOptions, o.Bf, o.B0)
	case o.Br <= 1:
		return fmt.Errorf("%w: br=%g must be > 1", ErrInvalidOptions, o.Br)
	case o.I0 <= 0:
		return fmt.Errorf("%w: I0=%d must be > 0", ErrInvalidOptions, o.I0)
	case o.I1 <= 0:
		return fmt.Errorf("%w: I1=%d must be > 0", ErrInvalidOptions, o.I1)
	case o.Eps0 < 0:
		return fmt.Errorf("%w: eps0=%g must be >= 0", ErrInvalidOptions, o.Eps0)
	case o.Eps1 < 0:
		return fmt.Errorf("%w: eps1=%g must be >= 0", ErrInvalidOptions, o.Eps1)
	}

	return nil
}

// OuterSteps predicts the number of annealing steps, floor(log(bf/b0)/log(br)) + 1,
// so progress can be reported as a percentage before the run completes.
// When bf/b0 is an exact power of br the prediction is one higher than the
// steps actually taken. Returns 0 for invalid options.
func OuterSteps(o Options) int {
	if o.Validate() != nil {
		return 0
	}

	return int(math.Floor(math.Log(o.Bf/o.B0)/math.Log(o.Br))) + 1
}

// MaxIterations bounds the total assignment iterations of one run
// (OuterSteps × I0); Sinkhorn passes are bounded by MaxIterations × I1.
func MaxIterations(o Options) int {
	return OuterSteps(o) * o.I0
}

// Option customizes a Matcher's collaborators (not its numeric parameters).
type Option func(*config)

// config collects the injected collaborators of a Matcher.
type config struct {
	progress ProgressFunc
	logger   logrus.FieldLogger
	clock    func() time.Time
	metrics  *Metrics
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger: logrus.StandardLogger(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithProgress installs a progress sink invoked once per annealing step
// with a percentage in [0,100]. A nil fn is the same as no sink.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) { c.progress = fn }
}

// WithLogger routes matcher logs to l. Panics on nil to surface the
// programmer error at construction time.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("sadp: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithClock overrides the wall clock used for Result.Elapsed.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("sadp: WithClock(nil)")
	}
	return func(c *config) { c.clock = now }
}

// WithMetrics records every completed run into m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}
