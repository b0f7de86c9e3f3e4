package cmaligncmd

import (
	"github.com/jessevdk/go-flags"

	mbp "github.com/katalvlaran/cmalign/internal/mainboilerplate"
	"github.com/katalvlaran/cmalign/sadp"
)

// AnnealingConfig exposes the matcher parameters as flags.
type AnnealingConfig struct {
	B0   float64 `long:"b0" ini-name:"b0" env:"B0" default:"0.5" description:"Initial annealing parameter (inverse temperature)"`
	Bf   float64 `long:"bf" ini-name:"bf" env:"BF" default:"10" description:"Final annealing parameter"`
	Br   float64 `long:"br" ini-name:"br" env:"BR" default:"1.075" description:"Annealing rate; b is multiplied by br after each step"`
	I0   int     `long:"i0" ini-name:"i0" env:"I0" default:"4" description:"Maximum assignment iterations per annealing step"`
	I1   int     `long:"i1" ini-name:"i1" env:"I1" default:"30" description:"Maximum Sinkhorn passes per assignment iteration"`
	Eps0 float64 `long:"eps0" ini-name:"eps0" env:"EPS0" default:"0.5" description:"Assignment convergence threshold"`
	Eps1 float64 `long:"eps1" ini-name:"eps1" env:"EPS1" default:"0.05" description:"Sinkhorn convergence threshold"`
}

// Options converts the flags into validated matcher options.
func (c AnnealingConfig) Options() (sadp.Options, error) {
	var o = sadp.Options{B0: c.B0, Bf: c.Bf, Br: c.Br, I0: c.I0, I1: c.I1, Eps0: c.Eps0, Eps1: c.Eps1}
	return o, o.Validate()
}

// BaseConfig is shared by every alignment command.
type BaseConfig struct {
	Annealing AnnealingConfig `group:"Annealing" namespace:"sadp" env-namespace:"SADP"`
	Log       mbp.LogConfig   `group:"Logging" namespace:"log" env-namespace:"LOG"`
}

// Config is the top-level configuration, populated by the parser.
var Config = new(BaseConfig)

// AddCommands registers the alignment commands with parser.
func AddCommands(parser *flags.Parser) error {
	if _, err := parser.AddGroup("Global", "", Config); err != nil {
		return err
	}
	if _, err := parser.AddCommand("match", "Align two contact maps", `
Align two contact maps in SADP contact format and report the score, the
number of shared contacts and, optionally, the residue mapping and the
resulting pairwise alignment.

Example:
  cmalign match --format=yaml --mapping 1abc.cm 2xyz.cm
`, &cmdMatch{}); err != nil {
		return err
	}
	if _, err := parser.AddCommand("batch", "Align many pairs of contact maps", `
Align every pair listed in a pairs file, one "x y [name]" per line, using
a bounded number of concurrent workers. Relative paths resolve against the
pairs file's directory.

Example:
  cmalign batch --parallel=8 --metrics.dump pairs.txt
`, &cmdBatch{}); err != nil {
		return err
	}
	return nil
}
