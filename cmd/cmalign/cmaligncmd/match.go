package cmaligncmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cmalign/alignment"
	"github.com/katalvlaran/cmalign/contactmap"
	mbp "github.com/katalvlaran/cmalign/internal/mainboilerplate"
	"github.com/katalvlaran/cmalign/sadp"
)

type cmdMatch struct {
	Format    string `long:"format" short:"o" choice:"table" choice:"yaml" choice:"json" default:"table" description:"Output format"`
	Mapping   bool   `long:"mapping" short:"m" description:"List matched residue pairs"`
	Alignment bool   `long:"alignment" short:"a" description:"Print the pairwise alignment in FASTA format"`
	XSeq      string `long:"x-seq" description:"Residue sequence of the first map, used by --alignment"`
	YSeq      string `long:"y-seq" description:"Residue sequence of the second map, used by --alignment"`
	Args      struct {
		X string `positional-arg-name:"X" description:"First contact map file"`
		Y string `positional-arg-name:"Y" description:"Second contact map file"`
	} `positional-args:"yes" required:"yes"`

	Out io.Writer `no-flag:"t"`
}

func (cmd *cmdMatch) Execute([]string) error {
	mbp.InitLog(Config.Log)

	var opts, err = Config.Annealing.Options()
	if err != nil {
		return err
	}
	x, err := contactmap.ReadFile(cmd.Args.X)
	if err != nil {
		return err
	}
	y, err := contactmap.ReadFile(cmd.Args.Y)
	if err != nil {
		return err
	}

	var logger = log.WithFields(log.Fields{"x": cmd.Args.X, "y": cmd.Args.Y})
	m, err := sadp.New(x, y, opts,
		sadp.WithLogger(logger),
		sadp.WithProgress(func(pct float64) {
			logger.WithField("percent", pct).Trace("alignment progress")
		}))
	if err != nil {
		return err
	}
	var res = m.Run()
	return cmd.write(x, y, res)
}

func (cmd *cmdMatch) write(x, y *contactmap.ContactMap, res sadp.Result) error {
	var out = cmd.Out
	if out == nil {
		out = os.Stdout
	}

	var rep = newReport("", x, y, res, cmd.Mapping && cmd.Format != "table")
	if err := writeReports(out, cmd.Format, []report{rep}); err != nil {
		return err
	}
	if cmd.Mapping && cmd.Format == "table" {
		if err := writeMapping(out, res.Pairs); err != nil {
			return err
		}
	}
	if cmd.Alignment {
		var a, err = alignment.New(res.Pairs,
			alignment.Sequence{Tag: x.Name(), Residues: cmd.XSeq, Length: x.NumNodes()},
			alignment.Sequence{Tag: y.Name(), Residues: cmd.YSeq, Length: y.NumNodes()})
		if err != nil {
			return errors.WithMessage(err, "building alignment")
		}
		return a.WriteFASTA(out, alignment.DefaultLineLength)
	}
	return nil
}
