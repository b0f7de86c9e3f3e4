package cmaligncmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cmalign/batch"
	mbp "github.com/katalvlaran/cmalign/internal/mainboilerplate"
	"github.com/katalvlaran/cmalign/sadp"
)

type cmdBatch struct {
	Format   string `long:"format" short:"o" choice:"table" choice:"yaml" choice:"json" default:"table" description:"Output format"`
	Parallel int    `long:"parallel" short:"p" env:"PARALLEL" default:"4" description:"Maximum number of concurrent alignments (0 for unbounded)"`
	Mapping  bool   `long:"mapping" short:"m" description:"Include matched residue pairs (yaml and json only)"`
	Metrics  struct {
		Dump bool `long:"dump" description:"Write collected Prometheus metrics in text format after the results"`
	} `group:"Metrics" namespace:"metrics"`
	Args struct {
		Pairs string `positional-arg-name:"PAIRS" description:"Pairs file, one \"x y [name]\" per line"`
	} `positional-args:"yes" required:"yes"`

	Out io.Writer `no-flag:"t"`
}

func (cmd *cmdBatch) Execute([]string) error {
	mbp.InitLog(Config.Log)

	var opts, err = Config.Annealing.Options()
	if err != nil {
		return err
	}
	jobs, err := batch.LoadJobs(cmd.Args.Pairs)
	if err != nil {
		return err
	}

	var reg = prometheus.NewRegistry()
	var runner = &batch.Runner{
		Options:      opts,
		Parallel:     cmd.Parallel,
		Logger:       log.StandardLogger(),
		Metrics:      batch.NewMetrics(reg),
		MatchMetrics: sadp.NewMetrics(reg),
		Done: func(job batch.Job, completed, total int) {
			log.WithFields(log.Fields{
				"job":       job.Name,
				"completed": completed,
				"total":     total,
			}).Info("batch job complete")
		},
	}
	results, err := runner.Run(context.Background(), jobs)
	if err != nil {
		return err
	}
	return cmd.write(jobs, results, reg)
}

func (cmd *cmdBatch) write(jobs []batch.Job, results []sadp.Result, reg prometheus.Gatherer) error {
	var out = cmd.Out
	if out == nil {
		out = os.Stdout
	}

	var reports = make([]report, len(jobs))
	for i, job := range jobs {
		reports[i] = newReport(job.Name, job.X, job.Y, results[i], cmd.Mapping && cmd.Format != "table")
	}
	if err := writeReports(out, cmd.Format, reports); err != nil {
		return err
	}
	if cmd.Metrics.Dump {
		return dumpMetrics(out, reg)
	}
	return nil
}

// dumpMetrics writes every gathered metric family in Prometheus text format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	var families, err = g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "writing metric %s", mf.GetName())
		}
	}
	return nil
}
