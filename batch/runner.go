package batch

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cmalign/contactmap"
	"github.com/katalvlaran/cmalign/sadp"
)

// Job is one pair of contact maps to align.
type Job struct {
	Name string
	X, Y *contactmap.ContactMap
}

// Runner aligns Jobs concurrently. The zero value runs with the default
// options, one worker per job and the standard logger.
type Runner struct {
	// Options for every matcher. A zero value selects sadp.DefaultOptions.
	Options sadp.Options
	// Parallel bounds concurrent jobs; ≤ 0 means unbounded.
	Parallel int
	// Logger receives job-level entries and is passed on to each matcher.
	Logger log.FieldLogger
	// Metrics, if set, tracks inflight and finished jobs.
	Metrics *Metrics
	// MatchMetrics, if set, is handed to every matcher.
	MatchMetrics *sadp.Metrics
	// Done, if set, is called after each job completes with the number of
	// completed jobs so far. Calls are serialized.
	Done func(job Job, completed, total int)
}

// Run aligns all jobs and returns their results in job order.
// The first failing job cancels the remaining ones; jobs not yet started
// when ctx is cancelled are skipped and ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]sadp.Result, error) {
	var opts = r.Options
	if opts == (sadp.Options{}) {
		opts = sadp.DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var logger = r.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	var (
		results   = make([]sadp.Result, len(jobs))
		mu        sync.Mutex
		completed int
		parent    = ctx
	)
	group, ctx := errgroup.WithContext(ctx)
	if r.Parallel > 0 {
		group.SetLimit(r.Parallel)
	}

	for i := range jobs {
		var job = jobs[i]
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var res, err = r.runOne(opts, logger, job)
			if err != nil {
				return errors.WithMessagef(err, "job %d (%s)", i, job.Name)
			}
			results[i] = res

			mu.Lock()
			completed++
			if r.Done != nil {
				r.Done(job, completed, len(jobs))
			}
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	} else if err = parent.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runOne(opts sadp.Options, logger log.FieldLogger, job Job) (sadp.Result, error) {
	if r.Metrics != nil {
		r.Metrics.JobsInflight.Inc()
		defer r.Metrics.JobsInflight.Dec()
	}
	var entry = logger.WithField("job", job.Name)

	var mopts = []sadp.Option{sadp.WithLogger(entry)}
	if r.MatchMetrics != nil {
		mopts = append(mopts, sadp.WithMetrics(r.MatchMetrics))
	}
	var m, err = sadp.New(job.X, job.Y, opts, mopts...)
	if err != nil {
		r.count("failed")
		return sadp.Result{}, err
	}

	var res = m.Run()
	r.count(res.Feasibility.String())
	entry.WithFields(log.Fields{
		"score": res.Score,
		"ncc":   res.SharedContacts,
	}).Debug("job complete")

	return res, nil
}

func (r *Runner) count(status string) {
	if r.Metrics != nil {
		r.Metrics.JobsTotal.WithLabelValues(status).Inc()
	}
}
