package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmalign/batch"
	"github.com/katalvlaran/cmalign/builder"
	"github.com/katalvlaran/cmalign/contactmap"
	"github.com/katalvlaran/cmalign/sadp"
)

func fixtures(t *testing.T) (tri, path5, ring6 *contactmap.ContactMap) {
	t.Helper()
	tri = builder.MustBuild(3, nil, builder.Complete())
	path5 = builder.MustBuild(5, nil, builder.Path())
	ring6 = builder.MustBuild(6, nil, builder.Cycle(), builder.Contacts([2]int{0, 2}, [2]int{3, 5}))
	return
}

func TestRunner_ResultsInJobOrder(t *testing.T) {
	tri, path5, ring6 := fixtures(t)
	logger, _ := test.NewNullLogger()
	reg := prometheus.NewRegistry()

	var calls []int
	r := &batch.Runner{
		Parallel:     2,
		Logger:       logger,
		Metrics:      batch.NewMetrics(reg),
		MatchMetrics: sadp.NewMetrics(reg),
		Done:         func(_ batch.Job, completed, _ int) { calls = append(calls, completed) },
	}
	results, err := r.Run(context.Background(), []batch.Job{
		{Name: "tri", X: tri, Y: tri},
		{Name: "ring-path", X: ring6, Y: path5},
		{Name: "path", X: path5, Y: path5},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 3, results[0].SharedContacts)
	assert.Equal(t, 0.75, results[1].Score)
	assert.Equal(t, 4, results[2].SharedContacts)
	assert.Equal(t, []int{1, 2, 3}, calls)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.Metrics.JobsTotal.WithLabelValues("feasible")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.Metrics.JobsInflight))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.MatchMetrics.MatchesTotal.WithLabelValues("feasible")))
}

func TestRunner_JobErrorIsNamed(t *testing.T) {
	tri, _, _ := fixtures(t)
	logger, _ := test.NewNullLogger()
	r := &batch.Runner{Parallel: 1, Logger: logger, Metrics: batch.NewMetrics(nil)}

	_, err := r.Run(context.Background(), []batch.Job{
		{Name: "ok", X: tri, Y: tri},
		{Name: "broken", X: tri},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sadp.ErrNilContactMap)
	assert.Contains(t, err.Error(), "job 1 (broken)")
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Metrics.JobsTotal.WithLabelValues("failed")))
}

func TestRunner_InvalidOptions(t *testing.T) {
	bad := sadp.DefaultOptions()
	bad.I0 = 0
	r := &batch.Runner{Options: bad}
	_, err := r.Run(context.Background(), nil)
	assert.ErrorIs(t, err, sadp.ErrInvalidOptions)
}

func TestRunner_Cancelled(t *testing.T) {
	tri, _, _ := fixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger, _ := test.NewNullLogger()
	r := &batch.Runner{Logger: logger}
	_, err := r.Run(ctx, []batch.Job{{Name: "tri", X: tri, Y: tri}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadPairs(t *testing.T) {
	specs, err := batch.ReadPairs(strings.NewReader(`
# comment
a.cm   b.cm
dir/c.cm  /abs/d.cm  custom
`))
	require.NoError(t, err)
	assert.Equal(t, []batch.PairSpec{
		{Name: "a-b", XPath: "a.cm", YPath: "b.cm"},
		{Name: "custom", XPath: "dir/c.cm", YPath: "/abs/d.cm"},
	}, specs)

	_, err = batch.ReadPairs(strings.NewReader("only-one\n"))
	assert.ErrorContains(t, err, "line 1")
	_, err = batch.ReadPairs(strings.NewReader("\na b c d\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadJobs(t *testing.T) {
	tri, path5, _ := fixtures(t)
	dir := t.TempDir()
	require.NoError(t, tri.WriteFile(filepath.Join(dir, "tri.cm")))
	require.NoError(t, path5.WriteFile(filepath.Join(dir, "path.cm")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pairs.txt"),
		[]byte("tri.cm path.cm\ntri.cm tri.cm self\n"), 0o644))

	jobs, err := batch.LoadJobs(filepath.Join(dir, "pairs.txt"))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "tri-path", jobs[0].Name)
	assert.Equal(t, 5, jobs[0].Y.NumNodes())
	assert.Equal(t, "self", jobs[1].Name)
	assert.Same(t, jobs[0].X, jobs[1].X, "maps are read once")
	assert.Same(t, jobs[1].X, jobs[1].Y)
}

func TestLoadJobs_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := batch.LoadJobs(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pairs.txt"), []byte("x.cm y.cm\n"), 0o644))
	_, err = batch.LoadJobs(filepath.Join(dir, "pairs.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "job x-y")
}
