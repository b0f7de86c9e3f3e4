package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cmalign/contactmap"
)

// PairSpec is one parsed line of a pairs file.
type PairSpec struct {
	Name  string
	XPath string
	YPath string
}

// ReadPairs parses a pairs file. Blank lines and lines starting with '#'
// are skipped. A line without a name is named "<x>-<y>" after the map base
// names.
func ReadPairs(r io.Reader) ([]PairSpec, error) {
	var (
		out    []PairSpec
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		var line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var fields = strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("line %d: expected 2 or 3 fields, got %d", lineNo, len(fields))
		}
		var ps = PairSpec{XPath: fields[0], YPath: fields[1]}
		if len(fields) == 3 {
			ps.Name = fields[2]
		} else {
			ps.Name = fmt.Sprintf("%s-%s", baseName(fields[0]), baseName(fields[1]))
		}
		out = append(out, ps)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading pairs")
	}
	return out, nil
}

// LoadJobs reads the pairs file at path and every contact map it names.
func LoadJobs(path string) ([]Job, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening pairs file")
	}
	defer f.Close()

	specs, err := ReadPairs(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return ResolveJobs(specs, filepath.Dir(path))
}

// ResolveJobs reads the contact maps named by specs, resolving relative
// paths against dir. Each distinct file is read once.
func ResolveJobs(specs []PairSpec, dir string) ([]Job, error) {
	var (
		cache = make(map[string]*contactmap.ContactMap)
		jobs  = make([]Job, 0, len(specs))
	)
	var load = func(p string) (*contactmap.ContactMap, error) {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		if cm, ok := cache[p]; ok {
			return cm, nil
		}
		var cm, err = contactmap.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cache[p] = cm
		return cm, nil
	}

	for _, ps := range specs {
		var x, err = load(ps.XPath)
		if err != nil {
			return nil, errors.WithMessagef(err, "job %s", ps.Name)
		}
		y, err := load(ps.YPath)
		if err != nil {
			return nil, errors.WithMessagef(err, "job %s", ps.Name)
		}
		jobs = append(jobs, Job{Name: ps.Name, X: x, Y: y})
	}
	return jobs, nil
}

func baseName(p string) string {
	var b = filepath.Base(p)
	if i := strings.IndexByte(b, '.'); i > 0 {
		b = b[:i]
	}
	return b
}
