package cmaligncmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/cmalign/contactmap"
	"github.com/katalvlaran/cmalign/sadp"
)

// report is the serialized form of one alignment.
type report struct {
	Name           string      `json:"name,omitempty" yaml:"name,omitempty"`
	X              mapSummary  `json:"x" yaml:"x"`
	Y              mapSummary  `json:"y" yaml:"y"`
	Feasible       bool        `json:"feasible" yaml:"feasible"`
	Score          float64     `json:"score" yaml:"score"`
	SharedContacts int         `json:"sharedContacts" yaml:"sharedContacts"`
	Iterations     int         `json:"iterations" yaml:"iterations"`
	OuterSteps     int         `json:"outerSteps" yaml:"outerSteps"`
	Elapsed        string      `json:"elapsed" yaml:"elapsed"`
	Pairs          []sadp.Pair `json:"pairs,omitempty" yaml:"pairs,omitempty"`
}

type mapSummary struct {
	Name       string `json:"name" yaml:"name"`
	Nodes      int    `json:"nodes" yaml:"nodes"`
	Contacts   int    `json:"contacts" yaml:"contacts"`
	Components int    `json:"components" yaml:"components"`
}

func newReport(name string, x, y *contactmap.ContactMap, res sadp.Result, withPairs bool) report {
	var r = report{
		Name:           name,
		X:              summarize(x),
		Y:              summarize(y),
		Feasible:       res.Feasible(),
		Score:          res.LegacyScore(),
		SharedContacts: res.LegacyNCC(),
		Iterations:     res.Iterations,
		OuterSteps:     res.OuterSteps,
		Elapsed:        formatElapsed(res.Elapsed),
	}
	if withPairs {
		r.Pairs = res.Pairs
	}
	return r
}

func summarize(cm *contactmap.ContactMap) mapSummary {
	st := cm.Stats()
	return mapSummary{Name: st.Name, Nodes: st.Nodes, Contacts: st.Edges, Components: st.Components}
}

// formatElapsed renders a duration with three significant fractional digits.
func formatElapsed(d time.Duration) string {
	return humanize.FtoaWithDigits(d.Seconds(), 3) + "s"
}

func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case "yaml":
		var doc interface{} = reports
		if len(reports) == 1 {
			doc = reports[0]
		}
		var b, err = yaml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(b)
		return errors.Wrap(err, "writing yaml")
	case "json":
		var enc = json.NewEncoder(w)
		enc.SetIndent("", "  ")
		var doc interface{} = reports
		if len(reports) == 1 {
			doc = reports[0]
		}
		return errors.Wrap(enc.Encode(doc), "encoding json")
	default:
		return writeTable(w, reports)
	}
}

func writeTable(w io.Writer, reports []report) error {
	var table = tablewriter.NewWriter(w)
	table.Header("Name", "X", "Y", "Nodes", "Contacts", "Score", "Shared", "Iterations", "Elapsed")

	for _, r := range reports {
		var name = r.Name
		if name == "" {
			name = r.X.Name + "/" + r.Y.Name
		}
		var score = "infeasible"
		if r.Feasible {
			score = strconv.FormatFloat(r.Score, 'f', 2, 64)
		}
		if err := table.Append([]string{
			name,
			r.X.Name,
			r.Y.Name,
			fmt.Sprintf("%d/%d", r.X.Nodes, r.Y.Nodes),
			humanize.Comma(int64(r.X.Contacts)) + "/" + humanize.Comma(int64(r.Y.Contacts)),
			score,
			humanize.Comma(int64(r.SharedContacts)),
			humanize.Comma(int64(r.Iterations)),
			r.Elapsed,
		}); err != nil {
			return errors.Wrap(err, "building table")
		}
	}
	return errors.Wrap(table.Render(), "rendering table")
}

// writeMapping lists matched residues, one "x <-> y" pair per line.
func writeMapping(w io.Writer, pairs []sadp.Pair) error {
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%d <-> %d\n", p.X, p.Y); err != nil {
			return errors.Wrap(err, "writing mapping")
		}
	}
	return nil
}
