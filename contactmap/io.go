// SPDX-License-Identifier: MIT

package contactmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read parses a contact map in SADP contact format from r.
//
// Implementation:
//   - Stage 1: skip blank and '#' lines; the first remaining line is the node count.
//   - Stage 2: every further line yields one contact from its first two fields.
//   - Stage 3: delegate to FromEdges for validation and normalization.
//
// Errors carry the 1-based line number and wrap ErrBadHeader, ErrBadLine
// or the FromEdges sentinels, so errors.Is works on the result.
func Read(r io.Reader) (*ContactMap, error) {
	var (
		sc       = bufio.NewScanner(r)
		n        = -1
		lineNo   int
		contacts []Contact
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if n < 0 {
			v, err := strconv.Atoi(fields[0])
			if err != nil || v < 0 || len(fields) != 1 {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: %q", lineNo, line)
			}
			n = v
			continue
		}

		if len(fields) < 2 {
			return nil, errors.Wrapf(ErrBadLine, "line %d: %q", lineNo, line)
		}
		i, errI := strconv.Atoi(fields[0])
		j, errJ := strconv.Atoi(fields[1])
		if errI != nil || errJ != nil {
			return nil, errors.Wrapf(ErrBadLine, "line %d: %q", lineNo, line)
		}
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, errors.Wrapf(ErrNodeOutOfRange, "line %d: contact (%d,%d) with %d nodes", lineNo, i, j, n)
		}
		if i == j {
			return nil, errors.Wrapf(ErrSelfContact, "line %d: contact (%d,%d)", lineNo, i, j)
		}
		contacts = append(contacts, Contact{I: i, J: j})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading contact map")
	}
	if n < 0 {
		return nil, errors.Wrap(ErrBadHeader, "empty input")
	}

	return FromEdges(n, contacts)
}

// ReadFile reads a contact map from path and names it after the file.
func ReadFile(path string) (*ContactMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening contact map %s", path)
	}
	defer f.Close()

	cm, err := Read(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "parsing %s", path)
	}
	cm.SetName(path)

	return cm, nil
}

// Write emits cm in SADP contact format: the node count, then one
// "i<TAB>j<TAB>1<TAB>1" line per contact with i<j in ascending order.
func (cm *ContactMap) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, cm.n); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, c := range cm.Contacts() {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t1\t1\n", c.I, c.J); err != nil {
			return errors.Wrapf(err, "writing contact (%d,%d)", c.I, c.J)
		}
	}

	return errors.Wrap(bw.Flush(), "flushing contact map")
}

// WriteFile writes cm to path, truncating any existing file.
func (cm *ContactMap) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err = cm.Write(f); err != nil {
		f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}
