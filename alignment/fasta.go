// SPDX-License-Identifier: MIT

package alignment

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// DefaultLineLength is the FASTA line width used when none is given.
const DefaultLineLength = 80

// WriteFASTA writes both rows in FASTA format, wrapping sequence lines at
// lineLength characters (DefaultLineLength when lineLength ≤ 0).
func (a *Alignment) WriteFASTA(w io.Writer, lineLength int) error {
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}
	bw := bufio.NewWriter(w)
	for k := range a.Rows {
		if _, err := bw.WriteString(">" + a.Tags[k] + "\n"); err != nil {
			return errors.Wrap(err, "writing FASTA header")
		}
		row := a.Rows[k]
		for i := 0; i < len(row); i += lineLength {
			if _, err := bw.WriteString(row[i:min(i+lineLength, len(row))] + "\n"); err != nil {
				return errors.Wrap(err, "writing FASTA sequence")
			}
		}
	}

	return errors.Wrap(bw.Flush(), "flushing FASTA")
}
