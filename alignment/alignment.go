// SPDX-License-Identifier: MIT

package alignment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cmalign/sadp"
)

const (
	// Gap marks a residue with no counterpart.
	Gap = '-'
	// Undefined stands in for residues of a sequence that is not known.
	Undefined = 'X'
)

// Kind classifies one alignment column.
type Kind int

const (
	// Match columns come from the matching and carry contact support.
	Match Kind = iota
	// Untrusted columns pair residues between matches without contact support.
	Untrusted
	// GapInFirst columns hold a residue of the second sequence only.
	GapInFirst
	// GapInSecond columns hold a residue of the first sequence only.
	GapInSecond
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Match:
		return "match"
	case Untrusted:
		return "untrusted"
	case GapInFirst:
		return "gap-first"
	case GapInSecond:
		return "gap-second"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Column is one aligned position. Pos1 or Pos2 is -1 on the gapped side.
type Column struct {
	Kind Kind
	Pos1 int
	Pos2 int
}

// Sequence describes one side of the alignment. When Residues is empty,
// Length residues of the Undefined kind are assumed; otherwise Length may be
// zero or must equal len(Residues).
type Sequence struct {
	Tag      string
	Residues string
	Length   int
}

func (s Sequence) length() int {
	if s.Residues != "" {
		return len(s.Residues)
	}

	return s.Length
}

func (s Sequence) at(pos int) byte {
	if s.Residues == "" {
		return Undefined
	}

	return s.Residues[pos]
}

// Alignment is a gapped pairwise alignment. Rows have equal length.
type Alignment struct {
	Tags    [2]string
	Rows    [2]string
	columns []Column
}

// New lays out pairs, sorted ascending and non-crossing, against the two
// sequences.
//
// Errors: ErrSequenceLength, ErrPairOutOfRange, ErrCrossingPairs.
//
// Complexity: O(len1 + len2).
func New(pairs []sadp.Pair, first, second Sequence) (*Alignment, error) {
	for k, s := range [2]Sequence{first, second} {
		if s.Length < 0 || (s.Residues != "" && s.Length != 0 && s.Length != len(s.Residues)) {
			return nil, fmt.Errorf("sequence %d (%q): length %d, %d residues: %w",
				k+1, s.Tag, s.Length, len(s.Residues), ErrSequenceLength)
		}
	}
	len1, len2 := first.length(), second.length()

	b := &layout{cols: make([]Column, 0, max(len1, len2)+len(pairs))}
	prev1, prev2 := -1, -1
	for _, p := range pairs {
		if p.X < 0 || p.X >= len1 || p.Y < 0 || p.Y >= len2 {
			return nil, fmt.Errorf("pair (%d,%d) for lengths %d and %d: %w", p.X, p.Y, len1, len2, ErrPairOutOfRange)
		}
		if p.X <= prev1 || p.Y <= prev2 {
			return nil, fmt.Errorf("pair (%d,%d) after (%d,%d): %w", p.X, p.Y, prev1, prev2, ErrCrossingPairs)
		}
		b.between(prev1+1, p.X-prev1-1, prev2+1, p.Y-prev2-1)
		b.cols = append(b.cols, Column{Kind: Match, Pos1: p.X, Pos2: p.Y})
		prev1, prev2 = p.X, p.Y
	}
	b.between(prev1+1, len1-prev1-1, prev2+1, len2-prev2-1)

	var r1, r2 strings.Builder
	r1.Grow(len(b.cols))
	r2.Grow(len(b.cols))
	for _, c := range b.cols {
		if c.Pos1 < 0 {
			r1.WriteByte(Gap)
		} else {
			r1.WriteByte(first.at(c.Pos1))
		}
		if c.Pos2 < 0 {
			r2.WriteByte(Gap)
		} else {
			r2.WriteByte(second.at(c.Pos2))
		}
	}

	return &Alignment{
		Tags:    [2]string{first.Tag, second.Tag},
		Rows:    [2]string{r1.String(), r2.String()},
		columns: b.cols,
	}, nil
}

// layout accumulates columns.
type layout struct{ cols []Column }

// between lays out the unmatched stretches [beg1, beg1+len1) and
// [beg2, beg2+len2): untrusted columns first, then gaps.
func (b *layout) between(beg1, len1, beg2, len2 int) {
	pos := 0
	for ; pos < min(len1, len2); pos++ {
		b.cols = append(b.cols, Column{Kind: Untrusted, Pos1: beg1 + pos, Pos2: beg2 + pos})
	}
	for ; pos < len1; pos++ {
		b.cols = append(b.cols, Column{Kind: GapInSecond, Pos1: beg1 + pos, Pos2: -1})
	}
	for ; pos < len2; pos++ {
		b.cols = append(b.cols, Column{Kind: GapInFirst, Pos1: -1, Pos2: beg2 + pos})
	}
}

// Columns returns a copy of the column classification.
func (a *Alignment) Columns() []Column {
	out := make([]Column, len(a.columns))
	copy(out, a.columns)

	return out
}

// Len returns the number of columns.
func (a *Alignment) Len() int { return len(a.columns) }

// Count returns the number of columns of kind k.
func (a *Alignment) Count(k Kind) int {
	var n int
	for _, c := range a.columns {
		if c.Kind == k {
			n++
		}
	}

	return n
}

// Identity is the share of gap-free columns holding the same residue on
// both rows. Undefined residues never count as identical; an alignment
// without gap-free columns has identity 0.
func (a *Alignment) Identity() float64 {
	var same, aligned int
	for i, c := range a.columns {
		if c.Pos1 < 0 || c.Pos2 < 0 {
			continue
		}
		aligned++
		if r := a.Rows[0][i]; r != Undefined && r == a.Rows[1][i] {
			same++
		}
	}
	if aligned == 0 {
		return 0
	}

	return float64(same) / float64(aligned)
}
