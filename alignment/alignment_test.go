package alignment_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmalign/alignment"
	"github.com/katalvlaran/cmalign/sadp"
)

var diagramPairs = []sadp.Pair{{X: 0, Y: 2}, {X: 1, Y: 4}, {X: 2, Y: 5}, {X: 4, Y: 9}}

// TestNew_WithSequences reproduces the layout documented in the package.
func TestNew_WithSequences(t *testing.T) {
	a, err := alignment.New(diagramPairs,
		alignment.Sequence{Tag: "seq1", Residues: "ABCDEFGH"},
		alignment.Sequence{Tag: "seq2", Residues: "ABCDEFGHIJK"})
	require.NoError(t, err)

	assert.Equal(t, [2]string{"seq1", "seq2"}, a.Tags)
	assert.Equal(t, "--A-BCD--EFGH", a.Rows[0])
	assert.Equal(t, "ABCDEFGHIJK--", a.Rows[1])
	assert.Equal(t, 13, a.Len())
	assert.Equal(t, 4, a.Count(alignment.Match))
	assert.Equal(t, 2, a.Count(alignment.Untrusted))
	assert.Equal(t, 5, a.Count(alignment.GapInFirst))
	assert.Equal(t, 2, a.Count(alignment.GapInSecond))

	cols := a.Columns()
	assert.Equal(t, alignment.Column{Kind: alignment.GapInFirst, Pos1: -1, Pos2: 0}, cols[0])
	assert.Equal(t, alignment.Column{Kind: alignment.Match, Pos1: 0, Pos2: 2}, cols[2])
	assert.Equal(t, alignment.Column{Kind: alignment.Untrusted, Pos1: 3, Pos2: 6}, cols[6])
}

// TestNew_UndefinedResidues renders unknown sequences with X.
func TestNew_UndefinedResidues(t *testing.T) {
	a, err := alignment.New(diagramPairs,
		alignment.Sequence{Tag: "a", Length: 8},
		alignment.Sequence{Tag: "b", Residues: "ABCDEFGHIJK"})
	require.NoError(t, err)
	assert.Equal(t, "--X-XXX--XXXX", a.Rows[0])
	assert.Equal(t, "ABCDEFGHIJK--", a.Rows[1])
	assert.Zero(t, a.Identity(), "undefined residues never match")
}

// TestNew_NoPairs lays out everything as untrusted columns and gaps.
func TestNew_NoPairs(t *testing.T) {
	a, err := alignment.New(nil,
		alignment.Sequence{Tag: "a", Residues: "AC"},
		alignment.Sequence{Tag: "b", Residues: "ACG"})
	require.NoError(t, err)
	assert.Equal(t, "AC-", a.Rows[0])
	assert.Equal(t, "ACG", a.Rows[1])
	assert.Equal(t, 1.0, a.Identity())
}

// TestIdentity counts identical gap-free columns.
func TestIdentity(t *testing.T) {
	a, err := alignment.New([]sadp.Pair{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		alignment.Sequence{Tag: "a", Residues: "ACGT"},
		alignment.Sequence{Tag: "b", Residues: "ACCT"})
	require.NoError(t, err)
	assert.Equal(t, 0.75, a.Identity())

	empty, err := alignment.New(nil, alignment.Sequence{Tag: "a"}, alignment.Sequence{Tag: "b", Length: 2})
	require.NoError(t, err)
	assert.Equal(t, "--", empty.Rows[0])
	assert.Zero(t, empty.Identity())
}

// TestNew_Errors covers each sentinel.
func TestNew_Errors(t *testing.T) {
	seq := func(s string) alignment.Sequence { return alignment.Sequence{Tag: s, Residues: s} }

	_, err := alignment.New([]sadp.Pair{{X: 0, Y: 3}}, seq("ABC"), seq("ABC"))
	assert.ErrorIs(t, err, alignment.ErrPairOutOfRange)

	_, err = alignment.New([]sadp.Pair{{X: 1, Y: 0}, {X: 0, Y: 1}}, seq("ABC"), seq("ABC"))
	assert.ErrorIs(t, err, alignment.ErrCrossingPairs)

	_, err = alignment.New([]sadp.Pair{{X: 0, Y: 1}, {X: 1, Y: 1}}, seq("ABC"), seq("ABC"))
	assert.ErrorIs(t, err, alignment.ErrCrossingPairs)

	_, err = alignment.New(nil, alignment.Sequence{Residues: "ABC", Length: 4}, seq("ABC"))
	assert.ErrorIs(t, err, alignment.ErrSequenceLength)

	_, err = alignment.New(nil, seq("A"), alignment.Sequence{Length: -1})
	assert.ErrorIs(t, err, alignment.ErrSequenceLength)
}

// TestWriteFASTA wraps long rows.
func TestWriteFASTA(t *testing.T) {
	a, err := alignment.New(diagramPairs,
		alignment.Sequence{Tag: "seq1", Residues: "ABCDEFGH"},
		alignment.Sequence{Tag: "seq2", Residues: "ABCDEFGHIJK"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.WriteFASTA(&buf, 5))
	assert.Equal(t, ">seq1\n--A-B\nCD--E\nFGH\n>seq2\nABCDE\nFGHIJ\nK--\n", buf.String())

	buf.Reset()
	require.NoError(t, a.WriteFASTA(&buf, 0))
	assert.Equal(t, ">seq1\n--A-BCD--EFGH\n>seq2\nABCDEFGHIJK--\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteFASTA_Error surfaces writer failures.
func TestWriteFASTA_Error(t *testing.T) {
	a, err := alignment.New(nil, alignment.Sequence{Tag: "a", Length: 1}, alignment.Sequence{Tag: "b", Length: 1})
	require.NoError(t, err)
	err = a.WriteFASTA(failingWriter{}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

// TestKind_String names every kind.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "match", alignment.Match.String())
	assert.Equal(t, "untrusted", alignment.Untrusted.String())
	assert.Equal(t, "gap-first", alignment.GapInFirst.String())
	assert.Equal(t, "gap-second", alignment.GapInSecond.String())
	assert.Equal(t, "Kind(9)", alignment.Kind(9).String())
}
