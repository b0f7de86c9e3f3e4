// SPDX-License-Identifier: MIT

package contactmap

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cmalign/matrix"
)

// New returns an empty contact map with n residues and no contacts.
func New(n int) (*ContactMap, error) {
	return FromEdges(n, nil)
}

// FromEdges builds a contact map over n residues from an undirected edge list.
//
// Implementation:
//   - Stage 1: validate n ≥ 0 and every endpoint (range, no self contact).
//   - Stage 2: collect both directions into per-node lists.
//   - Stage 3: sort and de-duplicate each list, then derive degrees and the edge count.
//
// Duplicate contacts, in either orientation, collapse into one.
//
// Errors: ErrNegativeSize, ErrNodeOutOfRange, ErrSelfContact.
//
// Complexity: O(n + E log E).
func FromEdges(n int, contacts []Contact) (*ContactMap, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges(n=%d): %w", n, ErrNegativeSize)
	}
	adj := make([][]int, n)
	for k, c := range contacts {
		if c.I < 0 || c.I >= n || c.J < 0 || c.J >= n {
			return nil, fmt.Errorf("FromEdges: contact #%d (%d,%d) with n=%d: %w", k, c.I, c.J, n, ErrNodeOutOfRange)
		}
		if c.I == c.J {
			return nil, fmt.Errorf("FromEdges: contact #%d (%d,%d): %w", k, c.I, c.J, ErrSelfContact)
		}
		adj[c.I] = append(adj[c.I], c.J)
		adj[c.J] = append(adj[c.J], c.I)
	}

	return finalize(adj), nil
}

// FromMatrix builds a contact map from a boolean adjacency matrix.
// The diagonal is ignored; the
// matrix must be square and symmetric off the diagonal.
//
// Errors: ErrNotSquare, ErrAsymmetric.
//
// Complexity: O(n²).
func FromMatrix(a [][]bool) (*ContactMap, error) {
	n := len(a)
	for i := range a {
		if len(a[i]) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d columns, want %d: %w", i, len(a[i]), n, ErrNotSquare)
		}
	}
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a[i][j] != a[j][i] {
				return nil, fmt.Errorf("FromMatrix: cell (%d,%d): %w", i, j, ErrAsymmetric)
			}
			if a[i][j] {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	return finalize(adj), nil
}

// FromDense builds a contact map from a numeric adjacency matrix: any
// strictly positive off-diagonal cell is a contact. Symmetry is required
// on the contact pattern (not on values).
//
// Errors: matrix.ErrNilMatrix, ErrNotSquare, ErrAsymmetric.
func FromDense(m matrix.Matrix) (*ContactMap, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	n := m.Rows()
	if m.Cols() != n {
		return nil, fmt.Errorf("FromDense: %dx%d: %w", m.Rows(), m.Cols(), ErrNotSquare)
	}
	a := make([][]bool, n)
	for i := 0; i < n; i++ {
		a[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			a[i][j] = v > 0
		}
	}

	return FromMatrix(a)
}

// FromAdjacency wraps pre-built adjacency lists after checking the
// invariants: sorted, duplicate free, in range, no self contacts, symmetric.
// The lists are copied.
//
// Complexity: O(n + E log deg).
func FromAdjacency(adj [][]int) (*ContactMap, error) {
	cp := make([][]int, len(adj))
	for i := range adj {
		cp[i] = append([]int(nil), adj[i]...)
	}
	cm := build(cp)
	if err := cm.Validate(); err != nil {
		return nil, err
	}

	return cm, nil
}

// Validate re-checks the ContactMap invariants. Constructors already
// guarantee them; Validate exists for maps assembled through FromAdjacency
// and for diagnostics, since the aligner itself trusts its input.
//
// Complexity: O(n + E log deg).
func (cm *ContactMap) Validate() error {
	for i, nb := range cm.adj {
		for k, j := range nb {
			if j < 0 || j >= cm.n {
				return fmt.Errorf("node %d neighbor %d: %w", i, j, ErrNodeOutOfRange)
			}
			if j == i {
				return fmt.Errorf("node %d: %w", i, ErrSelfContact)
			}
			if k > 0 && nb[k-1] >= j {
				return fmt.Errorf("node %d at position %d: %w", i, k, ErrUnsorted)
			}
		}
	}
	// Symmetry last: HasContact relies on every list being sorted.
	for i, nb := range cm.adj {
		for _, j := range nb {
			if !cm.HasContact(j, i) {
				return fmt.Errorf("contact (%d,%d) has no reverse: %w", i, j, ErrAsymmetric)
			}
		}
	}

	return nil
}

// finalize sorts and de-duplicates raw per-node lists and builds the map.
func finalize(adj [][]int) *ContactMap {
	for i := range adj {
		nb := adj[i]
		if len(nb) == 0 {
			continue
		}
		sort.Ints(nb)
		w := 1
		for r := 1; r < len(nb); r++ {
			if nb[r] != nb[w-1] {
				nb[w] = nb[r]
				w++
			}
		}
		adj[i] = nb[:w:w]
	}

	return build(adj)
}

// build derives degrees and the edge count from adjacency lists.
func build(adj [][]int) *ContactMap {
	n := len(adj)
	deg := make([]int, n)
	total := 0
	for i := range adj {
		if adj[i] == nil {
			adj[i] = []int{}
		}
		deg[i] = len(adj[i])
		total += deg[i]
	}

	return &ContactMap{name: defaultName, n: n, edges: total / 2, adj: adj, deg: deg}
}
