// SPDX-License-Identifier: MIT

package contactmap

import (
	"path/filepath"
	"sort"
	"strings"
)

// defaultName is used until a name is assigned (mirrors an unnamed file).
const defaultName = "NoName"

// Contact is an undirected contact between residues I and J.
type Contact struct {
	I int
	J int
}

// ContactMap is an immutable undirected simple graph over residues 0..n-1.
//
// Invariants (established by every constructor):
//   - adj[i] is sorted ascending and duplicate free.
//   - no self contacts: i ∉ adj[i].
//   - symmetric: j ∈ adj[i] ⟺ i ∈ adj[j].
//   - deg[i] == len(adj[i]); edges == Σdeg / 2.
type ContactMap struct {
	name  string
	n     int
	edges int
	adj   [][]int
	deg   []int
}

// Stats is a one-shot summary of a contact map, handy for logging.
type Stats struct {
	Name      string
	Nodes     int
	Edges     int
	MaxDegree int
	Density   float64 // edges / (n*(n-1)/2); 0 for n < 2
	// Components counts connected components, isolated residues included.
	Components int
}

// Name returns the map's name ("NoName" unless set).
func (cm *ContactMap) Name() string { return cm.name }

// SetName assigns a name, dropping any directory and extension
// ("data/1bkr.sadp" → "1bkr").
func (cm *ContactMap) SetName(name string) {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	if base == "" || base == "." {
		base = defaultName
	}
	cm.name = base
}

// NumNodes returns the number of residues.
func (cm *ContactMap) NumNodes() int { return cm.n }

// NumEdges returns the number of undirected contacts.
func (cm *ContactMap) NumEdges() int { return cm.edges }

// Adjacency returns the adjacency lists. The slices are shared: callers must
// treat them as read-only.
func (cm *ContactMap) Adjacency() [][]int { return cm.adj }

// Neighbors returns the sorted neighbor list of node i (shared, read-only).
// Out-of-range nodes have no neighbors.
func (cm *ContactMap) Neighbors(i int) []int {
	if i < 0 || i >= cm.n {
		return nil
	}

	return cm.adj[i]
}

// Degree returns |adjacency[i]|, or 0 for an out-of-range node.
func (cm *ContactMap) Degree(i int) int {
	if i < 0 || i >= cm.n {
		return 0
	}

	return cm.deg[i]
}

// Degrees returns the degree sequence (shared, read-only).
func (cm *ContactMap) Degrees() []int { return cm.deg }

// HasContact reports whether i and j are in contact.
// Complexity: O(log deg(i)).
func (cm *ContactMap) HasContact(i, j int) bool {
	nb := cm.Neighbors(i)
	k := sort.SearchInts(nb, j)

	return k < len(nb) && nb[k] == j
}

// Contacts lists every contact once as (i,j) with i<j, ordered by i then j.
// Complexity: O(n + E).
func (cm *ContactMap) Contacts() []Contact {
	out := make([]Contact, 0, cm.edges)
	for i, nb := range cm.adj {
		for _, j := range nb {
			if i < j {
				out = append(out, Contact{I: i, J: j})
			}
		}
	}

	return out
}

// Stats summarises the map.
func (cm *ContactMap) Stats() Stats {
	s := Stats{Name: cm.name, Nodes: cm.n, Edges: cm.edges}
	for _, d := range cm.deg {
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if cm.n > 1 {
		s.Density = float64(cm.edges) / (float64(cm.n) * float64(cm.n-1) / 2)
	}
	_, s.Components = cm.Components()

	return s
}
