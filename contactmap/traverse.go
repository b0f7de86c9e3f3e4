// SPDX-License-Identifier: MIT

package contactmap

// Walk is the outcome of a breadth-first traversal of the contact graph.
type Walk struct {
	// Order lists nodes in visit order, starting with the root.
	Order []int
	// Depth[i] is the contact distance from the root, -1 if unreached.
	Depth []int
	// Parent[i] is the node that discovered i, -1 for the root and for
	// unreached nodes.
	Parent []int
}

// BFS walks the contact graph breadth-first from start. Neighbors are
// visited in ascending order, so the walk is deterministic.
//
// Errors: ErrNodeOutOfRange if start is not a node.
//
// Complexity: O(n + E).
func (cm *ContactMap) BFS(start int) (*Walk, error) {
	if start < 0 || start >= cm.n {
		return nil, ErrNodeOutOfRange
	}
	w := &Walk{
		Order:  make([]int, 0, cm.n),
		Depth:  make([]int, cm.n),
		Parent: make([]int, cm.n),
	}
	for i := range w.Depth {
		w.Depth[i], w.Parent[i] = -1, -1
	}
	cm.walk(start, w)

	return w, nil
}

// walk runs one breadth-first sweep from root over nodes not yet reached
// in w, appending to w.Order.
func (cm *ContactMap) walk(root int, w *Walk) {
	w.Depth[root] = 0
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		w.Order = append(w.Order, u)
		for _, v := range cm.adj[u] {
			if w.Depth[v] >= 0 {
				continue
			}
			w.Depth[v] = w.Depth[u] + 1
			w.Parent[v] = u
			queue = append(queue, v)
		}
	}
}

// Components labels every node with the index of its connected component.
// Components are numbered 0,1,... in order of their smallest node; an
// isolated residue forms a component of its own.
//
// Complexity: O(n + E).
func (cm *ContactMap) Components() (labels []int, count int) {
	labels = make([]int, cm.n)
	w := &Walk{Depth: make([]int, cm.n), Parent: make([]int, cm.n)}
	for i := range w.Depth {
		w.Depth[i], w.Parent[i] = -1, -1
	}
	for i := 0; i < cm.n; i++ {
		if w.Depth[i] >= 0 {
			continue
		}
		from := len(w.Order)
		cm.walk(i, w)
		for _, v := range w.Order[from:] {
			labels[v] = count
		}
		count++
	}

	return labels, count
}
