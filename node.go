package radix

import (
	"bytes"
	"sort"
)

// edge is a single labeled transition from a node to one of its children.
// Labels are never empty and no two edges of the same node share a first
// byte (invariant 3): children is kept sorted by label[0] ascending, which
// is therefore equivalent to sorting by the full label.
type edge struct {
	label []byte
	child *node
}

// node is a single vertex of the radix tree. isEnd is true iff the
// concatenation of edge labels from the root to this vertex is a stored
// key. parent is a non-owning back-reference used only for local
// navigation; it is nil for the root.
type node struct {
	isEnd    bool
	parent   *node
	children []edge
}

// childIndex returns the index in n.children whose label begins with b,
// and whether such an edge exists. Because no two children share a first
// byte, this uniquely identifies at most one edge.
func (n *node) childIndex(b byte) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].label[0] >= b
	})
	if i < len(n.children) && n.children[i].label[0] == b {
		return i, true
	}
	return i, false
}

// insertEdge inserts a new child under label, keeping children sorted.
// The caller guarantees no existing edge shares label's first byte.
func (n *node) insertEdge(label []byte, child *node) {
	i, found := n.childIndex(label[0])
	if found {
		panic("radix: insertEdge called with a colliding first byte")
	}
	n.children = append(n.children, edge{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = edge{label: label, child: child}
}

// removeEdgeAt deletes the child at index i, preserving sort order.
func (n *node) removeEdgeAt(i int) {
	n.children = append(n.children[:i], n.children[i+1:]...)
}

// replaceEdgeAt substitutes the label/child at index i in place.
func (n *node) replaceEdgeAt(i int, label []byte, child *node) {
	n.children[i] = edge{label: label, child: child}
}

// clone produces a deep copy of the subtree rooted at n. The copy's root
// has no parent; parent links within the copy are rewired to point inside
// the copy.
func (n *node) clone() *node {
	cp := &node{isEnd: n.isEnd}
	if len(n.children) > 0 {
		cp.children = make([]edge, len(n.children))
		for i, e := range n.children {
			childCopy := e.child.clone()
			childCopy.parent = cp
			label := make([]byte, len(e.label))
			copy(label, e.label)
			cp.children[i] = edge{label: label, child: childCopy}
		}
	}
	return cp
}

// equalsNode reports whether the subtrees rooted at n and other represent
// the same set of keys. Children are pairwise compared in order since both
// slices are sorted identically by construction.
func (n *node) equalsNode(other *node) bool {
	if n.isEnd != other.isEnd {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !bytes.Equal(n.children[i].label, other.children[i].label) {
			return false
		}
		if !n.children[i].child.equalsNode(other.children[i].child) {
			return false
		}
	}
	return true
}

// keyCount returns the number of end-marked descendants of n, inclusive.
func (n *node) keyCount() int {
	count := 0
	if n.isEnd {
		count++
	}
	for _, e := range n.children {
		count += e.child.keyCount()
	}
	return count
}

// firstKey returns the lexicographically smallest end-marked vertex strictly
// below n, following leftmost children until one is end-marked. It never
// returns n itself, matching the usual caller convention of only invoking
// firstKey on a vertex already known not to be end-marked. Returns nil if n
// has no children.
func (n *node) firstKey() *node {
	if len(n.children) == 0 {
		return nil
	}
	cur := n
	for {
		cur = cur.children[0].child
		if cur.isEnd {
			return cur
		}
	}
}

// lastKey returns the lexicographically largest end-marked vertex in the
// subtree rooted at n, inclusive of n itself. Every proper descendant of an
// end-marked vertex is lexicographically greater than that vertex, so the
// answer is always found by following rightmost children to a leaf; the
// leaf is end-marked by invariant unless n is the root of an empty tree, in
// which case nil is returned.
func (n *node) lastKey() *node {
	cur := n
	for len(cur.children) > 0 {
		cur = cur.children[len(cur.children)-1].child
	}
	if !cur.isEnd {
		return nil
	}
	return cur
}

// findChildIndex locates child by identity among n.children. Children are
// few enough (at most 256, typically far fewer) that a linear scan is fine.
func (n *node) findChildIndex(child *node) int {
	for i := range n.children {
		if n.children[i].child == child {
			return i
		}
	}
	return -1
}

// nextNode returns the lexicographically next end-marked vertex that is
// not in n's subtree, or nil if n is the last key in the tree.
func (n *node) nextNode() *node {
	cur := n
	par := n.parent
	for par != nil && par.children[len(par.children)-1].child == cur {
		cur = par
		par = par.parent
	}
	if par == nil {
		return nil
	}
	idx := par.findChildIndex(cur)
	if idx < 0 || idx+1 >= len(par.children) {
		panic("radix: nextNode could not locate right sibling")
	}
	sibling := par.children[idx+1].child
	if sibling.isEnd {
		return sibling
	}
	return sibling.firstKey()
}

// prevNode returns the lexicographically previous end-marked vertex that
// is not in n's subtree, or nil if n is the first key in the tree. If n is
// nil (the one-past-end cursor position), root's last key is returned.
func (n *node) prevNode(root *node) *node {
	if n == nil {
		return root.lastKey()
	}
	cur := n
	par := n.parent
	for par != nil && par.children[0].child == cur {
		// An end-marked ancestor reached through leftmost children
		// precedes everything below it, so it is the previous key.
		if par.isEnd {
			return par
		}
		cur = par
		par = par.parent
	}
	if par == nil {
		// Ascended past a non-member root: there is no previous key.
		return nil
	}
	idx := par.findChildIndex(cur)
	if idx <= 0 {
		panic("radix: prevNode could not locate left sibling")
	}
	sibling := par.children[idx-1].child
	return sibling.lastKey()
}

// underlyingString reconstructs the key represented by n by walking up to
// the root and concatenating edge labels in reverse.
func (n *node) underlyingString() []byte {
	var labels [][]byte
	total := 0
	cur := n
	par := n.parent
	for par != nil {
		idx := par.findChildIndex(cur)
		if idx < 0 {
			panic("radix: underlyingString could not locate self in parent")
		}
		labels = append(labels, par.children[idx].label)
		total += len(par.children[idx].label)
		cur = par
		par = par.parent
	}
	out := make([]byte, 0, total)
	for i := len(labels) - 1; i >= 0; i-- {
		out = append(out, labels[i]...)
	}
	return out
}

// checkInvariants verifies the tree's structural invariants hold for the
// subtree rooted at n: no empty labels, no two children sharing a first
// byte, consistent parent links, and no degenerate (non-root, non-end,
// single-child) vertices. It is intended for use from tests and debug
// assertions, not the release hot path.
func (n *node) checkInvariants() bool {
	if len(n.children) == 0 {
		return n.isEnd || n.parent == nil
	}
	if !n.isEnd && len(n.children) < 2 && n.parent != nil {
		return false
	}
	seen := make(map[byte]bool, len(n.children))
	prevLabel := []byte(nil)
	for i, e := range n.children {
		if len(e.label) == 0 {
			return false
		}
		if e.child == nil {
			return false
		}
		if e.child.parent != n {
			return false
		}
		if seen[e.label[0]] {
			return false
		}
		seen[e.label[0]] = true
		if i > 0 && bytes.Compare(prevLabel, e.label) >= 0 {
			return false
		}
		prevLabel = e.label
		if !e.child.checkInvariants() {
			return false
		}
	}
	return true
}
