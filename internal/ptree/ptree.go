// Package ptree implements a rooted N-ary tree keyed by integer edge
// labels, used as a prefix index by the filter's combination rules, the
// term set, and the sentence-break suppression list (in reverse order).
package ptree

import "github.com/tawesoft/corpus/v2/internal/growth"

// None is the id used for "no parent" (the root) and for a missing node.
const None = -1

// linearScanMax is the number of children a node holds as a plain slice
// before it is promoted to a hash-table-backed lookup.
const linearScanMax = 8

type edge struct {
	label int
	child int
}

type node struct {
	parent   int
	label    int // edge label from parent (meaningless for the root)
	children []edge
	index    map[int]int // label -> child id, built lazily past linearScanMax
}

// Tree is a rooted N-ary tree with integer edge labels. The root has id
// 0 and always exists after Init.
type Tree struct {
	nodes []node
}

// Init resets the tree to contain only the root (id 0).
func (t *Tree) Init() {
	t.nodes = []node{{parent: None, label: None}}
}

// Clear removes every node except the root.
func (t *Tree) Clear() {
	t.Init()
}

// Root returns the root node's id (always 0).
func (t *Tree) Root() int { return 0 }

func (t *Tree) ensureInit() {
	if t.nodes == nil {
		t.Init()
	}
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree) Len() int {
	t.ensureInit()
	return len(t.nodes)
}

// Parent returns the parent id of node id, or None for the root.
func (t *Tree) Parent(id int) int {
	return t.nodes[id].parent
}

// Label returns the edge label from id's parent to id.
func (t *Tree) Label(id int) int {
	return t.nodes[id].label
}

// Has reports whether parentID has a child for the given label, returning
// its id if so.
func (t *Tree) Has(parentID, label int) (int, bool) {
	t.ensureInit()
	n := &t.nodes[parentID]
	if n.index != nil {
		id, ok := n.index[label]
		return id, ok
	}
	for _, e := range n.children {
		if e.label == label {
			return e.child, true
		}
	}
	return None, false
}

// Add returns the id of parentID's child for label, creating it (and
// allocating a new node) if it does not already exist.
func (t *Tree) Add(parentID, label int) (int, error) {
	t.ensureInit()
	if id, ok := t.Has(parentID, label); ok {
		return id, nil
	}

	newID := len(t.nodes)
	if _, err := growth.Next(newID, newID+1); err != nil {
		return None, err
	}

	t.nodes = append(t.nodes, node{parent: parentID, label: label})

	n := &t.nodes[parentID]
	n.children = append(n.children, edge{label: label, child: newID})
	if len(n.children) > linearScanMax && n.index == nil {
		n.index = make(map[int]int, len(n.children)*2)
		for _, e := range n.children {
			n.index[e.label] = e.child
		}
	} else if n.index != nil {
		n.index[label] = newID
	}

	return newID, nil
}

// Children returns the labels and child ids of parentID's children, in
// insertion order.
func (t *Tree) Children(parentID int) []struct {
	Label int
	Child int
} {
	n := &t.nodes[parentID]
	out := make([]struct {
		Label int
		Child int
	}, len(n.children))
	for i, e := range n.children {
		out[i] = struct {
			Label int
			Child int
		}{e.label, e.child}
	}
	return out
}

// Path returns the sequence of edge labels from the root to id.
func (t *Tree) Path(id int) []int {
	var rev []int
	for id != 0 {
		rev = append(rev, t.nodes[id].label)
		id = t.nodes[id].parent
	}
	out := make([]int, len(rev))
	for i, x := range rev {
		out[len(rev)-1-i] = x
	}
	return out
}

// Walk looks up the child reached from id via label, without mutating
// the tree. It is shorthand for Has when the caller isn't tracking a
// parent id separately.
func (t *Tree) Walk(id, label int) (int, bool) {
	return t.Has(id, label)
}
