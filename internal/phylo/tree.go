// Package phylo implements the rooted phylogenetic tree model and the
// topology operations rootree performs on it: traversal, leaf distances,
// midpoint outgroup location and rerooting.
package phylo

import (
	"sort"

	"github.com/lmartins/rootree/pkg/types"
)

// DefaultLength is the branch length assumed for edges without an explicit
// length. All distance computations use it; serialization never does.
const DefaultLength = 1.0

// Node is a single clade of a rooted tree. Length and Support are optional
// annotations on the edge connecting the node to its parent.
type Node struct {
	Name     string
	Length   *float64
	Support  *float64
	Parent   *Node
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// AddChild appends c to the node's children and sets its parent pointer.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// RemoveChild detaches c from the node's children. It is a no-op when c is
// not a child of n.
func (n *Node) RemoveChild(c *Node) {
	for i, child := range n.Children {
		if child == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			c.Parent = nil
			return
		}
	}
}

// BranchLength returns the length of the edge above the node, substituting
// DefaultLength when no explicit length is set.
func (n *Node) BranchLength() float64 {
	if n.Length != nil {
		return *n.Length
	}
	return DefaultLength
}

// Tree is a rooted tree owned by a single invocation.
type Tree struct {
	Root *Node
}

// New returns a tree rooted at root.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// Walk visits every node in pre-order.
func (t *Tree) Walk(visit func(*Node)) {
	if t.Root == nil {
		return
	}
	walk(t.Root, visit)
}

func walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		walk(c, visit)
	}
}

// Leaves returns the tree's leaves in traversal order.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	t.Walk(func(n *Node) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// LeafNames returns the sorted names of the tree's leaves.
func (t *Tree) LeafNames() []string {
	var names []string
	for _, l := range t.Leaves() {
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}

// FindLeaf returns the first leaf with the given name, or nil.
func (t *Tree) FindLeaf(name string) *Node {
	var found *Node
	t.Walk(func(n *Node) {
		if found == nil && n.IsLeaf() && n.Name == name {
			found = n
		}
	})
	return found
}

// Distance returns the path length between two nodes of the tree.
func (t *Tree) Distance(a, b *Node) (float64, error) {
	if a == nil || b == nil {
		return 0, types.NewValidationError("distance", "node not in tree", nil)
	}

	// Cumulative distance from a up to each of its ancestors.
	up := map[*Node]float64{a: 0}
	d := 0.0
	for n := a; n.Parent != nil; n = n.Parent {
		d += n.BranchLength()
		up[n.Parent] = d
	}

	d = 0.0
	for n := b; ; n = n.Parent {
		if da, ok := up[n]; ok {
			return da + d, nil
		}
		if n.Parent == nil {
			return 0, types.NewValidationError("distance", "nodes belong to different trees", nil)
		}
		d += n.BranchLength()
	}
}
