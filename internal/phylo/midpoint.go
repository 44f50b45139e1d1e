package phylo

import (
	"math"

	"github.com/lmartins/rootree/pkg/types"
)

const lengthEpsilon = 1e-9

// MidpointOutgroup locates the midpoint of the tree's longest leaf-to-leaf
// path. It returns the node below the edge holding the midpoint and the
// distance from that node up to the midpoint, suitable for SetOutgroup.
func (t *Tree) MidpointOutgroup() (*Node, float64, error) {
	leaves := t.Leaves()
	if len(leaves) < 2 {
		return nil, 0, types.NewValidationError("midpoint",
			"tree has fewer than two leaves", nil)
	}

	// Double sweep: the leaf farthest from an arbitrary leaf is one end of
	// the diameter, the leaf farthest from that end is the other.
	u, _ := farthestLeaf(leaves[0])
	v, prev := farthestLeaf(u)

	path := []*Node{v}
	for n := v; prev[n] != nil; n = prev[n] {
		path = append(path, prev[n])
	}
	// path currently runs v -> u; direction does not matter for the scan.

	half := 0.0
	for i := 0; i+1 < len(path); i++ {
		half += edgeWeight(path[i], path[i+1])
	}
	half /= 2

	cum := 0.0
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		w := edgeWeight(a, b)
		if cum+w+lengthEpsilon < half && i+2 < len(path) {
			cum += w
			continue
		}
		offset := math.Min(math.Max(half-cum, 0), w)
		var outgroup *Node
		var above float64
		if b.Parent == a {
			outgroup, above = b, w-offset
		} else {
			outgroup, above = a, offset
		}
		return outgroup, above, nil
	}
	return nil, 0, types.NewValidationError("midpoint", "diameter path is empty", nil)
}

// RerootMidpoint reroots the tree at its midpoint outgroup in place.
func (t *Tree) RerootMidpoint() error {
	outgroup, above, err := t.MidpointOutgroup()
	if err != nil {
		return err
	}
	return t.SetOutgroup(outgroup, above)
}

// SetOutgroup reroots the tree on the edge above n, splitting it at the
// given distance above n. The former ancestry of n is reversed and the old
// root, when left with a single child, is suppressed with its edge lengths
// merged. Calling it with the current root is a no-op.
func (t *Tree) SetOutgroup(n *Node, above float64) error {
	if n == nil {
		return types.NewValidationError("set-outgroup", "outgroup node is nil", nil)
	}
	if n == t.Root {
		return nil
	}
	edge := n.BranchLength()
	if above < -lengthEpsilon || above > edge+lengthEpsilon {
		return types.NewValidationError("set-outgroup",
			"split point lies outside the outgroup branch", nil)
	}

	oldRoot := t.Root
	orig := n.Length
	origSup := n.Support

	p := n.Parent
	p.RemoveChild(n)

	root := &Node{}
	root.AddChild(n)
	n.Length = splitLength(orig, above, edge)

	// Reverse the chain from the former parent up to the old root. Each
	// node inherits the length and support of the edge it used to share
	// with its former child.
	carryLen := splitLength(orig, edge-above, edge)
	carrySup := origSup
	attach := root
	cur := p
	for cur != nil {
		up := cur.Parent
		upLen, upSup := cur.Length, cur.Support
		if up != nil {
			up.RemoveChild(cur)
		}
		attach.AddChild(cur)
		cur.Length = carryLen
		cur.Support = carrySup
		carryLen, carrySup = upLen, upSup
		attach = cur
		cur = up
	}

	// A bifurcating old root degenerates to a pass-through node.
	if len(oldRoot.Children) <= 1 {
		q := oldRoot.Parent
		if len(oldRoot.Children) == 1 {
			c := oldRoot.Children[0]
			oldRoot.RemoveChild(c)
			c.Length = mergeLengths(c.Length, oldRoot.Length)
			if c.Support == nil {
				c.Support = oldRoot.Support
			}
			q.RemoveChild(oldRoot)
			q.AddChild(c)
		} else {
			q.RemoveChild(oldRoot)
		}
	}

	t.Root = root
	return nil
}

// farthestLeaf returns the leaf with the greatest path distance from start,
// along with the predecessor map of the sweep for path reconstruction.
func farthestLeaf(start *Node) (*Node, map[*Node]*Node) {
	dist := map[*Node]float64{start: 0}
	prev := map[*Node]*Node{start: nil}

	far := start
	best := 0.0
	stack := []*Node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, m := range neighbors(n) {
			if _, seen := dist[m]; seen {
				continue
			}
			dist[m] = dist[n] + edgeWeight(n, m)
			prev[m] = n
			if m.IsLeaf() && dist[m] > best {
				far, best = m, dist[m]
			}
			stack = append(stack, m)
		}
	}
	return far, prev
}

// neighbors returns the undirected adjacency of a node.
func neighbors(n *Node) []*Node {
	ns := make([]*Node, 0, len(n.Children)+1)
	ns = append(ns, n.Children...)
	if n.Parent != nil {
		ns = append(ns, n.Parent)
	}
	return ns
}

// edgeWeight returns the length of the edge between two adjacent nodes.
func edgeWeight(a, b *Node) float64 {
	if b.Parent == a {
		return b.BranchLength()
	}
	return a.BranchLength()
}

// splitLength computes the length annotation for one side of a split edge.
// Explicit lengths split numerically. Implicit edges stay implicit when one
// side carries the whole edge; a degenerate side becomes an explicit zero
// and a true mid-edge split has to materialize both parts.
func splitLength(orig *float64, part, whole float64) *float64 {
	if orig != nil {
		v := part
		return &v
	}
	if math.Abs(part-whole) < lengthEpsilon {
		return nil
	}
	v := part
	if part < lengthEpsilon {
		v = 0
	}
	return &v
}

// mergeLengths combines the two edges adjacent to a suppressed node,
// counting implicit edges at DefaultLength. Adding an explicit zero to an
// implicit edge keeps it implicit.
func mergeLengths(a, b *float64) *float64 {
	switch {
	case a == nil && b == nil:
		v := 2 * DefaultLength
		return &v
	case a == nil && *b < lengthEpsilon:
		return nil
	case b == nil && *a < lengthEpsilon:
		return nil
	case a == nil:
		v := DefaultLength + *b
		return &v
	case b == nil:
		v := DefaultLength + *a
		return &v
	default:
		v := *a + *b
		return &v
	}
}
