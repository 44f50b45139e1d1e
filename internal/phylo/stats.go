package phylo

// Stats summarizes a tree for display.
type Stats struct {
	Leaves      int
	Internal    int
	MaxDepth    float64
	TotalLength float64
	Diameter    float64
}

// Stats computes summary figures for the tree. Depth and diameter use
// DefaultLength for edges without an explicit length; TotalLength sums only
// explicit lengths.
func (t *Tree) Stats() Stats {
	var s Stats
	if t.Root == nil {
		return s
	}

	depth := func(n *Node) float64 {
		d := 0.0
		for ; n.Parent != nil; n = n.Parent {
			d += n.BranchLength()
		}
		return d
	}

	t.Walk(func(n *Node) {
		if n.IsLeaf() {
			s.Leaves++
			if d := depth(n); d > s.MaxDepth {
				s.MaxDepth = d
			}
		} else {
			s.Internal++
		}
		if n.Length != nil && n.Parent != nil {
			s.TotalLength += *n.Length
		}
	})

	if s.Leaves >= 2 {
		u, _ := farthestLeaf(t.Leaves()[0])
		v, prev := farthestLeaf(u)
		for n := v; prev[n] != nil; n = prev[n] {
			s.Diameter += edgeWeight(n, prev[n])
		}
	}
	return s
}
