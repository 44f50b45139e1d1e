package export

import "github.com/lmartins/rootree/internal/phylo"

// Clade is the serializable view of a tree node used by the structured
// exporters. Parent pointers are dropped so the value encodes as a plain
// nested document.
type Clade struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     string   `json:"kind" yaml:"kind"`
	Support  *float64 `json:"support,omitempty" yaml:"support,omitempty"`
	Length   *float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Children []Clade  `json:"children,omitempty" yaml:"children,omitempty"`
}

const (
	kindRoot = "ROOT"
	kindNode = "NODE"
	kindLeaf = "LEAF"
)

// cladeView converts a tree into its serializable form.
func cladeView(t *phylo.Tree) Clade {
	return nodeView(t.Root, true)
}

func nodeView(n *phylo.Node, isRoot bool) Clade {
	c := Clade{
		Name:    n.Name,
		Support: n.Support,
		Length:  n.Length,
	}
	switch {
	case isRoot:
		c.Kind = kindRoot
	case n.IsLeaf():
		c.Kind = kindLeaf
	default:
		c.Kind = kindNode
	}
	for _, child := range n.Children {
		c.Children = append(c.Children, nodeView(child, false))
	}
	return c
}
