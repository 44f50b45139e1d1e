// Package newick reads and writes phylogenetic trees in the Newick format
// family. A Dialect selects which optional elements (branch lengths,
// internal node names, support values) are recognized on input and emitted
// on output.
package newick

import (
	"fmt"
	"sort"

	"github.com/lmartins/rootree/pkg/types"
)

// Dialect is a format code selecting a Newick serialization variant.
type Dialect int

const (
	// FlexibleSupport tolerates any combination of leaf names, branch
	// lengths and internal support values.
	FlexibleSupport Dialect = 0
	// FlexibleName tolerates any combination of leaf names, branch
	// lengths and internal node names.
	FlexibleName Dialect = 1
	// StrictSupport requires all branch lengths, leaf names and internal
	// support values.
	StrictSupport Dialect = 2
	// StrictName requires all branch lengths, leaf names and internal
	// node names.
	StrictName Dialect = 3
	// LeafBranches carries leaf branch lengths and leaf names only.
	LeafBranches Dialect = 4
	// AllBranches carries internal and leaf branch lengths plus leaf names.
	AllBranches Dialect = 5
	// InternalBranches carries internal branch lengths plus leaf names.
	InternalBranches Dialect = 6
	// LeafBranchesAllNames carries leaf branch lengths plus all names.
	LeafBranchesAllNames Dialect = 7
	// AllNames carries leaf and internal names only.
	AllNames Dialect = 8
	// LeafNames carries leaf names only.
	LeafNames Dialect = 9
	// TopologyOnly carries no annotations at all.
	TopologyOnly Dialect = 100
)

// fields describes which elements a dialect recognizes.
type fields struct {
	leafName        bool
	leafLength      bool
	internalName    bool
	internalSupport bool
	internalLength  bool
	strict          bool
	flexible        bool
	desc            string
}

var dialectTable = map[Dialect]fields{
	FlexibleSupport:      {leafName: true, leafLength: true, internalSupport: true, internalLength: true, flexible: true, desc: "flexible with support values"},
	FlexibleName:         {leafName: true, leafLength: true, internalName: true, internalLength: true, flexible: true, desc: "flexible with internal node names"},
	StrictSupport:        {leafName: true, leafLength: true, internalSupport: true, internalLength: true, strict: true, desc: "all branches + leaf names + internal supports"},
	StrictName:           {leafName: true, leafLength: true, internalName: true, internalLength: true, strict: true, desc: "all branches + all names"},
	LeafBranches:         {leafName: true, leafLength: true, desc: "leaf branches + leaf names"},
	AllBranches:          {leafName: true, leafLength: true, internalLength: true, desc: "internal and leaf branches + leaf names"},
	InternalBranches:     {leafName: true, internalLength: true, desc: "internal branches + leaf names"},
	LeafBranchesAllNames: {leafName: true, leafLength: true, internalName: true, desc: "leaf branches + all names"},
	AllNames:             {leafName: true, internalName: true, desc: "all names"},
	LeafNames:            {leafName: true, desc: "leaf names"},
	TopologyOnly:         {desc: "topology only"},
}

// ParseDialect validates an integer format code.
func ParseDialect(code int) (Dialect, error) {
	d := Dialect(code)
	if _, ok := dialectTable[d]; !ok {
		return 0, types.NewFormatError("parse-dialect", code,
			fmt.Sprintf("unknown format code %d", code), nil)
	}
	return d, nil
}

// Code returns the dialect's integer format code.
func (d Dialect) Code() int { return int(d) }

// String returns the dialect's description.
func (d Dialect) String() string {
	if f, ok := dialectTable[d]; ok {
		return f.desc
	}
	return fmt.Sprintf("unknown format code %d", int(d))
}

func (d Dialect) fieldSet() fields { return dialectTable[d] }

// Dialects returns all supported dialects in ascending code order.
func Dialects() []Dialect {
	ds := make([]Dialect, 0, len(dialectTable))
	for d := range dialectTable {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return ds
}
