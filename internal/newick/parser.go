package newick

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lmartins/rootree/internal/phylo"
	"github.com/lmartins/rootree/pkg/types"
)

// ParseFile reads a tree from a file in the given dialect.
func ParseFile(path string, d Dialect) (*phylo.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewFileSystemError("read-tree", path,
			"cannot read input tree file", err)
	}
	return parse(string(data), path, d)
}

// Parse reads a tree from r in the given dialect.
func Parse(r io.Reader, d Dialect) (*phylo.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, types.NewFileSystemError("read-tree", "", "cannot read input", err)
	}
	return parse(string(data), "", d)
}

// ParseString reads a tree from a string in the given dialect.
func ParseString(s string, d Dialect) (*phylo.Tree, error) {
	return parse(s, "", d)
}

type parser struct {
	src  string
	pos  int
	path string
	f    fields
}

func parse(src, path string, d Dialect) (*phylo.Tree, error) {
	if _, ok := dialectTable[d]; !ok {
		return nil, types.NewFormatError("parse-newick", d.Code(),
			fmt.Sprintf("unknown format code %d", d.Code()), nil)
	}

	p := &parser{src: src, path: path, f: d.fieldSet()}
	p.skipSpace()
	if p.eof() {
		return nil, p.errf("empty input")
	}

	root, err := p.subtree(true)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.eof() || p.src[p.pos] != ';' {
		return nil, p.errf("expected ';' after tree")
	}
	p.pos++
	p.skipSpace()
	if !p.eof() {
		return nil, p.errf("trailing content after tree")
	}
	return phylo.New(root), nil
}

func (p *parser) subtree(isRoot bool) (*phylo.Node, error) {
	n := &phylo.Node{}

	if !p.eof() && p.src[p.pos] == '(' {
		p.pos++
		for {
			p.skipSpace()
			child, err := p.subtree(false)
			if err != nil {
				return nil, err
			}
			n.AddChild(child)
			p.skipSpace()
			if p.eof() {
				return nil, p.errf("unbalanced parentheses")
			}
			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.src[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, p.errf("expected ',' or ')'")
		}
		p.skipSpace()
		if err := p.applyInternalLabel(n, p.readLabel(), isRoot); err != nil {
			return nil, err
		}
	} else {
		if err := p.applyLeafLabel(n, p.readLabel()); err != nil {
			return nil, err
		}
	}

	if err := p.readLength(n, isRoot); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) applyLeafLabel(n *phylo.Node, label string) error {
	if label == "" {
		if p.f.strict {
			return p.errf("missing leaf name")
		}
		return nil
	}
	if !p.f.leafName && !p.f.flexible {
		return p.errf("leaf names are not allowed in this format")
	}
	n.Name = label
	return nil
}

func (p *parser) applyInternalLabel(n *phylo.Node, label string, isRoot bool) error {
	if label == "" {
		if p.f.strict && !isRoot {
			if p.f.internalSupport {
				return p.errf("missing internal support value")
			}
			return p.errf("missing internal node name")
		}
		return nil
	}
	switch {
	case p.f.internalSupport:
		v, err := strconv.ParseFloat(label, 64)
		if err != nil {
			return p.errf("internal label %q is not a support value", label)
		}
		n.Support = &v
	case p.f.internalName:
		n.Name = label
	default:
		return p.errf("internal node labels are not allowed in this format")
	}
	return nil
}

func (p *parser) readLength(n *phylo.Node, isRoot bool) error {
	leaf := n.IsLeaf()
	p.skipSpace()
	if p.eof() || p.src[p.pos] != ':' {
		if p.f.strict && !isRoot {
			return p.errf("missing branch length")
		}
		return nil
	}
	p.pos++
	v, err := p.readNumber()
	if err != nil {
		return err
	}
	allowed := p.f.flexible || isRoot
	if leaf {
		allowed = allowed || p.f.leafLength
	} else {
		allowed = allowed || p.f.internalLength
	}
	if !allowed {
		if leaf {
			return p.errf("leaf branch lengths are not allowed in this format")
		}
		return p.errf("internal branch lengths are not allowed in this format")
	}
	n.Length = &v
	return nil
}

func (p *parser) readLabel() string {
	start := p.pos
	for !p.eof() && !strings.ContainsRune("(),:;", rune(p.src[p.pos])) && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) readNumber() (float64, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() && strings.ContainsRune("+-0123456789.eE", rune(p.src[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errf("expected a branch length")
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, p.errf("invalid branch length %q", p.src[start:p.pos])
	}
	return v, nil
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) errf(format string, args ...interface{}) error {
	return types.NewParseError("parse-newick", p.path, p.pos, fmt.Sprintf(format, args...), nil)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
