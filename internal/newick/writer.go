package newick

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lmartins/rootree/internal/phylo"
	"github.com/lmartins/rootree/pkg/types"
)

// Write serializes the tree to w in the given dialect.
func Write(w io.Writer, t *phylo.Tree, d Dialect) error {
	s, err := WriteString(t, d)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return types.NewFileSystemError("write-tree", "", "cannot write output", err)
	}
	return nil
}

// WriteString serializes the tree in the given dialect.
func WriteString(t *phylo.Tree, d Dialect) (string, error) {
	f, ok := dialectTable[d]
	if !ok {
		return "", types.NewFormatError("write-newick", d.Code(),
			fmt.Sprintf("unknown format code %d", d.Code()), nil)
	}
	if t == nil || t.Root == nil {
		return "", types.NewValidationError("write-newick", "tree is empty", nil)
	}

	var sb strings.Builder
	if err := writeNode(&sb, t.Root, f, true); err != nil {
		return "", err
	}
	sb.WriteString(";\n")
	return sb.String(), nil
}

// WriteFile serializes the tree to path atomically: the output is staged in
// a temporary file in the destination directory and renamed into place, so
// a failed run never leaves partial output.
func WriteFile(path string, t *phylo.Tree, d Dialect) error {
	s, err := WriteString(t, d)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rootree-*")
	if err != nil {
		return types.NewFileSystemError("write-tree", path,
			"cannot create temporary output file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(s); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.NewFileSystemError("write-tree", path,
			"cannot write output tree file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return types.NewFileSystemError("write-tree", path,
			"cannot write output tree file", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return types.NewFileSystemError("write-tree", path,
			"cannot set output file permissions", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return types.NewFileSystemError("write-tree", path,
			"cannot move output tree file into place", err)
	}
	return nil
}

func writeNode(sb *strings.Builder, n *phylo.Node, f fields, isRoot bool) error {
	if len(n.Children) > 0 {
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeNode(sb, c, f, false); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
		if err := writeInternalLabel(sb, n, f, isRoot); err != nil {
			return err
		}
	} else {
		if err := writeLeafLabel(sb, n, f); err != nil {
			return err
		}
	}
	return writeLength(sb, n, f, isRoot)
}

func writeLeafLabel(sb *strings.Builder, n *phylo.Node, f fields) error {
	if !f.leafName && !f.flexible {
		return nil
	}
	if n.Name == "" && f.strict {
		return types.NewValidationError("write-newick",
			"leaf without a name cannot be written in a strict format", nil)
	}
	sb.WriteString(n.Name)
	return nil
}

func writeInternalLabel(sb *strings.Builder, n *phylo.Node, f fields, isRoot bool) error {
	switch {
	case f.internalSupport:
		if n.Support == nil {
			if f.strict && !isRoot {
				return types.NewValidationError("write-newick",
					"internal node without a support value cannot be written in a strict format", nil)
			}
			return nil
		}
		sb.WriteString(formatFloat(*n.Support))
	case f.internalName:
		if n.Name == "" && f.strict && !isRoot {
			return types.NewValidationError("write-newick",
				"internal node without a name cannot be written in a strict format", nil)
		}
		sb.WriteString(n.Name)
	}
	return nil
}

func writeLength(sb *strings.Builder, n *phylo.Node, f fields, isRoot bool) error {
	if isRoot {
		return nil
	}
	allowed := f.flexible
	if n.IsLeaf() {
		allowed = allowed || f.leafLength
	} else {
		allowed = allowed || f.internalLength
	}
	if !allowed {
		return nil
	}
	if n.Length == nil {
		if f.strict {
			return types.NewValidationError("write-newick",
				"node without a branch length cannot be written in a strict format", nil)
		}
		return nil
	}
	sb.WriteByte(':')
	sb.WriteString(formatFloat(*n.Length))
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
