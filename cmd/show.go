package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmartins/rootree/internal/newick"
	"github.com/lmartins/rootree/internal/phylo"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	rootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	internalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	leafStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	annotationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				MarginTop(1)
)

var showCmd = &cobra.Command{
	Use:   "show <input_tree_file>",
	Short: "Display a tree and its summary figures",
	Long: `Display the structure of a tree file in a human-readable layout.

Each line shows one clade: R marks the root, I internal nodes and L leaves,
with names, support values and branch lengths where present. With --stats a
summary block (leaf count, depth, total branch length, diameter) follows.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setupEnv()
		if err != nil {
			return err
		}

		inCode, _ := cmd.Flags().GetInt("format")
		if !cmd.Flags().Changed("format") {
			inCode = cfg.Format.Input
		}
		inDialect, err := newick.ParseDialect(inCode)
		if err != nil {
			return err
		}

		tree, err := newick.ParseFile(args[0], inDialect)
		if err != nil {
			return err
		}

		colors := cfg.UI.Colors && !noColor
		fmt.Print(renderTree(tree, args[0], colors))

		if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
			fmt.Print(renderStats(tree.Stats(), colors))
		}
		return nil
	},
}

func renderTree(t *phylo.Tree, name string, colors bool) string {
	var sb strings.Builder
	sb.WriteString(styled(rootStyle, "R", colors) + " " + name + "\n")
	for _, child := range t.Root.Children {
		renderNode(&sb, child, 1, colors)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n *phylo.Node, level int, colors bool) {
	indent := strings.Repeat("  ", level)

	mark, style := "I", internalStyle
	if n.IsLeaf() {
		mark, style = "L", leafStyle
	}

	line := indent + styled(style, mark, colors)
	if n.Name != "" {
		line += " " + n.Name
	}
	var notes []string
	if n.Support != nil {
		notes = append(notes, "support="+formatNum(*n.Support))
	}
	if n.Length != nil {
		notes = append(notes, "length="+formatNum(*n.Length))
	}
	if len(notes) > 0 {
		line += " " + styled(annotationStyle, "("+strings.Join(notes, ", ")+")", colors)
	}
	sb.WriteString(line + "\n")

	for _, child := range n.Children {
		renderNode(sb, child, level+1, colors)
	}
}

func renderStats(s phylo.Stats, colors bool) string {
	var sb strings.Builder
	sb.WriteString(styled(statsHeaderStyle, "Stats", colors) + "\n")
	sb.WriteString(fmt.Sprintf("  leaves:          %d\n", s.Leaves))
	sb.WriteString(fmt.Sprintf("  internal nodes:  %d\n", s.Internal))
	sb.WriteString(fmt.Sprintf("  max depth:       %s\n", formatNum(s.MaxDepth)))
	sb.WriteString(fmt.Sprintf("  total length:    %s\n", formatNum(s.TotalLength)))
	sb.WriteString(fmt.Sprintf("  diameter:        %s\n", formatNum(s.Diameter)))
	return sb.String()
}

func styled(style lipgloss.Style, s string, colors bool) string {
	if !colors {
		return s
	}
	return style.Render(s)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntP("format", "f", 0, "input tree format code (0-9, 100)")
	showCmd.Flags().Bool("stats", false, "print summary figures after the tree")

	registerDialectCompletion(showCmd, "format")
}
