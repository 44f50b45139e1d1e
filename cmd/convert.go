package cmd

import (
	"os"

	"github.com/lmartins/rootree/internal/export"
	"github.com/lmartins/rootree/internal/newick"
	"github.com/lmartins/rootree/pkg/types"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_tree_file>",
	Short: "Convert a tree to another serialization",
	Long: `Convert a tree between Newick format variants or serialize it to a
structured document format.

With --to newick (the default) the tree is rewritten in the dialect given
by --out-format. With --to json or --to yaml the tree is serialized as a
nested clade document.

Examples:
  rootree convert in.nwk --out-format 9            # Strip to leaf names
  rootree convert in.nwk --to yaml                 # YAML clade document
  rootree convert in.nwk --to json -o tree.json    # JSON to a file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, uiMgr, err := setupEnv()
		if err != nil {
			return err
		}

		inCode, _ := cmd.Flags().GetInt("format")
		if !cmd.Flags().Changed("format") {
			inCode = cfg.Format.Input
		}
		outCode, _ := cmd.Flags().GetInt("out-format")
		if !cmd.Flags().Changed("out-format") {
			outCode = cfg.Format.Output
		}
		to, _ := cmd.Flags().GetString("to")
		outputPath, _ := cmd.Flags().GetString("output")

		inDialect, err := newick.ParseDialect(inCode)
		if err != nil {
			return err
		}
		outDialect, err := newick.ParseDialect(outCode)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(to, outDialect)
		if err != nil {
			return types.NewValidationError("convert", err.Error(), nil)
		}

		tree, err := newick.ParseFile(args[0], inDialect)
		if err != nil {
			return err
		}

		if outputPath == "" {
			return exporter.Export(tree, os.Stdout)
		}

		out, err := os.Create(outputPath)
		if err != nil {
			return types.NewFileSystemError("convert", outputPath,
				"cannot create output file", err)
		}
		defer out.Close()

		if err := exporter.Export(tree, out); err != nil {
			return err
		}
		uiMgr.Success("converted %s into %s", args[0], outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntP("format", "f", 0, "input tree format code (0-9, 100)")
	convertCmd.Flags().Int("out-format", 1, "output tree format code, for --to newick")
	convertCmd.Flags().String("to", "newick", "output serialization (newick, json, yaml)")
	convertCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	registerDialectCompletion(convertCmd, "format")
	registerDialectCompletion(convertCmd, "out-format")
}
