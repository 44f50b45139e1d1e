package cmd

import (
	"fmt"

	"github.com/lmartins/rootree/internal/newick"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <input_tree_file>...",
	Short: "Validate tree files",
	Long: `Parse each tree file in the selected format and report the result.

The exit status is non-zero when any file fails to parse.

Examples:
  rootree check in.nwk
  rootree check -f 1 *.nwk`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, uiMgr, err := setupEnv()
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

		failed := 0
		for _, path := range args {
			tree, err := newick.ParseFile(path, inDialect)
			if err != nil {
				uiMgr.Error("%s: %v", path, err)
				failed++
				continue
			}
			uiMgr.Success("%s: %d leaves", path, len(tree.Leaves()))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("format", "f", 0, "input tree format code (0-9, 100)")

	registerDialectCompletion(checkCmd, "format")
}
