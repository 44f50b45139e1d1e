package cmd

import (
	"fmt"

	"github.com/lmartins/rootree/internal/newick"
	"github.com/spf13/cobra"
)

// completeDialectCodes provides completion for format code flags
func completeDialectCodes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var codes []string
	for _, d := range newick.Dialects() {
		codes = append(codes, fmt.Sprintf("%d\t%s", d.Code(), d))
	}
	return codes, cobra.ShellCompDirectiveNoFileComp
}

// registerDialectCompletion wires format-code completion onto a flag
func registerDialectCompletion(cmd *cobra.Command, flag string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, completeDialectCodes)
}
