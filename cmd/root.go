package cmd

import (
	"fmt"
	"os"

	"github.com/lmartins/rootree/internal/config"
	"github.com/lmartins/rootree/internal/ui"
	"github.com/lmartins/rootree/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command when called without any subcommands
var (
	version = "dev"
	commit  = "none"    // Set at build time
	date    = "unknown" // Set at build time
)

// Use blank identifier to indicate these are intentionally unused for now
var _ = commit
var _ = date

var rootCmd = &cobra.Command{
	Use:     "rootree",
	Short:   "Reroot phylogenetic trees at their midpoint outgroup",
	Version: version,
	Long: `Rootree loads a phylogenetic tree in Newick format, reroots it at its
midpoint outgroup, and writes the rerooted tree back out.

Input and output understand the numbered Newick format variants (0-9, 100)
that differ in which annotations (branch lengths, internal node names,
support values) are recognized.

Examples:
  rootree reroot in.nwk out.nwk            # Midpoint-reroot a tree
  rootree reroot -f 1 in.nwk out.nwk       # Read internal node names
  rootree convert in.nwk --to yaml         # Serialize a tree to YAML
  rootree show in.nwk --stats              # Inspect a tree
  rootree check in.nwk                     # Validate a tree file`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rootree/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := home + "/.config/rootree"
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("ROOTREE")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// setupEnv loads the effective configuration and builds the UI manager.
func setupEnv() (*types.RootreeConfig, *ui.Manager, error) {
	configMgr := config.NewManager()
	cfg, err := configMgr.LoadGlobalConfig()
	if err != nil {
		return nil, nil, err
	}

	colors := cfg.UI.Colors && !noColor && !viper.GetBool("no_color")
	uiMgr := ui.NewManager(colors, verbose || cfg.UI.Verbose)
	return cfg, uiMgr, nil
}
