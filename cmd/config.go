package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lmartins/rootree/pkg/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rootree configuration",
	Long: `Manage the global rootree configuration file
($HOME/.config/rootree/config.yaml).`,
}

var configGlobalCmd = &cobra.Command{
	Use:   "global",
	Short: "Initialize global configuration",
	Long: `Initialize the global rootree configuration.

Creates the configuration directory and file at
$HOME/.config/rootree/config.yaml with default settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, ".config", "rootree")
		configFile := filepath.Join(configDir, "config.yaml")

		// Check if config already exists
		if _, err := os.Stat(configFile); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("global config already exists at %s, use --force to overwrite", configFile)
			}
		}

		// Create config directory
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		// Create default global configuration
		config := types.DefaultRootreeConfig()

		// Write to file
		data, err := yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}

		if err := os.WriteFile(configFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("Created global configuration at: %s\n", configFile)
		fmt.Println("Edit this file to customize default tree formats")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setupEnv()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configGlobalCmd)
	configCmd.AddCommand(configShowCmd)

	configGlobalCmd.Flags().Bool("force", false, "overwrite existing global config file")
}
