package types

// RootreeConfig represents the global rootree tool configuration
type RootreeConfig struct {
	// Tree format defaults
	Format FormatConfig `yaml:"format" mapstructure:"format"`

	// UI settings
	UI UIConfig `yaml:"ui" mapstructure:"ui"`
}

// FormatConfig holds the default Newick dialect codes used when the
// corresponding flags are not given on the command line.
type FormatConfig struct {
	Input  int `yaml:"input" mapstructure:"input"`
	Output int `yaml:"output" mapstructure:"output"`
}

// UIConfig represents UI/output configuration
type UIConfig struct {
	Colors  bool `yaml:"colors" mapstructure:"colors"`
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultRootreeConfig returns the default configuration
func DefaultRootreeConfig() *RootreeConfig {
	return &RootreeConfig{
		Format: FormatConfig{
			Input:  0, // flexible with support values
			Output: 1, // flexible with internal node names
		},
		UI: UIConfig{
			Colors:  true,
			Verbose: false,
		},
	}
}
