package config

import (
	"fmt"
	"sync"

	"github.com/lmartins/rootree/internal/newick"
	"github.com/lmartins/rootree/pkg/types"
	"github.com/spf13/viper"
)

// Manager handles configuration loading and management
type Manager struct {
	globalConfig *types.RootreeConfig
	mu           sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{}
}

// LoadGlobalConfig loads the global rootree configuration
func (m *Manager) LoadGlobalConfig() (*types.RootreeConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.globalConfig != nil {
		return m.globalConfig, nil
	}

	// Start with default configuration
	config := types.DefaultRootreeConfig()

	// Apply configuration from viper (which handles file, env vars, flags)
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal global config: %w", err)
	}

	// Validate configuration
	if err := m.validateGlobalConfig(config); err != nil {
		return nil, fmt.Errorf("global config validation failed: %w", err)
	}

	m.globalConfig = config
	return config, nil
}

// GetGlobalConfig returns the cached global configuration
func (m *Manager) GetGlobalConfig() *types.RootreeConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.globalConfig
}

// validateGlobalConfig validates the global configuration
func (m *Manager) validateGlobalConfig(config *types.RootreeConfig) error {
	if _, err := newick.ParseDialect(config.Format.Input); err != nil {
		return types.NewConfigError("config",
			fmt.Sprintf("invalid default input format code %d", config.Format.Input), err)
	}
	if _, err := newick.ParseDialect(config.Format.Output); err != nil {
		return types.NewConfigError("config",
			fmt.Sprintf("invalid default output format code %d", config.Format.Output), err)
	}
	return nil
}
