// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Manage the magic-expo user configuration file.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path, falling back to the default
// location when the command runs outside the root command.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return cfg.ConfigPath, nil
	}
	resolved, err := config.ResolveConfigPath("")
	if err != nil {
		return "", err
	}
	return resolved.Value, nil
}
