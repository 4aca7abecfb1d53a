// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/magic-expo/cli/internal/config"
	"github.com/magic-expo/cli/internal/options"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded user config file, never nil after startup.
	Config *config.Config

	ConfigPath         string // resolved --config path
	PackageManagerFlag string // raw --package-manager flag value
	Verbose            bool
}

// PackageManager resolves the package manager for post-scaffold steps and
// rejects unsupported values. The resolved value is returned either way.
func (g *GlobalConfig) PackageManager() (config.ResolvedValue, error) {
	var fromFile string
	if g.Config != nil {
		fromFile = g.Config.PackageManager
	}
	pm := config.ResolvePackageManager(config.ResolvePackageManagerOptions{
		FlagValue:   g.PackageManagerFlag,
		ConfigValue: fromFile,
	})
	return pm, config.ValidatePackageManager(pm.Value)
}

// DefaultOptions returns the config file defaults as the lowest option layer.
func (g *GlobalConfig) DefaultOptions() (options.RawOptions, error) {
	if g.Config == nil {
		return options.RawOptions{}, nil
	}
	return g.Config.RawOptions()
}
