// Package config provides loading and validation of the user config file.
package config

import (
	"fmt"
	"slices"

	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
)

// DefaultPackageManager installs dependencies when nothing else is set.
const DefaultPackageManager = "bun"

// PackageManagers lists the supported package managers.
var PackageManagers = []string{"bun", "npm", "pnpm", "yarn"}

// ValidatePackageManager rejects anything but a supported package manager.
// The value becomes the name of an executed command.
func ValidatePackageManager(name string) error {
	if slices.Contains(PackageManagers, name) {
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("unsupported package manager %q", name),
		"packageManager",
		"Use bun, npm, pnpm, or yarn.")
}

// DefaultsConfig holds default answers for create and apply.
type DefaultsConfig struct {
	// Template is the default tier. Env: MAGIC_EXPO_DEFAULTS_TEMPLATE
	Template string `json:"template,omitempty" yaml:"template,omitempty" mapstructure:"template"`

	// Navigation is the default navigation preset.
	Navigation string `json:"navigation,omitempty" yaml:"navigation,omitempty" mapstructure:"navigation"`

	Theming      *bool `json:"theming,omitempty" yaml:"theming,omitempty" mapstructure:"theming"`
	UIComponents *bool `json:"uiComponents,omitempty" yaml:"uiComponents,omitempty" mapstructure:"uiComponents"`

	// BuildProvider is local or eas.
	BuildProvider string `json:"buildProvider,omitempty" yaml:"buildProvider,omitempty" mapstructure:"buildProvider"`

	// Author is written into new projects when --author is not given.
	Author string `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config is the user configuration loaded from ~/.magic-expo/config.yaml.
type Config struct {
	// Defaults are the lowest-precedence option layer.
	Defaults DefaultsConfig `json:"defaults,omitempty" yaml:"defaults" mapstructure:"defaults"`

	// PackageManager runs the dependency install step.
	// Env: MAGIC_EXPO_PACKAGE_MANAGER, Default: bun
	PackageManager string `json:"packageManager,omitempty" yaml:"packageManager" mapstructure:"packageManager"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `magic-expo config init` to generate the initial file.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Template:      options.TierDefault.String(),
			Navigation:    options.NavigationTabs.String(),
			Theming:       options.Ptr(true),
			UIComponents:  options.Ptr(true),
			BuildProvider: options.BuildLocal.String(),
		},
		PackageManager: DefaultPackageManager,
	}
}

// RawOptions converts the defaults section into an option layer.
func (c *Config) RawOptions() (options.RawOptions, error) {
	var raw options.RawOptions
	d := c.Defaults

	if d.Template != "" {
		t, err := options.ParseTier(d.Template)
		if err != nil {
			return raw, configError("defaults.template", err)
		}
		raw.Tier = &t
	}
	if d.Navigation != "" {
		n, err := options.ParseNavigation(d.Navigation)
		if err != nil {
			return raw, configError("defaults.navigation", err)
		}
		raw.Navigation = &n
	}
	if d.BuildProvider != "" {
		b, err := options.ParseBuildProvider(d.BuildProvider)
		if err != nil {
			return raw, configError("defaults.buildProvider", err)
		}
		raw.BuildProvider = &b
	}
	if d.Author != "" {
		raw.Author = options.Ptr(d.Author)
	}
	raw.Theming = d.Theming
	raw.UIComponents = d.UIComponents

	return raw, nil
}

func configError(field string, err error) error {
	return &oerrors.DetailError{
		Type:    "invalid config",
		Message: err.Error(),
		Field:   field,
		Hint:    "Fix the value in your config file or run 'magic-expo config vet'.",
		Cause:   oerrors.ErrValidation,
	}
}
