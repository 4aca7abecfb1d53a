package config

import (
	"os"

	"github.com/magic-expo/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

const envPackageManager = "MAGIC_EXPO_PACKAGE_MANAGER"

// ResolvedValue is a configuration value with its origin.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolvePackageManagerOptions contains the candidate values.
type ResolvePackageManagerOptions struct {
	// FlagValue is the --package-manager flag value (empty if not set).
	FlagValue string
	// ConfigValue is the packageManager value from the config file.
	ConfigValue string
}

// ResolvePackageManager resolves the package manager using precedence:
// (1) --package-manager flag, (2) MAGIC_EXPO_PACKAGE_MANAGER, (3) config
// file, (4) bun.
func ResolvePackageManager(opts ResolvePackageManagerOptions) ResolvedValue {
	return resolve("packageManager", opts.FlagValue, os.Getenv(envPackageManager), opts.ConfigValue, DefaultPackageManager)
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MAGIC_EXPO_CONFIG, (3) ~/.magic-expo/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolve("config", flagValue, os.Getenv(envConfigFile), "", paths.ConfigFile), nil
}

func resolve(key, flag, env, file, def string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flag},
		{SourceEnv, env},
		{SourceConfig, file},
		{SourceDefault, def},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// LogResolvedValues logs configuration resolution at debug level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
