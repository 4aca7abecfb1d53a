package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for magic-expo configuration.
const envPrefix = "MAGIC_EXPO"

// Loader handles loading configuration from the config file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys viper knows about.
	_ = v.BindEnv("defaults.template", "MAGIC_EXPO_DEFAULTS_TEMPLATE")
	_ = v.BindEnv("defaults.navigation", "MAGIC_EXPO_DEFAULTS_NAVIGATION")
	_ = v.BindEnv("defaults.theming", "MAGIC_EXPO_DEFAULTS_THEMING")
	_ = v.BindEnv("defaults.uiComponents", "MAGIC_EXPO_DEFAULTS_UI_COMPONENTS")
	_ = v.BindEnv("defaults.buildProvider", "MAGIC_EXPO_DEFAULTS_BUILD_PROVIDER")
	_ = v.BindEnv("defaults.author", "MAGIC_EXPO_DEFAULTS_AUTHOR")
	_ = v.BindEnv("log.timestamps", "MAGIC_EXPO_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path. If configFile is empty
// the default location is used. A missing file is not an error.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
