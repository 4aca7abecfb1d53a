package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/config"
	oerrors "github.com/magic-expo/cli/internal/errors"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new magic-expo configuration file with default values.

The configuration file is created at ~/.magic-expo/config.yaml by default.
Use --config flag or MAGIC_EXPO_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	configFile, err := configPath(cfg)
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("getting config file path: %w", err))
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("expanding config path: %w", err))
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("checking config file: %w", err))
	}

	if exists && !force {
		return cmdutil.Exit(&oerrors.DetailError{
			Type:     "config exists",
			Message:  fmt.Sprintf("config file already exists at %s", expandedPath),
			Location: expandedPath,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrExists,
		})
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o700); err != nil {
		return cmdutil.Exit(oerrors.NewPermissionError("creating config directory", filepath.Dir(expandedPath)))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("marshaling config: %w", err))
	}

	header := []byte("# magic-expo configuration\n# Values under defaults pre-fill create and apply options.\n\n")
	data = append(header, data...)

	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return cmdutil.Exit(oerrors.NewPermissionError("writing config file", expandedPath))
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}
