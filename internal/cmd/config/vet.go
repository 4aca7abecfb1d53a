package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/config"
	oerrors "github.com/magic-expo/cli/internal/errors"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the magic-expo configuration file against the internal schema.

The command validates ~/.magic-expo/config.yaml by default.
Use --config flag or MAGIC_EXPO_CONFIG to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
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
	if !exists {
		return cmdutil.Exit(oerrors.NewNotFoundError(
			fmt.Sprintf("config file not found: %s", expandedPath), expandedPath,
			"Run 'magic-expo config init' to create one."))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.Exit(fmt.Errorf("creating validator: %w", err))
	}

	if err := validator.ValidateFile(expandedPath); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", expandedPath)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return cmdutil.ExitPrinted(err)
		}
		return cmdutil.Exit(fmt.Errorf("validating config: %w", err))
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file is valid: %s\n", expandedPath)
	return nil
}
