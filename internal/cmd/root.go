// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	configcmd "github.com/magic-expo/cli/internal/cmd/config"
	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/config"
	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/output"
)

// rootFlags holds the persistent flags.
type rootFlags struct {
	config         string
	packageManager string
	verbose        bool
	timestamps     bool
}

// NewRootCmd creates the root command for the magic-expo CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{Config: &config.Config{}}

	rootCmd := &cobra.Command{
		Use:   "magic-expo",
		Short: "Scaffold Expo / React Native projects",
		Long: `magic-expo creates Expo Router projects from parameterized templates.

Pick a template tier (minimum, default, showcase), a navigation preset and
whether to include theming, UI components and EAS build profiles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cmdutil.Exit(oerrors.NewValidationError(err.Error(), "",
			fmt.Sprintf("Run '%s --help' for usage.", c.CommandPath())))
	})

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MAGIC_EXPO_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.packageManager, "package-manager", "",
		"Package manager for dependency install (env: MAGIC_EXPO_PACKAGE_MANAGER)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewCreateCmd(cfg),
		NewApplyCmd(cfg),
		NewDiffCmd(cfg),
		NewPreviewCmd(cfg),
		NewVerifyCmd(cfg),
		NewTemplatesCmd(cfg),
		configcmd.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads the config file and sets up logging.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		// Commands still work without a readable config file.
		output.Warn("ignoring config file", "path", configPath.Value, "error", err)
		loaded = &config.Config{}
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.PackageManagerFlag = flags.packageManager
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
	}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if flags.verbose {
		pm, _ := cfg.PackageManager()
		config.LogResolvedValues(configPath, pm)
	}

	return nil
}
