package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/templates"
)

// resolveForDir resolves options for an existing project directory. The
// project name comes from --name, else the directory name when it is a valid
// project name, else the default.
func resolveForDir(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *cmdutil.OptionFlags, dir, name string) (options.Config, error) {
	flagLayer, err := flags.RawOptions(c.Flags())
	if err != nil {
		return options.Config{}, err
	}

	if name != "" {
		if err := templates.ValidateProjectName(name); err != nil {
			return options.Config{}, err
		}
		flagLayer.ProjectName = options.Ptr(name)
	} else if abs, err := filepath.Abs(dir); err == nil {
		if base := filepath.Base(abs); templates.ValidateProjectName(base) == nil {
			flagLayer.ProjectName = options.Ptr(base)
		}
	}

	defaults, err := cfg.DefaultOptions()
	if err != nil {
		return options.Config{}, err
	}

	resolved := options.Resolve(options.Merge(flagLayer, defaults))
	output.Debug("resolved options",
		"project", resolved.ProjectName,
		"template", resolved.Tier,
		"navigation", resolved.Navigation,
		"theming", resolved.Theming,
		"uiComponents", resolved.UIComponents,
		"buildProvider", resolved.BuildProvider,
	)
	return resolved, nil
}
