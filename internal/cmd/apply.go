package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/project"
	"github.com/magic-expo/cli/internal/scaffold"
)

// NewApplyCmd creates the apply command.
func NewApplyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var optionFlags cmdutil.OptionFlags
	var overwriteFlag bool
	var nameFlag string

	c := &cobra.Command{
		Use:   "apply [dir]",
		Short: "Scaffold template files into an existing directory",
		Long: `Scaffold template files into an existing directory.

Files that already exist are kept unless --overwrite is given. Use
'magic-expo diff' first to see what would change.

Arguments:
  dir    Project directory (default: current directory)

Examples:
  # Add missing files to the current project
  magic-expo apply

  # Regenerate everything with drawer navigation
  magic-expo apply ./my-app --navigation drawer --overwrite`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runApply(c, args, cfg, &optionFlags, overwriteFlag, nameFlag)
		},
	}

	optionFlags.AddTo(c)
	c.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Replace files that already exist")
	c.Flags().StringVar(&nameFlag, "name", "", "Project name (default: directory name)")

	return c
}

func runApply(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.OptionFlags, overwrite bool, name string) error {
	dir := cmdutil.ResolveDir(args)

	resolved, err := resolveForDir(c, cfg, flags, dir, name)
	if err != nil {
		return cmdutil.Exit(err)
	}

	pm, err := cfg.PackageManager()
	if err != nil {
		return cmdutil.Exit(err)
	}

	result, err := project.Apply(c.Context(), project.ApplyOptions{
		Config:         resolved,
		Dir:            dir,
		Overwrite:      overwrite,
		PackageManager: pm.Value,
		Reporter:       scaffold.NewLogReporter(output.ProjectLogger(resolved.ProjectName)),
	})
	if err != nil {
		return cmdutil.Exit(err)
	}

	out := c.OutOrStdout()
	cmdutil.WriteScaffoldStatus(out, result)
	fmt.Fprintf(out, "\n%s\n", output.FormatCheckmark(fmt.Sprintf("%d created, %d overwritten, %d skipped",
		result.Events.Count(scaffold.Created),
		result.Events.Count(scaffold.Overwritten),
		result.Events.Count(scaffold.Skipped))))

	return nil
}
