package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/diff"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/templates"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var optionFlags cmdutil.OptionFlags
	var nameFlag string

	c := &cobra.Command{
		Use:   "diff [dir]",
		Short: "Show what regenerating a project would change",
		Long: `Compare an existing project with freshly generated template files.

Each generated file is reported as added (missing on disk), modified or
unchanged. Modified JSON files get a structural diff; other files get a line
summary. Nothing is written.

Arguments:
  dir    Project directory (default: current directory)

Examples:
  # Compare with the default template
  magic-expo diff ./my-app

  # Compare with the showcase template
  magic-expo diff ./my-app --template showcase`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, args, cfg, &optionFlags, nameFlag)
		},
	}

	optionFlags.AddTo(c)
	c.Flags().StringVar(&nameFlag, "name", "", "Project name (default: directory name)")

	return c
}

func runDiff(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.OptionFlags, name string) error {
	dir := cmdutil.ResolveDir(args)

	resolved, err := resolveForDir(c, cfg, flags, dir, name)
	if err != nil {
		return cmdutil.Exit(err)
	}

	manifest, err := templates.Assemble(resolved)
	if err != nil {
		return cmdutil.Exit(err)
	}

	useColor := output.IsTTY()
	result, err := diff.Compare(dir, manifest, diff.Options{UseColor: useColor})
	if err != nil {
		return cmdutil.Exit(err)
	}

	out := c.OutOrStdout()
	if result.IsEmpty() {
		fmt.Fprintln(out, output.FormatCheckmark("No changes detected."))
		return nil
	}

	modified := make([]output.ModifiedItem, len(result.Modified))
	for i, m := range result.Modified {
		modified[i] = output.ModifiedItem{Name: m.Path, Diff: m.Diff}
	}

	styles := output.NoColorStyles()
	if useColor {
		styles = output.GetStyles()
	}

	fmt.Fprintln(out, output.RenderDiff(result.Added, modified, len(result.Unchanged), styles))
	output.Debug("diff complete", "summary", result.Summary())

	return nil
}
