package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/project"
	"github.com/magic-expo/cli/internal/scaffold"
	"github.com/magic-expo/cli/internal/templates"
)

// NewCreateCmd creates the create command.
func NewCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var optionFlags cmdutil.OptionFlags
	var yesFlag bool
	var dirFlag string

	c := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new Expo project",
		Long: `Create a new Expo project from a template.

Templates:
  minimum   Single screen, no navigation, theming or UI components
  default   Navigation shell with optional theming and UI components
  showcase  Everything enabled plus features and components screens

Without --yes on a terminal, you are asked for every option not given as a
flag. Values from ~/.magic-expo/config.yaml pre-fill the answers.

Examples:
  # Interactive
  magic-expo create

  # Defaults for everything, minimum template
  magic-expo create my-app --yes

  # Showcase with drawer navigation and EAS profiles
  magic-expo create my-app --template showcase --navigation drawer --build-provider eas

  # Create inside another directory
  magic-expo create my-app --dir ./apps`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, cfg, &optionFlags, yesFlag, dirFlag)
		},
	}

	optionFlags.AddTo(c)
	c.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip prompts and use the minimum template")
	c.Flags().StringVarP(&dirFlag, "dir", "d", ".", "Parent directory for the project")

	return c
}

func runCreate(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.OptionFlags, yes bool, dir string) error {
	flagLayer, err := flags.RawOptions(c.Flags())
	if err != nil {
		return cmdutil.Exit(err)
	}
	if len(args) > 0 {
		if err := templates.ValidateProjectName(args[0]); err != nil {
			return cmdutil.Exit(err)
		}
		flagLayer.ProjectName = options.Ptr(args[0])
	}

	pm, err := cfg.PackageManager()
	if err != nil {
		return cmdutil.Exit(err)
	}

	defaults, err := cfg.DefaultOptions()
	if err != nil {
		return cmdutil.Exit(err)
	}

	var prompted options.RawOptions
	if !yes && output.IsInteractive() {
		prompted, err = promptOptions(c.Context(), flagLayer, defaults)
		if err != nil {
			return cmdutil.Exit(err)
		}
	}

	merged := options.Merge(flagLayer, prompted, defaults)

	var resolved options.Config
	if yes {
		if flagLayer.Tier != nil && *flagLayer.Tier != options.TierMinimum {
			output.Warn("--yes always uses the minimum template", "ignored", *flagLayer.Tier)
		}
		resolved = options.ResolveUnattended(merged)
	} else {
		resolved = options.Resolve(merged)
	}

	if err := templates.ValidateProjectName(resolved.ProjectName); err != nil {
		return cmdutil.Exit(err)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.StyleAction.Render("Creating Expo project: ")+output.StyleNoun.Render(resolved.ProjectName))

	result, err := project.Create(c.Context(), project.CreateOptions{
		Config:         resolved,
		ParentDir:      dir,
		PackageManager: pm.Value,
		Reporter:       scaffold.NewLogReporter(output.ProjectLogger(resolved.ProjectName)),
	})
	if err != nil {
		return cmdutil.Exit(err)
	}

	fmt.Fprintf(out, "\n%s\n\n", output.FormatCheckmark(fmt.Sprintf("Created project '%s' in %s", resolved.ProjectName, result.Dir)))
	fmt.Fprint(out, cmdutil.FileTree(resolved.ProjectName, result.Manifest))
	fmt.Fprintln(out)

	cdPath := filepath.Join(dir, resolved.ProjectName)
	cmdutil.WriteNextSteps(out, result.NextSteps(cdPath, pm.Value))

	return nil
}
