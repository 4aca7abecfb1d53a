package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/templates"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var optionFlags cmdutil.OptionFlags
	var outputFlag string

	c := &cobra.Command{
		Use:   "preview [project-name]",
		Short: "Show the files a project would contain",
		Long: `Render the template for the given options without writing anything.

Output formats:
  tree   File tree with descriptions (default)
  table  Paths with sizes
  yaml   One document per file with its content
  json   Array of files with their content

Examples:
  magic-expo preview --template showcase
  magic-expo preview my-app --navigation stack -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPreview(c, args, cfg, &optionFlags, outputFlag)
		},
	}

	optionFlags.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", "tree",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runPreview(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.OptionFlags, format string) error {
	outputFormat, err := output.ParseOutputFormat(format)
	if err != nil {
		return cmdutil.Exit(oerrors.NewValidationError(err.Error(), "output", ""))
	}

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

	defaults, err := cfg.DefaultOptions()
	if err != nil {
		return cmdutil.Exit(err)
	}

	resolved := options.Resolve(options.Merge(flagLayer, defaults))
	manifest, err := templates.Assemble(resolved)
	if err != nil {
		return cmdutil.Exit(err)
	}

	out := c.OutOrStdout()
	switch outputFormat {
	case output.FormatTree:
		fmt.Fprint(out, cmdutil.FileTree(resolved.ProjectName, manifest))
	case output.FormatTable:
		entries := make([]output.FileEntry, 0, manifest.Len())
		for _, f := range manifest.Files() {
			entries = append(entries, output.FileEntry{
				Path:        f.Path,
				Description: cmdutil.FileDescription(f.Path),
				Size:        len(f.Content),
			})
		}
		fmt.Fprintln(out, output.RenderFileTable(entries))
	case output.FormatYAML, output.FormatJSON:
		files := make([]output.ManifestFile, 0, manifest.Len())
		for _, f := range manifest.Files() {
			files = append(files, output.ManifestFile{Path: f.Path, Content: f.Content})
		}
		if err := output.WriteManifest(files, output.ManifestOptions{Format: outputFormat, Writer: out}); err != nil {
			return cmdutil.Exit(err)
		}
	}

	return nil
}
