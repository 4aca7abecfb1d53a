// Package cmdutil provides shared command utilities: option flag groups,
// directory arguments, result rendering and exit-code wrapping.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/templates"
)

// OptionFlags holds the project option flags shared by create and apply.
type OptionFlags struct {
	Template      string
	Navigation    string
	BuildProvider string
	Author        string
	Description   string

	Theming        bool
	NoTheming      bool
	UIComponents   bool
	NoUIComponents bool
	SkipInstall    bool
	SkipGit        bool
}

// AddTo registers the option flags on the given cobra command.
func (f *OptionFlags) AddTo(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVarP(&f.Template, "template", "t", "",
		fmt.Sprintf("Template tier (%s)", strings.Join(templates.Names(), ", ")))
	flags.StringVar(&f.Navigation, "navigation", "",
		fmt.Sprintf("Navigation preset (%s)", joinEnum(options.Navigations())))
	flags.StringVar(&f.BuildProvider, "build-provider", "",
		fmt.Sprintf("Build workflow (%s)", joinEnum(options.BuildProviders())))
	flags.StringVar(&f.Author, "author", "", "Author name")
	flags.StringVar(&f.Description, "description", "", "Project description")

	flags.BoolVar(&f.Theming, "theming", false, "Enable adaptive light/dark theming")
	flags.BoolVar(&f.NoTheming, "no-theming", false, "Disable theming")
	flags.BoolVar(&f.UIComponents, "ui-components", false, "Generate UI components")
	flags.BoolVar(&f.NoUIComponents, "no-ui-components", false, "Do not generate UI components")
	flags.BoolVar(&f.SkipInstall, "skip-install", false, "Skip dependency installation")
	flags.BoolVar(&f.SkipGit, "skip-git", false, "Skip git initialization")

	cmd.MarkFlagsMutuallyExclusive("theming", "no-theming")
	cmd.MarkFlagsMutuallyExclusive("ui-components", "no-ui-components")
}

// RawOptions converts the flags the user actually set into an option layer.
func (f *OptionFlags) RawOptions(flags *pflag.FlagSet) (options.RawOptions, error) {
	var raw options.RawOptions

	if flags.Changed("template") {
		t, err := options.ParseTier(f.Template)
		if err != nil {
			return raw, err
		}
		raw.Tier = &t
	}
	if flags.Changed("navigation") {
		n, err := options.ParseNavigation(f.Navigation)
		if err != nil {
			return raw, err
		}
		raw.Navigation = &n
	}
	if flags.Changed("build-provider") {
		b, err := options.ParseBuildProvider(f.BuildProvider)
		if err != nil {
			return raw, err
		}
		raw.BuildProvider = &b
	}
	if flags.Changed("author") {
		raw.Author = options.Ptr(f.Author)
	}
	if flags.Changed("description") {
		raw.Description = options.Ptr(f.Description)
	}

	raw.Theming = toggle(flags, "theming", f.Theming, "no-theming", f.NoTheming)
	raw.UIComponents = toggle(flags, "ui-components", f.UIComponents, "no-ui-components", f.NoUIComponents)

	if flags.Changed("skip-install") {
		raw.SkipInstall = options.Ptr(f.SkipInstall)
	}
	if flags.Changed("skip-git") {
		raw.SkipGit = options.Ptr(f.SkipGit)
	}

	return raw, nil
}

// toggle reads a --x / --no-x pair. Nil means neither was given.
func toggle(flags *pflag.FlagSet, on string, onValue bool, off string, offValue bool) *bool {
	switch {
	case flags.Changed(on):
		return options.Ptr(onValue)
	case flags.Changed(off):
		return options.Ptr(!offValue)
	default:
		return nil
	}
}

// ResolveDir returns the directory from command args, defaulting to the
// current directory.
func ResolveDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func joinEnum[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
