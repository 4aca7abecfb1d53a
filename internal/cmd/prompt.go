package cmd

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/templates"
)

// answers holds the form values before they become an option layer.
type answers struct {
	projectName   string
	tier          string
	navigation    string
	theming       bool
	uiComponents  bool
	buildProvider string
	author        string
	description   string
	skipInstall   bool
	skipGit       bool
}

// promptOptions asks for every option the flags did not set. Config file
// defaults pre-fill the answers. The result contains only asked fields.
func promptOptions(ctx context.Context, set, defaults options.RawOptions) (options.RawOptions, error) {
	a := answers{
		projectName:   valueOr(defaults.ProjectName, options.DefaultProjectName),
		tier:          valueOr(defaults.Tier, options.TierDefault).String(),
		navigation:    valueOr(defaults.Navigation, options.NavigationTabs).String(),
		theming:       valueOr(defaults.Theming, true),
		uiComponents:  valueOr(defaults.UIComponents, true),
		buildProvider: valueOr(defaults.BuildProvider, options.BuildLocal).String(),
		author:        valueOr(defaults.Author, ""),
	}

	var fields []huh.Field

	if set.ProjectName == nil {
		fields = append(fields, huh.NewInput().
			Title("What is your project named?").
			Value(&a.projectName).
			Validate(templates.ValidateProjectName))
	}
	if set.Tier == nil {
		fields = append(fields, huh.NewSelect[string]().
			Title("Which template tier would you like?").
			Options(tierOptions()...).
			Value(&a.tier))
	}
	if set.Navigation == nil {
		fields = append(fields, huh.NewSelect[string]().
			Title("Which navigation preset would you like?").
			Options(
				huh.NewOption("Tabs - Bottom tab navigation", options.NavigationTabs.String()),
				huh.NewOption("Stack - Header-based navigation", options.NavigationStack.String()),
				huh.NewOption("Drawer - Side drawer navigation", options.NavigationDrawer.String()),
				huh.NewOption("None - No navigation preset", options.NavigationNone.String()),
			).
			Value(&a.navigation))
	}
	if set.Theming == nil {
		fields = append(fields, huh.NewConfirm().
			Title("Include adaptive light/dark theming?").
			Value(&a.theming))
	}
	if set.UIComponents == nil {
		fields = append(fields, huh.NewConfirm().
			Title("Include generated UI components?").
			Value(&a.uiComponents))
	}
	if set.BuildProvider == nil {
		fields = append(fields, huh.NewSelect[string]().
			Title("Choose build workflow").
			Options(
				huh.NewOption("Local-first (expo run:android)", options.BuildLocal.String()),
				huh.NewOption("Optional EAS support", options.BuildEAS.String()),
			).
			Value(&a.buildProvider))
	}
	if set.Author == nil {
		fields = append(fields, huh.NewInput().
			Title("Author name (optional)").
			Value(&a.author))
	}
	if set.Description == nil {
		fields = append(fields, huh.NewInput().
			Title("Project description (optional)").
			Value(&a.description))
	}
	if set.SkipInstall == nil {
		fields = append(fields, huh.NewConfirm().
			Title("Skip installing dependencies?").
			Value(&a.skipInstall))
	}
	if set.SkipGit == nil {
		fields = append(fields, huh.NewConfirm().
			Title("Skip initializing git?").
			Value(&a.skipGit))
	}

	if len(fields) == 0 {
		return options.RawOptions{}, nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx); err != nil {
		return options.RawOptions{}, err
	}

	return a.layer(set)
}

// layer converts the answers for the fields that were asked.
func (a answers) layer(set options.RawOptions) (options.RawOptions, error) {
	var raw options.RawOptions

	if set.ProjectName == nil {
		raw.ProjectName = options.Ptr(strings.TrimSpace(a.projectName))
	}
	if set.Tier == nil {
		t, err := options.ParseTier(a.tier)
		if err != nil {
			return raw, err
		}
		raw.Tier = &t
	}
	if set.Navigation == nil {
		n, err := options.ParseNavigation(a.navigation)
		if err != nil {
			return raw, err
		}
		raw.Navigation = &n
	}
	if set.Theming == nil {
		raw.Theming = options.Ptr(a.theming)
	}
	if set.UIComponents == nil {
		raw.UIComponents = options.Ptr(a.uiComponents)
	}
	if set.BuildProvider == nil {
		b, err := options.ParseBuildProvider(a.buildProvider)
		if err != nil {
			return raw, err
		}
		raw.BuildProvider = &b
	}
	if set.Author == nil && strings.TrimSpace(a.author) != "" {
		raw.Author = options.Ptr(strings.TrimSpace(a.author))
	}
	if set.Description == nil && strings.TrimSpace(a.description) != "" {
		raw.Description = options.Ptr(a.description)
	}
	if set.SkipInstall == nil {
		raw.SkipInstall = options.Ptr(a.skipInstall)
	}
	if set.SkipGit == nil {
		raw.SkipGit = options.Ptr(a.skipGit)
	}

	return raw, nil
}

func tierOptions() []huh.Option[string] {
	list := templates.List()
	opts := make([]huh.Option[string], 0, len(list))
	// Default tier first.
	for _, t := range list {
		if t.Default {
			opts = append(opts, huh.NewOption(t.Description, t.Name.String()))
		}
	}
	for _, t := range list {
		if !t.Default {
			opts = append(opts, huh.NewOption(t.Description, t.Name.String()))
		}
	}
	return opts
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
