// Package options resolves sparse user input into a complete, internally
// consistent project configuration.
package options

import "strings"

// DefaultProjectName is used when no project name was supplied.
const DefaultProjectName = "my-expo-app"

// DefaultDescription replaces an absent or blank description.
const DefaultDescription = "A modern Expo app created with create-magic-expo-app"

// RawOptions holds user-supplied values. A nil field means "not supplied".
type RawOptions struct {
	ProjectName   *string
	Tier          *Tier
	Navigation    *Navigation
	Theming       *bool
	UIComponents  *bool
	BuildProvider *BuildProvider
	Author        *string
	Description   *string
	SkipInstall   *bool
	SkipGit       *bool
}

// Config is a fully resolved project configuration. It is a plain value:
// copies never share state.
type Config struct {
	ProjectName   string        `json:"projectName"`
	Tier          Tier          `json:"template"`
	Navigation    Navigation    `json:"navigation"`
	Theming       bool          `json:"theming"`
	UIComponents  bool          `json:"uiComponents"`
	BuildProvider BuildProvider `json:"buildProvider"`
	Author        string        `json:"author,omitempty"`
	Description   string        `json:"description"`
	SkipInstall   bool          `json:"skipInstall"`
	SkipGit       bool          `json:"skipGit"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Merge combines option layers field by field. The first layer that sets a
// field wins, so callers pass layers from highest to lowest precedence.
func Merge(layers ...RawOptions) RawOptions {
	var out RawOptions
	for _, l := range layers {
		out.ProjectName = first(out.ProjectName, l.ProjectName)
		out.Tier = first(out.Tier, l.Tier)
		out.Navigation = first(out.Navigation, l.Navigation)
		out.Theming = first(out.Theming, l.Theming)
		out.UIComponents = first(out.UIComponents, l.UIComponents)
		out.BuildProvider = first(out.BuildProvider, l.BuildProvider)
		out.Author = first(out.Author, l.Author)
		out.Description = first(out.Description, l.Description)
		out.SkipInstall = first(out.SkipInstall, l.SkipInstall)
		out.SkipGit = first(out.SkipGit, l.SkipGit)
	}
	return out
}

func first[T any](cur, next *T) *T {
	if cur != nil {
		return cur
	}
	return next
}

// Resolve fills defaults and applies the tier overrides. It never fails;
// the project name is expected to be validated by the caller. Out-of-range
// enum values pass through unchanged and are rejected by Validate.
func Resolve(raw RawOptions) Config {
	cfg := Config{
		ProjectName:   valueOr(raw.ProjectName, DefaultProjectName),
		Tier:          valueOr(raw.Tier, TierDefault),
		Navigation:    valueOr(raw.Navigation, NavigationTabs),
		Theming:       valueOr(raw.Theming, true),
		UIComponents:  valueOr(raw.UIComponents, true),
		BuildProvider: valueOr(raw.BuildProvider, BuildLocal),
		Author:        valueOr(raw.Author, ""),
		Description:   DefaultDescription,
		SkipInstall:   valueOr(raw.SkipInstall, false),
		SkipGit:       valueOr(raw.SkipGit, false),
	}

	if raw.Description != nil {
		if d := strings.TrimSpace(*raw.Description); d != "" {
			cfg.Description = d
		}
	}

	applyTier(&cfg)
	return cfg
}

// ResolveUnattended resolves options for zero-prompt runs. The tier is always
// minimum, even when a template was requested explicitly.
func ResolveUnattended(raw RawOptions) Config {
	raw.Tier = Ptr(TierMinimum)
	return Resolve(raw)
}

// applyTier enforces the tier coupling. Values forced here win over anything
// the user supplied.
func applyTier(cfg *Config) {
	switch cfg.Tier {
	case TierMinimum:
		cfg.Navigation = NavigationNone
		cfg.Theming = false
		cfg.UIComponents = false
		cfg.BuildProvider = BuildLocal
	case TierShowcase:
		cfg.Theming = true
		cfg.UIComponents = true
		if cfg.Navigation == NavigationNone {
			cfg.Navigation = NavigationTabs
		}
	}
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
