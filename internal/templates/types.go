// Package templates generates the files of a new Expo project from a resolved
// configuration.
package templates

import "github.com/magic-expo/cli/internal/options"

// Template describes a template tier for listings and prompts.
type Template struct {
	// Name is the tier identifier (minimum, default, showcase).
	Name options.Tier

	// Description is the one-line summary shown in prompts.
	Description string

	// Default indicates if this is the tier used when --template is omitted.
	Default bool

	// UseCase describes when to pick this tier.
	UseCase string
}

// File is a single generated file.
type File struct {
	// Path is relative to the project root, always slash-separated.
	Path string

	// Content is the full UTF-8 file body.
	Content string
}

// Generator produces the content of one logical file.
type Generator func(cfg options.Config) (string, error)

// Palette holds the colour expressions substituted into screen sources.
type Palette struct {
	Background string
	Text       string
	Subtle     string
}

// TemplateData holds the data passed to embedded template rendering.
type TemplateData struct {
	ProjectName  string
	Description  string
	Author       string
	Tier         string
	Theming      bool
	UIComponents bool
	EAS          bool
	Colors       Palette

	// Features is the JSON array literal listed on the features screen.
	Features string
}

func newTemplateData(cfg options.Config) TemplateData {
	colors := Palette{Background: `"#F8FAFC"`, Text: `"#0F172A"`, Subtle: `"#475569"`}
	if cfg.Theming {
		colors = Palette{Background: "theme.background", Text: "theme.text", Subtle: "theme.subtle"}
	}

	return TemplateData{
		ProjectName:  cfg.ProjectName,
		Description:  cfg.Description,
		Author:       cfg.Author,
		Tier:         cfg.Tier.String(),
		Theming:      cfg.Theming,
		UIComponents: cfg.UIComponents,
		EAS:          cfg.BuildProvider == options.BuildEAS,
		Colors:       colors,
	}
}
