package templates

import (
	"fmt"

	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/output"
)

type entry struct {
	path string
	gen  Generator
}

func build(cfg options.Config, entries []entry) (*Manifest, error) {
	m := NewManifest()
	for _, e := range entries {
		content, err := e.gen(cfg)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", e.path, err)
		}
		m.Add(e.path, content)
	}
	return m, nil
}

// BaseFiles generates the files every project has, plus theme, UI component
// and EAS files when enabled.
func BaseFiles(cfg options.Config) (*Manifest, error) {
	entries := []entry{
		{PathGitIgnore, GitIgnore},
		{PathPackageJSON, PackageJSON},
		{PathAppJSON, AppJSON},
		{PathTSConfig, TSConfig},
		{PathBabelConfig, BabelConfig},
		{PathReadme, Readme},
		{PathRootLayout, RootLayout},
		{PathHomeScreen, HomeScreen},
	}

	if cfg.Theming {
		entries = append(entries, entry{PathTheme, ThemeHelper})
	}
	if cfg.UIComponents {
		entries = append(entries, entry{PathButton, ButtonComponent}, entry{PathCard, CardComponent})
	}
	if cfg.BuildProvider == options.BuildEAS {
		entries = append(entries, entry{PathEASConfig, EASConfig})
	}

	return build(cfg, entries)
}

// NavigationFiles generates the screens linked from the navigation shell and
// the showcase screens.
func NavigationFiles(cfg options.Config) (*Manifest, error) {
	var entries []entry

	if s := shellFor(cfg.Navigation); s.screen != nil {
		entries = append(entries, entry{s.screenPath, s.screen})
	}

	if cfg.Tier == options.TierShowcase {
		entries = append(entries, entry{PathFeatures, FeaturesScreen})
		if cfg.UIComponents {
			entries = append(entries, entry{PathComponents, ComponentsScreen})
		}
	}

	return build(cfg, entries)
}

// Assemble produces the complete manifest for a resolved configuration.
// Navigation files win over base files on path collision.
func Assemble(cfg options.Config) (*Manifest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := BaseFiles(cfg)
	if err != nil {
		return nil, err
	}

	nav, err := NavigationFiles(cfg)
	if err != nil {
		return nil, err
	}
	m.Merge(nav)

	output.Debug("assembled manifest",
		"template", cfg.Tier,
		"navigation", cfg.Navigation,
		"files", m.Len())

	return m, nil
}
