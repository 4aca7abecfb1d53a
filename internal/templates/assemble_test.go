package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
)

func allConfigs() []options.Config {
	var cfgs []options.Config
	for _, tier := range options.Tiers() {
		for _, nav := range options.Navigations() {
			for _, bp := range options.BuildProviders() {
				for _, theming := range []bool{true, false} {
					for _, ui := range []bool{true, false} {
						cfgs = append(cfgs, options.Resolve(options.RawOptions{
							ProjectName:   options.Ptr("demo-app"),
							Tier:          options.Ptr(tier),
							Navigation:    options.Ptr(nav),
							BuildProvider: options.Ptr(bp),
							Theming:       options.Ptr(theming),
							UIComponents:  options.Ptr(ui),
						}))
					}
				}
			}
		}
	}
	return cfgs
}

func TestAssemble_Deterministic(t *testing.T) {
	for _, cfg := range allConfigs() {
		first, err := Assemble(cfg)
		require.NoError(t, err)
		second, err := Assemble(cfg)
		require.NoError(t, err)
		assert.Equal(t, first.Files(), second.Files())
	}
}

func TestAssemble_UniquePathsAndRequiredFiles(t *testing.T) {
	for _, cfg := range allConfigs() {
		m, err := Assemble(cfg)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, p := range m.Paths() {
			assert.False(t, seen[p], "duplicate path %s", p)
			seen[p] = true
		}

		for _, p := range []string{PathPackageJSON, PathAppJSON, PathTSConfig, PathBabelConfig, PathRootLayout, PathHomeScreen} {
			assert.True(t, m.Has(p), "missing %s for %+v", p, cfg)
		}
		assert.Equal(t, cfg.Theming, m.Has(PathTheme))
		assert.Equal(t, cfg.UIComponents, m.Has(PathButton))
		assert.Equal(t, cfg.UIComponents, m.Has(PathCard))
		assert.Equal(t, cfg.BuildProvider == options.BuildEAS, m.Has(PathEASConfig))
	}
}

func TestAssemble_MinimumScenario(t *testing.T) {
	cfg := options.Resolve(options.RawOptions{
		ProjectName: options.Ptr("demo-app"),
		Tier:        options.Ptr(options.TierMinimum),
	})

	m, err := Assemble(cfg)
	require.NoError(t, err)

	assert.True(t, m.Has(PathPackageJSON))
	assert.True(t, m.Has(PathRootLayout))
	assert.True(t, m.Has(PathHomeScreen))
	assert.False(t, m.Has(PathTheme))
	assert.False(t, m.Has(PathButton))
	assert.False(t, m.Has(PathCard))
	assert.False(t, m.Has(PathSettings))
	assert.False(t, m.Has(PathDetails))
	assert.Equal(t, 8, m.Len())
}

func TestAssemble_ShowcaseScenario(t *testing.T) {
	cfg := options.Resolve(options.RawOptions{
		ProjectName: options.Ptr("demo-app"),
		Tier:        options.Ptr(options.TierShowcase),
		Navigation:  options.Ptr(options.NavigationNone),
	})

	m, err := Assemble(cfg)
	require.NoError(t, err)

	assert.True(t, m.Has(PathFeatures))
	assert.True(t, m.Has(PathComponents))
	assert.True(t, m.Has(PathSettings))

	layout, ok := m.Get(PathRootLayout)
	require.True(t, ok)
	assert.Contains(t, layout, `import { Tabs } from "expo-router";`)
	assert.Contains(t, layout, `<Tabs.Screen name="features" options={{ title: "Features" }} />`)
	assert.Contains(t, layout, `<Tabs.Screen name="components" options={{ title: "Components" }} />`)
}

func TestAssemble_RejectsUnresolvedConfig(t *testing.T) {
	cfg := options.Config{
		ProjectName:   "demo-app",
		Tier:          options.TierMinimum,
		Navigation:    options.NavigationTabs,
		BuildProvider: options.BuildLocal,
		Description:   "x",
	}

	_, err := Assemble(cfg)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestNavigationFiles(t *testing.T) {
	tests := []struct {
		nav   options.Navigation
		tier  options.Tier
		paths []string
	}{
		{options.NavigationTabs, options.TierDefault, []string{PathSettings}},
		{options.NavigationDrawer, options.TierDefault, []string{PathSettings}},
		{options.NavigationStack, options.TierDefault, []string{PathDetails}},
		{options.NavigationNone, options.TierDefault, nil},
		{options.NavigationStack, options.TierShowcase, []string{PathDetails, PathFeatures, PathComponents}},
		{options.NavigationTabs, options.TierMinimum, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.nav)+"/"+string(tt.tier), func(t *testing.T) {
			m, err := NavigationFiles(options.Resolve(options.RawOptions{Navigation: &tt.nav, Tier: &tt.tier}))
			require.NoError(t, err)
			if tt.paths == nil {
				assert.Zero(t, m.Len())
				return
			}
			assert.Equal(t, tt.paths, m.Paths())
		})
	}
}

func TestBaseFiles(t *testing.T) {
	m, err := BaseFiles(options.Resolve(options.RawOptions{ProjectName: options.Ptr("x")}))
	require.NoError(t, err)
	assert.Equal(t, []string{
		PathGitIgnore, PathPackageJSON, PathAppJSON, PathTSConfig, PathBabelConfig,
		PathReadme, PathRootLayout, PathHomeScreen, PathTheme, PathButton, PathCard,
	}, m.Paths())
}
