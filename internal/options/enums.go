package options

import (
	"fmt"
	"strings"

	oerrors "github.com/magic-expo/cli/internal/errors"
)

// Tier is a named template preset bundling a default feature set.
type Tier string

const (
	// TierMinimum is the fastest setup: no navigation, theming or UI components.
	TierMinimum Tier = "minimum"

	// TierDefault is the modern app starter.
	TierDefault Tier = "default"

	// TierShowcase is the full feature demo app.
	TierShowcase Tier = "showcase"
)

// Tiers returns all tiers in display order.
func Tiers() []Tier {
	return []Tier{TierMinimum, TierDefault, TierShowcase}
}

// String returns the string representation of the tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is a known value.
func (t Tier) IsValid() bool {
	switch t {
	case TierMinimum, TierDefault, TierShowcase:
		return true
	default:
		return false
	}
}

// ParseTier parses a template tier name.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("invalid template %q", s),
			"template",
			"Use minimum, default, or showcase.",
		)
	}
	return t, nil
}

// Navigation is the routing shell style generated into the root layout.
type Navigation string

const (
	// NavigationTabs is bottom tab navigation.
	NavigationTabs Navigation = "tabs"

	// NavigationStack is header-based stack navigation.
	NavigationStack Navigation = "stack"

	// NavigationDrawer is side drawer navigation.
	NavigationDrawer Navigation = "drawer"

	// NavigationNone is a bare stack with the entry screen only.
	NavigationNone Navigation = "none"
)

// Navigations returns all navigation presets in display order.
func Navigations() []Navigation {
	return []Navigation{NavigationTabs, NavigationStack, NavigationDrawer, NavigationNone}
}

// String returns the string representation of the preset.
func (n Navigation) String() string {
	return string(n)
}

// IsValid checks if the preset is a known value.
func (n Navigation) IsValid() bool {
	switch n {
	case NavigationTabs, NavigationStack, NavigationDrawer, NavigationNone:
		return true
	default:
		return false
	}
}

// ParseNavigation parses a navigation preset name.
func ParseNavigation(s string) (Navigation, error) {
	n := Navigation(strings.TrimSpace(s))
	if !n.IsValid() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("invalid navigation %q", s),
			"navigation",
			"Use tabs, stack, drawer, or none.",
		)
	}
	return n, nil
}

// BuildProvider selects the build workflow wired into package scripts.
type BuildProvider string

const (
	// BuildLocal is the local-first workflow (expo run:android).
	BuildLocal BuildProvider = "local"

	// BuildEAS adds an optional EAS build script and eas.json.
	BuildEAS BuildProvider = "eas"
)

// BuildProviders returns all build providers in display order.
func BuildProviders() []BuildProvider {
	return []BuildProvider{BuildLocal, BuildEAS}
}

// String returns the string representation of the provider.
func (b BuildProvider) String() string {
	return string(b)
}

// IsValid checks if the provider is a known value.
func (b BuildProvider) IsValid() bool {
	switch b {
	case BuildLocal, BuildEAS:
		return true
	default:
		return false
	}
}

// ParseBuildProvider parses a build provider name.
func ParseBuildProvider(s string) (BuildProvider, error) {
	b := BuildProvider(strings.TrimSpace(s))
	if !b.IsValid() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("invalid build provider %q", s),
			"buildProvider",
			"Use local or eas.",
		)
	}
	return b, nil
}
