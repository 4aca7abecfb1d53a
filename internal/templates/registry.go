package templates

import (
	"fmt"

	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
)

// templates is the internal registry of available tiers.
var templates = map[options.Tier]Template{
	options.TierMinimum: {
		Name:        options.TierMinimum,
		Description: "Minimum - fastest setup",
		UseCase:     "Single screen, no navigation, theming or UI components",
	},
	options.TierDefault: {
		Name:        options.TierDefault,
		Description: "Default - modern app starter",
		UseCase:     "Navigation shell with optional theming and UI components",
		Default:     true,
	},
	options.TierShowcase: {
		Name:        options.TierShowcase,
		Description: "Showcase - full feature demo app",
		UseCase:     "Everything enabled plus features and components screens",
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[options.Tier(name)]
	if !ok {
		return Template{}, oerrors.NewValidationError(
			fmt.Sprintf("unknown template %q", name),
			"template",
			"Valid templates: minimum, default, showcase.",
		)
	}
	return t, nil
}

// List returns all templates in display order.
func List() []Template {
	list := make([]Template, 0, len(templates))
	for _, tier := range options.Tiers() {
		list = append(list, templates[tier])
	}
	return list
}

// Default returns the template used when none is requested.
func Default() Template {
	return templates[options.TierDefault]
}

// Names returns all template names.
func Names() []string {
	names := make([]string, 0, len(templates))
	for _, tier := range options.Tiers() {
		names = append(names, tier.String())
	}
	return names
}
