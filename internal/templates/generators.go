package templates

import (
	"strings"

	"github.com/magic-expo/cli/internal/options"
)

// Pinned versions of the Expo SDK packages written into package.json.
const (
	versionExpo            = "55.0.0-preview.11"
	versionExpoRouter      = "55.0.0-preview.8"
	versionExpoStatusBar   = "~55.0.0"
	versionExpoSystemUI    = "~55.0.0"
	versionReact           = "19.2.0"
	versionReactDOM        = "19.2.0"
	versionReactNative     = "0.83.2"
	versionReactNativeWeb  = "^0.21.0"
	versionGestureHandler  = "~2.30.0"
	versionReanimated      = "~4.2.1"
	versionSafeAreaContext = "~5.6.2"
	versionScreens         = "~4.23.0"
	versionTypesReact      = "~19.1.0"
	versionTypeScript      = "~5.8.0"
)

// PackageJSON generates package.json.
func PackageJSON(cfg options.Config) (string, error) {
	scripts := object{
		{"start", "expo start"},
		{"android", "expo run:android"},
		{"ios", "expo run:ios"},
		{"web", "expo start --web"},
		{"build", "expo export"},
		{"build:local", "expo run:android"},
	}
	if cfg.BuildProvider == options.BuildEAS {
		scripts = scripts.set("build:eas", "eas build -p android --profile preview")
	}

	deps := object{
		{"expo", versionExpo},
		{"expo-router", versionExpoRouter},
		{"expo-status-bar", versionExpoStatusBar},
		{"react", versionReact},
		{"react-dom", versionReactDOM},
		{"react-native", versionReactNative},
		{"react-native-gesture-handler", versionGestureHandler},
		{"react-native-reanimated", versionReanimated},
		{"react-native-safe-area-context", versionSafeAreaContext},
		{"react-native-screens", versionScreens},
		{"react-native-web", versionReactNativeWeb},
	}
	if cfg.Theming {
		deps = deps.set("expo-system-ui", versionExpoSystemUI)
	}

	return encodeJSON(object{
		{"name", cfg.ProjectName},
		{"version", "1.0.0"},
		{"private", true},
		{"main", "expo-router/entry"},
		{"scripts", scripts},
		{"dependencies", deps},
		{"devDependencies", object{
			{"@types/react", versionTypesReact},
			{"typescript", versionTypeScript},
		}},
	})
}

// AppJSON generates app.json.
func AppJSON(cfg options.Config) (string, error) {
	style := "light"
	if cfg.Theming {
		style = "automatic"
	}

	return encodeJSON(object{
		{"expo", object{
			{"name", cfg.ProjectName},
			{"slug", cfg.ProjectName},
			{"version", "1.0.0"},
			{"orientation", "portrait"},
			{"userInterfaceStyle", style},
			{"plugins", []string{"expo-router"}},
		}},
	})
}

// TSConfig generates tsconfig.json.
func TSConfig(options.Config) (string, error) {
	return encodeJSON(object{
		{"extends", "expo/tsconfig.base"},
		{"compilerOptions", object{{"strict", true}}},
	})
}

// EASConfig generates eas.json.
func EASConfig(options.Config) (string, error) {
	return encodeJSON(object{
		{"build", object{
			{"preview", object{
				{"developmentClient", true},
				{"distribution", "internal"},
			}},
		}},
	})
}

// FeaturesScreen generates src/app/features.tsx.
func FeaturesScreen(cfg options.Config) (string, error) {
	items := []string{"Expo Router navigation", "Local Android build workflow"}
	if cfg.Theming {
		items = append(items, "Adaptive light/dark theme")
	} else {
		items = append(items, "Static light theme")
	}
	if cfg.UIComponents {
		items = append(items, "Reusable UI components")
	} else {
		items = append(items, "Core React Native UI")
	}

	list, err := encodeJSON(items)
	if err != nil {
		return "", err
	}

	data := newTemplateData(cfg)
	data.Features = strings.TrimSuffix(list, "\n")
	return NewRenderer(data).RenderFile("features.tsx.tmpl")
}

// Generators backed directly by embedded sources.
var (
	GitIgnore        = renderSource("gitignore.tmpl")
	BabelConfig      = renderSource("babel.config.js.tmpl")
	HomeScreen       = renderSource("home.tsx.tmpl")
	SettingsScreen   = renderSource("settings.tsx.tmpl")
	DetailsScreen    = renderSource("details.tsx.tmpl")
	ComponentsScreen = renderSource("components.tsx.tmpl")
	ThemeHelper      = renderSource("theme.ts.tmpl")
	ButtonComponent  = renderSource("button.tsx.tmpl")
	CardComponent    = renderSource("card.tsx.tmpl")
	Readme           = renderSource("readme.md.tmpl")
)
