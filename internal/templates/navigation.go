package templates

import (
	"fmt"
	"strings"

	"github.com/magic-expo/cli/internal/options"
)

// route is one child route declared by the root layout. An empty title
// declares the route without screen options.
type route struct {
	name  string
	title string
}

// shell is the root layout variant of a navigation preset.
type shell struct {
	component     string
	importPath    string
	screenOptions string
	routes        []route

	// screenPath and screen name the secondary screen the preset links to.
	screenPath string
	screen     Generator

	// showcase reports whether showcase routes are injected.
	showcase bool
}

var centeredHeader = `headerTitleAlign: "center"`

func shellFor(nav options.Navigation) shell {
	switch nav {
	case options.NavigationTabs:
		return shell{
			component:     "Tabs",
			importPath:    "expo-router",
			screenOptions: centeredHeader,
			routes:        []route{{"index", "Home"}, {"settings", "Settings"}},
			screenPath:    PathSettings,
			screen:        SettingsScreen,
			showcase:      true,
		}
	case options.NavigationDrawer:
		return shell{
			component:     "Drawer",
			importPath:    "expo-router/drawer",
			screenOptions: centeredHeader,
			routes:        []route{{"index", "Home"}, {"settings", "Settings"}},
			screenPath:    PathSettings,
			screen:        SettingsScreen,
			showcase:      true,
		}
	case options.NavigationStack:
		return shell{
			component:     "Stack",
			importPath:    "expo-router",
			screenOptions: centeredHeader,
			routes:        []route{{"index", "Home"}, {"details", "Details"}},
			screenPath:    PathDetails,
			screen:        DetailsScreen,
			showcase:      true,
		}
	case options.NavigationNone:
		return shell{
			component:     "Stack",
			importPath:    "expo-router",
			screenOptions: "headerShown: false",
			routes:        []route{{name: "index"}},
		}
	default:
		panic(fmt.Sprintf("templates: unhandled navigation %q", nav))
	}
}

// routesFor returns the shell routes plus the showcase extras.
func (s shell) routesFor(cfg options.Config) []route {
	routes := append([]route(nil), s.routes...)
	if !s.showcase || cfg.Tier != options.TierShowcase {
		return routes
	}

	routes = append(routes, route{"features", "Features"})
	if cfg.UIComponents {
		routes = append(routes, route{"components", "Components"})
	}
	return routes
}

func (s shell) render(routes []route) string {
	var b strings.Builder

	fmt.Fprintf(&b, "import { %s } from %q;\n\n", s.component, s.importPath)
	b.WriteString("export default function RootLayout() {\n")
	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    <%s screenOptions={{ %s }}>\n", s.component, s.screenOptions)
	for _, r := range routes {
		if r.title == "" {
			fmt.Fprintf(&b, "      <%s.Screen name=%q />\n", s.component, r.name)
			continue
		}
		fmt.Fprintf(&b, "      <%s.Screen name=%q options={{ title: %q }} />\n", s.component, r.name, r.title)
	}
	fmt.Fprintf(&b, "    </%s>\n", s.component)
	b.WriteString("  );\n")
	b.WriteString("}\n")

	return b.String()
}

// RootLayout generates src/app/_layout.tsx.
func RootLayout(cfg options.Config) (string, error) {
	s := shellFor(cfg.Navigation)
	return s.render(s.routesFor(cfg)), nil
}
