package cmdutil

import (
	"fmt"
	"io"
	"path"

	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/project"
	"github.com/magic-expo/cli/internal/scaffold"
	"github.com/magic-expo/cli/internal/templates"
)

var fileDescriptions = map[string]string{
	templates.PathGitIgnore:   "Git ignore rules",
	templates.PathPackageJSON: "Package manifest",
	templates.PathAppJSON:     "Expo app config",
	templates.PathTSConfig:    "TypeScript config",
	templates.PathBabelConfig: "Babel config",
	templates.PathReadme:      "Project readme",
	templates.PathRootLayout:  "Root navigation layout",
	templates.PathHomeScreen:  "Home screen",
	templates.PathTheme:       "Theme helper",
	templates.PathButton:      "Button component",
	templates.PathCard:        "Card component",
	templates.PathEASConfig:   "EAS build profiles",
	templates.PathSettings:    "Settings screen",
	templates.PathDetails:     "Details screen",
	templates.PathFeatures:    "Features screen",
	templates.PathComponents:  "Components screen",
}

// FileDescription returns a short description for a generated path.
func FileDescription(p string) string {
	if d, ok := fileDescriptions[p]; ok {
		return d
	}
	if path.Dir(p) == "src/app" {
		return "Screen"
	}
	return ""
}

// FileTree renders the manifest paths as a tree with descriptions, in
// generation order.
func FileTree(rootName string, m *templates.Manifest) string {
	tree := output.NewFileTree(rootName)
	for _, p := range m.Paths() {
		tree.Add(p, FileDescription(p))
	}
	return tree.String()
}

// WriteScaffoldStatus writes one status line per manifest path.
func WriteScaffoldStatus(w io.Writer, result *project.Result) {
	status := make(map[string]string, len(result.Events.Events))
	for _, e := range result.Events.Events {
		status[e.Path] = statusFor(e.Kind)
	}
	for _, p := range result.Manifest.Paths() {
		fmt.Fprintln(w, output.FormatFileLine(p, status[p]))
	}
}

// WriteNextSteps prints the follow-up commands.
func WriteNextSteps(w io.Writer, steps []string) {
	fmt.Fprintln(w, output.StyleSummary.Render("Next steps:"))
	for _, s := range steps {
		fmt.Fprintln(w, "  "+output.StyleAction.Render(s))
	}
}

func statusFor(k scaffold.Kind) string {
	switch k {
	case scaffold.Created:
		return output.StatusCreated
	case scaffold.Overwritten:
		return output.StatusOverwritten
	case scaffold.Skipped:
		return output.StatusSkipped
	default:
		return ""
	}
}
