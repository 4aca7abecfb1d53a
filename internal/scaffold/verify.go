package scaffold

import (
	"os"
	"path/filepath"

	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/templates"
)

// RequiredFiles are the paths a scaffolded project must contain.
var RequiredFiles = []string{
	templates.PathPackageJSON,
	templates.PathAppJSON,
	templates.PathTSConfig,
	templates.PathBabelConfig,
	templates.PathRootLayout,
	templates.PathHomeScreen,
}

// Verify checks that every required file exists under targetDir. It returns
// false with all missing paths when any is absent. Content is not inspected.
func Verify(targetDir string) (bool, []string) {
	var missing []string
	for _, rel := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(targetDir, filepath.FromSlash(rel))); err != nil {
			output.Warn("missing required file", "path", rel)
			missing = append(missing, rel)
		}
	}
	return len(missing) == 0, missing
}
