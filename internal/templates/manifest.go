package templates

// Fixed relative paths of generated files.
const (
	PathGitIgnore   = ".gitignore"
	PathPackageJSON = "package.json"
	PathAppJSON     = "app.json"
	PathTSConfig    = "tsconfig.json"
	PathBabelConfig = "babel.config.js"
	PathReadme      = "README.md"
	PathRootLayout  = "src/app/_layout.tsx"
	PathHomeScreen  = "src/app/index.tsx"
	PathTheme       = "src/lib/theme.ts"
	PathButton      = "src/components/ui/Button.tsx"
	PathCard        = "src/components/ui/Card.tsx"
	PathEASConfig   = "eas.json"
	PathSettings    = "src/app/settings.tsx"
	PathDetails     = "src/app/details.tsx"
	PathFeatures    = "src/app/features.tsx"
	PathComponents  = "src/app/components.tsx"
)

// Manifest is an ordered set of generated files keyed by path. Adding a path
// that is already present replaces its content and keeps its position.
type Manifest struct {
	order []string
	files map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{files: make(map[string]string)}
}

// Add sets the content for path.
func (m *Manifest) Add(path, content string) {
	if _, ok := m.files[path]; !ok {
		m.order = append(m.order, path)
	}
	m.files[path] = content
}

// Merge adds every file of other; entries in other win on collision.
func (m *Manifest) Merge(other *Manifest) {
	if other == nil {
		return
	}
	for _, p := range other.order {
		m.Add(p, other.files[p])
	}
}

// Get returns the content for path.
func (m *Manifest) Get(path string) (string, bool) {
	c, ok := m.files[path]
	return c, ok
}

// Has reports whether path is in the manifest.
func (m *Manifest) Has(path string) bool {
	_, ok := m.files[path]
	return ok
}

// Paths returns the paths in insertion order.
func (m *Manifest) Paths() []string {
	return append([]string(nil), m.order...)
}

// Files returns the files in insertion order.
func (m *Manifest) Files() []File {
	files := make([]File, 0, len(m.order))
	for _, p := range m.order {
		files = append(files, File{Path: p, Content: m.files[p]})
	}
	return files
}

// Len returns the number of files.
func (m *Manifest) Len() int {
	return len(m.order)
}
