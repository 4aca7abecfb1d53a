package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/project"
	"github.com/magic-expo/cli/internal/scaffold"
	"github.com/magic-expo/cli/internal/templates"
)

func TestFileDescription(t *testing.T) {
	assert.Equal(t, "Package manifest", FileDescription(templates.PathPackageJSON))
	assert.Equal(t, "Root navigation layout", FileDescription(templates.PathRootLayout))
	assert.Equal(t, "Screen", FileDescription("src/app/profile.tsx"))
	assert.Equal(t, "", FileDescription("unknown.txt"))
}

func TestFileTree(t *testing.T) {
	m, err := templates.Assemble(options.Resolve(options.RawOptions{Tier: options.Ptr(options.TierMinimum)}))
	require.NoError(t, err)

	tree := FileTree("my-app", m)
	assert.Contains(t, tree, "my-app")
	assert.Contains(t, tree, "package.json")
	assert.Contains(t, tree, "Package manifest")
	assert.Less(t, strings.Index(tree, ".gitignore"), strings.Index(tree, "src/"),
		"entries follow generation order")
}

func TestWriteScaffoldStatus(t *testing.T) {
	m := templates.NewManifest()
	m.Add("a.txt", "a")
	m.Add("b.txt", "b")

	events := scaffold.NewCollector(nil)
	events.Report(scaffold.Event{Kind: scaffold.Created, Path: "a.txt"})
	events.Report(scaffold.Event{Kind: scaffold.Skipped, Path: "b.txt"})

	var buf bytes.Buffer
	WriteScaffoldStatus(&buf, &project.Result{Manifest: m, Events: events})

	out := buf.String()
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "skipped")
}

func TestWriteNextSteps(t *testing.T) {
	var buf bytes.Buffer
	WriteNextSteps(&buf, []string{"cd app", "bun run start"})

	out := buf.String()
	assert.Contains(t, out, "Next steps:")
	assert.Contains(t, out, "  cd app")
	assert.Contains(t, out, "bun run start")
}
