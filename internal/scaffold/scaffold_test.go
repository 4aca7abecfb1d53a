package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
	"github.com/magic-expo/cli/internal/templates"
	"github.com/magic-expo/cli/internal/testutil"
)

func manifestOf(files ...templates.File) *templates.Manifest {
	m := templates.NewManifest()
	for _, f := range files {
		m.Add(f.Path, f.Content)
	}
	return m
}

func TestScaffold_CreatesNestedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new", "project")
	m := manifestOf(
		templates.File{Path: "package.json", Content: "{}\n"},
		templates.File{Path: "src/components/ui/Button.tsx", Content: "button"},
	)

	c := NewCollector(nil)
	require.NoError(t, Scaffold(context.Background(), dir, m, false, WithReporter(c)))

	assert.Equal(t, "{}\n", testutil.ReadFile(t, filepath.Join(dir, "package.json")))
	assert.Equal(t, "button", testutil.ReadFile(t, filepath.Join(dir, "src", "components", "ui", "Button.tsx")))
	assert.Equal(t, []string{"package.json", "src/components/ui/Button.tsx"}, c.Paths(Created))
	assert.Zero(t, c.Count(Skipped))
}

func TestScaffold_SkipsExistingWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("user edits"), 0o644))

	m := manifestOf(
		templates.File{Path: "README.md", Content: "generated"},
		templates.File{Path: "app.json", Content: "{}"},
	)

	c := NewCollector(nil)
	require.NoError(t, Scaffold(context.Background(), dir, m, false, WithReporter(c)))

	assert.Equal(t, "user edits", testutil.ReadFile(t, existing))
	assert.Equal(t, []string{"README.md"}, c.Paths(Skipped))
	assert.Equal(t, []string{"app.json"}, c.Paths(Created))
}

func TestScaffold_OverwriteReplacesWholesale(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(existing, []byte("a much longer piece of user content"), 0o644))

	c := NewCollector(nil)
	m := manifestOf(templates.File{Path: "README.md", Content: "short"})
	require.NoError(t, Scaffold(context.Background(), dir, m, true, WithReporter(c)))

	assert.Equal(t, "short", testutil.ReadFile(t, existing))
	assert.Equal(t, []string{"README.md"}, c.Paths(Overwritten))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestScaffold_RejectsEscapingPaths(t *testing.T) {
	for _, p := range []string{"../outside.txt", "/etc/passwd", "a/../../b"} {
		t.Run(p, func(t *testing.T) {
			dir := t.TempDir()
			err := Scaffold(context.Background(), dir, manifestOf(templates.File{Path: p, Content: "x"}), false)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}
}

func TestScaffold_StopsWhenCancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	var written []string
	reporter := ReporterFunc(func(e Event) {
		written = append(written, e.Path)
		cancel()
	})

	m := manifestOf(
		templates.File{Path: "a.txt", Content: "a"},
		templates.File{Path: "b.txt", Content: "b"},
	)

	err := Scaffold(ctx, dir, m, false, WithReporter(reporter))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a.txt"}, written)
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
}

func TestScaffold_ReporterDoesNotAffectOutcome(t *testing.T) {
	cfg := options.Resolve(options.RawOptions{ProjectName: options.Ptr("demo-app")})
	m, err := templates.Assemble(cfg)
	require.NoError(t, err)

	quiet := t.TempDir()
	loud := t.TempDir()
	require.NoError(t, Scaffold(context.Background(), quiet, m, false))
	require.NoError(t, Scaffold(context.Background(), loud, m, false, WithReporter(NewCollector(nil))))

	for _, p := range m.Paths() {
		assert.Equal(t,
			testutil.ReadFile(t, filepath.Join(quiet, filepath.FromSlash(p))),
			testutil.ReadFile(t, filepath.Join(loud, filepath.FromSlash(p))))
	}
}

func TestScaffold_FileMode(t *testing.T) {
	dir := t.TempDir()
	m := manifestOf(templates.File{Path: "README.md", Content: "# app\n"})
	require.NoError(t, Scaffold(context.Background(), dir, m, false))

	info, err := os.Stat(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestScaffold_OverwriteKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o750))

	m := manifestOf(templates.File{Path: "run.sh", Content: "#!/bin/sh\n"})
	require.NoError(t, Scaffold(context.Background(), dir, m, true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	assert.Equal(t, "#!/bin/sh\n", testutil.ReadFile(t, path))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "overwritten", Overwritten.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
