package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magic-expo/cli/internal/testutil"
)

func TestDiff_NoChangesAfterCreate(t *testing.T) {
	testutil.Isolate(t)
	parent := t.TempDir()

	_, err := execute(t, "create", "same-app", "--template", "default",
		"--skip-install", "--skip-git", "--dir", parent)
	require.NoError(t, err)

	out, err := execute(t, "diff", filepath.Join(parent, "same-app"), "--template", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "No changes detected.")
}

func TestDiff_ReportsChanges(t *testing.T) {
	testutil.Isolate(t)
	parent := t.TempDir()

	_, err := execute(t, "create", "drift-app", "--template", "default",
		"--skip-install", "--skip-git", "--dir", parent)
	require.NoError(t, err)

	target := filepath.Join(parent, "drift-app")
	require.NoError(t, os.Remove(filepath.Join(target, "README.md")))
	require.NoError(t, os.WriteFile(filepath.Join(target, "babel.config.js"), []byte("module.exports = {};\n"), 0o644))

	out, err := execute(t, "diff", target, "--template", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "babel.config.js")
	assert.Contains(t, out, "1 added")
}
