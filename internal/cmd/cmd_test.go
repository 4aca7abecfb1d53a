package cmd

import (
	"bytes"
	"testing"

	oerrors "github.com/magic-expo/cli/internal/errors"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	return oerrors.ExitCodeFromError(err)
}
