package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/cmdutil"
	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/scaffold"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check that a project contains the required files",
		Long: `Check that a project directory contains every required file:
package.json, app.json, tsconfig.json, babel.config.js, src/app/_layout.tsx
and src/app/index.tsx. Only existence is checked.

Exits with code 6 when files are missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVerify(c, args)
		},
	}
}

func runVerify(c *cobra.Command, args []string) error {
	dir := cmdutil.ResolveDir(args)

	ok, missing := scaffold.Verify(dir)
	out := c.OutOrStdout()

	missingSet := make(map[string]bool, len(missing))
	for _, m := range missing {
		missingSet[m] = true
	}
	for _, p := range scaffold.RequiredFiles {
		status := "ok"
		if missingSet[p] {
			status = output.StatusMissing
		}
		fmt.Fprintln(out, output.FormatFileLine(p, status))
	}

	if !ok {
		return cmdutil.Exit(oerrors.NewIncompleteError(dir, missing))
	}

	fmt.Fprintf(out, "\n%s\n", output.FormatCheckmark("All required files present"))
	return nil
}
