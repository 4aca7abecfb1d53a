package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magic-expo/cli/internal/cmdtypes"
	"github.com/magic-expo/cli/internal/output"
	"github.com/magic-expo/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available template tiers",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tbl := output.NewTable("NAME", "DESCRIPTION", "USE CASE")
			for _, t := range templates.List() {
				name := t.Name.String()
				if t.Default {
					name += " (default)"
				}
				tbl.Row(name, t.Description, t.UseCase)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
