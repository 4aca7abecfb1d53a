package templates

import (
	"fmt"
	"regexp"

	oerrors "github.com/magic-expo/cli/internal/errors"
)

var projectNameRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateProjectName checks that a project name is non-empty lowercase
// alphanumeric plus hyphens. The name doubles as package name and app slug.
func ValidateProjectName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("project name cannot be empty", "projectName", "")
	}

	if !projectNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name),
			"projectName",
			"Use lowercase letters, numbers, and hyphens only.",
		)
	}

	return nil
}
