package cmdutil

import (
	"errors"

	oerrors "github.com/magic-expo/cli/internal/errors"
)

// Exit wraps err with the exit code derived from its sentinel. Errors that
// already carry an exit code are returned unchanged.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

// ExitPrinted is Exit for errors the command already reported.
func ExitPrinted(err error) error {
	if err == nil {
		return nil
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}
