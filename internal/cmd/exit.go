package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Process exit codes. Zero matches is not an error.
const (
	ExitOK               = 0
	ExitUsage            = 1 // argument parsing, flag values or config file
	ExitPattern          = 2 // missing or invalid pattern
	ExitWorkingDirectory = 3 // directory walk without a resolvable cwd
)

// ErrMissingPattern is returned when no pattern argument is given.
var ErrMissingPattern = errors.New("a regular expression pattern is required")

// ExitError carries a process exit code out of a cobra RunE.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by the root command to a process exit code.
// Errors raised by cobra itself (unknown flags, bad values, too many
// arguments) map to ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// Execute runs the command and returns the process exit code. Fatal errors
// are reported as a single "Error: ..." line on errOut.
func Execute(cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return ExitCode(err)
}
