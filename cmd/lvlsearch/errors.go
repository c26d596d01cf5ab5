package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/backtrack"
	"github.com/katalvlaran/lvlsearch/bellmanford"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/dfs"
	"github.com/katalvlaran/lvlsearch/floyd"
)

// Exit codes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitInput indicates bad flags, an unreadable problem file or invalid input data
	ExitInput = 1
	// ExitNoSolution indicates the input is valid but the problem has no answer
	ExitNoSolution = 2
)

// CLIError is an error with an explicit exit code.
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

func newCLIError(code int, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

func wrapError(code int, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Cause: err}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}

	switch {
	case errors.Is(err, backtrack.ErrNoSolution),
		errors.Is(err, backtrack.ErrNodeLimit),
		errors.Is(err, core.ErrDisconnected),
		errors.Is(err, bellmanford.ErrNegativeCycle),
		errors.Is(err, floyd.ErrNegativeCycle),
		errors.Is(err, dfs.ErrCycleDetected):
		return ExitNoSolution
	default:
		return ExitInput
	}
}

// handleError prints err to the command's error output and returns its exit code.
func handleError(cmd *cobra.Command, err error) int {
	code := exitCode(err)
	if code != ExitSuccess {
		cmd.PrintErrln("Error:", err)
	}

	return code
}
