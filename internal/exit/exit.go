// Package exit carries process exit outcomes from the packages that decide
// them to main, which is the only caller of os.Exit.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes: 0 success, 1 runtime failure, 2 usage failure.
const (
	CodeSuccess = 0
	CodeError   = 1
	CodeUsage   = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Errorf creates a runtime-failure exit result with a formatted message on
// stderr.
func Errorf(format string, a ...any) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  fmt.Sprintf(format, a...),
	}
}

// UsageErrorf creates a usage-failure exit result with a formatted message
// on stderr.
func UsageErrorf(format string, a ...any) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeUsage,
		Message:  fmt.Sprintf(format, a...),
	}
}
