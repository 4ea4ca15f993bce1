package applescript

import (
	"fmt"
	"time"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// ExecutionError reports that osascript ran and exited non-zero. It carries
// the exit code and stderr diagnostic text and unwraps to
// errors.ErrScriptExecution for errors.Is checks.
type ExecutionError struct {
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%v: exit code %d", bridgeerrors.ErrScriptExecution, e.ExitCode)
	}
	return fmt.Sprintf("%v: exit code %d: %s", bridgeerrors.ErrScriptExecution, e.ExitCode, e.Stderr)
}

// Unwrap returns the execution sentinel and the base script sentinel, so
// errors.Is matches both the specific and the general kind.
func (e *ExecutionError) Unwrap() []error {
	return []error{bridgeerrors.ErrScriptExecution, bridgeerrors.ErrScript}
}

// TimeoutError reports that osascript exceeded the allotted duration. The
// child process has been killed by the time this error is returned. It
// unwraps to errors.ErrScriptTimeout.
type TimeoutError struct {
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%v after %s", bridgeerrors.ErrScriptTimeout, e.Timeout)
}

// Unwrap returns the timeout sentinel and the base script sentinel.
func (e *TimeoutError) Unwrap() []error {
	return []error{bridgeerrors.ErrScriptTimeout, bridgeerrors.ErrScript}
}
