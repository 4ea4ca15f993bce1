// Package errors provides centralized error handling for things-bridge.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error kinds can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error kinds with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrScript is the base kind for AppleScript failures. It covers spawn
	// failures (osascript missing or unusable) and any execution failure that
	// cannot be classified more precisely.
	ErrScript = errors.New("applescript failed")

	// ErrScriptExecution indicates that osascript ran and exited non-zero.
	// The wrapping error carries the exit code and stderr diagnostic text.
	ErrScriptExecution = errors.New("applescript execution failed")

	// ErrScriptTimeout indicates that osascript exceeded the allotted duration.
	// The child process is killed before this error is returned.
	ErrScriptTimeout = errors.New("applescript timed out")

	// ErrParse indicates that execution succeeded but the output did not match
	// the expected record schema. This signals drift between the application's
	// output format and the bridge's parsing assumptions and is never
	// silently recovered.
	ErrParse = errors.New("output parse failed")

	// ErrConversion indicates a single value failed scalar encode or decode.
	// The wrapping error names the offending fragment and the expected kind.
	ErrConversion = errors.New("value conversion failed")

	// ErrInvalidCommand indicates a command descriptor failed validation
	// before execution. The descriptor never reaches the external process.
	ErrInvalidCommand = errors.New("invalid command descriptor")

	// ErrNotFound indicates a by-identifier lookup returned no record.
	// Distinct from a parse or execution failure.
	ErrNotFound = errors.New("record not found")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")
)
