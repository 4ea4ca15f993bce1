package applescript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thingsbridge/thingsbridge/internal/constants"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// Executor abstracts command execution for testing. The production
// implementation runs the prepared osascript process; tests provide a mock
// implementation that returns canned stdout/stderr.
//
// The ctx parameter is included for mock implementations that need
// cancellation awareness; the production command already embeds its context
// via exec.CommandContext.
type Executor interface {
	// Execute runs the command and returns stdout, stderr, and any error.
	Execute(ctx context.Context, cmd *exec.Cmd) (stdout, stderr []byte, err error)
}

// DefaultExecutor is the production implementation of Executor. It runs the
// command using the operating system's process execution.
type DefaultExecutor struct{}

// Execute runs the command and captures its output.
func (e *DefaultExecutor) Execute(_ context.Context, cmd *exec.Cmd) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Engine executes AppleScript text via the osascript interpreter.
//
// Each Run spawns exactly one child process scoped to that call. The process
// is guaranteed terminated before Run returns on every exit path: on timeout
// exec.CommandContext kills it, and on success or failure it has already
// exited. There are no retries; the automation interface defines no
// idempotent-retry semantics, so retry policy belongs to the caller.
type Engine struct {
	binary   string
	timeout  time.Duration
	executor Executor
	logger   zerolog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTimeout overrides the default script timeout.
func WithTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithExecutor injects a custom executor, typically a mock in tests.
func WithExecutor(executor Executor) EngineOption {
	return func(e *Engine) {
		if executor != nil {
			e.executor = executor
		}
	}
}

// WithBinary overrides the interpreter binary path.
func WithBinary(binary string) EngineOption {
	return func(e *Engine) {
		if binary != "" {
			e.binary = binary
		}
	}
}

// WithLogger sets the logger for script execution diagnostics.
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an execution engine with the default interpreter and
// timeout. Options override executor, binary, timeout, and logger.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		binary:   constants.OsascriptBinary,
		timeout:  constants.DefaultScriptTimeout,
		executor: &DefaultExecutor{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeout returns the engine's configured script timeout.
func (e *Engine) Timeout() time.Duration {
	return e.timeout
}

// Run executes a script and returns its trimmed standard output.
//
// Classification of failures:
//   - non-zero exit: *ExecutionError (unwraps to ErrScriptExecution)
//   - deadline exceeded: *TimeoutError (unwraps to ErrScriptTimeout)
//   - spawn failure or anything else: wrapped ErrScript
func (e *Engine) Run(ctx context.Context, script string) (string, error) {
	return e.run(ctx, script, nil)
}

// RunStructured executes a script with the interpreter's structured output
// flag (-s s), which renders records and lists in their literal source form
// so they can be re-parsed. Read operations use this; write operations that
// return a bare identifier use Run.
func (e *Engine) RunStructured(ctx context.Context, script string) (string, error) {
	return e.run(ctx, script, []string{"-s", "s"})
}

func (e *Engine) run(ctx context.Context, script string, flags []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	args := make([]string, 0, len(flags)+2)
	args = append(args, flags...)
	args = append(args, "-e", script)

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.binary, args...)

	start := time.Now()
	e.logger.Debug().Str("binary", e.binary).Str("script", script).Msg("executing applescript")

	stdout, stderr, err := e.executor.Execute(runCtx, cmd)
	elapsed := time.Since(start)

	if err != nil {
		return "", e.classify(runCtx, err, stderr, elapsed)
	}

	output := strings.TrimSpace(string(stdout))
	e.logger.Debug().Dur("elapsed", elapsed).Int("output_bytes", len(output)).Msg("applescript completed")
	return output, nil
}

// classify converts a raw process failure into the bridge error taxonomy.
func (e *Engine) classify(ctx context.Context, err error, stderr []byte, elapsed time.Duration) error {
	diag := strings.TrimSpace(string(stderr))

	// Timeout: the context deadline fired and CommandContext killed the child.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		e.logger.Warn().Dur("elapsed", elapsed).Dur("timeout", e.timeout).Msg("applescript timed out")
		return &TimeoutError{Timeout: e.timeout}
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}

	// Non-zero exit from a process that did run.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		e.logger.Debug().Int("exit_code", exitErr.ExitCode()).Str("stderr", diag).Msg("applescript failed")
		return &ExecutionError{ExitCode: exitErr.ExitCode(), Stderr: diag}
	}

	// Spawn failure: interpreter missing or unusable.
	return fmt.Errorf("%w: spawning %s: %w", bridgeerrors.ErrScript, e.binary, err)
}
