package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/thingsbridge/thingsbridge/internal/config"
	"github.com/thingsbridge/thingsbridge/internal/things"
)

// fakeResponse is one queued script result.
type fakeResponse struct {
	out string
	err error
}

// fakeRunner replays queued responses and records every script it receives.
type fakeRunner struct {
	responses []fakeResponse
	scripts   []string
}

func (f *fakeRunner) next(script string) (string, error) {
	f.scripts = append(f.scripts, script)
	if len(f.responses) == 0 {
		return "", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp.out, resp.err
}

func (f *fakeRunner) Run(_ context.Context, script string) (string, error) {
	return f.next(script)
}

func (f *fakeRunner) RunStructured(_ context.Context, script string) (string, error) {
	return f.next(script)
}

// stubBridge replaces the client constructor with one backed by the given
// runner. Tests using it must not run in parallel.
func stubBridge(t *testing.T, runner things.ScriptRunner) {
	t.Helper()
	orig := newBridgeClient
	newBridgeClient = func(_ context.Context) (*things.Client, error) {
		return things.NewClient(things.WithRunner(runner)), nil
	}
	t.Cleanup(func() { newBridgeClient = orig })
}

// stubConfig replaces config loading with in-memory defaults so command
// tests never touch the filesystem. Tests using it must not run in parallel.
func stubConfig(t *testing.T) {
	t.Helper()
	orig := loadConfig
	loadConfig = func(_ context.Context) (*config.Config, error) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = false
		return cfg, nil
	}
	t.Cleanup(func() { loadConfig = orig })
}

// executeRoot runs the root command with the given args and returns the
// combined cobra output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
