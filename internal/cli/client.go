package cli

import (
	"context"
	"io"

	"github.com/thingsbridge/thingsbridge/internal/applescript"
	"github.com/thingsbridge/thingsbridge/internal/config"
	"github.com/thingsbridge/thingsbridge/internal/things"
	"github.com/thingsbridge/thingsbridge/internal/tui"
)

// loadConfig loads the layered configuration. Overridable for tests.
//
//nolint:gochecknoglobals // Test seam, matches the logger global pattern
var loadConfig = config.Load

// newBridgeClient builds the bridge client from configuration: an execution
// engine with the configured binary and timeout, targeting the configured
// application, logging through the CLI logger. Overridable for tests.
//
//nolint:gochecknoglobals // Test seam
var newBridgeClient = buildBridgeClient

func buildBridgeClient(ctx context.Context) (*things.Client, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	logger := GetLogger()
	engine := applescript.NewEngine(
		applescript.WithBinary(cfg.Script.Binary),
		applescript.WithTimeout(cfg.Script.Timeout),
		applescript.WithLogger(logger),
	)

	return things.NewClient(
		things.WithRunner(engine),
		things.WithApp(cfg.App.Name),
		things.WithLogger(logger),
	), nil
}

// newOutput picks the output implementation for the selected format.
func newOutput(w io.Writer, flags *GlobalFlags) tui.Output {
	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w)
	}
	tui.CheckNoColor()
	return tui.NewTTYOutput(w)
}
