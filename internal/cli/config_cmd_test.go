package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingsbridge/thingsbridge/internal/config"
)

func TestConfigDocument(t *testing.T) {
	t.Parallel()

	doc := configDocument(config.DefaultConfig())

	app, ok := doc["app"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Things3", app["name"])

	script, ok := doc["script"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "osascript", script["binary"])
	assert.Equal(t, "30s", script["timeout"])
}

func TestWriteConfigShow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeConfigShow(&buf, config.DefaultConfig())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "name: Things3")
	assert.Contains(t, output, "binary: osascript")
	assert.Contains(t, output, "timeout: 30s")
	assert.Contains(t, output, "level: info")
}

func TestConfigShow_Command_JSON(t *testing.T) {
	stubConfig(t)

	_, err := executeRoot(t, "config", "show", "-o", "json")
	require.NoError(t, err)
}
