package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTYOutput(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		NewTTYOutput(&buf).Success("created")
		assert.Contains(t, buf.String(), "created")
		assert.Contains(t, buf.String(), "✓")
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		NewTTYOutput(&buf).Error(errors.New("boom"))
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, NewTTYOutput(&buf).JSON(map[string]string{"id": "A1"}))

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "A1", decoded["id"])
	})
}

func TestJSONOutput(t *testing.T) {
	t.Parallel()

	t.Run("messages are silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		out := NewJSONOutput(&buf)
		out.Success("created")
		out.Warning("careful")
		out.Info("hello")
		assert.Empty(t, buf.String())
	})

	t.Run("error is a json document", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		NewJSONOutput(&buf).Error(errors.New("boom"))

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "boom", decoded["error"])
	})
}

func TestTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	table := NewTable(&buf, []TableColumn{
		{Name: "ID", Width: 6},
		{Name: "NAME", Width: 10},
	})
	table.WriteHeader()
	table.WriteRow("A1", "Buy milk")
	table.WriteRow("B2", "A very long todo name")

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "A very lo…")
	assert.NotContains(t, out, "A very long todo name")
}
