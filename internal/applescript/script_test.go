package applescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

func TestScriptBuild(t *testing.T) {
	t.Parallel()

	t.Run("single statement in tell block", func(t *testing.T) {
		t.Parallel()
		got, err := NewScript("Things3").
			Get("properties", `to do id "A1"`).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "tell application \"Things3\"\n"+
			"    get properties of to do id \"A1\"\n"+
			"end tell", got)
	})

	t.Run("multiple statements keep order", func(t *testing.T) {
		t.Parallel()
		got, err := NewScript("Things3").
			MakeNew("newTodo", "to do", `{name:"Buy milk"}`).
			Return("id of newTodo").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "tell application \"Things3\"\n"+
			"    set newTodo to make new to do with properties {name:\"Buy milk\"}\n"+
			"    return id of newTodo\n"+
			"end tell", got)
	})

	t.Run("no application wraps nothing", func(t *testing.T) {
		t.Parallel()
		got, err := NewScript("").Add("current date").Build()
		require.NoError(t, err)
		assert.Equal(t, "current date", got)
	})

	t.Run("empty script is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewScript("Things3").Build()
		require.ErrorIs(t, err, bridgeerrors.ErrInvalidCommand)
	})
}

func TestScriptStatements(t *testing.T) {
	t.Parallel()

	s := NewScript("Things3").
		Get("to dos", `list "Today"`).
		Set("name", `to do id "A1"`, `"Renamed"`).
		Move(`to do id "A1"`, `list "Someday"`).
		Delete(`to do id "A1"`).
		Addf("set x to %d", 7)

	require.Equal(t, 5, s.Len())
	built, err := s.Build()
	require.NoError(t, err)

	assert.Contains(t, built, `get to dos of list "Today"`)
	assert.Contains(t, built, `set name of to do id "A1" to "Renamed"`)
	assert.Contains(t, built, `move to do id "A1" to list "Someday"`)
	assert.Contains(t, built, `delete to do id "A1"`)
	assert.Contains(t, built, "set x to 7")
}

func TestScriptGetWithoutTarget(t *testing.T) {
	t.Parallel()

	got, err := NewScript("Things3").Get("to dos", "").Build()
	require.NoError(t, err)
	assert.Contains(t, got, "    get to dos\n")
}
