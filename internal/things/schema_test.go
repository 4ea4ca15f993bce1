package things

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemas_CoverWriteProperties(t *testing.T) {
	t.Parallel()

	kinds := []RecordKind{KindTodo, KindProject, KindArea, KindTag}
	for _, kind := range kinds {
		schema := schemas[kind]
		require.NotNil(t, schema, "no schema for kind %s", kind)
		assert.Contains(t, schema, "id")
		assert.Contains(t, schema, propName)

		// Every property the builders write back must also be readable.
		for _, prop := range createOrder[kind] {
			assert.Contains(t, schema, prop, "%s create property %q not in schema", kind, prop)
		}
		for _, prop := range updateOrder[kind] {
			assert.Contains(t, schema, prop, "%s update property %q not in schema", kind, prop)
		}
	}
}
