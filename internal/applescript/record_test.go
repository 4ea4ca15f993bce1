package applescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

func TestSplitRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "single record",
			raw:  `{id:"A1", name:"Buy milk"}`,
			want: []string{`id:"A1", name:"Buy milk"`},
		},
		{
			name: "multiple records",
			raw:  `{{id:"A1", name:"First"}, {id:"B2", name:"Second"}}`,
			want: []string{`id:"A1", name:"First"`, `id:"B2", name:"Second"`},
		},
		{
			name: "comma inside quoted value",
			raw:  `{{id:"A1", name:"Buy milk, eggs"}, {id:"B2", name:"Other"}}`,
			want: []string{`id:"A1", name:"Buy milk, eggs"`, `id:"B2", name:"Other"`},
		},
		{
			name: "brace inside quoted value",
			raw:  `{id:"A1", notes:"use {curly} braces"}`,
			want: []string{`id:"A1", notes:"use {curly} braces"`},
		},
		{
			name: "empty output",
			raw:  "",
			want: nil,
		},
		{
			name: "missing value",
			raw:  "missing value",
			want: nil,
		},
		{
			name: "empty list",
			raw:  "{}",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SplitRecords(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("not a record stream", func(t *testing.T) {
		t.Parallel()
		_, err := SplitRecords("execution error: something broke")
		require.ErrorIs(t, err, bridgeerrors.ErrParse)
	})

	t.Run("malformed element in stream", func(t *testing.T) {
		t.Parallel()
		_, err := SplitRecords(`{{id:"A1"}, id:"B2"}`)
		require.ErrorIs(t, err, bridgeerrors.ErrParse)
	})
}

func TestParseProperties(t *testing.T) {
	t.Parallel()

	t.Run("plain record", func(t *testing.T) {
		t.Parallel()
		props, err := ParseProperties(`id:"A1", name:"Buy milk", status:open`)
		require.NoError(t, err)
		assert.Equal(t, Properties{
			"id":     `"A1"`,
			"name":   `"Buy milk"`,
			"status": "open",
		}, props)
	})

	t.Run("multi word property names", func(t *testing.T) {
		t.Parallel()
		props, err := ParseProperties(
			`due date:date "Friday, June 20, 2025 at 20:24:26", tag names:"errand, home"`)
		require.NoError(t, err)
		assert.Equal(t, `date "Friday, June 20, 2025 at 20:24:26"`, props["due date"])
		assert.Equal(t, `"errand, home"`, props["tag names"])
	})

	t.Run("colon inside quoted value", func(t *testing.T) {
		t.Parallel()
		props, err := ParseProperties(`name:"Meeting: standup", notes:"a:b"`)
		require.NoError(t, err)
		assert.Equal(t, `"Meeting: standup"`, props["name"])
		assert.Equal(t, `"a:b"`, props["notes"])
	})

	t.Run("comma inside quoted value does not split fields", func(t *testing.T) {
		t.Parallel()
		props, err := ParseProperties(`name:"Buy milk, eggs, and bread", status:open`)
		require.NoError(t, err)
		assert.Equal(t, `"Buy milk, eggs, and bread"`, props["name"])
		assert.Equal(t, "open", props["status"])
	})

	t.Run("nested list value", func(t *testing.T) {
		t.Parallel()
		props, err := ParseProperties(`id:"A1", todo ids:{"X1", "Y2"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"X1", "Y2"}`, props["todo ids"])
	})

	t.Run("field without colon", func(t *testing.T) {
		t.Parallel()
		_, err := ParseProperties(`id:"A1", garbage`)
		require.ErrorIs(t, err, bridgeerrors.ErrParse)
	})
}
