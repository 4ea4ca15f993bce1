package applescript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"plain string", "Buy milk", `"Buy milk"`},
		{"string with quotes", `say "hi"`, `"say \"hi\""`},
		{"string with backslash", `C:\temp`, `"C:\\temp"`},
		{"empty string", "", `""`},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"nil", nil, "missing value"},
		{"empty list", []string{}, "{}"},
		{"string list", []string{"a", "b"}, `{"a", "b"}`},
		{"list with comma in element", []string{"a, b", "c"}, `{"a, b", "c"}`},
		{"raw expression", Expr("(current date) + (1 * days)"), "(current date) + (1 * days)"},
		{"reference expression", Expr(`project id "ABC"`), `project id "ABC"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		_, err := Encode(struct{}{})
		require.ErrorIs(t, err, bridgeerrors.ErrConversion)
	})
}

func TestEncodeDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, time.June, 20, 20, 24, 26, 0, time.Local)
	assert.Equal(t, `date "Friday, June 20, 2025 at 20:24:26"`, EncodeDate(d))
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Buy milk",
		`quoted "inner" text`,
		`back\slash`,
		`mixed \" both`,
		"comma, separated, text",
		"trailing backslash\\",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			encoded, err := Encode(in)
			require.NoError(t, err)
			decoded, err := DecodeString(encoded)
			require.NoError(t, err)
			assert.Equal(t, in, decoded)
		})
	}
}

func TestBoolRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []bool{true, false} {
		encoded, err := Encode(in)
		require.NoError(t, err)
		decoded, err := DecodeBool(encoded)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestListRoundTrip(t *testing.T) {
	t.Parallel()

	in := []string{"errand", "home, garden", `odd "name"`}
	encoded, err := Encode(in)
	require.NoError(t, err)
	decoded, err := DecodeStringList(encoded)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestDateRoundTrip(t *testing.T) {
	t.Parallel()

	in := time.Date(2025, time.June, 20, 8, 30, 0, 0, time.Local)
	encoded := EncodeDate(in)
	decoded, err := DecodeDate(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, in.Equal(*decoded), "want %s, got %s", in, decoded)
}

func TestRelativeDateExpr(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.June, 20, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"same day", now.Add(2 * time.Hour), "current date"},
		{"tomorrow", now.AddDate(0, 0, 1), "(current date) + (1 * days)"},
		{"next week", now.AddDate(0, 0, 7), "(current date) + (7 * days)"},
		{"yesterday", now.AddDate(0, 0, -1), "(current date) - (1 * days)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RelativeDateExpr(tt.target, now))
		})
	}
}

func TestIsExpression(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExpression("missing value"))
	assert.True(t, IsExpression("current date"))
	assert.True(t, IsExpression("(current date) + (3 * days)"))
	assert.True(t, IsExpression(`project id "ABC123"`))
	assert.True(t, IsExpression(`list "Today"`))
	assert.False(t, IsExpression("Buy milk"))
	assert.False(t, IsExpression(""))
}

func TestEncodeRecord(t *testing.T) {
	t.Parallel()

	t.Run("empty record", func(t *testing.T) {
		t.Parallel()
		got, err := EncodeRecord(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", got)
	})

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()
		got, err := EncodeRecord(
			[]string{"name", "notes"},
			map[string]any{"name": "Test", "notes": "a, b"},
		)
		require.NoError(t, err)
		assert.Equal(t, `{name:"Test", notes:"a, b"}`, got)
	})

	t.Run("propagates conversion failure with property name", func(t *testing.T) {
		t.Parallel()
		_, err := EncodeRecord([]string{"name"}, map[string]any{"name": struct{}{}})
		require.ErrorIs(t, err, bridgeerrors.ErrConversion)
		assert.Contains(t, err.Error(), `property "name"`)
	})
}
