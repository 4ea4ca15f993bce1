package applescript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

func TestDecodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"quoted", `"Buy milk"`, "Buy milk"},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"escaped backslash", `"C:\\temp"`, `C:\temp`},
		{"bare identifier", "open", "open"},
		{"missing value", "missing value", ""},
		{"empty", "", ""},
		{"surrounding whitespace", `  "trimmed"  `, "trimmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeString(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unterminated literal", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeString(`"oops`)
		require.ErrorIs(t, err, bridgeerrors.ErrConversion)
	})
}

func TestDecodeBool(t *testing.T) {
	t.Parallel()

	got, err := DecodeBool(" true ")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = DecodeBool("false")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = DecodeBool("yes")
	require.ErrorIs(t, err, bridgeerrors.ErrConversion)
}

func TestDecodeDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, time.June, 20, 20, 24, 26, 0, time.Local)

	tests := []struct {
		name string
		raw  string
	}{
		{"constructor form", `date "Friday, June 20, 2025 at 20:24:26"`},
		{"bare quoted", `"Friday, June 20, 2025 at 20:24:26"`},
		{"bare unquoted", "Friday, June 20, 2025 at 20:24:26"},
		{"12-hour clock", `date "Friday, June 20, 2025 at 8:24:26 PM"`},
		{"no weekday", `date "June 20, 2025 at 20:24:26"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeDate(tt.raw)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, want.Equal(*got), "want %s, got %s", want, got)
		})
	}

	t.Run("missing value is nil", func(t *testing.T) {
		t.Parallel()
		got, err := DecodeDate("missing value")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeDate("not a date")
		require.ErrorIs(t, err, bridgeerrors.ErrConversion)
	})
}

func TestDecodeStringList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", `{"errand", "home"}`, []string{"errand", "home"}},
		{"comma inside element", `{"a, b", "c"}`, []string{"a, b", "c"}},
		{"escaped quote inside element", `{"say \"hi\""}`, []string{`say "hi"`}},
		{"empty list", "{}", nil},
		{"missing value", "missing value", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeStringList(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("not a list", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeStringList(`"errand"`)
		require.ErrorIs(t, err, bridgeerrors.ErrConversion)
	})
}

func TestDecodeTagNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"two tags", `"errand, home"`, []string{"errand", "home"}},
		{"single tag", `"errand"`, []string{"errand"}},
		{"extra whitespace", `" errand ,  home "`, []string{"errand", "home"}},
		{"empty string", `""`, nil},
		{"missing value", "missing value", nil},
		{"only separators", `", ,"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeTagNames(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
