// Package applescript provides the generic AppleScript bridge: value
// conversion between Go types and AppleScript literal syntax, a fluent
// script builder, depth-aware record splitting, and a subprocess execution
// engine for the osascript interpreter.
//
// IMPORTANT: This package may import internal/constants and internal/errors.
// It MUST NOT import internal/things, internal/config, or internal/cli.
package applescript

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thingsbridge/thingsbridge/internal/constants"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// DateLayout is the verbose date format the AppleScript runtime emits and
// accepts in date constructors, e.g. "Friday, June 20, 2025 at 20:24:26".
const DateLayout = "Monday, January 2, 2006 at 15:04:05"

// Expr is a raw AppleScript expression that Encode emits verbatim, without
// quoting. Use it for object references, current-date arithmetic, and other
// fragments that are AppleScript source rather than string data.
type Expr string

// Encode converts a Go value to its AppleScript literal representation.
//
// Strings are always quoted with internal quote and backslash characters
// escaped, so every string round-trips; pass an Expr to emit AppleScript
// source verbatim. Booleans map to true/false, nil maps to "missing value",
// slices map to the comma-separated {…} list syntax with recursive element
// encoding, and time.Time values map to a date constructor using the
// verbose format.
//
// Returns an error wrapping errors.ErrConversion for unsupported types.
func Encode(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return constants.MissingValue, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case Expr:
		return string(val), nil
	case string:
		return QuoteString(val), nil
	case time.Time:
		return EncodeDate(val), nil
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return encodeList(items)
	case []any:
		return encodeList(val)
	default:
		return "", bridgeerrors.Wrapf(bridgeerrors.ErrConversion,
			"unsupported value type %T", v)
	}
}

// QuoteString quotes a string for AppleScript, escaping backslashes and
// embedded double quotes.
func QuoteString(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// EncodeDate formats a time as an AppleScript date constructor using the
// verbose textual format, e.g. `date "Friday, June 20, 2025 at 20:24:26"`.
func EncodeDate(t time.Time) string {
	return fmt.Sprintf("date %q", t.Format(DateLayout))
}

// RelativeDateExpr formats a date as an expression relative to the current
// date, e.g. "(current date) + (3 * days)". The application resolves these
// against its own clock, which keeps day-granularity scheduling immune to
// constructor locale differences. now is the reference day.
func RelativeDateExpr(target, now time.Time) string {
	days := daysBetween(now, target)
	switch {
	case days == 0:
		return "current date"
	case days > 0:
		return fmt.Sprintf("(current date) + (%d * days)", days)
	default:
		return fmt.Sprintf("(current date) - (%d * days)", -days)
	}
}

// daysBetween returns the whole-day offset from a to b, ignoring the time
// of day component.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	at := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bt := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bt.Sub(at).Hours() / 24)
}

// IsExpression reports whether a string is an AppleScript expression that
// must not be quoted when encoded: the missing-value literal, boolean
// literals, current-date arithmetic, and object references such as
// `project id "ABC"` or `list "Today"`.
func IsExpression(s string) bool {
	s = strings.TrimSpace(s)

	switch s {
	case constants.MissingValue, "true", "false", "current date", "(current date)":
		return true
	}

	if strings.HasPrefix(s, "(current date)") &&
		(strings.Contains(s, "+") || strings.Contains(s, "-")) &&
		strings.Contains(s, "days") {
		return true
	}

	for _, prefix := range referencePrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// referencePrefixes are the object reference forms the application accepts.
// The "id" variants must come first so they win over the bare forms.
//
//nolint:gochecknoglobals // Constant-like lookup slice
var referencePrefixes = []string{
	"to do id ", "project id ", "area id ", "tag id ",
	"to do ", "project ", "area ", "tag ", "list ",
}

// Reference formats an object reference for the given class, by identifier
// (`project id "ABC123"`) or by name (`project "Work"`).
func Reference(class, identifier string, byID bool) string {
	if byID {
		return fmt.Sprintf("%s id %q", class, identifier)
	}
	return fmt.Sprintf("%s %q", class, identifier)
}

func encodeList(items []any) (string, error) {
	if len(items) == 0 {
		return "{}", nil
	}
	encoded := make([]string, len(items))
	for i, item := range items {
		text, err := Encode(item)
		if err != nil {
			return "", err
		}
		encoded[i] = text
	}
	return "{" + strings.Join(encoded, ", ") + "}", nil
}

// EncodeRecord converts a property map to an AppleScript record literal,
// e.g. `{name:"Buy milk", notes:"2%"}`. Keys are emitted unquoted in the
// order given; AppleScript record keys are identifiers, not strings.
func EncodeRecord(keys []string, props map[string]any) (string, error) {
	if len(keys) == 0 {
		return "{}", nil
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value, err := Encode(props[key])
		if err != nil {
			return "", bridgeerrors.Wrapf(err, "property %q", key)
		}
		parts = append(parts, key+":"+value)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}
