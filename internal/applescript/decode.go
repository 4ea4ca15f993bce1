package applescript

import (
	"strings"
	"time"

	"github.com/thingsbridge/thingsbridge/internal/constants"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// dateLayouts are the accepted wire formats for dates. The runtime emits the
// 24-hour form on most systems; 12-hour locales add an AM/PM marker.
//
//nolint:gochecknoglobals // Constant-like layout list
var dateLayouts = []string{
	// Friday, June 20, 2025 at 20:24:26
	DateLayout,
	// Friday, June 20, 2025 at 8:24:26 PM
	"Monday, January 2, 2006 at 3:04:05 PM",
	// Weekday-less variants seen in older runtime versions.
	"January 2, 2006 at 15:04:05",
	"January 2, 2006 at 3:04:05 PM",
}

// IsMissing reports whether a raw fragment is the missing-value literal.
func IsMissing(raw string) bool {
	return strings.TrimSpace(raw) == constants.MissingValue
}

// DecodeString decodes an AppleScript string literal. Quoted fragments are
// unquoted with escape sequences resolved; bare fragments (identifiers in
// non-structured output) are returned trimmed. The missing-value literal
// decodes to the empty string.
func DecodeString(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || IsMissing(s) {
		return "", nil
	}
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	if len(s) < 2 || !strings.HasSuffix(s, `"`) {
		return "", bridgeerrors.Wrapf(bridgeerrors.ErrConversion,
			"unterminated string literal %q", raw)
	}
	return unescape(s[1 : len(s)-1]), nil
}

// unescape resolves backslash escapes inside a quoted string body.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DecodeBool decodes an AppleScript boolean literal.
func DecodeBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, bridgeerrors.Wrapf(bridgeerrors.ErrConversion,
			"%q is not a boolean", strings.TrimSpace(raw))
	}
}

// DecodeDate decodes an AppleScript date, with or without the `date "…"`
// constructor wrapper, in either the 24-hour or 12-hour verbose format.
// The missing-value literal decodes to nil.
func DecodeDate(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" || IsMissing(s) {
		return nil, nil
	}

	// Strip the constructor wrapper: date "Friday, June 20, 2025 at 20:24:26"
	if rest, ok := strings.CutPrefix(s, `date "`); ok {
		rest = strings.TrimSuffix(rest, `"`)
		s = rest
	} else if rest, ok := strings.CutPrefix(s, `date `); ok {
		s = rest
	}
	s = strings.Trim(s, `"`)

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, bridgeerrors.Wrapf(bridgeerrors.ErrConversion,
		"%q is not a date", s)
}

// DecodeStringList decodes an AppleScript list literal of strings, e.g.
// `{"errand", "home"}`. Commas inside quoted elements are preserved.
// The missing-value literal and the empty list decode to nil.
func DecodeStringList(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || IsMissing(s) {
		return nil, nil
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrConversion,
			"%q is not a list", s)
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	items := splitTopLevel(body, ',')
	out := make([]string, 0, len(items))
	for _, item := range items {
		decoded, err := DecodeString(item)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

// DecodeTagNames decodes the application's comma-separated tag-name string,
// e.g. `"errand, home"`, into individual names. Empty entries are dropped.
func DecodeTagNames(raw string) ([]string, error) {
	s, err := DecodeString(raw)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	return names, nil
}
