package applescript

import (
	"strings"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// splitTopLevel splits s on sep, honoring quoted strings (with backslash
// escapes) and brace/parenthesis nesting. Separators inside quotes or
// nested structures never split. Naive delimiter splitting corrupts any
// value containing punctuation, so all record and list splitting in this
// package goes through here.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts    []string
		current  strings.Builder
		depth    int
		inString bool
		escaped  bool
	)

	for _, r := range s {
		if escaped {
			current.WriteRune(r)
			escaped = false
			continue
		}
		switch {
		case r == '\\' && inString:
			current.WriteRune(r)
			escaped = true
		case r == '"':
			current.WriteRune(r)
			inString = !inString
		case inString:
			current.WriteRune(r)
		case r == '{' || r == '(':
			current.WriteRune(r)
			depth++
		case r == '}' || r == ')':
			current.WriteRune(r)
			depth--
		case r == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		parts = append(parts, trimmed)
	}
	return parts
}

// SplitRecords splits structured osascript output into individual record
// bodies (the text between each record's braces), preserving input order.
//
// The runtime concatenates records as {{k:v, …}, {k:v, …}} for multiple
// records and {k:v, …} for a single record. An empty or missing-value
// output yields no records.
func SplitRecords(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || IsMissing(s) {
		return nil, nil
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrParse,
			"output is not a record stream: %s", truncate(s, 80))
	}

	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	// A single record has top-level k:v pairs; a multi-record stream has
	// top-level {…} elements.
	if !strings.HasPrefix(strings.TrimSpace(body), "{") {
		return []string{body}, nil
	}

	elements := splitTopLevel(body, ',')
	records := make([]string, 0, len(elements))
	for _, el := range elements {
		el = strings.TrimSpace(el)
		if !strings.HasPrefix(el, "{") || !strings.HasSuffix(el, "}") {
			return nil, bridgeerrors.Wrapf(bridgeerrors.ErrParse,
				"malformed record in stream: %s", truncate(el, 80))
		}
		records = append(records, el[1:len(el)-1])
	}
	return records, nil
}

// Properties holds the raw property fragments of one record, keyed by
// property name. Values remain encoded; decode them per expected kind.
type Properties map[string]string

// ParseProperties splits one record body into its property fragments.
// Property names may contain spaces ("due date", "tag names"); the value
// starts after the first top-level colon. Embedded commas inside quoted
// strings and nested lists do not split fields.
func ParseProperties(record string) (Properties, error) {
	props := make(Properties)
	for _, field := range splitTopLevel(record, ',') {
		name, value, err := splitProperty(field)
		if err != nil {
			return nil, err
		}
		props[name] = value
	}
	return props, nil
}

// splitProperty splits a `name:value` fragment at the first colon outside
// any quoted string.
func splitProperty(field string) (string, string, error) {
	inString := false
	escaped := false
	for i, r := range field {
		if escaped {
			escaped = false
			continue
		}
		switch {
		case r == '\\' && inString:
			escaped = true
		case r == '"':
			inString = !inString
		case r == ':' && !inString:
			name := strings.TrimSpace(field[:i])
			value := strings.TrimSpace(field[i+1:])
			if name == "" {
				return "", "", bridgeerrors.Wrapf(bridgeerrors.ErrParse,
					"property with empty name: %s", truncate(field, 80))
			}
			return name, value, nil
		}
	}
	return "", "", bridgeerrors.Wrapf(bridgeerrors.ErrParse,
		"not a property token: %s", truncate(field, 80))
}

// truncate shortens diagnostic fragments so errors stay readable.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
