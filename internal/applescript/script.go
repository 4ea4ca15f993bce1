package applescript

import (
	"fmt"
	"strings"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// Script accumulates AppleScript statements and renders them inside a
// `tell application` block. Methods return the receiver for chaining; the
// zero value is ready to use.
type Script struct {
	app        string
	statements []string
}

// NewScript returns a script targeting the given application.
func NewScript(app string) *Script {
	return &Script{app: app}
}

// Add appends a raw statement.
func (s *Script) Add(stmt string) *Script {
	s.statements = append(s.statements, stmt)
	return s
}

// Addf appends a formatted statement.
func (s *Script) Addf(format string, args ...any) *Script {
	return s.Add(fmt.Sprintf(format, args...))
}

// Get appends a property read, e.g. `get properties of to do id "X"`.
func (s *Script) Get(property, of string) *Script {
	if of == "" {
		return s.Addf("get %s", property)
	}
	return s.Addf("get %s of %s", property, of)
}

// Set appends a property write. The value must already be encoded.
func (s *Script) Set(property, of, value string) *Script {
	return s.Addf("set %s of %s to %s", property, of, value)
}

// MakeNew appends an object creation bound to a variable, e.g.
// `set newTodo to make new to do with properties {…}`.
func (s *Script) MakeNew(variable, class, properties string) *Script {
	return s.Addf("set %s to make new %s with properties %s", variable, class, properties)
}

// Move appends a move statement.
func (s *Script) Move(ref, to string) *Script {
	return s.Addf("move %s to %s", ref, to)
}

// Delete appends a delete statement.
func (s *Script) Delete(ref string) *Script {
	return s.Addf("delete %s", ref)
}

// Return appends a return statement.
func (s *Script) Return(expr string) *Script {
	return s.Addf("return %s", expr)
}

// Len reports the number of statements added so far.
func (s *Script) Len() int {
	return len(s.statements)
}

// Build renders the complete script. Statements are wrapped in a tell block
// when an application is set. Building an empty script is an error: it
// would send a no-op to the interpreter.
func (s *Script) Build() (string, error) {
	if len(s.statements) == 0 {
		return "", bridgeerrors.Wrap(bridgeerrors.ErrInvalidCommand, "empty script")
	}
	if s.app == "" {
		return strings.Join(s.statements, "\n"), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "tell application %q\n", s.app)
	for _, stmt := range s.statements {
		b.WriteString("    ")
		b.WriteString(stmt)
		b.WriteString("\n")
	}
	b.WriteString("end tell")
	return b.String(), nil
}
