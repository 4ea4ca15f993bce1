package things

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/thingsbridge/thingsbridge/internal/applescript"
	"github.com/thingsbridge/thingsbridge/internal/constants"
	"github.com/thingsbridge/thingsbridge/internal/domain"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// Builder turns validated descriptors into AppleScript text. Date writes use
// current-date arithmetic rather than date constructors, so the application
// resolves them against its own clock and locale.
type Builder struct {
	app string
	now func() time.Time
}

// NewBuilder returns a builder targeting the given application.
func NewBuilder(app string) *Builder {
	return &Builder{app: app, now: time.Now}
}

// Build validates the descriptor and renders its script. Query operations
// produce scripts meant for structured output; create produces a script
// returning the new record's identifier.
func (b *Builder) Build(d Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	switch d.Op {
	case OpGetByID:
		return b.buildGetByID(d)
	case OpGetAll, OpGetFiltered:
		return b.buildQuery(d)
	case OpCreate:
		return b.buildCreate(d)
	case OpUpdate:
		return b.buildUpdate(d)
	case OpDelete:
		return b.buildDelete(d)
	default:
		return "", bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"unknown operation %q", string(d.Op))
	}
}

func (b *Builder) buildGetByID(d Descriptor) (string, error) {
	ref := d.reference()
	script := applescript.NewScript(b.app)

	// Projects additionally report their contained todo identifiers. Record
	// concatenation folds that into the same output, keeping one process
	// per call.
	if d.Target == KindProject {
		script.Addf("return (properties of %s) & {|%s|:id of to dos of %s}",
			ref, propTodoIDs, ref)
	} else {
		script.Get("properties", ref)
	}
	return script.Build()
}

func (b *Builder) buildQuery(d Descriptor) (string, error) {
	target := containers[d.Target]
	if d.Container != "" {
		target += " of " + string(d.Container)
	}
	if len(d.Filters) > 0 {
		predicate, err := b.predicate(d.Filters)
		if err != nil {
			return "", err
		}
		target += " whose " + predicate
	}
	return applescript.NewScript(b.app).Get("properties", target).Build()
}

// predicate renders a whose clause, one conjunct per filter property in
// deterministic key order.
func (b *Builder) predicate(filters map[string]any) (string, error) {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	conjuncts := make([]string, 0, len(keys))
	for _, key := range keys {
		value, err := applescript.Encode(filters[key])
		if err != nil {
			return "", bridgeerrors.Wrapf(err, "filter %q", key)
		}
		conjuncts = append(conjuncts, fmt.Sprintf("%s is %s", key, value))
	}
	return strings.Join(conjuncts, " and "), nil
}

func (b *Builder) buildCreate(d Descriptor) (string, error) {
	record, err := b.createRecord(d)
	if err != nil {
		return "", err
	}

	variable := "newRecord"
	script := applescript.NewScript(b.app).
		MakeNew(variable, string(d.Target), record)

	if ref, err := b.relationRef(KindProject, d.Properties[propProject]); err != nil {
		return "", err
	} else if ref != "" {
		script.Set(propProject, variable, ref)
	}
	if ref, err := b.relationRef(KindArea, d.Properties[propArea]); err != nil {
		return "", err
	} else if ref != "" {
		script.Set(propArea, variable, ref)
	}
	if ref, err := b.relationRef(KindTag, d.Properties[propParentTag]); err != nil {
		return "", err
	} else if ref != "" {
		script.Set(propParentTag, variable, ref)
	}

	if when, ok := d.Properties[propWhen].(string); ok && when != "" {
		if err := b.schedule(script, variable, when); err != nil {
			return "", err
		}
	}

	if items, ok := d.Properties[propChecklist].([]string); ok {
		for _, item := range items {
			script.Addf("make new checklist item at end of checklist items of %s with properties {name:%s}",
				variable, applescript.QuoteString(item))
		}
	}

	script.Return("id of " + variable)
	return script.Build()
}

// createRecord renders the with-properties record from the descriptor's
// plain record properties, in schema order.
func (b *Builder) createRecord(d Descriptor) (string, error) {
	keys := make([]string, 0, len(d.Properties))
	props := make(map[string]any, len(d.Properties))
	for _, key := range createOrder[d.Target] {
		value, ok := d.Properties[key]
		if !ok {
			continue
		}
		keys = append(keys, recordKey(key))
		props[recordKey(key)] = b.writeValue(value)
	}
	record, err := applescript.EncodeRecord(keys, props)
	if err != nil {
		return "", bridgeerrors.Wrap(err, "create properties")
	}
	return record, nil
}

func (b *Builder) buildUpdate(d Descriptor) (string, error) {
	ref := d.reference()
	script := applescript.NewScript(b.app)

	for _, key := range updateOrder[d.Target] {
		value, ok := d.Properties[key]
		if !ok {
			continue
		}

		var encoded string
		switch key {
		case propProject, propArea:
			relKind := KindProject
			if key == propArea {
				relKind = KindArea
			}
			relRef, err := b.relationRef(relKind, value)
			if err != nil {
				return "", err
			}
			if relRef == "" {
				// Present but empty clears the assignment.
				relRef = constants.MissingValue
			}
			encoded = relRef
		default:
			enc, err := applescript.Encode(b.writeValue(value))
			if err != nil {
				return "", bridgeerrors.Wrapf(err, "property %q", key)
			}
			encoded = enc
		}
		script.Set(key, ref, encoded)
	}

	if when, ok := d.Properties[propWhen].(string); ok && when != "" {
		if err := b.schedule(script, ref, when); err != nil {
			return "", err
		}
	}

	return script.Build()
}

func (b *Builder) buildDelete(d Descriptor) (string, error) {
	return applescript.NewScript(b.app).Delete(d.reference()).Build()
}

// schedule appends a scheduling statement for a when value: built-in list
// names move the record, day offsets use the schedule command.
func (b *Builder) schedule(script *applescript.Script, ref, when string) error {
	switch strings.ToLower(strings.TrimSpace(when)) {
	case "today":
		script.Move(ref, `list "Today"`)
	case "anytime":
		script.Move(ref, `list "Anytime"`)
	case "someday":
		script.Move(ref, `list "Someday"`)
	case "upcoming":
		script.Move(ref, `list "Upcoming"`)
	case "tomorrow":
		script.Addf("schedule %s for (current date) + (1 * days)", ref)
	default:
		return bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"unknown schedule target %q", when)
	}
	return nil
}

// relationRef resolves a caller-provided project/area/tag relation value to
// an object reference expression. An already-formed expression passes
// through; anything else is treated as a name. Empty values yield no
// reference.
func (b *Builder) relationRef(kind RecordKind, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case applescript.Expr:
		return string(v), nil
	case string:
		if v == "" {
			return "", nil
		}
		if applescript.IsExpression(v) {
			return v, nil
		}
		return applescript.Reference(string(kind), v, false), nil
	default:
		return "", bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"%s relation must be a name or reference, got %T", string(kind), value)
	}
}

// writeValue converts a property value to its write-side form: times become
// relative current-date expressions, zero times clear the property, and
// status values are emitted as bare constants.
func (b *Builder) writeValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return applescript.Expr(applescript.RelativeDateExpr(v, b.now()))
	case domain.Status:
		return applescript.Expr(v.String())
	default:
		return value
	}
}

// recordKey quotes multi-word property names with pipes for use as record
// keys in script source.
func recordKey(key string) string {
	if strings.Contains(key, " ") {
		return "|" + key + "|"
	}
	return key
}
