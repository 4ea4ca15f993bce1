package things

import (
	"github.com/thingsbridge/thingsbridge/internal/applescript"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// OpKind identifies the operation class of a command descriptor.
type OpKind string

// Operation kinds.
const (
	OpGetByID     OpKind = "get-by-id"
	OpGetAll      OpKind = "get-all"
	OpGetFiltered OpKind = "get-filtered"
	OpCreate      OpKind = "create"
	OpUpdate      OpKind = "update"
	OpDelete      OpKind = "delete"
)

// RecordKind identifies the record class a descriptor targets. The value is
// the AppleScript class name, so it is usable directly in script text.
type RecordKind string

// Record kinds.
const (
	KindTodo    RecordKind = "to do"
	KindProject RecordKind = "project"
	KindArea    RecordKind = "area"
	KindTag     RecordKind = "tag"
)

// containers maps each record kind to its plural element name.
//
//nolint:gochecknoglobals // Constant-like lookup table
var containers = map[RecordKind]string{
	KindTodo:    "to dos",
	KindProject: "projects",
	KindArea:    "areas",
	KindTag:     "tags",
}

// Descriptor is the validated intermediate form of one bridge operation.
// The client assembles a descriptor from typed parameters, Validate checks
// it, and the builder turns it into script text. Invalid descriptors never
// reach the external process.
type Descriptor struct {
	// Op is the operation kind.
	Op OpKind

	// Target is the record kind the operation addresses.
	Target RecordKind

	// ID is the record identifier for by-id, update, and delete operations.
	ID string

	// Container optionally scopes a query to an enclosing object, e.g.
	// `list "Today"` or `project id "X"`.
	Container applescript.Expr

	// Filters holds predicate properties for filtered queries. Each entry
	// becomes one conjunct of a whose clause.
	Filters map[string]any

	// Properties holds the field values for create and update operations,
	// keyed by AppleScript property name.
	Properties map[string]any
}

// Validate checks descriptor completeness before any script text is built.
// All failures wrap ErrInvalidCommand.
func (d Descriptor) Validate() error {
	if _, ok := containers[d.Target]; !ok {
		return bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"unknown record kind %q", string(d.Target))
	}

	switch d.Op {
	case OpGetAll:
		return nil
	case OpGetByID, OpDelete:
		return d.requireID()
	case OpGetFiltered:
		if len(d.Filters) == 0 && d.Container == "" {
			return bridgeerrors.Wrap(bridgeerrors.ErrInvalidCommand,
				"filtered query without filters or container")
		}
		return nil
	case OpCreate:
		name, _ := d.Properties[propName].(string)
		if name == "" {
			return bridgeerrors.Wrap(bridgeerrors.ErrInvalidCommand,
				"create without a name")
		}
		return nil
	case OpUpdate:
		if err := d.requireID(); err != nil {
			return err
		}
		if len(d.Properties) == 0 {
			return bridgeerrors.Wrap(bridgeerrors.ErrInvalidCommand,
				"update with no properties")
		}
		return nil
	default:
		return bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"unknown operation %q", string(d.Op))
	}
}

func (d Descriptor) requireID() error {
	if d.ID == "" {
		return bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"%s on %s requires an id", string(d.Op), string(d.Target))
	}
	return nil
}

// reference returns the object reference for the descriptor's target record.
func (d Descriptor) reference() string {
	return applescript.Reference(string(d.Target), d.ID, true)
}
