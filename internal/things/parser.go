package things

import (
	"fmt"
	"strings"
	"time"

	"github.com/thingsbridge/thingsbridge/internal/applescript"
	"github.com/thingsbridge/thingsbridge/internal/domain"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// ParseTodos parses structured query output into todo records, preserving
// input order.
func ParseTodos(raw string) ([]domain.Todo, error) {
	records, err := parseRecords(raw, KindTodo)
	if err != nil {
		return nil, err
	}
	todos := make([]domain.Todo, 0, len(records))
	for _, rec := range records {
		todo, err := todoFromRecord(rec)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// ParseProjects parses structured query output into project records.
func ParseProjects(raw string) ([]domain.Project, error) {
	records, err := parseRecords(raw, KindProject)
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		project, err := projectFromRecord(rec)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// ParseAreas parses structured query output into area records.
func ParseAreas(raw string) ([]domain.Area, error) {
	records, err := parseRecords(raw, KindArea)
	if err != nil {
		return nil, err
	}
	areas := make([]domain.Area, 0, len(records))
	for _, rec := range records {
		area := domain.Area{Tags: rec.tagNames(propTagNames)}
		if area.ID, err = rec.requiredText("id"); err != nil {
			return nil, err
		}
		if area.Name, err = rec.requiredText(propName); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// ParseTags parses structured query output into tag records.
func ParseTags(raw string) ([]domain.Tag, error) {
	records, err := parseRecords(raw, KindTag)
	if err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, 0, len(records))
	for _, rec := range records {
		tag := domain.Tag{}
		if tag.ID, err = rec.requiredText("id"); err != nil {
			return nil, err
		}
		if tag.Name, err = rec.requiredText(propName); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// record is one parsed record with its properties decoded per the kind's
// schema, plus positional context for diagnostics.
type record struct {
	values map[string]any
	kind   RecordKind
	index  int
}

// parseRecords splits raw output into decoded records. Property names are
// normalized first: pipe quoting is stripped so |todo ids| and todo ids are
// the same key. Each property is then decoded by the kind its schema
// declares; properties the schema does not name are ignored.
func parseRecords(raw string, kind RecordKind) ([]record, error) {
	bodies, err := applescript.SplitRecords(raw)
	if err != nil {
		return nil, err
	}
	schema := schemas[kind]
	records := make([]record, 0, len(bodies))
	for i, body := range bodies {
		props, err := applescript.ParseProperties(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s record %d: %w",
				bridgeerrors.ErrParse, kind, i, err)
		}

		rec := record{values: make(map[string]any, len(props)), kind: kind, index: i}
		for name, value := range props {
			name = strings.Trim(name, "|")
			propType, known := schema[name]
			if !known {
				continue
			}
			decoded, err := decodeProperty(propType, value)
			if err != nil {
				return nil, rec.failf(name, err)
			}
			if decoded == nil {
				continue
			}
			rec.values[name] = decoded
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeProperty decodes one raw property value by its schema kind. A nil
// result with no error means the value is absent (missing value, empty) and
// the record field keeps its zero value.
func decodeProperty(kind propKind, raw string) (any, error) {
	switch kind {
	case kindText:
		if applescript.IsMissing(raw) {
			return nil, nil
		}
		return applescript.DecodeString(raw)
	case kindStatus:
		if applescript.IsMissing(raw) {
			return nil, nil
		}
		value, err := applescript.DecodeString(raw)
		if err != nil {
			return nil, err
		}
		status, ok := domain.ParseStatus(value)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", value)
		}
		return status, nil
	case kindDate:
		date, err := applescript.DecodeDate(raw)
		if err != nil {
			return nil, err
		}
		if date == nil {
			return nil, nil
		}
		return date, nil
	case kindTagNames:
		names, err := applescript.DecodeTagNames(raw)
		if err != nil {
			return nil, err
		}
		if names == nil {
			return nil, nil
		}
		return names, nil
	case kindReference:
		if ref := simplifyReference(raw); ref != "" {
			return ref, nil
		}
		return nil, nil
	case kindIDList:
		ids, err := applescript.DecodeStringList(raw)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			return nil, nil
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("unhandled property kind %d", int(kind))
	}
}

func todoFromRecord(rec record) (domain.Todo, error) {
	var todo domain.Todo
	var err error

	if todo.ID, err = rec.requiredText("id"); err != nil {
		return domain.Todo{}, err
	}
	if todo.Name, err = rec.requiredText(propName); err != nil {
		return domain.Todo{}, err
	}
	todo.Notes = rec.text(propNotes)
	todo.Status = rec.status()
	todo.Tags = rec.tagNames(propTagNames)
	todo.ProjectID = rec.text(propProject)
	todo.AreaID = rec.text(propArea)
	todo.DueDate = rec.date(propDueDate)
	todo.ActivationDate = rec.date(propActivationDate)
	todo.CreationDate = rec.date(propCreationDate)
	todo.ModificationDate = rec.date(propModificationDate)
	todo.CompletionDate = rec.date(propCompletionDate)
	todo.CancellationDate = rec.date(propCancellationDate)
	return todo, nil
}

func projectFromRecord(rec record) (domain.Project, error) {
	var project domain.Project
	var err error

	if project.ID, err = rec.requiredText("id"); err != nil {
		return domain.Project{}, err
	}
	if project.Name, err = rec.requiredText(propName); err != nil {
		return domain.Project{}, err
	}
	project.Notes = rec.text(propNotes)
	project.Status = rec.status()
	project.Tags = rec.tagNames(propTagNames)
	project.TodoIDs = rec.idList(propTodoIDs)
	project.AreaID = rec.text(propArea)
	project.DueDate = rec.date(propDueDate)
	project.ActivationDate = rec.date(propActivationDate)
	project.CreationDate = rec.date(propCreationDate)
	project.ModificationDate = rec.date(propModificationDate)
	project.CompletionDate = rec.date(propCompletionDate)
	project.CancellationDate = rec.date(propCancellationDate)
	return project, nil
}

// failf wraps a property decode failure with the record's kind, index, and
// offending property.
func (r record) failf(property string, err error) error {
	return fmt.Errorf("%w: %s record %d property %q: %w",
		bridgeerrors.ErrParse, r.kind, r.index, property, err)
}

// requiredText returns a property that must be present and non-empty.
func (r record) requiredText(property string) (string, error) {
	value, _ := r.values[property].(string)
	if value == "" {
		return "", fmt.Errorf("%w: %s record %d: missing required property %q",
			bridgeerrors.ErrParse, r.kind, r.index, property)
	}
	return value, nil
}

// text returns an optional string property, empty when absent. Reference
// properties decode to their simplified identifier, so this covers both.
func (r record) text(property string) string {
	value, _ := r.values[property].(string)
	return value
}

// status returns the status property, open when absent.
func (r record) status() domain.Status {
	if status, ok := r.values[propStatus].(domain.Status); ok {
		return status
	}
	return domain.StatusOpen
}

// date returns an optional date property, nil when absent.
func (r record) date(property string) *time.Time {
	date, _ := r.values[property].(*time.Time)
	return date
}

// tagNames returns the decoded tag-name list, nil when absent.
func (r record) tagNames(property string) []string {
	names, _ := r.values[property].([]string)
	return names
}

// idList returns a decoded identifier-list property, nil when absent.
func (r record) idList(property string) []string {
	ids, _ := r.values[property].([]string)
	return ids
}

// simplifyReference reduces a full object reference to its identifier,
// e.g. `project id "ABC" of application "Things3"` yields ABC. By-name
// references yield the name; missing values yield the empty string.
func simplifyReference(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || applescript.IsMissing(s) {
		return ""
	}
	if idx := strings.Index(s, " of application "); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, " id "); idx >= 0 {
		s = s[idx+len(" id "):]
	} else if idx := strings.IndexByte(s, ' '); idx >= 0 {
		// By-name reference: keep the quoted name.
		s = s[idx+1:]
	}
	return strings.Trim(strings.TrimSpace(s), `"`)
}
