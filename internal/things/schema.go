package things

// propKind is the decode kind of one record property.
type propKind int

const (
	kindText propKind = iota
	kindStatus
	kindDate
	kindTagNames
	kindReference
	kindIDList
)

// AppleScript property names. Multi-word names appear in output exactly as
// written here.
const (
	propName             = "name"
	propNotes            = "notes"
	propStatus           = "status"
	propDueDate          = "due date"
	propActivationDate   = "activation date"
	propCreationDate     = "creation date"
	propModificationDate = "modification date"
	propCompletionDate   = "completion date"
	propCancellationDate = "cancellation date"
	propProject          = "project"
	propArea             = "area"
	propTagNames         = "tag names"
	propParentTag        = "parent tag"
	propTodoIDs          = "todo ids"

	// Reserved create/update keys that are not record properties. The
	// builder turns them into follow-up statements after the record write.
	propWhen      = "when"
	propChecklist = "checklist"
)

// todoSchema maps todo property names to their decode kinds. Properties the
// application emits but the schema omits are ignored.
//
//nolint:gochecknoglobals // Constant-like schema tables
var todoSchema = map[string]propKind{
	"id":                 kindText,
	propName:             kindText,
	propNotes:            kindText,
	propStatus:           kindStatus,
	propDueDate:          kindDate,
	propActivationDate:   kindDate,
	propCreationDate:     kindDate,
	propModificationDate: kindDate,
	propCompletionDate:   kindDate,
	propCancellationDate: kindDate,
	propProject:          kindReference,
	propArea:             kindReference,
	propTagNames:         kindTagNames,
}

//nolint:gochecknoglobals // Constant-like schema tables
var projectSchema = map[string]propKind{
	"id":                 kindText,
	propName:             kindText,
	propNotes:            kindText,
	propStatus:           kindStatus,
	propDueDate:          kindDate,
	propActivationDate:   kindDate,
	propCreationDate:     kindDate,
	propModificationDate: kindDate,
	propCompletionDate:   kindDate,
	propCancellationDate: kindDate,
	propArea:             kindReference,
	propTagNames:         kindTagNames,
	propTodoIDs:          kindIDList,
}

//nolint:gochecknoglobals // Constant-like schema tables
var areaSchema = map[string]propKind{
	"id":         kindText,
	propName:     kindText,
	propTagNames: kindTagNames,
}

//nolint:gochecknoglobals // Constant-like schema tables
var tagSchema = map[string]propKind{
	"id":          kindText,
	propName:      kindText,
	propParentTag: kindReference,
}

// schemas selects the property schema for a record kind.
//
//nolint:gochecknoglobals // Constant-like schema tables
var schemas = map[RecordKind]map[string]propKind{
	KindTodo:    todoSchema,
	KindProject: projectSchema,
	KindArea:    areaSchema,
	KindTag:     tagSchema,
}

// createOrder lists the record properties each kind accepts at creation time
// and the order they are emitted in the properties record. Reserved keys
// (when, checklist) and relation keys (project, area, parent tag) are
// excluded: they become follow-up statements.
//
//nolint:gochecknoglobals // Constant-like schema tables
var createOrder = map[RecordKind][]string{
	KindTodo:    {propName, propNotes, propDueDate, propTagNames},
	KindProject: {propName, propNotes, propDueDate, propTagNames},
	KindArea:    {propName},
	KindTag:     {propName},
}

// updateOrder lists the properties each kind accepts on update, in the order
// their set statements are emitted.
//
//nolint:gochecknoglobals // Constant-like schema tables
var updateOrder = map[RecordKind][]string{
	KindTodo:    {propName, propNotes, propStatus, propDueDate, propTagNames, propProject, propArea},
	KindProject: {propName, propNotes, propStatus, propDueDate, propTagNames, propArea},
	KindArea:    {propName},
	KindTag:     {propName},
}
