// Package domain provides shared domain types for the things-bridge system.
//
// All record types are immutable value records once constructed: they are
// built either by the record parser from application output or by a caller
// assembling a Create/Update field set before submission. An update never
// patches a record in place; it produces a new record by re-fetching.
//
// Cross-entity relationships are weak references carried as plain identifier
// or name fields (Todo.ProjectID, Project.TodoIDs, tag names). They are
// resolved by separate lookup calls, never eagerly joined, so no record owns
// another.
package domain

import "time"

// Todo represents a single to-do item.
//
// The identifier is assigned by the application and is present and non-empty
// on every retrieved record. A Todo assembled for creation has no identifier
// until the application persists it; see TodoCreate.
type Todo struct {
	// ID is the unique identifier assigned by the application.
	ID string `json:"id"`

	// Name is the title of the todo.
	Name string `json:"name"`

	// Notes holds free-form note text. Empty when the todo has no notes.
	Notes string `json:"notes,omitempty"`

	// Status is the lifecycle state (open, completed, canceled).
	Status Status `json:"status"`

	// DueDate is the due date, nil when unset.
	DueDate *time.Time `json:"due_date,omitempty"`

	// ActivationDate is the date the todo becomes active, nil when unset.
	ActivationDate *time.Time `json:"activation_date,omitempty"`

	// CreationDate is when the record was created in the application.
	CreationDate *time.Time `json:"creation_date,omitempty"`

	// ModificationDate is when the record was last modified.
	ModificationDate *time.Time `json:"modification_date,omitempty"`

	// CompletionDate is set when Status is completed.
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	// CancellationDate is set when Status is canceled.
	CancellationDate *time.Time `json:"cancellation_date,omitempty"`

	// ProjectID is a weak reference to the containing project, empty when
	// the todo is not in a project.
	ProjectID string `json:"project_id,omitempty"`

	// AreaID is a weak reference to the containing area, empty when the
	// todo is not in an area.
	AreaID string `json:"area_id,omitempty"`

	// Tags holds the tag names attached to the todo. Order is preserved as
	// emitted but membership, not order, is what matters for equality.
	Tags []string `json:"tags,omitempty"`
}

// Project represents a project: the same shape as a Todo plus the ordered
// identifiers of the todos it contains.
type Project struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Notes            string     `json:"notes,omitempty"`
	Status           Status     `json:"status"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	ActivationDate   *time.Time `json:"activation_date,omitempty"`
	CreationDate     *time.Time `json:"creation_date,omitempty"`
	ModificationDate *time.Time `json:"modification_date,omitempty"`
	CompletionDate   *time.Time `json:"completion_date,omitempty"`
	CancellationDate *time.Time `json:"cancellation_date,omitempty"`

	// AreaID is a weak reference to the containing area.
	AreaID string `json:"area_id,omitempty"`

	// Tags holds the tag names attached to the project.
	Tags []string `json:"tags,omitempty"`

	// TodoIDs lists the contained todos by identifier only. This is a weak
	// reference: the authoritative store is the application, and the list
	// is populated on by-identifier lookups. Use a todos-by-project lookup
	// to resolve the records themselves.
	TodoIDs []string `json:"todo_ids,omitempty"`
}

// Area represents an area of responsibility. Areas carry no date fields.
type Area struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// Tag represents a tag. Tags carry no attributes beyond identity.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TodoCreate is the field set for creating a new todo. It deliberately lacks
// an identifier; the application assigns one at persistence time.
type TodoCreate struct {
	// Name is required.
	Name string `json:"name"`

	// Notes is optional note text.
	Notes string `json:"notes,omitempty"`

	// DueDate sets the due date when non-nil.
	DueDate *time.Time `json:"due_date,omitempty"`

	// When schedules the todo into a built-in list: "today", "tomorrow",
	// "upcoming", "anytime", or "someday".
	When string `json:"when,omitempty"`

	// Tags are tag names to attach.
	Tags []string `json:"tags,omitempty"`

	// Project assigns the todo to a project, either by identifier
	// (`project id "X"`) or by name.
	Project string `json:"project,omitempty"`

	// Area assigns the todo to an area, either by identifier or by name.
	Area string `json:"area,omitempty"`

	// Checklist holds checklist item names to create inside the todo.
	Checklist []string `json:"checklist,omitempty"`
}

// TodoUpdate is the field set for updating an existing todo. Nil pointer
// fields are left unchanged; a pointer to the zero value clears the field
// (empty string removes a project/area assignment, zero time clears the
// due date, empty slice removes all tags).
type TodoUpdate struct {
	Name    *string    `json:"name,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
	Status  *Status    `json:"status,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
	When    *string    `json:"when,omitempty"`
	Tags    *[]string  `json:"tags,omitempty"`
	Project *string    `json:"project,omitempty"`
	Area    *string    `json:"area,omitempty"`
}

// IsZero reports whether the update carries no changes.
func (u *TodoUpdate) IsZero() bool {
	return u.Name == nil && u.Notes == nil && u.Status == nil &&
		u.DueDate == nil && u.When == nil && u.Tags == nil &&
		u.Project == nil && u.Area == nil
}

// ProjectCreate is the field set for creating a new project.
type ProjectCreate struct {
	Name     string     `json:"name"`
	Notes    string     `json:"notes,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	When     string     `json:"when,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Area     string     `json:"area,omitempty"`
}

// ProjectUpdate is the field set for updating an existing project.
// The nil/zero-pointer semantics match TodoUpdate.
type ProjectUpdate struct {
	Name     *string    `json:"name,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
	When     *string    `json:"when,omitempty"`
	Tags     *[]string  `json:"tags,omitempty"`
	Area     *string    `json:"area,omitempty"`
}

// IsZero reports whether the update carries no changes.
func (u *ProjectUpdate) IsZero() bool {
	return u.Name == nil && u.Notes == nil && u.Status == nil &&
		u.Deadline == nil && u.When == nil && u.Tags == nil && u.Area == nil
}

// TagCreate is the field set for creating a new tag.
type TagCreate struct {
	Name string `json:"name"`

	// Parent optionally nests the tag under a parent tag, by name.
	Parent string `json:"parent,omitempty"`
}
