// Package things implements the Things 3 specific layer of the bridge:
// command descriptors and validation, per-entity script builders, record
// schemas and parsing, and the Client exposing typed operations.
//
// Every operation follows the same pipeline: assemble a descriptor,
// validate it, build the script, execute it through the engine, and parse
// the output into domain records. Each call runs exactly one interpreter
// process; there is no caching and no retrying.
package things

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/thingsbridge/thingsbridge/internal/applescript"
	"github.com/thingsbridge/thingsbridge/internal/constants"
	"github.com/thingsbridge/thingsbridge/internal/domain"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// ScriptRunner is the execution dependency of the Client. The production
// implementation is applescript.Engine; tests substitute a fake returning
// canned output.
type ScriptRunner interface {
	// Run executes a script and returns its trimmed standard output.
	Run(ctx context.Context, script string) (string, error)

	// RunStructured executes a script with structured output rendering.
	RunStructured(ctx context.Context, script string) (string, error)
}

// Client is the typed domain API over the Things 3 automation interface.
type Client struct {
	runner  ScriptRunner
	builder *Builder
	logger  zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithRunner injects the script runner, typically a fake in tests.
func WithRunner(runner ScriptRunner) ClientOption {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// WithApp overrides the target application name.
func WithApp(app string) ClientOption {
	return func(c *Client) {
		if app != "" {
			c.builder = NewBuilder(app)
		}
	}
}

// WithLogger sets the logger for operation diagnostics.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client with a default execution engine targeting the
// default application.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		runner:  applescript.NewEngine(),
		builder: NewBuilder(constants.DefaultAppName),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetTodo fetches one todo by identifier. Returns ErrNotFound when no such
// record exists.
func (c *Client) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	out, err := c.query(ctx, "get_todo", Descriptor{Op: OpGetByID, Target: KindTodo, ID: id})
	if err != nil {
		return nil, notFound(err, KindTodo, id)
	}
	todos, err := ParseTodos(out)
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrNotFound, "to do %q", id)
	}
	return &todos[0], nil
}

// GetAllTodos fetches every todo in the database.
func (c *Client) GetAllTodos(ctx context.Context) ([]domain.Todo, error) {
	out, err := c.query(ctx, "get_all_todos", Descriptor{Op: OpGetAll, Target: KindTodo})
	if err != nil {
		return nil, err
	}
	return ParseTodos(out)
}

// GetTodosByList fetches the todos of a built-in list, e.g. "Today". The
// list name is matched case-insensitively against the built-in lists and
// canonicalized before the script is built.
func (c *Client) GetTodosByList(ctx context.Context, list string) ([]domain.Todo, error) {
	if list == "" {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrEmptyValue, "list name")
	}
	canonical, ok := canonicalList(list)
	if !ok {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrInvalidCommand,
			"unknown list %q, valid lists: %s", list, strings.Join(constants.BuiltinLists, ", "))
	}
	list = canonical
	d := Descriptor{
		Op:        OpGetFiltered,
		Target:    KindTodo,
		Container: applescript.Expr(applescript.Reference("list", list, false)),
	}
	out, err := c.query(ctx, "get_todos_by_list", d)
	if err != nil {
		return nil, notFound(err, "list", list)
	}
	return ParseTodos(out)
}

// GetTodosByProject fetches the todos contained in a project.
func (c *Client) GetTodosByProject(ctx context.Context, projectID string) ([]domain.Todo, error) {
	if projectID == "" {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrEmptyValue, "project id")
	}
	d := Descriptor{
		Op:        OpGetFiltered,
		Target:    KindTodo,
		Container: applescript.Expr(applescript.Reference("project", projectID, true)),
	}
	out, err := c.query(ctx, "get_todos_by_project", d)
	if err != nil {
		return nil, notFound(err, KindProject, projectID)
	}
	return ParseTodos(out)
}

// GetTodosByArea fetches the todos directly contained in an area.
func (c *Client) GetTodosByArea(ctx context.Context, areaID string) ([]domain.Todo, error) {
	if areaID == "" {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrEmptyValue, "area id")
	}
	d := Descriptor{
		Op:        OpGetFiltered,
		Target:    KindTodo,
		Container: applescript.Expr(applescript.Reference("area", areaID, true)),
	}
	out, err := c.query(ctx, "get_todos_by_area", d)
	if err != nil {
		return nil, notFound(err, KindArea, areaID)
	}
	return ParseTodos(out)
}

// GetTodosByTag fetches the todos carrying a tag, by tag name.
func (c *Client) GetTodosByTag(ctx context.Context, tag string) ([]domain.Todo, error) {
	if tag == "" {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrEmptyValue, "tag name")
	}
	d := Descriptor{
		Op:        OpGetFiltered,
		Target:    KindTodo,
		Container: applescript.Expr(applescript.Reference("tag", tag, false)),
	}
	out, err := c.query(ctx, "get_todos_by_tag", d)
	if err != nil {
		return nil, notFound(err, KindTag, tag)
	}
	return ParseTodos(out)
}

// CreateTodo creates a todo and returns the persisted record, re-fetched by
// the identifier the application assigned.
func (c *Client) CreateTodo(ctx context.Context, fields domain.TodoCreate) (*domain.Todo, error) {
	props := map[string]any{propName: fields.Name}
	if fields.Notes != "" {
		props[propNotes] = fields.Notes
	}
	if fields.DueDate != nil {
		props[propDueDate] = *fields.DueDate
	}
	if len(fields.Tags) > 0 {
		props[propTagNames] = strings.Join(fields.Tags, ", ")
	}
	if fields.When != "" {
		props[propWhen] = fields.When
	}
	if fields.Project != "" {
		props[propProject] = fields.Project
	}
	if fields.Area != "" {
		props[propArea] = fields.Area
	}
	if len(fields.Checklist) > 0 {
		props[propChecklist] = fields.Checklist
	}

	id, err := c.create(ctx, "create_todo", Descriptor{Op: OpCreate, Target: KindTodo, Properties: props})
	if err != nil {
		return nil, err
	}
	return c.GetTodo(ctx, id)
}

// UpdateTodo applies an update to a todo and returns the re-fetched record.
// Nil fields are untouched; pointers to zero values clear their field.
func (c *Client) UpdateTodo(ctx context.Context, id string, update domain.TodoUpdate) (*domain.Todo, error) {
	if update.IsZero() {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrInvalidCommand, "update with no properties")
	}

	props := make(map[string]any)
	if update.Name != nil {
		props[propName] = *update.Name
	}
	if update.Notes != nil {
		props[propNotes] = *update.Notes
	}
	if update.Status != nil {
		props[propStatus] = *update.Status
	}
	if update.DueDate != nil {
		props[propDueDate] = *update.DueDate
	}
	if update.Tags != nil {
		props[propTagNames] = strings.Join(*update.Tags, ", ")
	}
	if update.Project != nil {
		props[propProject] = *update.Project
	}
	if update.Area != nil {
		props[propArea] = *update.Area
	}
	if update.When != nil {
		props[propWhen] = *update.When
	}

	d := Descriptor{Op: OpUpdate, Target: KindTodo, ID: id, Properties: props}
	if _, err := c.exec(ctx, "update_todo", d); err != nil {
		return nil, notFound(err, KindTodo, id)
	}
	return c.GetTodo(ctx, id)
}

// DeleteTodo moves a todo to the trash.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	d := Descriptor{Op: OpDelete, Target: KindTodo, ID: id}
	if _, err := c.exec(ctx, "delete_todo", d); err != nil {
		return notFound(err, KindTodo, id)
	}
	return nil
}

// GetProject fetches one project by identifier, including the identifiers
// of its contained todos.
func (c *Client) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	out, err := c.query(ctx, "get_project", Descriptor{Op: OpGetByID, Target: KindProject, ID: id})
	if err != nil {
		return nil, notFound(err, KindProject, id)
	}
	projects, err := ParseProjects(out)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrNotFound, "project %q", id)
	}
	return &projects[0], nil
}

// GetAllProjects fetches every project. TodoIDs are not populated on list
// queries; use GetProject or GetTodosByProject to resolve contents.
func (c *Client) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	out, err := c.query(ctx, "get_all_projects", Descriptor{Op: OpGetAll, Target: KindProject})
	if err != nil {
		return nil, err
	}
	return ParseProjects(out)
}

// GetProjectsByArea fetches the projects assigned to an area.
func (c *Client) GetProjectsByArea(ctx context.Context, areaID string) ([]domain.Project, error) {
	if areaID == "" {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrEmptyValue, "area id")
	}
	d := Descriptor{
		Op:        OpGetFiltered,
		Target:    KindProject,
		Container: applescript.Expr(applescript.Reference("area", areaID, true)),
	}
	out, err := c.query(ctx, "get_projects_by_area", d)
	if err != nil {
		return nil, notFound(err, KindArea, areaID)
	}
	return ParseProjects(out)
}

// CreateProject creates a project and returns the persisted record.
func (c *Client) CreateProject(ctx context.Context, fields domain.ProjectCreate) (*domain.Project, error) {
	props := map[string]any{propName: fields.Name}
	if fields.Notes != "" {
		props[propNotes] = fields.Notes
	}
	if fields.Deadline != nil {
		props[propDueDate] = *fields.Deadline
	}
	if len(fields.Tags) > 0 {
		props[propTagNames] = strings.Join(fields.Tags, ", ")
	}
	if fields.When != "" {
		props[propWhen] = fields.When
	}
	if fields.Area != "" {
		props[propArea] = fields.Area
	}

	id, err := c.create(ctx, "create_project", Descriptor{Op: OpCreate, Target: KindProject, Properties: props})
	if err != nil {
		return nil, err
	}
	return c.GetProject(ctx, id)
}

// UpdateProject applies an update to a project and returns the re-fetched
// record.
func (c *Client) UpdateProject(ctx context.Context, id string, update domain.ProjectUpdate) (*domain.Project, error) {
	if update.IsZero() {
		return nil, bridgeerrors.Wrap(bridgeerrors.ErrInvalidCommand, "update with no properties")
	}

	props := make(map[string]any)
	if update.Name != nil {
		props[propName] = *update.Name
	}
	if update.Notes != nil {
		props[propNotes] = *update.Notes
	}
	if update.Status != nil {
		props[propStatus] = *update.Status
	}
	if update.Deadline != nil {
		props[propDueDate] = *update.Deadline
	}
	if update.Tags != nil {
		props[propTagNames] = strings.Join(*update.Tags, ", ")
	}
	if update.Area != nil {
		props[propArea] = *update.Area
	}
	if update.When != nil {
		props[propWhen] = *update.When
	}

	d := Descriptor{Op: OpUpdate, Target: KindProject, ID: id, Properties: props}
	if _, err := c.exec(ctx, "update_project", d); err != nil {
		return nil, notFound(err, KindProject, id)
	}
	return c.GetProject(ctx, id)
}

// GetArea fetches one area by identifier.
func (c *Client) GetArea(ctx context.Context, id string) (*domain.Area, error) {
	out, err := c.query(ctx, "get_area", Descriptor{Op: OpGetByID, Target: KindArea, ID: id})
	if err != nil {
		return nil, notFound(err, KindArea, id)
	}
	areas, err := ParseAreas(out)
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrNotFound, "area %q", id)
	}
	return &areas[0], nil
}

// GetAllAreas fetches every area.
func (c *Client) GetAllAreas(ctx context.Context) ([]domain.Area, error) {
	out, err := c.query(ctx, "get_all_areas", Descriptor{Op: OpGetAll, Target: KindArea})
	if err != nil {
		return nil, err
	}
	return ParseAreas(out)
}

// GetTag fetches one tag by identifier.
func (c *Client) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	out, err := c.query(ctx, "get_tag", Descriptor{Op: OpGetByID, Target: KindTag, ID: id})
	if err != nil {
		return nil, notFound(err, KindTag, id)
	}
	tags, err := ParseTags(out)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, bridgeerrors.Wrapf(bridgeerrors.ErrNotFound, "tag %q", id)
	}
	return &tags[0], nil
}

// GetAllTags fetches every tag.
func (c *Client) GetAllTags(ctx context.Context) ([]domain.Tag, error) {
	out, err := c.query(ctx, "get_all_tags", Descriptor{Op: OpGetAll, Target: KindTag})
	if err != nil {
		return nil, err
	}
	return ParseTags(out)
}

// CreateTag creates a tag, optionally nested under a parent tag.
func (c *Client) CreateTag(ctx context.Context, fields domain.TagCreate) (*domain.Tag, error) {
	props := map[string]any{propName: fields.Name}
	if fields.Parent != "" {
		props[propParentTag] = fields.Parent
	}

	id, err := c.create(ctx, "create_tag", Descriptor{Op: OpCreate, Target: KindTag, Properties: props})
	if err != nil {
		return nil, err
	}
	return c.GetTag(ctx, id)
}

// Overview is a snapshot of the database's top-level records.
type Overview struct {
	Todos    []domain.Todo    `json:"todos"`
	Projects []domain.Project `json:"projects"`
	Areas    []domain.Area    `json:"areas"`
}

// Overview fetches todos, projects, and areas concurrently. The fetches are
// independent; each one still runs its own interpreter process.
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		todos, err := c.GetAllTodos(groupCtx)
		overview.Todos = todos
		return err
	})
	group.Go(func() error {
		projects, err := c.GetAllProjects(groupCtx)
		overview.Projects = projects
		return err
	})
	group.Go(func() error {
		areas, err := c.GetAllAreas(groupCtx)
		overview.Areas = areas
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

// query builds and runs a read operation with structured output. An empty
// by-id result maps to ErrNotFound.
func (c *Client) query(ctx context.Context, op string, d Descriptor) (string, error) {
	script, err := c.builder.Build(d)
	if err != nil {
		return "", err
	}

	logger := c.opLogger(op)
	logger.Debug().Msg("executing query")

	out, err := c.runner.RunStructured(ctx, script)
	if err != nil {
		logger.Debug().Err(err).Msg("query failed")
		return "", err
	}

	if d.Op == OpGetByID && (out == "" || applescript.IsMissing(out)) {
		return "", bridgeerrors.Wrapf(bridgeerrors.ErrNotFound, "%s %q", string(d.Target), d.ID)
	}
	return out, nil
}

// create builds and runs a create operation and returns the new record's
// identifier from the script output.
func (c *Client) create(ctx context.Context, op string, d Descriptor) (string, error) {
	out, err := c.exec(ctx, op, d)
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(out)
	if id == "" || applescript.IsMissing(id) {
		return "", bridgeerrors.Wrapf(bridgeerrors.ErrParse,
			"%s create returned no identifier", string(d.Target))
	}
	return id, nil
}

// exec builds and runs a write operation with raw output.
func (c *Client) exec(ctx context.Context, op string, d Descriptor) (string, error) {
	script, err := c.builder.Build(d)
	if err != nil {
		return "", err
	}

	logger := c.opLogger(op)
	logger.Debug().Msg("executing command")

	out, err := c.runner.Run(ctx, script)
	if err != nil {
		logger.Debug().Err(err).Msg("command failed")
		return "", err
	}
	return out, nil
}

// opLogger returns a logger carrying the operation name and a fresh
// correlation id, so the log lines of one call group together.
func (c *Client) opLogger(op string) zerolog.Logger {
	return c.logger.With().
		Str("op", op).
		Str("call_id", uuid.NewString()).
		Logger()
}

// canonicalList resolves a built-in list name case-insensitively, returning
// the capitalization the application expects.
func canonicalList(list string) (string, bool) {
	for _, name := range constants.BuiltinLists {
		if strings.EqualFold(name, list) {
			return name, true
		}
	}
	return "", false
}

// notFound maps the application's missing-record diagnostic to ErrNotFound,
// leaving every other failure untouched.
func notFound(err error, kind RecordKind, id string) error {
	var execErr *applescript.ExecutionError
	if errors.As(err, &execErr) && strings.Contains(execErr.Stderr, "Can't get") {
		return fmt.Errorf("%w: %s %q: %s",
			bridgeerrors.ErrNotFound, string(kind), id, execErr.Stderr)
	}
	return err
}
