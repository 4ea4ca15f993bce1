package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thingsbridge/thingsbridge/internal/constants"
	"github.com/thingsbridge/thingsbridge/internal/domain"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// dueDateLayout is the accepted format for --due flag values.
const dueDateLayout = "2006-01-02"

// AddTodosCommand adds the todos command group to the root command.
func AddTodosCommand(root *cobra.Command, flags *GlobalFlags) {
	todosCmd := &cobra.Command{
		Use:   "todos",
		Short: "List, inspect, and modify todos",
		Long: `Commands for working with todos.

Examples:
  thingsbridge todos list                      # All todos
  thingsbridge todos list --list Today         # Todos in the Today list
  thingsbridge todos list --project PROJ-ID    # Todos in a project
  thingsbridge todos get TODO-ID               # Inspect a single todo
  thingsbridge todos add "Buy milk" --when today --tags errand
  thingsbridge todos update TODO-ID --name "Buy oat milk"
  thingsbridge todos complete TODO-ID
  thingsbridge todos delete TODO-ID`,
	}

	todosCmd.AddCommand(newTodosListCmd(flags))
	todosCmd.AddCommand(newTodosGetCmd(flags))
	todosCmd.AddCommand(newTodosAddCmd(flags))
	todosCmd.AddCommand(newTodosUpdateCmd(flags))
	todosCmd.AddCommand(newTodosCompleteCmd(flags))
	todosCmd.AddCommand(newTodosDeleteCmd(flags))

	root.AddCommand(todosCmd)
}

// todosListFlags holds the scope filters for the list command.
type todosListFlags struct {
	list    string
	project string
	area    string
	tag     string
}

// newTodosListCmd creates the todos list command.
func newTodosListCmd(flags *GlobalFlags) *cobra.Command {
	listFlags := &todosListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos, optionally scoped to a list, project, area, or tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTodosList(cmd.Context(), os.Stdout, flags, listFlags)
		},
	}

	cmd.Flags().StringVar(&listFlags.list, "list", "",
		"Built-in list name, one of: "+strings.Join(constants.BuiltinLists, ", "))
	cmd.Flags().StringVar(&listFlags.project, "project", "", "Project identifier")
	cmd.Flags().StringVar(&listFlags.area, "area", "", "Area identifier")
	cmd.Flags().StringVar(&listFlags.tag, "tag", "", "Tag name")
	cmd.MarkFlagsMutuallyExclusive("list", "project", "area", "tag")

	return cmd
}

// runTodosList executes the todos list command.
func runTodosList(ctx context.Context, w io.Writer, flags *GlobalFlags, listFlags *todosListFlags) error {
	client, err := newBridgeClient(ctx)
	if err != nil {
		return err
	}

	var todos []domain.Todo
	switch {
	case listFlags.list != "":
		todos, err = client.GetTodosByList(ctx, listFlags.list)
	case listFlags.project != "":
		todos, err = client.GetTodosByProject(ctx, listFlags.project)
	case listFlags.area != "":
		todos, err = client.GetTodosByArea(ctx, listFlags.area)
	case listFlags.tag != "":
		todos, err = client.GetTodosByTag(ctx, listFlags.tag)
	default:
		todos, err = client.GetAllTodos(ctx)
	}
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return newOutput(w, flags).JSON(todos)
	}
	if len(todos) == 0 {
		newOutput(w, flags).Info("No todos found")
		return nil
	}
	writeTodoTable(w, todos)
	return nil
}

// newTodosGetCmd creates the todos get command.
func newTodosGetCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single todo by identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			todo, err := client.GetTodo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(todo)
			}
			writeTodoDetail(os.Stdout, todo)
			return nil
		},
	}
}

// todosAddFlags holds the field values for the add command.
type todosAddFlags struct {
	notes     string
	due       string
	when      string
	tags      []string
	project   string
	area      string
	checklist []string
}

// newTodosAddCmd creates the todos add command.
func newTodosAddCmd(flags *GlobalFlags) *cobra.Command {
	addFlags := &todosAddFlags{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new todo",
		Long: `Create a new todo with the given name.

Examples:
  thingsbridge todos add "Buy milk"
  thingsbridge todos add "Buy milk" --when today --due 2026-09-05
  thingsbridge todos add "Pack bags" --project PROJ-ID --tags "errand,travel"
  thingsbridge todos add "Groceries" --checklist Milk --checklist Eggs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodosAdd(cmd.Context(), os.Stdout, flags, addFlags, args[0])
		},
	}

	cmd.Flags().StringVarP(&addFlags.notes, "notes", "n", "", "Note text")
	cmd.Flags().StringVar(&addFlags.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&addFlags.when, "when", "", "Schedule into a built-in list (today, tomorrow, upcoming, anytime, someday)")
	cmd.Flags().StringSliceVarP(&addFlags.tags, "tags", "t", nil, "Tag names to attach")
	cmd.Flags().StringVarP(&addFlags.project, "project", "p", "", "Project name or identifier")
	cmd.Flags().StringVarP(&addFlags.area, "area", "a", "", "Area name or identifier")
	cmd.Flags().StringArrayVar(&addFlags.checklist, "checklist", nil, "Checklist item (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("project", "area")

	return cmd
}

// runTodosAdd executes the todos add command.
func runTodosAdd(ctx context.Context, w io.Writer, flags *GlobalFlags, addFlags *todosAddFlags, name string) error {
	fields := domain.TodoCreate{
		Name:      name,
		Notes:     addFlags.notes,
		When:      addFlags.when,
		Tags:      addFlags.tags,
		Project:   addFlags.project,
		Area:      addFlags.area,
		Checklist: addFlags.checklist,
	}

	due, err := parseDueFlag(addFlags.due)
	if err != nil {
		return err
	}
	if due != nil && !due.IsZero() {
		fields.DueDate = due
	}

	client, err := newBridgeClient(ctx)
	if err != nil {
		return err
	}
	todo, err := client.CreateTodo(ctx, fields)
	if err != nil {
		return err
	}

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(todo)
	}
	out.Success(fmt.Sprintf("Created todo %s", todo.ID))
	writeTodoDetail(w, todo)
	return nil
}

// todosUpdateFlags holds the field overrides for the update command.
type todosUpdateFlags struct {
	name    string
	notes   string
	status  string
	due     string
	when    string
	tags    string
	project string
	area    string
}

// newTodosUpdateCmd creates the todos update command.
func newTodosUpdateCmd(flags *GlobalFlags) *cobra.Command {
	updateFlags := &todosUpdateFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing todo",
		Long: `Update fields of an existing todo. Only flags that are set are applied;
passing an empty value clears the field.

Examples:
  thingsbridge todos update TODO-ID --name "Buy oat milk"
  thingsbridge todos update TODO-ID --status completed
  thingsbridge todos update TODO-ID --due ""           # clear the due date
  thingsbridge todos update TODO-ID --project ""       # remove from project
  thingsbridge todos update TODO-ID --when someday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := todoUpdateFromFlags(cmd, updateFlags)
			if err != nil {
				return err
			}
			return runTodosUpdate(cmd.Context(), os.Stdout, flags, args[0], update)
		},
	}

	cmd.Flags().StringVar(&updateFlags.name, "name", "", "New title")
	cmd.Flags().StringVarP(&updateFlags.notes, "notes", "n", "", "New note text")
	cmd.Flags().StringVar(&updateFlags.status, "status", "", "New status (open, completed, canceled)")
	cmd.Flags().StringVar(&updateFlags.due, "due", "", "New due date (YYYY-MM-DD), empty to clear")
	cmd.Flags().StringVar(&updateFlags.when, "when", "", "Reschedule into a built-in list")
	cmd.Flags().StringVarP(&updateFlags.tags, "tags", "t", "", "Comma-separated tag names, empty to remove all")
	cmd.Flags().StringVarP(&updateFlags.project, "project", "p", "", "Project name or identifier, empty to remove")
	cmd.Flags().StringVarP(&updateFlags.area, "area", "a", "", "Area name or identifier, empty to remove")

	return cmd
}

// todoUpdateFromFlags converts the set flags to an update field set. Flags
// that were not set on the command line stay nil and leave the field alone.
func todoUpdateFromFlags(cmd *cobra.Command, updateFlags *todosUpdateFlags) (domain.TodoUpdate, error) {
	var update domain.TodoUpdate

	if cmd.Flags().Changed("name") {
		update.Name = &updateFlags.name
	}
	if cmd.Flags().Changed("notes") {
		update.Notes = &updateFlags.notes
	}
	if cmd.Flags().Changed("status") {
		status, ok := domain.ParseStatus(updateFlags.status)
		if !ok {
			return update, fmt.Errorf("%w: unknown status %q", bridgeerrors.ErrInvalidCommand, updateFlags.status)
		}
		update.Status = &status
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDueFlag(updateFlags.due)
		if err != nil {
			return update, err
		}
		update.DueDate = due
	}
	if cmd.Flags().Changed("when") {
		update.When = &updateFlags.when
	}
	if cmd.Flags().Changed("tags") {
		tags := splitTagsFlag(updateFlags.tags)
		update.Tags = &tags
	}
	if cmd.Flags().Changed("project") {
		update.Project = &updateFlags.project
	}
	if cmd.Flags().Changed("area") {
		update.Area = &updateFlags.area
	}

	return update, nil
}

// runTodosUpdate executes the todos update command.
func runTodosUpdate(ctx context.Context, w io.Writer, flags *GlobalFlags, id string, update domain.TodoUpdate) error {
	client, err := newBridgeClient(ctx)
	if err != nil {
		return err
	}
	todo, err := client.UpdateTodo(ctx, id, update)
	if err != nil {
		return err
	}

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(todo)
	}
	out.Success(fmt.Sprintf("Updated todo %s", todo.ID))
	writeTodoDetail(w, todo)
	return nil
}

// newTodosCompleteCmd creates the todos complete command.
func newTodosCompleteCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.StatusCompleted
			return runTodosUpdate(cmd.Context(), os.Stdout, flags, args[0],
				domain.TodoUpdate{Status: &status})
		},
	}
}

// newTodosDeleteCmd creates the todos delete command.
func newTodosDeleteCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DeleteTodo(cmd.Context(), args[0]); err != nil {
				return err
			}
			out := newOutput(os.Stdout, flags)
			if flags.Output == OutputJSON {
				return out.JSON(map[string]string{"deleted": args[0]})
			}
			out.Success(fmt.Sprintf("Deleted todo %s", args[0]))
			return nil
		},
	}
}

// parseDueFlag parses a --due flag value. An empty string becomes a pointer
// to the zero time, which clears the date on update.
func parseDueFlag(raw string) (*time.Time, error) {
	if raw == "" {
		return &time.Time{}, nil
	}
	due, err := time.ParseInLocation(dueDateLayout, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: due date %q must use YYYY-MM-DD", bridgeerrors.ErrInvalidCommand, raw)
	}
	return &due, nil
}

// splitTagsFlag splits a comma-separated tag list, dropping empty entries so
// an empty flag value means "remove all tags".
func splitTagsFlag(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
