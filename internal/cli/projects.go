package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thingsbridge/thingsbridge/internal/domain"
	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

// AddProjectsCommand adds the projects command group to the root command.
func AddProjectsCommand(root *cobra.Command, flags *GlobalFlags) {
	projectsCmd := &cobra.Command{
		Use:   "projects",
		Short: "List, inspect, and modify projects",
		Long: `Commands for working with projects.

Examples:
  thingsbridge projects list                   # All projects
  thingsbridge projects list --area AREA-ID    # Projects in an area
  thingsbridge projects get PROJ-ID            # Inspect a single project
  thingsbridge projects add "Spring cleaning" --area AREA-ID
  thingsbridge projects update PROJ-ID --status completed`,
	}

	projectsCmd.AddCommand(newProjectsListCmd(flags))
	projectsCmd.AddCommand(newProjectsGetCmd(flags))
	projectsCmd.AddCommand(newProjectsAddCmd(flags))
	projectsCmd.AddCommand(newProjectsUpdateCmd(flags))

	root.AddCommand(projectsCmd)
}

// newProjectsListCmd creates the projects list command.
func newProjectsListCmd(flags *GlobalFlags) *cobra.Command {
	var area string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally scoped to an area",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjectsList(cmd.Context(), os.Stdout, flags, area)
		},
	}

	cmd.Flags().StringVar(&area, "area", "", "Area identifier")

	return cmd
}

// runProjectsList executes the projects list command.
func runProjectsList(ctx context.Context, w io.Writer, flags *GlobalFlags, area string) error {
	client, err := newBridgeClient(ctx)
	if err != nil {
		return err
	}

	var projects []domain.Project
	if area != "" {
		projects, err = client.GetProjectsByArea(ctx, area)
	} else {
		projects, err = client.GetAllProjects(ctx)
	}
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return newOutput(w, flags).JSON(projects)
	}
	if len(projects) == 0 {
		newOutput(w, flags).Info("No projects found")
		return nil
	}
	writeProjectTable(w, projects)
	return nil
}

// newProjectsGetCmd creates the projects get command.
func newProjectsGetCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single project by identifier, including its todo identifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBridgeClient(cmd.Context())
			if err != nil {
				return err
			}
			project, err := client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if flags.Output == OutputJSON {
				return newOutput(os.Stdout, flags).JSON(project)
			}
			writeProjectDetail(os.Stdout, project)
			return nil
		},
	}
}

// projectsAddFlags holds the field values for the add command.
type projectsAddFlags struct {
	notes    string
	deadline string
	when     string
	tags     []string
	area     string
}

// newProjectsAddCmd creates the projects add command.
func newProjectsAddCmd(flags *GlobalFlags) *cobra.Command {
	addFlags := &projectsAddFlags{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsAdd(cmd.Context(), os.Stdout, flags, addFlags, args[0])
		},
	}

	cmd.Flags().StringVarP(&addFlags.notes, "notes", "n", "", "Note text")
	cmd.Flags().StringVar(&addFlags.deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&addFlags.when, "when", "", "Schedule into a built-in list (today, tomorrow, upcoming, anytime, someday)")
	cmd.Flags().StringSliceVarP(&addFlags.tags, "tags", "t", nil, "Tag names to attach")
	cmd.Flags().StringVarP(&addFlags.area, "area", "a", "", "Area name or identifier")

	return cmd
}

// runProjectsAdd executes the projects add command.
func runProjectsAdd(ctx context.Context, w io.Writer, flags *GlobalFlags, addFlags *projectsAddFlags, name string) error {
	fields := domain.ProjectCreate{
		Name:  name,
		Notes: addFlags.notes,
		When:  addFlags.when,
		Tags:  addFlags.tags,
		Area:  addFlags.area,
	}

	deadline, err := parseDueFlag(addFlags.deadline)
	if err != nil {
		return err
	}
	if deadline != nil && !deadline.IsZero() {
		fields.Deadline = deadline
	}

	client, err := newBridgeClient(ctx)
	if err != nil {
		return err
	}
	project, err := client.CreateProject(ctx, fields)
	if err != nil {
		return err
	}

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(project)
	}
	out.Success(fmt.Sprintf("Created project %s", project.ID))
	writeProjectDetail(w, project)
	return nil
}

// projectsUpdateFlags holds the field overrides for the update command.
type projectsUpdateFlags struct {
	name     string
	notes    string
	status   string
	deadline string
	when     string
	tags     string
	area     string
}

// newProjectsUpdateCmd creates the projects update command.
func newProjectsUpdateCmd(flags *GlobalFlags) *cobra.Command {
	updateFlags := &projectsUpdateFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing project",
		Long: `Update fields of an existing project. Only flags that are set are
applied; passing an empty value clears the field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := projectUpdateFromFlags(cmd, updateFlags)
			if err != nil {
				return err
			}
			return runProjectsUpdate(cmd.Context(), os.Stdout, flags, args[0], update)
		},
	}

	cmd.Flags().StringVar(&updateFlags.name, "name", "", "New title")
	cmd.Flags().StringVarP(&updateFlags.notes, "notes", "n", "", "New note text")
	cmd.Flags().StringVar(&updateFlags.status, "status", "", "New status (open, completed, canceled)")
	cmd.Flags().StringVar(&updateFlags.deadline, "deadline", "", "New deadline (YYYY-MM-DD), empty to clear")
	cmd.Flags().StringVar(&updateFlags.when, "when", "", "Reschedule into a built-in list")
	cmd.Flags().StringVarP(&updateFlags.tags, "tags", "t", "", "Comma-separated tag names, empty to remove all")
	cmd.Flags().StringVarP(&updateFlags.area, "area", "a", "", "Area name or identifier, empty to remove")

	return cmd
}

// projectUpdateFromFlags converts the set flags to an update field set.
func projectUpdateFromFlags(cmd *cobra.Command, updateFlags *projectsUpdateFlags) (domain.ProjectUpdate, error) {
	var update domain.ProjectUpdate

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
	if cmd.Flags().Changed("deadline") {
		deadline, err := parseDueFlag(updateFlags.deadline)
		if err != nil {
			return update, err
		}
		update.Deadline = deadline
	}
	if cmd.Flags().Changed("when") {
		update.When = &updateFlags.when
	}
	if cmd.Flags().Changed("tags") {
		tags := splitTagsFlag(updateFlags.tags)
		update.Tags = &tags
	}
	if cmd.Flags().Changed("area") {
		update.Area = &updateFlags.area
	}

	return update, nil
}

// runProjectsUpdate executes the projects update command.
func runProjectsUpdate(ctx context.Context, w io.Writer, flags *GlobalFlags, id string, update domain.ProjectUpdate) error {
	client, err := newBridgeClient(ctx)
	if err != nil {
		return err
	}
	project, err := client.UpdateProject(ctx, id, update)
	if err != nil {
		return err
	}

	out := newOutput(w, flags)
	if flags.Output == OutputJSON {
		return out.JSON(project)
	}
	out.Success(fmt.Sprintf("Updated project %s", project.ID))
	writeProjectDetail(w, project)
	return nil
}
