package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/thingsbridge/thingsbridge/internal/domain"
	"github.com/thingsbridge/thingsbridge/internal/tui"
)

// Column widths for the list tables. Name gets the widest column since it
// carries the most information.
const (
	colWidthID     = 24
	colWidthName   = 40
	colWidthStatus = 11
	colWidthDate   = 12
	colWidthTags   = 24
)

// formatDate renders an optional date as YYYY-MM-DD, or a dash when unset.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

// formatStatus renders a status with its icon.
func formatStatus(status domain.Status) string {
	return tui.StatusIcon(status) + " " + status.String()
}

// writeTodoTable writes todos in fixed-width table format.
func writeTodoTable(w io.Writer, todos []domain.Todo) {
	table := tui.NewTable(w, []tui.TableColumn{
		{Name: "ID", Width: colWidthID},
		{Name: "NAME", Width: colWidthName},
		{Name: "STATUS", Width: colWidthStatus},
		{Name: "DUE", Width: colWidthDate},
		{Name: "TAGS", Width: colWidthTags},
	})
	table.WriteHeader()
	for i := range todos {
		t := &todos[i]
		table.WriteRow(t.ID, t.Name, formatStatus(t.Status),
			formatDate(t.DueDate), strings.Join(t.Tags, ", "))
	}
}

// writeProjectTable writes projects in fixed-width table format.
func writeProjectTable(w io.Writer, projects []domain.Project) {
	table := tui.NewTable(w, []tui.TableColumn{
		{Name: "ID", Width: colWidthID},
		{Name: "NAME", Width: colWidthName},
		{Name: "STATUS", Width: colWidthStatus},
		{Name: "DUE", Width: colWidthDate},
		{Name: "AREA", Width: colWidthID},
	})
	table.WriteHeader()
	for i := range projects {
		p := &projects[i]
		table.WriteRow(p.ID, p.Name, formatStatus(p.Status),
			formatDate(p.DueDate), p.AreaID)
	}
}

// writeAreaTable writes areas in fixed-width table format.
func writeAreaTable(w io.Writer, areas []domain.Area) {
	table := tui.NewTable(w, []tui.TableColumn{
		{Name: "ID", Width: colWidthID},
		{Name: "NAME", Width: colWidthName},
		{Name: "TAGS", Width: colWidthTags},
	})
	table.WriteHeader()
	for i := range areas {
		a := &areas[i]
		table.WriteRow(a.ID, a.Name, strings.Join(a.Tags, ", "))
	}
}

// writeTagTable writes tags in fixed-width table format.
func writeTagTable(w io.Writer, tags []domain.Tag) {
	table := tui.NewTable(w, []tui.TableColumn{
		{Name: "ID", Width: colWidthID},
		{Name: "NAME", Width: colWidthName},
	})
	table.WriteHeader()
	for i := range tags {
		table.WriteRow(tags[i].ID, tags[i].Name)
	}
}

// writeTodoDetail writes a single todo in key-value format.
func writeTodoDetail(w io.Writer, todo *domain.Todo) {
	styles := tui.NewOutputStyles()
	writeField(w, styles, "ID", todo.ID)
	writeField(w, styles, "Name", todo.Name)
	writeField(w, styles, "Status", formatStatus(todo.Status))
	if todo.Notes != "" {
		writeField(w, styles, "Notes", todo.Notes)
	}
	writeDateField(w, styles, "Due", todo.DueDate)
	writeDateField(w, styles, "Activates", todo.ActivationDate)
	writeDateField(w, styles, "Created", todo.CreationDate)
	writeDateField(w, styles, "Modified", todo.ModificationDate)
	writeDateField(w, styles, "Completed", todo.CompletionDate)
	writeDateField(w, styles, "Canceled", todo.CancellationDate)
	if todo.ProjectID != "" {
		writeField(w, styles, "Project", todo.ProjectID)
	}
	if todo.AreaID != "" {
		writeField(w, styles, "Area", todo.AreaID)
	}
	if len(todo.Tags) > 0 {
		writeField(w, styles, "Tags", strings.Join(todo.Tags, ", "))
	}
}

// writeProjectDetail writes a single project in key-value format.
func writeProjectDetail(w io.Writer, project *domain.Project) {
	styles := tui.NewOutputStyles()
	writeField(w, styles, "ID", project.ID)
	writeField(w, styles, "Name", project.Name)
	writeField(w, styles, "Status", formatStatus(project.Status))
	if project.Notes != "" {
		writeField(w, styles, "Notes", project.Notes)
	}
	writeDateField(w, styles, "Due", project.DueDate)
	writeDateField(w, styles, "Activates", project.ActivationDate)
	writeDateField(w, styles, "Created", project.CreationDate)
	writeDateField(w, styles, "Modified", project.ModificationDate)
	if project.AreaID != "" {
		writeField(w, styles, "Area", project.AreaID)
	}
	if len(project.Tags) > 0 {
		writeField(w, styles, "Tags", strings.Join(project.Tags, ", "))
	}
	if len(project.TodoIDs) > 0 {
		writeField(w, styles, "Todos", strings.Join(project.TodoIDs, ", "))
	}
}

// writeAreaDetail writes a single area in key-value format.
func writeAreaDetail(w io.Writer, area *domain.Area) {
	styles := tui.NewOutputStyles()
	writeField(w, styles, "ID", area.ID)
	writeField(w, styles, "Name", area.Name)
	if len(area.Tags) > 0 {
		writeField(w, styles, "Tags", strings.Join(area.Tags, ", "))
	}
}

// writeTagDetail writes a single tag in key-value format.
func writeTagDetail(w io.Writer, tag *domain.Tag) {
	styles := tui.NewOutputStyles()
	writeField(w, styles, "ID", tag.ID)
	writeField(w, styles, "Name", tag.Name)
}

func writeField(w io.Writer, styles *tui.OutputStyles, label, value string) {
	fmt.Fprintf(w, "%s %s\n", styles.Header.Render(label+":"), value)
}

func writeDateField(w io.Writer, styles *tui.OutputStyles, label string, t *time.Time) {
	if t == nil {
		return
	}
	writeField(w, styles, label, t.Format("2006-01-02 15:04"))
}
