package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thingsbridge/thingsbridge/internal/domain"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatDate(nil))

	date := time.Date(2026, time.September, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-09-05", formatDate(&date))
}

func TestFormatStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "○ open", formatStatus(domain.StatusOpen))
	assert.Equal(t, "✓ completed", formatStatus(domain.StatusCompleted))
	assert.Equal(t, "✗ canceled", formatStatus(domain.StatusCanceled))
}

func TestWriteTodoTable(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.Local)
	todos := []domain.Todo{
		{ID: "A1", Name: "Buy milk", Status: domain.StatusOpen, DueDate: &due, Tags: []string{"errand", "home"}},
		{ID: "B2", Name: "Call dentist", Status: domain.StatusCompleted},
	}

	var buf bytes.Buffer
	writeTodoTable(&buf, todos)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "2026-09-05")
	assert.Contains(t, output, "errand, home")
	assert.Contains(t, output, "Call dentist")
}

func TestWriteTodoDetail(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, time.September, 5, 9, 0, 0, 0, time.Local)
	todo := &domain.Todo{
		ID:        "A1",
		Name:      "Buy milk",
		Notes:     "Oat milk preferred",
		Status:    domain.StatusOpen,
		DueDate:   &due,
		ProjectID: "P1",
		Tags:      []string{"errand"},
	}

	var buf bytes.Buffer
	writeTodoDetail(&buf, todo)

	output := buf.String()
	assert.Contains(t, output, "A1")
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "Oat milk preferred")
	assert.Contains(t, output, "2026-09-05 09:00")
	assert.Contains(t, output, "P1")
	assert.Contains(t, output, "errand")
	assert.NotContains(t, output, "Completed")
}

func TestWriteProjectDetail(t *testing.T) {
	t.Parallel()

	project := &domain.Project{
		ID:      "P1",
		Name:    "Spring cleaning",
		Status:  domain.StatusOpen,
		AreaID:  "AR1",
		TodoIDs: []string{"A1", "B2"},
	}

	var buf bytes.Buffer
	writeProjectDetail(&buf, project)

	output := buf.String()
	assert.Contains(t, output, "Spring cleaning")
	assert.Contains(t, output, "AR1")
	assert.Contains(t, output, "A1, B2")
}

func TestWriteAreaTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeAreaTable(&buf, []domain.Area{{ID: "AR1", Name: "Home", Tags: []string{"personal"}}})

	output := buf.String()
	assert.Contains(t, output, "AR1")
	assert.Contains(t, output, "Home")
	assert.Contains(t, output, "personal")
}

func TestWriteTagTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeTagTable(&buf, []domain.Tag{{ID: "T1", Name: "errand"}})

	output := buf.String()
	assert.Contains(t, output, "T1")
	assert.Contains(t, output, "errand")
}
