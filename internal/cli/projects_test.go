package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingsbridge/thingsbridge/internal/errors"
)

func TestProjectsList_Table(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{out: `{{id:"P1", name:"Spring cleaning", status:open}}`},
	}}
	stubBridge(t, runner)

	var buf bytes.Buffer
	err := runProjectsList(t.Context(), &buf, &GlobalFlags{Output: OutputText}, "")
	require.NoError(t, err)

	require.Len(t, runner.scripts, 1)
	assert.Contains(t, runner.scripts[0], "properties of projects")
	assert.Contains(t, buf.String(), "Spring cleaning")
}

func TestProjectsList_ByArea(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{{out: ""}}}
	stubBridge(t, runner)

	var buf bytes.Buffer
	err := runProjectsList(t.Context(), &buf, &GlobalFlags{Output: OutputText}, "AR1")
	require.NoError(t, err)

	require.Len(t, runner.scripts, 1)
	assert.Contains(t, runner.scripts[0], `projects of area id "AR1"`)
}

func TestProjectsGet_Command_IncludesTodoIDs(t *testing.T) {
	stubConfig(t)
	runner := &fakeRunner{responses: []fakeResponse{
		{out: `{id:"P1", name:"Spring cleaning", status:open, |todo ids|:{"A1", "B2"}}`},
	}}
	stubBridge(t, runner)

	_, err := executeRoot(t, "projects", "get", "P1")
	require.NoError(t, err)

	require.Len(t, runner.scripts, 1)
	assert.Contains(t, runner.scripts[0], `id of to dos of project id "P1"`)
}

func TestProjectsAdd(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{out: "P-NEW"},
		{out: `{id:"P-NEW", name:"Spring cleaning", status:open}`},
	}}
	stubBridge(t, runner)

	var buf bytes.Buffer
	addFlags := &projectsAddFlags{area: "Home"}
	err := runProjectsAdd(t.Context(), &buf, &GlobalFlags{Output: OutputText}, addFlags, "Spring cleaning")
	require.NoError(t, err)

	require.Len(t, runner.scripts, 2)
	create := runner.scripts[0]
	assert.Contains(t, create, "make new project")
	assert.Contains(t, create, `name:"Spring cleaning"`)
	assert.Contains(t, create, `area "Home"`)
	assert.Contains(t, buf.String(), "Created project P-NEW")
}

func TestProjectsUpdate_Command(t *testing.T) {
	stubConfig(t)
	runner := &fakeRunner{responses: []fakeResponse{
		{out: ""},
		{out: `{id:"P1", name:"Spring cleaning", status:completed}`},
	}}
	stubBridge(t, runner)

	_, err := executeRoot(t, "projects", "update", "P1", "--status", "completed")
	require.NoError(t, err)

	require.Len(t, runner.scripts, 2)
	assert.Contains(t, runner.scripts[0], `set status of project id "P1" to completed`)
}

func TestProjectsUpdate_Command_NoChanges(t *testing.T) {
	stubConfig(t)
	runner := &fakeRunner{}
	stubBridge(t, runner)

	_, err := executeRoot(t, "projects", "update", "P1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidCommand)
	assert.Empty(t, runner.scripts)
}
