package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingsbridge/thingsbridge/internal/domain"
	"github.com/thingsbridge/thingsbridge/internal/things"
)

// keyedRunner returns a canned response based on a substring match against
// the script. The overview fetches run concurrently, so replay order is not
// deterministic.
type keyedRunner struct {
	responses map[string]string
}

func (k *keyedRunner) respond(script string) (string, error) {
	for key, out := range k.responses {
		if strings.Contains(script, key) {
			return out, nil
		}
	}
	return "", nil
}

func (k *keyedRunner) Run(_ context.Context, script string) (string, error) {
	return k.respond(script)
}

func (k *keyedRunner) RunStructured(_ context.Context, script string) (string, error) {
	return k.respond(script)
}

func TestOverview_Command(t *testing.T) {
	stubConfig(t)
	stubBridge(t, &keyedRunner{responses: map[string]string{
		"properties of to dos":   `{{id:"A1", name:"Buy milk", status:open}}`,
		"properties of projects": `{{id:"P1", name:"Spring cleaning", status:open}}`,
		"properties of areas":    `{{id:"AR1", name:"Home"}}`,
	}})

	_, err := executeRoot(t, "overview")
	require.NoError(t, err)
}

func TestWriteOverview(t *testing.T) {
	t.Parallel()

	overview := &things.Overview{
		Todos:    []domain.Todo{{ID: "A1", Name: "Buy milk", Status: domain.StatusOpen}},
		Projects: []domain.Project{{ID: "P1", Name: "Spring cleaning", Status: domain.StatusOpen}},
		Areas:    []domain.Area{{ID: "AR1", Name: "Home"}},
	}

	var buf bytes.Buffer
	writeOverview(&buf, overview)

	output := buf.String()
	assert.Contains(t, output, "Areas (1)")
	assert.Contains(t, output, "Projects (1)")
	assert.Contains(t, output, "Todos (1)")
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "Spring cleaning")
	assert.Contains(t, output, "Home")
}
