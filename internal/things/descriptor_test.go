package things

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bridgeerrors "github.com/thingsbridge/thingsbridge/internal/errors"
)

func TestDescriptorValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		d       Descriptor
		wantErr bool
	}{
		{
			name: "get all needs nothing",
			d:    Descriptor{Op: OpGetAll, Target: KindTodo},
		},
		{
			name: "get by id with id",
			d:    Descriptor{Op: OpGetByID, Target: KindTodo, ID: "A1"},
		},
		{
			name:    "get by id without id",
			d:       Descriptor{Op: OpGetByID, Target: KindTodo},
			wantErr: true,
		},
		{
			name:    "update without id",
			d:       Descriptor{Op: OpUpdate, Target: KindTodo, Properties: map[string]any{propName: "x"}},
			wantErr: true,
		},
		{
			name:    "update without properties",
			d:       Descriptor{Op: OpUpdate, Target: KindTodo, ID: "A1"},
			wantErr: true,
		},
		{
			name: "update with id and properties",
			d:    Descriptor{Op: OpUpdate, Target: KindTodo, ID: "A1", Properties: map[string]any{propName: "x"}},
		},
		{
			name:    "delete without id",
			d:       Descriptor{Op: OpDelete, Target: KindProject},
			wantErr: true,
		},
		{
			name:    "create without name",
			d:       Descriptor{Op: OpCreate, Target: KindTodo, Properties: map[string]any{propNotes: "x"}},
			wantErr: true,
		},
		{
			name: "create with name",
			d:    Descriptor{Op: OpCreate, Target: KindTodo, Properties: map[string]any{propName: "x"}},
		},
		{
			name:    "filtered without filters or container",
			d:       Descriptor{Op: OpGetFiltered, Target: KindTodo},
			wantErr: true,
		},
		{
			name: "filtered with container",
			d:    Descriptor{Op: OpGetFiltered, Target: KindTodo, Container: `list "Today"`},
		},
		{
			name: "filtered with filters",
			d:    Descriptor{Op: OpGetFiltered, Target: KindTodo, Filters: map[string]any{propName: "x"}},
		},
		{
			name:    "unknown operation",
			d:       Descriptor{Op: "explode", Target: KindTodo},
			wantErr: true,
		},
		{
			name:    "unknown record kind",
			d:       Descriptor{Op: OpGetAll, Target: "widget"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.d.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, bridgeerrors.ErrInvalidCommand)
				return
			}
			assert.NoError(t, err)
		})
	}
}
