package schema

import (
	"testing"

	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{
		"client_types", "clients", "project_services", "projects", "proposal_services",
		"proposals", "service_categories", "service_requirements", "services",
	}, r.Tables())

	t.Run("services own their requirements", func(t *testing.T) {
		e, err := r.Lookup("services")
		require.NoError(t, err)
		require.Len(t, e.Children, 1)
		assert.Equal(t, Child{Table: "service_requirements", ForeignKey: "service_id"}, e.Children[0])
	})

	t.Run("converted proposals are locked", func(t *testing.T) {
		e, err := r.Lookup("proposals")
		require.NoError(t, err)
		require.NotNil(t, e.Lock)
		assert.Equal(t, "status", e.Lock.Column)
		assert.Equal(t, "converted", e.Lock.Value)
		assert.True(t, apperrors.IsAlreadyConverted(e.Lock.Err(4)))
	})

	t.Run("line items point at their owner", func(t *testing.T) {
		e, err := r.Lookup("proposal_services")
		require.NoError(t, err)
		require.NotNil(t, e.Owner)
		assert.Equal(t, "proposals", e.Owner.Table)
	})

	t.Run("model factories", func(t *testing.T) {
		e, err := r.Lookup("clients")
		require.NoError(t, err)
		assert.IsType(t, &models.Client{}, e.NewRecord())
		assert.IsType(t, &[]models.Client{}, e.NewSlice())
		assert.Equal(t, []string{"name", "company", "address", "email"}, e.SearchableColumns())
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := r.Lookup("invoices")
		assert.True(t, apperrors.IsUnknownEntity(err))
	})
}

func TestNewRegistry_RejectsInconsistentDeclarations(t *testing.T) {
	cases := []struct {
		name     string
		entities []*Entity
		want     string
	}{
		{
			name:     "missing primary key",
			entities: []*Entity{Define[models.ClientType]("client_types", "id", Column{Name: "name", Type: TypeText})},
			want:     "primary key",
		},
		{
			name:     "searchable number",
			entities: []*Entity{Define[models.Service]("services", "id", id(), Column{Name: "price", Type: TypeNumber, Searchable: true})},
			want:     "searchable column",
		},
		{
			name: "unregistered child",
			entities: []*Entity{
				Define[models.Service]("services", "id", id()).WithChildren(Child{Table: "service_requirements", ForeignKey: "service_id"}),
			},
			want: "child table",
		},
		{
			name:     "lock on undeclared column",
			entities: []*Entity{Define[models.Proposal]("proposals", "id", id()).WithLock("status", "converted", apperrors.NewAlreadyConvertedError)},
			want:     "lock column",
		},
		{
			name: "duplicate table",
			entities: []*Entity{
				Define[models.Client]("clients", "id", id()),
				Define[models.Client]("clients", "id", id()),
			},
			want: "registered twice",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.entities...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
