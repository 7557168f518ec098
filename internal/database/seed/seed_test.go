package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"business-manager-backend/internal/database/models"
	"business-manager-backend/internal/database/seed"
	"business-manager-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
service_categories:
  - name: Web
    priority_number: 1
services:
  - name: Landing page
    category_name: Web
    price: 1200
    timeline_days: 14
    requirements:
      - Domain access
`

const clientsYAML = `
client_types:
  - name: Enterprise
clients:
  - name: Acme Buyer
    company: ACME Corp
    email: procurement@acme.example
    client_type_name: Enterprise
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoadDir(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	dir := writeFiles(t, map[string]string{
		"catalog.yaml":       catalogYAML,
		"nested/clients.yml": clientsYAML,
		"README.md":          "ignored",
	})

	summary, err := seed.LoadDir(db, dir)
	require.NoError(t, err)
	assert.Equal(t, &seed.Summary{ClientTypes: 1, ServiceCategories: 1, Services: 1, Clients: 1}, summary)

	var service models.Service
	require.NoError(t, db.Preload("Requirements").Preload("Category").Where("name = ?", "Landing page").First(&service).Error)
	assert.Equal(t, 1200.0, service.Price)
	assert.Equal(t, 14, service.TimelineDays)
	require.NotNil(t, service.Category)
	assert.Equal(t, "Web", service.Category.Name)
	require.Len(t, service.Requirements, 1)
	assert.Equal(t, "Domain access", service.Requirements[0].Text)

	var client models.Client
	require.NoError(t, db.Preload("ClientType").Where("name = ?", "Acme Buyer").First(&client).Error)
	assert.Equal(t, "Enterprise", client.ClientType.Name)
	assert.Equal(t, models.RecordStatusActive, client.Status)

	t.Run("second load creates nothing", func(t *testing.T) {
		summary, err := seed.LoadDir(db, dir)
		require.NoError(t, err)
		assert.Equal(t, &seed.Summary{}, summary)

		var count int64
		require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestLoadResolvesStoredReferences(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	catalog := testutils.SeedCatalog(t, db)

	summary, err := seed.Load(db, &seed.File{
		Services: []seed.ServiceData{{Name: "Audit", CategoryName: catalog.Category.Name, Price: 300, TimelineDays: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Services)
}

func TestLoadRollsBackOnUnknownReference(t *testing.T) {
	db := testutils.NewSQLiteDB(t)

	_, err := seed.Load(db, &seed.File{
		ServiceCategories: []seed.CategoryData{{Name: "Web"}},
		Clients:           []seed.ClientData{{Name: "Orphan", ClientTypeName: "Nope"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown reference "Nope"`)

	var count int64
	require.NoError(t, db.Model(&models.ServiceCategory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReadDirRejectsMalformedYAML(t *testing.T) {
	dir := writeFiles(t, map[string]string{"broken.yaml": "services: [name: {"})

	_, err := seed.ReadDir(dir)
	assert.Error(t, err)
}

func TestRepositoryDataFilesParse(t *testing.T) {
	file, err := seed.ReadDir(filepath.Join("..", "..", "..", "scripts", "data"))
	require.NoError(t, err)
	assert.NotEmpty(t, file.Services)
	assert.NotEmpty(t, file.Clients)
}
