package database

import (
	"fmt"
	"testing"

	"business-manager-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on", SQLiteDSN("app.db"))
	assert.Equal(t, "file:x?mode=memory&cache=shared&_foreign_keys=on", SQLiteDSN("file:x?mode=memory&cache=shared"))
	assert.Equal(t, "app.db?_fk=1", SQLiteDSN("app.db?_fk=1"))
}

func TestInitialize_UnsupportedDriver(t *testing.T) {
	db, err := Initialize("oracle", "whatever", nil)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitialize_SQLiteMigratesSchema(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := Initialize(DriverSQLite, dsn, nil)
	require.NoError(t, err)

	for _, table := range []string{"client_types", "clients", "service_categories", "services", "service_requirements", "proposals", "proposal_services", "projects", "project_services"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// foreign keys are enforced
	err = db.Create(&models.Client{Name: "Orphan", ClientTypeID: 999}).Error
	assert.Error(t, err)
}
