package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_AppliesOnce(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "local.db"))
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database, Migrations()))
	require.NoError(t, RunMigrations(database, Migrations()))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 1, count)

	_, err = database.Exec(`INSERT INTO kv_entries (key, value, updated_at) VALUES ('k', 'v', 'now')`)
	assert.NoError(t, err)
}

func TestRunMigrations_BadMigration(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer database.Close()

	migrations := fstest.MapFS{
		"001_broken.sql": &fstest.MapFile{Data: []byte("CREATE NONSENSE;")},
	}

	err = RunMigrations(database, migrations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_broken.sql")

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 0, count)
}
