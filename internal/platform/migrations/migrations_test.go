package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(files, "sql/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(files, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestSchemaEnforcesOneLandingAndThemePerStore(t *testing.T) {
	raw, err := fs.ReadFile(files, "sql/000001_init.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	for _, table := range []string{"landings", "theme_colors"} {
		start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+table)
		require.GreaterOrEqual(t, start, 0, table)
		end := start + strings.Index(schema[start:], ");")
		assert.Contains(t, schema[start:end], "UNIQUE REFERENCES stores(id) ON DELETE CASCADE", table)
	}
}

func TestDownRejectsNonPositiveSteps(t *testing.T) {
	var db *sql.DB
	assert.Error(t, Down(db, 0))
}
