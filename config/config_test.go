package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, "360ia_db", c.ContextTable)
	assert.Equal(t, "/", c.RoutePath)
	assert.False(t, c.DebugSQL)
}

func TestLoadReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"api_port": "9090",
		"database": "postgres",
		"db_host": "pg.internal",
		"context_table": "widget_context",
		"route_path": "train",
		"debug_sql": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", c.ApiPort)
	assert.Equal(t, "postgres", c.Database)
	assert.Equal(t, "pg.internal", c.DbHost)
	assert.Equal(t, "widget_context", c.ContextTable)
	assert.Equal(t, "/train", c.RoutePath)
	assert.True(t, c.DebugSQL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_port": "9090"}`), 0o600))

	t.Setenv("WIDGETBRAIN_API_PORT", "7070")
	t.Setenv("WIDGETBRAIN_CONTEXT_TABLE", "ctx_override")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", c.ApiPort)
	assert.Equal(t, "ctx_override", c.ContextTable)
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_port": `), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
