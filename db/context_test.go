package db

import (
	"context"
	"strings"
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widgetbrain/config"
	"widgetbrain/logger"
	"widgetbrain/models"
	"widgetbrain/training"
)

const testTable = "360ia_db"

// openTestDB returns an in-memory sqlite DB holding the context table, the way the
// external admin process creates it.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := Connect(config.Configuration{Database: "sqlite3", SqlitePath: memoryDSN}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Exec(`CREATE TABLE "`+testTable+`" (widget_id TEXT PRIMARY KEY, contexto_entrenamiento TEXT)`).Error)
	return database
}

func seed(t *testing.T, database *gorm.DB, widgetID string, value *string) {
	t.Helper()
	require.NoError(t, database.Exec(`INSERT INTO "`+testTable+`" (widget_id, contexto_entrenamiento) VALUES (?, ?)`, widgetID, value).Error)
}

func load(t *testing.T, database *gorm.DB, widgetID string) models.ContextRecord {
	t.Helper()
	var rec models.ContextRecord
	require.NoError(t, database.Table(testTable).Where("widget_id = ?", widgetID).Take(&rec).Error)
	return rec
}

func ptr(s string) *string { return &s }

func TestContextStoreGet(t *testing.T) {
	database := openTestDB(t)
	seed(t, database, "w1", ptr("A"))
	seed(t, database, "w2", nil)
	store := NewContextStore(database, testTable)

	got, err := store.GetContext(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = store.GetContext(context.Background(), "w2")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = store.GetContext(context.Background(), "ghost")
	assert.ErrorIs(t, err, training.ErrNotFound)
}

func TestContextStoreSetOnlyTouchesTargetRow(t *testing.T) {
	database := openTestDB(t)
	seed(t, database, "w1", ptr("A"))
	seed(t, database, "w2", ptr("untouched"))
	store := NewContextStore(database, testTable)

	require.NoError(t, store.SetContext(context.Background(), "w1", "AB"))

	assert.Equal(t, "AB", load(t, database, "w1").Current())
	assert.Equal(t, "untouched", load(t, database, "w2").Current())
}

func TestContextStoreSetUnknownWidget(t *testing.T) {
	database := openTestDB(t)
	store := NewContextStore(database, testTable)

	err := store.SetContext(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, training.ErrNotFound)

	var count int
	require.NoError(t, database.Table(testTable).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContextStoreMissingTableIsStorageError(t *testing.T) {
	database := openTestDB(t)
	store := NewContextStore(database, "no_such_table")

	_, err := store.GetContext(context.Background(), "w1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, training.ErrNotFound)
	assert.True(t, strings.Contains(err.Error(), "no_such_table"))
}

func TestContextStoreHonoursCancelledContext(t *testing.T) {
	database := openTestDB(t)
	seed(t, database, "w1", ptr("A"))
	store := NewContextStore(database, testTable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.SetContext(ctx, "w1", "changed"), context.Canceled)
	assert.Equal(t, "A", load(t, database, "w1").Current())
}

func TestAppenderAgainstSQLite(t *testing.T) {
	database := openTestDB(t)
	seed(t, database, "w1", ptr("A"))
	seed(t, database, "w2", nil)
	appender := training.NewAppender(NewContextStore(database, testTable), logger.Nop())

	_, err := appender.Append(context.Background(), models.AppendRequest{WidgetID: "w1", NewContent: "B", Source: "upload"})
	require.NoError(t, err)
	_, err = appender.Append(context.Background(), models.AppendRequest{WidgetID: "w2", NewContent: "first"})
	require.NoError(t, err)

	w1 := load(t, database, "w1").Current()
	assert.True(t, strings.HasPrefix(w1, "A"))
	assert.Contains(t, w1, "upload")
	assert.Contains(t, strings.TrimPrefix(w1, "A"), "B")

	w2 := load(t, database, "w2").Current()
	assert.Contains(t, w2, "first")
	assert.True(t, strings.HasPrefix(w2, "\n\n"+training.BlockHeader))

	_, err = appender.Append(context.Background(), models.AppendRequest{WidgetID: "ghost", NewContent: "x"})
	assert.Equal(t, training.KindNotFound, training.KindOf(err))
}
