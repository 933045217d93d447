package seed

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"societymarket/internal/catalog"
	"societymarket/internal/logging"
	"societymarket/internal/models"
	"societymarket/internal/storage"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(setupDB(t), testLogger())
}

func TestInitialize_PopulatesEmptyStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	Initialize(ctx, store, testLogger())

	assert.Len(t, store.GetUsers(ctx), 4)
	assert.Len(t, store.GetProducts(ctx), 12)
	assert.Equal(t, []string{"3", "5", "10"}, store.GetLikedProductIDs(ctx, "1"))
	assert.Equal(t, []string{"1", "6", "9"}, store.GetLikedProductIDs(ctx, "4"))
}

func TestInitialize_IsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	Initialize(ctx, store, testLogger())
	once := store.GetProducts(ctx)

	Initialize(ctx, store, testLogger())
	twice := store.GetProducts(ctx)

	assert.Equal(t, once, twice)
}

func TestInitialize_NeverOverwritesExplicitlyEmptyCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// the user emptied the catalog on purpose; absent vs. empty matters here
	store.SaveProducts(ctx, []models.Product{})

	Initialize(ctx, store, testLogger())

	assert.Empty(t, store.GetProducts(ctx), "an explicitly emptied catalog must stay empty")
	assert.Len(t, store.GetUsers(ctx), 4, "absent collections are still seeded")
}

func TestInitialize_NeverOverwritesUserData(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mine := []models.Product{{ID: "mine", Title: "My Lamp", SellerID: "u1"}}
	store.SaveProducts(ctx, mine)

	Initialize(ctx, store, testLogger())

	assert.Equal(t, mine, store.GetProducts(ctx))
}

func TestSeededCatalog_SearchScenario(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	Initialize(ctx, store, testLogger())

	got := catalog.Filter(store.GetProducts(ctx), "iphone", "")
	require.Len(t, got, 1)
	assert.Equal(t, "iPhone 15 Pro Max", got[0].Title)
}
