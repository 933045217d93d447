package storage

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"societymarket/internal/logging"
	"societymarket/internal/models"

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

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(db, log), db
}

func sampleProduct(id, sellerID string) models.Product {
	return models.Product{
		ID:          id,
		Title:       "Lamp",
		Description: "A very nice lamp",
		Price:       20,
		Category:    "Furniture",
		ImageURL:    "https://x/l.jpg",
		SellerID:    sellerID,
		SellerName:  "Ann",
		CreatedAt:   "2024-02-15T10:30:00Z",
		UpdatedAt:   "2024-02-15T10:30:00Z",
	}
}

func TestCurrentUser_Lifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.Nil(t, s.GetCurrentUser(ctx))

	u := models.User{ID: "u1", Email: "a@x.com", Name: "Ann", CreatedAt: "2024-01-15T10:30:00Z"}
	s.SaveCurrentUser(ctx, u)

	got := s.GetCurrentUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)

	s.ClearCurrentUser(ctx)
	assert.Nil(t, s.GetCurrentUser(ctx))
}

func TestProducts_RoundTripPreservesOrderAndFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	products := []models.Product{
		sampleProduct("p2", "u1"),
		sampleProduct("p1", "u2"),
		sampleProduct("p3", "u1"),
	}
	s.SaveProducts(ctx, products)

	got := s.GetProducts(ctx)
	assert.Equal(t, products, got)
}

func TestUsers_EmptyByDefault(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.GetUsers(context.Background()))
}

func TestRead_MalformedValueTreatedAsEmpty(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO storage(key, value) VALUES ('products', 'not json')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO storage(key, value) VALUES ('currentUser', '{broken')`)
	require.NoError(t, err)

	assert.Empty(t, s.GetProducts(ctx))
	assert.Nil(t, s.GetCurrentUser(ctx))
}

func TestRead_PartiallyDecodableValueTreatedAsEmpty(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	// Valid JSON overall shape, but one element has the wrong type. The
	// decoder populates everything up to the type error; none of it may
	// leak out.
	_, err := db.Exec(`INSERT INTO storage(key, value) VALUES ('products',
		'[{"id":"p1","title":"Lamp","price":20},{"id":"p2","price":"oops"}]')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO storage(key, value) VALUES ('currentUser',
		'{"id":"u1","email":5}')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO storage(key, value) VALUES ('likedProducts',
		'{"u1":["p1"],"u2":7}')`)
	require.NoError(t, err)

	assert.Empty(t, s.GetProducts(ctx))
	assert.Nil(t, s.GetCurrentUser(ctx))
	assert.Empty(t, s.GetLikedProductIDs(ctx, "u1"))
}

func TestLiked_PerUserIsolation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetLikedProductIDs(ctx, "u1", []string{"p1", "p2"})
	s.SetLikedProductIDs(ctx, "u2", []string{"p3"})

	assert.Equal(t, []string{"p1", "p2"}, s.GetLikedProductIDs(ctx, "u1"))
	assert.Equal(t, []string{"p3"}, s.GetLikedProductIDs(ctx, "u2"))

	// rewriting one user must not disturb the other
	s.SetLikedProductIDs(ctx, "u1", []string{"p2"})
	assert.Equal(t, []string{"p2"}, s.GetLikedProductIDs(ctx, "u1"))
	assert.Equal(t, []string{"p3"}, s.GetLikedProductIDs(ctx, "u2"))
}

func TestLiked_UnknownUserIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.GetLikedProductIDs(context.Background(), "nobody"))
}

func TestHas_DistinguishesAbsentFromEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.False(t, s.HasUsers(ctx))
	assert.False(t, s.HasProducts(ctx))
	assert.False(t, s.HasLikes(ctx))

	s.SaveUsers(ctx, []models.User{})
	s.SaveProducts(ctx, []models.Product{})
	s.SetLikedProductIDs(ctx, "u1", nil)

	assert.True(t, s.HasUsers(ctx), "an explicitly stored empty directory counts as present")
	assert.True(t, s.HasProducts(ctx))
	assert.True(t, s.HasLikes(ctx))
}

func TestWriteFault_IsSwallowed(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.Exec(`DROP TABLE storage`)
	require.NoError(t, err)

	// must not panic or surface an error to the caller
	s.SaveProducts(ctx, []models.Product{sampleProduct("p1", "u1")})
	s.SaveCurrentUser(ctx, models.User{ID: "u1"})
	s.SetLikedProductIDs(ctx, "u1", []string{"p1"})
	s.ClearCurrentUser(ctx)

	assert.Empty(t, s.GetProducts(ctx))
	assert.Nil(t, s.GetCurrentUser(ctx))
	assert.True(t, s.HasProducts(ctx), "a failed probe counts as present")
}
