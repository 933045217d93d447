// Package storage implements the marketplace persistence service: typed
// read/write access to four logical collections, each JSON-serialized under
// a fixed key in the local key-value store.
//
// The contract is deliberately best-effort. Reads that find no stored value,
// or whose stored value fails to decode, return an empty default; writes
// that fail are dropped. Either way the underlying fault goes to the logger,
// never to the caller. The store is a convenience cache, not a system of
// record, so availability wins over consistency here.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"reflect"

	"societymarket/internal/dbx"
	"societymarket/internal/logging"
	"societymarket/internal/models"
	"societymarket/internal/repositories/kv"
)

// Storage keys, one per logical collection. The layout under each key:
// currentUser holds a single User object, users and products hold arrays,
// likedProducts holds one object mapping userID to an array of product ids.
const (
	keyCurrentUser = "currentUser"
	keyUsers       = "users"
	keyProducts    = "products"
	keyLiked       = "likedProducts"
)

// Store is the persistence façade. All callers receive copies of the stored
// entities and must write back the full collection to persist a mutation;
// there is no partial-update primitive. Two overlapping writers to the same
// collection race last-writer-wins; with a single human operator per profile
// that is a documented non-issue, not something the store locks against.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// New returns a Store over the given database. Faults are reported to log.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "storage")}
}

func (s *Store) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// GetCurrentUser returns the persisted session user, or nil when no session
// exists or the stored value is unreadable.
func (s *Store) GetCurrentUser(ctx context.Context) *models.User {
	var u *models.User
	s.read(ctx, keyCurrentUser, &u)
	return u
}

// SaveCurrentUser persists u as the current session.
func (s *Store) SaveCurrentUser(ctx context.Context, u models.User) {
	s.write(ctx, keyCurrentUser, u)
}

// ClearCurrentUser removes the session slot. The user directory is untouched.
func (s *Store) ClearCurrentUser(ctx context.Context) {
	if err := s.repo(s.db).Delete(ctx, keyCurrentUser); err != nil {
		s.log.Error(ctx, "failed to clear current user", "error", err)
	}
}

// GetUsers returns the user directory, empty when nothing is stored.
func (s *Store) GetUsers(ctx context.Context) []models.User {
	var users []models.User
	s.read(ctx, keyUsers, &users)
	return users
}

// SaveUsers replaces the whole user directory.
func (s *Store) SaveUsers(ctx context.Context, users []models.User) {
	s.write(ctx, keyUsers, users)
}

// GetProducts returns the product catalog, empty when nothing is stored.
func (s *Store) GetProducts(ctx context.Context) []models.Product {
	var products []models.Product
	s.read(ctx, keyProducts, &products)
	return products
}

// SaveProducts replaces the whole product catalog.
func (s *Store) SaveProducts(ctx context.Context, products []models.Product) {
	s.write(ctx, keyProducts, products)
}

// GetLikedProductIDs returns the liked-product ids for userID in insertion
// order. Ids may dangle if the product was deleted afterwards; readers are
// expected to filter those out.
func (s *Store) GetLikedProductIDs(ctx context.Context, userID string) []string {
	var liked map[string][]string
	s.read(ctx, keyLiked, &liked)
	return liked[userID]
}

// SetLikedProductIDs replaces the liked-product ids for userID, leaving the
// other users' entries intact. The read-modify-write of the shared map runs
// in a transaction so a concurrent toggle by the same process cannot drop an
// unrelated user's likes.
func (s *Store) SetLikedProductIDs(ctx context.Context, userID string, ids []string) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		liked := map[string][]string{}
		raw, err := repo.Get(ctx, keyLiked)
		if err != nil {
			return err
		}
		if raw != nil {
			if err := json.Unmarshal(raw, &liked); err != nil {
				// Malformed index: start over rather than fail the write.
				s.log.Error(ctx, "stored value is malformed, resetting", "key", keyLiked, "error", err)
				liked = map[string][]string{}
			}
		}

		liked[userID] = ids
		updated, err := json.Marshal(liked)
		if err != nil {
			return err
		}
		return repo.Set(ctx, keyLiked, updated)
	})
	if err != nil {
		s.log.Error(ctx, "failed to persist value", "key", keyLiked, "error", err)
	}
}

// HasUsers reports whether the user directory key has ever been written.
// An explicitly stored empty directory still counts as present.
func (s *Store) HasUsers(ctx context.Context) bool { return s.has(ctx, keyUsers) }

// HasProducts reports whether the product catalog key has ever been written.
func (s *Store) HasProducts(ctx context.Context) bool { return s.has(ctx, keyProducts) }

// HasLikes reports whether the liked-index key has ever been written.
func (s *Store) HasLikes(ctx context.Context) bool { return s.has(ctx, keyLiked) }

// read decodes the value under key into out. On a missing key, a read
// fault, or a malformed value the caller gets its zero-value default.
// json.Unmarshal keeps decoding past a type error, so on failure out is
// reset rather than left with whatever was partially decoded.
func (s *Store) read(ctx context.Context, key string, out any) {
	raw, err := s.repo(s.db).Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to read stored value", "key", key, "error", err)
		return
	}
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Error(ctx, "stored value is malformed, treating as empty", "key", key, "error", err)
		v := reflect.ValueOf(out).Elem()
		v.Set(reflect.Zero(v.Type()))
	}
}

// write serializes v under key. Failures are logged and dropped; callers
// cannot observe them.
func (s *Store) write(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error(ctx, "failed to serialize value", "key", key, "error", err)
		return
	}
	if err := s.repo(s.db).Set(ctx, key, raw); err != nil {
		s.log.Error(ctx, "failed to persist value", "key", key, "error", err)
	}
}

// has probes for key presence. A failed probe counts as present: the only
// consumer is the seeder, and seeding must never overwrite on doubt.
func (s *Store) has(ctx context.Context, key string) bool {
	raw, err := s.repo(s.db).Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "failed to probe stored value", "key", key, "error", err)
		return true
	}
	return raw != nil
}
