package securestore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ankit-0903/sentinel-vault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Set(ctx, "users", "user_alice", `{"username":"alice"}`))

	value, found, err := store.Get(ctx, "users", "user_alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"username":"alice"}`, value)
}

func TestSQLiteStore_GetAbsent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	value, found, err := store.Get(ctx, "users", "user_ghost")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Set(ctx, "sessions", "session_bob", "first"))
	require.NoError(t, store.Set(ctx, "sessions", "session_bob", "second"))

	value, found, err := store.Get(ctx, "sessions", "session_bob")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value)
}

func TestSQLiteStore_NamespacesAreDistinct(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Set(ctx, "users", "same_key", "user value"))
	require.NoError(t, store.Set(ctx, "sessions", "same_key", "session value"))

	value, found, err := store.Get(ctx, "users", "same_key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "user value", value)

	value, found, err = store.Get(ctx, "sessions", "same_key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "session value", value)
}

func TestSQLiteStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Set(ctx, "users", "user_carol", "v"))
	require.NoError(t, store.Delete(ctx, "users", "user_carol"))

	_, found, err := store.Get(ctx, "users", "user_carol")
	require.NoError(t, err)
	assert.False(t, found)

	// deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, "users", "user_carol"))
}

// --- error mapping via sqlmock ---

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestSQLiteStore_SetError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO secrets").WillReturnError(errors.New("disk full"))

	err := store.Set(context.Background(), "users", "user_x", "v")
	assert.True(t, errors.Is(err, common.ErrorStore))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT value FROM secrets").WillReturnError(errors.New("io error"))

	_, _, err := store.Get(context.Background(), "users", "user_x")
	assert.True(t, errors.Is(err, common.ErrorStore))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_GetNoRowsIsNotAnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT value FROM secrets").WillReturnError(sql.ErrNoRows)

	_, found, err := store.Get(context.Background(), "users", "user_x")
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_DeleteError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("DELETE FROM secrets").WillReturnError(errors.New("locked"))

	err := store.Delete(context.Background(), "users", "user_x")
	assert.True(t, errors.Is(err, common.ErrorStore))
	require.NoError(t, mock.ExpectationsWereMet())
}
