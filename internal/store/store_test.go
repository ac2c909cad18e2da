package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	_, ok, err := m.Get("dashboard")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set("dashboard", `{"a":1}`))
	v, ok, err := m.Get("dashboard")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, v)

	require.NoError(t, m.Remove("dashboard"))
	_, ok, err = m.Get("dashboard")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, m.Len())
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))

	kv := NewSQLite(db)

	_, ok, err := kv.Get("dashboard")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set("dashboard", "first"))
	require.NoError(t, kv.Set("dashboard", "second")) // upsert
	v, ok, err := kv.Get("dashboard")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", v)

	require.NoError(t, kv.Remove("dashboard"))
	_, ok, err = kv.Get("dashboard")
	require.NoError(t, err)
	require.False(t, ok)

	// removing a missing key is not an error
	require.NoError(t, kv.Remove("dashboard"))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))

	errBoom := errors.New("boom")
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO kv(key, value, updated_at) VALUES (?, ?, ?)`,
			"dashboard", "partial", now()); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, ok, err := NewSQLite(db).Get("dashboard")
	require.NoError(t, err)
	require.False(t, ok, "failed transaction leaves no row behind")
}

func TestMigrateIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
