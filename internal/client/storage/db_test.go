package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSessionStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO session_store(key,value) VALUES('token', x'01')`)
	require.NoError(t, err)

	var value []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM session_store WHERE key='token'`).Scan(&value))
	require.Equal(t, []byte{0x01}, value)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
