// Package dbtest menyediakan database SQLite in-memory yang sudah dimigrasi untuk test.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c14220110/gassehat-backend/config"
	"github.com/c14220110/gassehat-backend/pkg/storage/database"
)

func New(t testing.TB) (*sql.DB, database.Dialect) {
	t.Helper()
	ctx := context.Background()
	db, d, err := database.Open(ctx, &config.Config{DBDriver: "sqlite3", DBPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(ctx, db, d))
	return db, d
}

// InsertDokter menambah satu dokter langsung ke tabel dan mengembalikan id-nya.
func InsertDokter(t testing.TB, db *sql.DB, nama, poli string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO dokter (nama, poli) VALUES (?, ?)", nama, poli)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
