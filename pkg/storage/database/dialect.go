package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

// Dialect adalah nama driver database/sql yang dipakai sekaligus penentu variasi SQL.
type Dialect string

const (
	SQLite Dialect = "sqlite3"
	MySQL  Dialect = "mysql"
)

const mysqlErrDupEntry = 1062

func DialectFor(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case SQLite, MySQL:
		return Dialect(driver), nil
	}
	return "", fmt.Errorf("driver database tidak dikenal: %q", driver)
}

// UpsertJadwalSQL menulis satu baris jadwal_dokter secara atomik berdasarkan
// UNIQUE(dokter_id, hari). Argumen: dokter_id, hari, shift.
func (d Dialect) UpsertJadwalSQL() string {
	if d == MySQL {
		return `INSERT INTO jadwal_dokter (dokter_id, hari, shift)
			VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE shift = VALUES(shift), updated_at = CURRENT_TIMESTAMP`
	}
	return `INSERT INTO jadwal_dokter (dokter_id, hari, shift)
		VALUES (?, ?, ?)
		ON CONFLICT(dokter_id, hari) DO UPDATE SET shift = excluded.shift, updated_at = CURRENT_TIMESTAMP`
}

// IsUniqueViolation melaporkan apakah err berasal dari pelanggaran constraint UNIQUE.
func (d Dialect) IsUniqueViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDupEntry
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
