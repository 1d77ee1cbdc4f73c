package database

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS pasien (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS dokter (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		nama TEXT NOT NULL,
		poli TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jadwal_dokter (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		dokter_id  INTEGER NOT NULL REFERENCES dokter(id),
		hari       TEXT NOT NULL,
		shift      TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (dokter_id, hari)
	)`,
	`CREATE TABLE IF NOT EXISTS obat (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		nama         TEXT NOT NULL,
		jenis        TEXT NOT NULL DEFAULT '',
		satuan       TEXT NOT NULL DEFAULT '',
		harga_satuan REAL NOT NULL DEFAULT 0,
		stock        INTEGER NOT NULL DEFAULT 0
	)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS pasien (
		id            INT AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(100) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_pasien_username (username)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS dokter (
		id   INT AUTO_INCREMENT PRIMARY KEY,
		nama VARCHAR(150) NOT NULL,
		poli VARCHAR(100) NOT NULL
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS jadwal_dokter (
		id         INT AUTO_INCREMENT PRIMARY KEY,
		dokter_id  INT NOT NULL,
		hari       VARCHAR(20) NOT NULL,
		shift      VARCHAR(50) NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_jadwal_dokter_hari (dokter_id, hari),
		CONSTRAINT fk_jadwal_dokter FOREIGN KEY (dokter_id) REFERENCES dokter(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS obat (
		id           INT AUTO_INCREMENT PRIMARY KEY,
		nama         VARCHAR(150) NOT NULL,
		jenis        VARCHAR(50) NOT NULL DEFAULT '',
		satuan       VARCHAR(30) NOT NULL DEFAULT '',
		harga_satuan DECIMAL(12,2) NOT NULL DEFAULT 0,
		stock        INT NOT NULL DEFAULT 0
	) ENGINE=InnoDB`,
}

// Migrate membuat tabel yang belum ada. Aman dijalankan berulang kali.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	stmts := sqliteSchema
	if d == MySQL {
		stmts = mysqlSchema
	}
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrasi langkah %d gagal: %w", i+1, err)
		}
	}
	return nil
}
