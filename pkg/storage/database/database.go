package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/c14220110/gassehat-backend/config"
)

// Open membuka koneksi database sesuai DB_DRIVER lalu melakukan ping.
// Untuk sqlite3 in-memory koneksi dibatasi satu agar semua query melihat database yang sama.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, dialect, err
	}

	dsn, err := dsnFor(cfg)
	if err != nil {
		return nil, dialect, err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, dialect, fmt.Errorf("gagal membuka koneksi ke database: %w", err)
	}

	switch {
	case dialect == SQLite && cfg.DBPath == ":memory:":
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	case dialect == SQLite:
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, dialect, fmt.Errorf("gagal melakukan ping ke database: %w", err)
	}
	return db, dialect, nil
}

func dsnFor(cfg *config.Config) (string, error) {
	switch cfg.DBDriver {
	case string(SQLite):
		if cfg.DBPath == ":memory:" {
			return "file::memory:?_foreign_keys=1", nil
		}
		return fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", cfg.DBPath), nil
	case string(MySQL):
		loc, err := time.LoadLocation("Asia/Jakarta")
		if err != nil {
			loc = time.UTC
		}
		mc := mysql.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		mc.Loc = loc
		return mc.FormatDSN(), nil
	}
	return "", fmt.Errorf("driver database tidak dikenal: %q", cfg.DBDriver)
}
