package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/dokter/models"
	"github.com/c14220110/gassehat-backend/pkg/storage/database"
)

// Publisher menerima event perubahan jadwal, misalnya hub websocket.
type Publisher interface {
	Publish(v interface{})
}

type JadwalService struct {
	DB        *sql.DB
	Dialect   database.Dialect
	Publisher Publisher
}

func NewJadwalService(db *sql.DB, dialect database.Dialect, pub Publisher) *JadwalService {
	return &JadwalService{DB: db, Dialect: dialect, Publisher: pub}
}

// SetSchedule menyimpan shift dokter untuk satu hari. Bila jadwal (dokter, hari) sudah
// ada, shift-nya diganti; bila belum, dibuat baru. Dokter harus sudah terdaftar.
func (s *JadwalService) SetSchedule(ctx context.Context, dokterID int64, hari, shift string) error {
	hari = strings.TrimSpace(hari)
	shift = strings.TrimSpace(shift)
	if dokterID <= 0 {
		return errs.Invalid("id", "id dokter tidak valid")
	}
	if hari == "" {
		return errs.Required("hari")
	}
	if shift == "" {
		return errs.Required("shift")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return errs.Storage("begin jadwal", err)
	}
	defer tx.Rollback()

	var dummy int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM dokter WHERE id = ?", dokterID).Scan(&dummy)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("dokter %d: %w", dokterID, errs.ErrNotFound)
	}
	if err != nil {
		return errs.Storage("select dokter", err)
	}

	if _, err := tx.ExecContext(ctx, s.Dialect.UpsertJadwalSQL(), dokterID, hari, shift); err != nil {
		return errs.Storage("upsert jadwal", err)
	}
	if err := tx.Commit(); err != nil {
		return errs.Storage("commit jadwal", err)
	}

	if s.Publisher != nil {
		s.Publisher.Publish(models.JadwalEvent{
			Type:     models.EventJadwalUpdated,
			DokterID: dokterID,
			Hari:     hari,
			Shift:    shift,
		})
	}
	return nil
}

// ListByDoctor mengembalikan jadwal satu dokter, terurut per hari.
func (s *JadwalService) ListByDoctor(ctx context.Context, dokterID int64) ([]models.Jadwal, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT hari, shift FROM jadwal_dokter WHERE dokter_id = ? ORDER BY hari", dokterID)
	if err != nil {
		return nil, errs.Storage("select jadwal", err)
	}
	defer rows.Close()

	list := make([]models.Jadwal, 0)
	for rows.Next() {
		var j models.Jadwal
		if err := rows.Scan(&j.Hari, &j.Shift); err != nil {
			return nil, errs.Storage("scan jadwal", err)
		}
		list = append(list, j)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate jadwal", err)
	}
	return list, nil
}

// ListJadwalRows mengambil join dokter × jadwal terurut per dokter lalu hari,
// sesuai prasyarat AggregateJadwal.
func (s *JadwalService) ListJadwalRows(ctx context.Context) ([]models.JadwalRow, error) {
	query := `
		SELECT d.id, d.nama, d.poli, jd.hari, jd.shift
		FROM dokter d
		JOIN jadwal_dokter jd ON d.id = jd.dokter_id
		ORDER BY d.id, jd.hari
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, errs.Storage("select jadwal dokter", err)
	}
	defer rows.Close()

	var list []models.JadwalRow
	for rows.Next() {
		var r models.JadwalRow
		if err := rows.Scan(&r.DokterID, &r.Nama, &r.Poli, &r.Hari, &r.Shift); err != nil {
			return nil, errs.Storage("scan jadwal dokter", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate jadwal dokter", err)
	}
	return list, nil
}

// ListGrouped mengembalikan seluruh jadwal dalam bentuk bersarang per dokter.
func (s *JadwalService) ListGrouped(ctx context.Context) ([]models.DokterJadwal, error) {
	rows, err := s.ListJadwalRows(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateJadwal(rows), nil
}
