package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/dokter/models"
)

type DokterService struct {
	DB *sql.DB
}

func NewDokterService(db *sql.DB) *DokterService {
	return &DokterService{DB: db}
}

// CreateDokter menambah dokter baru dan mengembalikan record lengkap dengan id.
func (s *DokterService) CreateDokter(ctx context.Context, nama, poli string) (*models.Dokter, error) {
	nama = strings.TrimSpace(nama)
	poli = strings.TrimSpace(poli)
	if nama == "" {
		return nil, errs.Required("nama")
	}
	if poli == "" {
		return nil, errs.Required("poli")
	}

	res, err := s.DB.ExecContext(ctx, "INSERT INTO dokter (nama, poli) VALUES (?, ?)", nama, poli)
	if err != nil {
		return nil, errs.Storage("insert dokter", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errs.Storage("last insert id dokter", err)
	}
	return &models.Dokter{ID: id, Nama: nama, Poli: poli}, nil
}

func (s *DokterService) ListDokter(ctx context.Context) ([]models.Dokter, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT id, nama, poli FROM dokter ORDER BY id")
	if err != nil {
		return nil, errs.Storage("select dokter", err)
	}
	defer rows.Close()

	list := make([]models.Dokter, 0)
	for rows.Next() {
		var d models.Dokter
		if err := rows.Scan(&d.ID, &d.Nama, &d.Poli); err != nil {
			return nil, errs.Storage("scan dokter", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate dokter", err)
	}
	return list, nil
}

// FindAvailable mengembalikan dokter pada poli tertentu yang punya jadwal di hari tsb.
func (s *DokterService) FindAvailable(ctx context.Context, poli, hari string) ([]models.DokterTersedia, error) {
	if poli == "" || hari == "" {
		return nil, errs.Invalid("poli,hari", "parameter 'poli' dan 'hari' diperlukan")
	}

	query := `
		SELECT d.id, d.nama, jd.shift
		FROM dokter d
		JOIN jadwal_dokter jd ON d.id = jd.dokter_id
		WHERE d.poli = ? AND jd.hari = ?
		ORDER BY d.id
	`
	rows, err := s.DB.QueryContext(ctx, query, poli, hari)
	if err != nil {
		return nil, errs.Storage("select dokter tersedia", err)
	}
	defer rows.Close()

	list := make([]models.DokterTersedia, 0)
	for rows.Next() {
		var d models.DokterTersedia
		if err := rows.Scan(&d.ID, &d.Nama, &d.Shift); err != nil {
			return nil, errs.Storage("scan dokter tersedia", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate dokter tersedia", err)
	}
	return list, nil
}
