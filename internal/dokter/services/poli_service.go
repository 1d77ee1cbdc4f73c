package services

import (
	"context"
	"database/sql"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
)

type PoliService struct {
	DB *sql.DB
}

func NewPoliService(db *sql.DB) *PoliService {
	return &PoliService{DB: db}
}

// ListPoli mengembalikan nama poli yang punya minimal satu dokter, urut abjad.
func (ps *PoliService) ListPoli(ctx context.Context) ([]string, error) {
	rows, err := ps.DB.QueryContext(ctx, "SELECT DISTINCT poli FROM dokter ORDER BY poli ASC")
	if err != nil {
		return nil, errs.Storage("select poli", err)
	}
	defer rows.Close()

	results := make([]string, 0)
	for rows.Next() {
		var poli string
		if err := rows.Scan(&poli); err != nil {
			return nil, errs.Storage("scan poli", err)
		}
		results = append(results, poli)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate poli", err)
	}
	return results, nil
}
