package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/obat/models"
)

type ObatService struct {
	DB *sql.DB
}

func NewObatService(db *sql.DB) *ObatService {
	return &ObatService{DB: db}
}

func (s *ObatService) ListObat(ctx context.Context) ([]models.Obat, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, nama, jenis, satuan, harga_satuan, stock FROM obat ORDER BY id")
	if err != nil {
		return nil, errs.Storage("select obat", err)
	}
	defer rows.Close()

	list := make([]models.Obat, 0)
	for rows.Next() {
		var o models.Obat
		if err := rows.Scan(&o.ID, &o.Nama, &o.Jenis, &o.Satuan, &o.HargaSatuan, &o.Stock); err != nil {
			return nil, errs.Storage("scan obat", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage("iterate obat", err)
	}
	return list, nil
}

// ImportExcel membaca sheet pertama dengan kolom nama, jenis, satuan, harga_satuan, stock.
// Baris pertama adalah header. Semua baris disimpan dalam satu transaksi; satu baris
// yang rusak membatalkan seluruh import.
func (s *ObatService) ImportExcel(ctx context.Context, r io.Reader) (int, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return 0, errs.Invalid("file", "file excel tidak valid: "+err.Error())
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return 0, errs.Invalid("file", "file excel tidak memiliki sheet")
	}
	rows, err := xl.GetRows(sheets[0])
	if err != nil {
		return 0, errs.Invalid("file", "gagal membaca sheet: "+err.Error())
	}

	var items []models.Obat
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}
		o, err := parseObatRow(row)
		if err != nil {
			return 0, errs.Invalid(fmt.Sprintf("baris %d", i+1), err.Error())
		}
		items = append(items, o)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, errs.Storage("begin import obat", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO obat (nama, jenis, satuan, harga_satuan, stock) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, errs.Storage("prepare import obat", err)
	}
	defer stmt.Close()

	for _, o := range items {
		if _, err := stmt.ExecContext(ctx, o.Nama, o.Jenis, o.Satuan, o.HargaSatuan, o.Stock); err != nil {
			return 0, errs.Storage("insert obat", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errs.Storage("commit import obat", err)
	}
	return len(items), nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseObatRow(row []string) (models.Obat, error) {
	o := models.Obat{
		Nama:   cell(row, 0),
		Jenis:  cell(row, 1),
		Satuan: cell(row, 2),
	}
	if o.Nama == "" {
		return o, fmt.Errorf("nama wajib diisi")
	}
	if v := cell(row, 3); v != "" {
		harga, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return o, fmt.Errorf("harga_satuan %q bukan angka", v)
		}
		o.HargaSatuan = harga
	}
	if v := cell(row, 4); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("stock %q bukan bilangan bulat", v)
		}
		o.Stock = stock
	}
	return o, nil
}
