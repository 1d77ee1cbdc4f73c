package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/c14220110/gassehat-backend/internal/dokter/models"
)

const JadwalSheet = "Jadwal Dokter"

// ExportJadwalExcel menulis jadwal bersarang ke workbook: satu baris per entri jadwal.
func ExportJadwalExcel(groups []models.DokterJadwal) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", JadwalSheet); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	headers := []string{"Nama", "Poli", "Hari", "Shift"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(JadwalSheet, cell, h)
	}
	if err := f.SetCellStyle(JadwalSheet, "A1", "D1", headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	row := 2
	for _, g := range groups {
		for _, j := range g.Jadwal {
			values := []interface{}{g.Nama, g.Poli, j.Hari, j.Shift}
			if err := f.SetSheetRow(JadwalSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				f.Close()
				return nil, err
			}
			row++
		}
	}

	f.SetColWidth(JadwalSheet, "A", "A", 30)
	f.SetColWidth(JadwalSheet, "B", "D", 15)
	return f, nil
}
