package services

import "github.com/c14220110/gassehat-backend/internal/dokter/models"

// AggregateJadwal melipat baris join (terurut per dokter lalu hari) menjadi daftar
// dokter beserta jadwalnya. Pengelompokan memakai id dokter, bukan nama, sehingga dua
// dokter bernama sama tetap terpisah. Urutan keluaran mengikuti kemunculan pertama.
func AggregateJadwal(rows []models.JadwalRow) []models.DokterJadwal {
	result := make([]models.DokterJadwal, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.DokterID]
		if !ok {
			i = len(result)
			index[row.DokterID] = i
			result = append(result, models.DokterJadwal{
				Nama:   row.Nama,
				Poli:   row.Poli,
				Jadwal: []models.Jadwal{},
			})
		}
		result[i].Jadwal = append(result[i].Jadwal, models.Jadwal{Hari: row.Hari, Shift: row.Shift})
	}
	return result
}
