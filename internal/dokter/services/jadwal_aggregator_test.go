package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c14220110/gassehat-backend/internal/dokter/models"
)

func TestAggregateJadwal_Groups(t *testing.T) {
	rows := []models.JadwalRow{
		{DokterID: 1, Nama: "A", Poli: "X", Hari: "Mon", Shift: "AM"},
		{DokterID: 1, Nama: "A", Poli: "X", Hari: "Tue", Shift: "PM"},
		{DokterID: 2, Nama: "B", Poli: "Y", Hari: "Mon", Shift: "AM"},
	}

	got := AggregateJadwal(rows)

	want := []models.DokterJadwal{
		{Nama: "A", Poli: "X", Jadwal: []models.Jadwal{{Hari: "Mon", Shift: "AM"}, {Hari: "Tue", Shift: "PM"}}},
		{Nama: "B", Poli: "Y", Jadwal: []models.Jadwal{{Hari: "Mon", Shift: "AM"}}},
	}
	assert.Equal(t, want, got)
}

func TestAggregateJadwal_Empty(t *testing.T) {
	got := AggregateJadwal(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAggregateJadwal_SameNameDifferentDoctors(t *testing.T) {
	rows := []models.JadwalRow{
		{DokterID: 1, Nama: "dr. Budi", Poli: "Umum", Hari: "Senin", Shift: "Pagi"},
		{DokterID: 2, Nama: "dr. Budi", Poli: "Gigi", Hari: "Senin", Shift: "Sore"},
	}

	got := AggregateJadwal(rows)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "Umum", got[0].Poli)
		assert.Equal(t, "Gigi", got[1].Poli)
		assert.Len(t, got[0].Jadwal, 1)
		assert.Len(t, got[1].Jadwal, 1)
	}
}

func TestAggregateJadwal_KeepsFirstAppearanceOrder(t *testing.T) {
	rows := []models.JadwalRow{
		{DokterID: 7, Nama: "C", Poli: "Z", Hari: "Rabu", Shift: "Pagi"},
		{DokterID: 3, Nama: "A", Poli: "X", Hari: "Kamis", Shift: "Sore"},
		{DokterID: 7, Nama: "C", Poli: "Z", Hari: "Sabtu", Shift: "Malam"},
	}

	got := AggregateJadwal(rows)

	assert.Equal(t, []string{"C", "A"}, []string{got[0].Nama, got[1].Nama})
	assert.Equal(t, []models.Jadwal{{Hari: "Rabu", Shift: "Pagi"}, {Hari: "Sabtu", Shift: "Malam"}}, got[0].Jadwal)
}
