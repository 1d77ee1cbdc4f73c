package models

// Dokter merepresentasikan record di tabel `dokter`.
type Dokter struct {
	ID   int64  `json:"id"`
	Nama string `json:"nama"`
	Poli string `json:"poli"`
}

// DokterTersedia adalah dokter yang praktik pada poli dan hari tertentu (tampilan pasien).
type DokterTersedia struct {
	ID    int64  `json:"id"`
	Nama  string `json:"Nama"`
	Shift string `json:"Shift"`
}
