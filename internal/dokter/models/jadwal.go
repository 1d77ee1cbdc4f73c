package models

// Jadwal adalah satu entri jadwal mingguan seorang dokter.
type Jadwal struct {
	Hari  string `json:"hari"`
	Shift string `json:"shift"`
}

// JadwalRow adalah satu baris hasil join dokter × jadwal_dokter.
type JadwalRow struct {
	DokterID int64
	Nama     string
	Poli     string
	Hari     string
	Shift    string
}

// DokterJadwal mengelompokkan seluruh jadwal milik satu dokter.
type DokterJadwal struct {
	Nama   string   `json:"nama"`
	Poli   string   `json:"poli"`
	Jadwal []Jadwal `json:"jadwal"`
}

const EventJadwalUpdated = "jadwal.updated"

// JadwalEvent dikirim ke client websocket setiap kali jadwal disimpan.
type JadwalEvent struct {
	Type     string `json:"type"`
	DokterID int64  `json:"dokter_id"`
	Hari     string `json:"hari"`
	Shift    string `json:"shift"`
}
