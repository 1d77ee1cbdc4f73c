package models

// Obat merepresentasikan record di tabel `obat`
type Obat struct {
	ID          int64   `json:"id"`
	Nama        string  `json:"nama"`
	Jenis       string  `json:"jenis"`
	Satuan      string  `json:"satuan"`
	HargaSatuan float64 `json:"harga_satuan"`
	Stock       int     `json:"stock"`
}
