package models

import "time"

// Pasien adalah kredensial pasien. Password tidak pernah dikirim dalam response.
type Pasien struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
