package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/pasien/models"
	"github.com/c14220110/gassehat-backend/pkg/storage/database"
	"github.com/c14220110/gassehat-backend/pkg/utils"
)

type PasienService struct {
	DB        *sql.DB
	Dialect   database.Dialect
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewPasienService(db *sql.DB, dialect database.Dialect, jwtSecret []byte, ttl time.Duration) *PasienService {
	return &PasienService{DB: db, Dialect: dialect, JWTSecret: jwtSecret, TokenTTL: ttl}
}

// Register menyimpan pasien baru dengan password yang di-hash bcrypt.
// Username ganda dilaporkan sebagai errs.ErrDuplicate.
func (s *PasienService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.Required("username")
	}
	if password == "" {
		return errs.Required("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.Invalid("password", "password tidak dapat diproses")
	}

	_, err = s.DB.ExecContext(ctx,
		"INSERT INTO pasien (username, password_hash) VALUES (?, ?)", username, string(hash))
	if err != nil {
		if s.Dialect.IsUniqueViolation(err) {
			return errs.ErrDuplicate
		}
		return errs.Storage("insert pasien", err)
	}
	return nil
}

// Login memverifikasi kredensial lalu mengembalikan token JWT yang ditandatangani.
func (s *PasienService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errs.Required("username")
	}
	if password == "" {
		return "", errs.Required("password")
	}

	p, err := s.FindByUsername(ctx, username)
	if errors.Is(err, errs.ErrNotFound) {
		return "", errs.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", errs.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(s.JWTSecret, p.Username, s.TokenTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

// FindByUsername mengambil akun pasien. Akun yang tidak ada dilaporkan sebagai errs.ErrNotFound.
func (s *PasienService) FindByUsername(ctx context.Context, username string) (*models.Pasien, error) {
	var p models.Pasien
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM pasien WHERE username = ?", username).
		Scan(&p.ID, &p.Username, &p.PasswordHash, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, errs.Storage("select pasien", err)
	}
	return &p, nil
}
