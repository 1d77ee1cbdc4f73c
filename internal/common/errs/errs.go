// Package errs mendefinisikan taksonomi error aplikasi dan pemetaannya ke status HTTP.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDuplicate          = errors.New("data sudah terdaftar")
	ErrInvalidCredentials = errors.New("username atau password salah")
	ErrNotFound           = errors.New("data tidak ditemukan")
)

// ValidationError menandakan input wajib yang kosong atau tidak valid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Required(field string) error {
	return &ValidationError{Field: field, Message: "wajib diisi"}
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError membungkus kegagalan database. Pesan aslinya tidak dikirim ke client.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// HTTPStatus memetakan error ke status HTTP.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage mengembalikan pesan yang aman untuk client. Untuk error 500 dipakai
// fallback agar detail database tidak bocor.
func PublicMessage(err error, fallback string) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}
