package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/common/middlewares"
	"github.com/c14220110/gassehat-backend/internal/common/response"
	"github.com/c14220110/gassehat-backend/internal/pasien/services"
)

type CredentialRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PasienController struct {
	Service *services.PasienService
}

func NewPasienController(service *services.PasienService) *PasienController {
	return &PasienController{Service: service}
}

// Register: POST /api/register
func (pc *PasienController) Register(c echo.Context) error {
	var req CredentialRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, errs.Invalid("body", "request tidak valid"), "")
	}

	if err := pc.Service.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message": "Username sudah terdaftar",
			})
		}
		return response.Message(c, err, "Gagal registrasi")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Registrasi berhasil",
	})
}

// Login: POST /api/login
func (pc *PasienController) Login(c echo.Context) error {
	var req CredentialRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, errs.Invalid("body", "request tidak valid"), "")
	}

	token, err := pc.Service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"message": "Username atau password salah",
			})
		}
		return response.Message(c, err, "Gagal login")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login berhasil",
		"token":   token,
	})
}

// Me: GET /api/me (butuh JWT)
func (pc *PasienController) Me(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"message": "invalid or missing token claims",
		})
	}

	pasien, err := pc.Service.FindByUsername(c.Request().Context(), claims.Username)
	if errors.Is(err, errs.ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"message": "Akun tidak ditemukan",
		})
	}
	if err != nil {
		return response.Message(c, err, "Gagal mengambil profil")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"username": pasien.Username,
	})
}
