package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/common/response"
	"github.com/c14220110/gassehat-backend/internal/dokter/services"
)

type CreateDokterRequest struct {
	Nama string `json:"nama"`
	Poli string `json:"poli"`
}

type DokterController struct {
	Service *services.DokterService
}

func NewDokterController(service *services.DokterService) *DokterController {
	return &DokterController{Service: service}
}

// ListDokter: GET /api/doctors
func (dc *DokterController) ListDokter(c echo.Context) error {
	list, err := dc.Service.ListDokter(c.Request().Context())
	if err != nil {
		return response.Error(c, err, "Gagal mengambil daftar dokter")
	}
	return c.JSON(http.StatusOK, list)
}

// CreateDokter: POST /api/doctors
func (dc *DokterController) CreateDokter(c echo.Context) error {
	var req CreateDokterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errs.Invalid("body", "request tidak valid"), "")
	}
	if req.Nama == "" || req.Poli == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Nama dan poli wajib diisi",
		})
	}

	dokter, err := dc.Service.CreateDokter(c.Request().Context(), req.Nama, req.Poli)
	if err != nil {
		return response.Error(c, err, "Gagal menambahkan dokter")
	}
	return c.JSON(http.StatusOK, dokter)
}

// ListAvailable: GET /api/dokter?poli=&hari= (tampilan pasien)
func (dc *DokterController) ListAvailable(c echo.Context) error {
	poli := c.QueryParam("poli")
	hari := c.QueryParam("hari")
	if poli == "" || hari == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Parameter 'poli' dan 'hari' diperlukan",
		})
	}

	list, err := dc.Service.FindAvailable(c.Request().Context(), poli, hari)
	if err != nil {
		return response.Error(c, err, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, list)
}

func parseDokterID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Invalid("id", "id dokter harus berupa angka")
	}
	return id, nil
}
