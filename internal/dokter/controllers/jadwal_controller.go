package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
	"github.com/c14220110/gassehat-backend/internal/common/response"
	"github.com/c14220110/gassehat-backend/internal/dokter/services"
)

type SetJadwalRequest struct {
	Hari  string `json:"hari"`
	Shift string `json:"shift"`
}

type JadwalController struct {
	Service *services.JadwalService
}

func NewJadwalController(service *services.JadwalService) *JadwalController {
	return &JadwalController{Service: service}
}

// ListByDoctor: GET /api/doctors/:id/schedules
func (jc *JadwalController) ListByDoctor(c echo.Context) error {
	id, err := parseDokterID(c)
	if err != nil {
		return response.Error(c, err, "")
	}
	list, err := jc.Service.ListByDoctor(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err, "Gagal mengambil jadwal dokter")
	}
	return c.JSON(http.StatusOK, list)
}

// SetSchedule: POST /api/doctors/:id/schedules
func (jc *JadwalController) SetSchedule(c echo.Context) error {
	id, err := parseDokterID(c)
	if err != nil {
		return response.Error(c, err, "")
	}
	var req SetJadwalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errs.Invalid("body", "request tidak valid"), "")
	}
	if req.Hari == "" || req.Shift == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Hari dan shift wajib diisi",
		})
	}

	if err := jc.Service.SetSchedule(c.Request().Context(), id, req.Hari, req.Shift); err != nil {
		return response.Error(c, err, "Gagal menyimpan jadwal")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Jadwal berhasil disimpan",
	})
}

// ListGrouped: GET /api/jadwal-dokter
func (jc *JadwalController) ListGrouped(c echo.Context) error {
	groups, err := jc.Service.ListGrouped(c.Request().Context())
	if err != nil {
		return response.Error(c, err, "Gagal mengambil jadwal dokter")
	}
	return c.JSON(http.StatusOK, groups)
}

// ExportExcel: GET /api/jadwal-dokter/export
func (jc *JadwalController) ExportExcel(c echo.Context) error {
	groups, err := jc.Service.ListGrouped(c.Request().Context())
	if err != nil {
		return response.Error(c, err, "Gagal mengambil jadwal dokter")
	}
	f, err := services.ExportJadwalExcel(groups)
	if err != nil {
		return response.Error(c, err, "Gagal membuat file excel")
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return response.Error(c, err, "Gagal membuat file excel")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="jadwal-dokter.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
