package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/common/response"
	"github.com/c14220110/gassehat-backend/internal/dokter/services"
)

type PoliController struct {
	Service *services.PoliService
}

func NewPoliController(service *services.PoliService) *PoliController {
	return &PoliController{Service: service}
}

// ListPoli: GET /api/poli
func (pc *PoliController) ListPoli(c echo.Context) error {
	list, err := pc.Service.ListPoli(c.Request().Context())
	if err != nil {
		return response.Error(c, err, "Gagal mengambil daftar poli")
	}
	return c.JSON(http.StatusOK, list)
}
