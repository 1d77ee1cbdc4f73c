package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/common/response"
	"github.com/c14220110/gassehat-backend/internal/obat/services"
)

type ObatController struct {
	Service *services.ObatService
}

func NewObatController(service *services.ObatService) *ObatController {
	return &ObatController{Service: service}
}

// ListObat: GET /api/obat
func (oc *ObatController) ListObat(c echo.Context) error {
	list, err := oc.Service.ListObat(c.Request().Context())
	if err != nil {
		return response.Error(c, err, "Gagal mengambil data obat")
	}
	return c.JSON(http.StatusOK, list)
}
