package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/obat/controllers"
)

func RegisterObatRoutes(api *echo.Group, oc *controllers.ObatController) {
	api.GET("/obat", oc.ListObat)
}
