package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/dokter/controllers"
)

// RegisterDokterRoutes memasang endpoint dokter dan jadwal pada grup /api.
// adminMW dipasang pada endpoint tulis (boleh kosong).
func RegisterDokterRoutes(api *echo.Group, dc *controllers.DokterController, jc *controllers.JadwalController, pc *controllers.PoliController, adminMW ...echo.MiddlewareFunc) {
	api.GET("/doctors", dc.ListDokter)
	api.POST("/doctors", dc.CreateDokter, adminMW...)
	api.GET("/doctors/:id/schedules", jc.ListByDoctor)
	api.POST("/doctors/:id/schedules", jc.SetSchedule, adminMW...)

	// tampilan pasien
	api.GET("/poli", pc.ListPoli)
	api.GET("/dokter", dc.ListAvailable)
	api.GET("/jadwal-dokter", jc.ListGrouped)
	api.GET("/jadwal-dokter/export", jc.ExportExcel)
}
