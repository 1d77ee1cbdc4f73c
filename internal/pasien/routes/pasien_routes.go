package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/gassehat-backend/internal/common/middlewares"
	"github.com/c14220110/gassehat-backend/internal/pasien/controllers"
)

// RegisterPasienRoutes memasang endpoint autentikasi pasien. authMW (mis. rate limiter)
// dipasang pada register dan login.
func RegisterPasienRoutes(api *echo.Group, pc *controllers.PasienController, jwtSecret []byte, authMW ...echo.MiddlewareFunc) {
	api.POST("/register", pc.Register, authMW...) // Tidak pakai JWT
	api.POST("/login", pc.Login, authMW...)       // Tidak pakai JWT
	api.GET("/me", pc.Me, middlewares.JWTMiddleware(jwtSecret))
}
