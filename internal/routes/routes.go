package routes

import (
	"context"
	"database/sql"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/c14220110/gassehat-backend/config"
	"github.com/c14220110/gassehat-backend/internal/common/middlewares"
	dokterControllers "github.com/c14220110/gassehat-backend/internal/dokter/controllers"
	dokterRoutes "github.com/c14220110/gassehat-backend/internal/dokter/routes"
	dokterServices "github.com/c14220110/gassehat-backend/internal/dokter/services"
	obatControllers "github.com/c14220110/gassehat-backend/internal/obat/controllers"
	obatRoutes "github.com/c14220110/gassehat-backend/internal/obat/routes"
	obatServices "github.com/c14220110/gassehat-backend/internal/obat/services"
	pasienControllers "github.com/c14220110/gassehat-backend/internal/pasien/controllers"
	pasienRoutes "github.com/c14220110/gassehat-backend/internal/pasien/routes"
	pasienServices "github.com/c14220110/gassehat-backend/internal/pasien/services"
	"github.com/c14220110/gassehat-backend/pkg/storage/database"
	"github.com/c14220110/gassehat-backend/ws"
)

// Deps berisi dependensi yang dibutuhkan untuk memasang seluruh route.
type Deps struct {
	Config  *config.Config
	DB      *sql.DB
	Dialect database.Dialect
	Hub     *ws.Hub
	Logger  zerolog.Logger
}

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, d Deps) {
	cfg := d.Config
	secret := []byte(cfg.JWTSecret)

	e.Use(middlewares.Recovery(d.Logger))
	e.Use(middlewares.RequestID())
	e.Use(middlewares.Logger(d.Logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Inisialisasi service
	pasienService := pasienServices.NewPasienService(d.DB, d.Dialect, secret, cfg.JWTTTL)
	dokterService := dokterServices.NewDokterService(d.DB)
	jadwalService := dokterServices.NewJadwalService(d.DB, d.Dialect, d.Hub)
	poliService := dokterServices.NewPoliService(d.DB)
	obatService := obatServices.NewObatService(d.DB)

	// Inisialisasi controller dengan service yang sesuai
	pasienController := pasienControllers.NewPasienController(pasienService)
	dokterController := dokterControllers.NewDokterController(dokterService)
	jadwalController := dokterControllers.NewJadwalController(jadwalService)
	poliController := dokterControllers.NewPoliController(poliService)
	obatController := obatControllers.NewObatController(obatService)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "🚀 GasSehat backend is online")
	})
	e.GET("/health", healthHandler(d.DB))
	e.GET("/ws/jadwal", ws.ServeWS(d.Hub, cfg.CORSOrigins))

	// Grup API utama
	api := e.Group("/api")

	pasienRoutes.RegisterPasienRoutes(api, pasienController, secret, authRateLimiter(cfg.AuthRateLimit))

	var adminMW []echo.MiddlewareFunc
	if cfg.ProtectAdmin {
		adminMW = append(adminMW, middlewares.JWTMiddleware(secret))
	}
	dokterRoutes.RegisterDokterRoutes(api, dokterController, jadwalController, poliController, adminMW...)
	obatRoutes.RegisterObatRoutes(api, obatController)

	e.Static("/", cfg.StaticDir)
}

func healthHandler(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("health check failed")
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "ok",
		})
	}
}

// authRateLimiter membatasi request register/login per IP.
func authRateLimiter(perSecond float64) echo.MiddlewareFunc {
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     max(1, int(math.Ceil(perSecond))),
			ExpiresIn: 3 * time.Minute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
				"message": "Terlalu banyak permintaan, coba lagi nanti",
			})
		},
	})
}
