// Package response menulis body error JSON yang seragam untuk semua controller.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/c14220110/gassehat-backend/internal/common/errs"
)

// Error menulis {"error": ...}. Untuk kegagalan server, detail hanya dicatat di log.
func Error(c echo.Context, err error, fallback string) error {
	return write(c, "error", err, fallback)
}

// Message menulis {"message": ...}; dipakai endpoint autentikasi.
func Message(c echo.Context, err error, fallback string) error {
	return write(c, "message", err, fallback)
}

func write(c echo.Context, key string, err error, fallback string) error {
	status := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).
			Str("path", c.Path()).
			Msg(fallback)
	}
	return c.JSON(status, map[string]interface{}{
		key: errs.PublicMessage(err, fallback),
	})
}
