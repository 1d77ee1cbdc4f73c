package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/gassehat-backend/config"
	"github.com/c14220110/gassehat-backend/pkg/storage/database/dbtest"
	"github.com/c14220110/gassehat-backend/pkg/utils"
	"github.com/c14220110/gassehat-backend/ws"
)

func newServer(t *testing.T, mutate func(*config.Config)) (*echo.Echo, Deps) {
	t.Helper()
	db, d := dbtest.New(t)
	cfg := &config.Config{
		AppEnv:        "development",
		JWTSecret:     "secret-test",
		JWTTTL:        time.Hour,
		CORSOrigins:   []string{"*"},
		StaticDir:     t.TempDir(),
		AuthRateLimit: 100,
	}
	if mutate != nil {
		mutate(cfg)
	}
	deps := Deps{Config: cfg, DB: db, Dialect: d, Hub: ws.NewHub(zerolog.Nop()), Logger: zerolog.Nop()}
	e := echo.New()
	Init(e, deps)
	return e, deps
}

func do(e *echo.Echo, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRootAndHealth(t *testing.T) {
	e, deps := newServer(t, nil)

	rec := do(e, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GasSehat backend is online")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	require.NoError(t, deps.DB.Close())
	rec = do(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy"}`, rec.Body.String())
}

func TestScheduleFlow(t *testing.T) {
	e, deps := newServer(t, nil)
	id := dbtest.InsertDokter(t, deps.DB, "dr. Budi", "Umum")
	path := "/api/doctors/" + itoa(id) + "/schedules"

	rec := do(e, http.MethodPost, path, `{"hari":"Senin","shift":"Pagi"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodPost, path, `{"hari":"Senin","shift":"Siang"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/jadwal-dokter", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"nama":"dr. Budi","poli":"Umum","jadwal":[{"hari":"Senin","shift":"Siang"}]}]`,
		rec.Body.String())

	rec = do(e, http.MethodGet, "/api/dokter?poli=Umum&hari=Senin", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Shift":"Siang"`)
}

func TestProtectAdmin(t *testing.T) {
	e, _ := newServer(t, func(c *config.Config) { c.ProtectAdmin = true })

	rec := do(e, http.MethodPost, "/api/doctors", `{"nama":"dr. Sari","poli":"Gigi"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := utils.GenerateJWTToken([]byte("secret-test"), "admin", time.Hour)
	require.NoError(t, err)
	rec = do(e, http.MethodPost, "/api/doctors", `{"nama":"dr. Sari","poli":"Gigi"}`,
		map[string]string{echo.HeaderAuthorization: "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)

	// endpoint baca tetap publik
	rec = do(e, http.MethodGet, "/api/doctors", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRateLimit(t *testing.T) {
	e, _ := newServer(t, func(c *config.Config) { c.AuthRateLimit = 1 })

	body := `{"username":"alice","password":"wrong"}`
	rec := do(e, http.MethodPost, "/api/login", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/api/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)
}

func TestAuthRateLimit_FractionalRateAllowsFirstRequest(t *testing.T) {
	e, _ := newServer(t, func(c *config.Config) { c.AuthRateLimit = 0.5 })

	rec := do(e, http.MethodPost, "/api/register", `{"username":"alice","password":"p1"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/api/login", `{"username":"alice","password":"p1"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	e, deps := newServer(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(deps.Config.StaticDir, "info.txt"), []byte("halo"), 0o644))

	rec := do(e, http.MethodGet, "/info.txt", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "halo", rec.Body.String())

	rec = do(e, http.MethodGet, "/tidak-ada.txt", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	e, _ := newServer(t, nil)

	rec := do(e, http.MethodOptions, "/api/doctors", "", map[string]string{
		echo.HeaderOrigin:                     "http://klinik.test",
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
