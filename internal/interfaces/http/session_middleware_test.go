package http_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/super-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// almacenConSesion crea un almacén de credencial; con vigente=true deja
// guardado un token sin vencer.
func almacenConSesion(t *testing.T, vigente bool) *session.Store {
	t.Helper()
	s := session.NewStore(filepath.Join(t.TempDir(), "credencial"))
	if vigente {
		claims := session.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			UserID: "u1",
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
		require.NoError(t, err)
		require.NoError(t, s.Save(tok))
	}
	return s
}

// appVistas app mínima con el guard de navegación y las dos vistas que le
// importan a las reglas de redirección.
func appVistas(store *session.Store) *fiber.App {
	app := fiber.New()
	vistas := app.Group("/", apphttp.GuardiaVistas(store))
	vistas.Get("/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	vistas.Get("/facturas", func(c *fiber.Ctx) error { return c.SendString("facturas") })
	return app
}

func TestSinSesionLasVistasRedirigenALogin(t *testing.T) {
	app := appVistas(almacenConSesion(t, false))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/facturas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestSinSesionLoginNoVuelveARedirigir(t *testing.T) {
	app := appVistas(almacenConSesion(t, false))

	// Ya en /login no hay segundo redirect: sin ciclo.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestConSesionLoginRedirigeALaVistaPorDefecto(t *testing.T) {
	app := appVistas(almacenConSesion(t, true))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.VistaPorDefecto, resp.Header.Get("Location"))
}

func TestConSesionLasVistasPasan(t *testing.T) {
	app := appVistas(almacenConSesion(t, true))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/facturas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequiereSesionProtegeLaAPI(t *testing.T) {
	store := almacenConSesion(t, false)
	app := fiber.New()
	app.Get("/api/facturas", apphttp.RequiereSesion(store), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/facturas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiereSesionDejaPasarConCredencial(t *testing.T) {
	store := almacenConSesion(t, true)
	app := fiber.New()
	app.Get("/api/facturas", apphttp.RequiereSesion(store), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/facturas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
