package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/super-backoffice/internal/application/auditoria"
	"github.com/tu-usuario/super-backoffice/internal/application/estado"
	"github.com/tu-usuario/super-backoffice/internal/application/etiquetas"
	"github.com/tu-usuario/super-backoffice/internal/application/facturas"
	"github.com/tu-usuario/super-backoffice/internal/application/gastos"
	"github.com/tu-usuario/super-backoffice/internal/application/inventario"
	"github.com/tu-usuario/super-backoffice/internal/application/nominas"
	"github.com/tu-usuario/super-backoffice/internal/application/notascredito"
	appsesion "github.com/tu-usuario/super-backoffice/internal/application/sesion"
	"github.com/tu-usuario/super-backoffice/internal/application/vencimientos"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
	apphttp "github.com/tu-usuario/super-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// tokenBackend JWT que el backend falso "emite" al hacer login.
func tokenBackend(t *testing.T) string {
	t.Helper()
	claims := session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "u1",
		Nombre: "Ana",
		Rol:    "admin",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-backend"))
	require.NoError(t, err)
	return tok
}

// armarApp levanta la aplicación completa contra un backend falso.
func armarApp(t *testing.T, backend http.HandlerFunc) (*fiber.App, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "credencial"))
	c := cache.New(time.Minute, 0, nil)
	cliente := api.NewClient(srv.URL, 2*time.Second, store, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SesionUC:       appsesion.NewUseCase(c, api.NewAuthClient(cliente), store),
		FacturasUC:     facturas.NewUseCase(c, api.NewFacturasClient(cliente)),
		NotasUC:        notascredito.NewUseCase(c, api.NewNotasCreditoClient(cliente)),
		NominasUC:      nominas.NewUseCase(c, api.NewNominasClient(cliente)),
		GastosUC:       gastos.NewUseCase(c, api.NewCajaChicaClient(cliente)),
		InventarioUC:   inventario.NewUseCase(c, api.NewInventarioClient(cliente)),
		VencimientosUC: vencimientos.NewUseCase(c, api.NewVencimientosClient(cliente)),
		AuditoriaUC:    auditoria.NewUseCase(c, api.NewAuditoriaClient(cliente)),
		EtiquetasUC:    etiquetas.NewUseCase(api.NewEtiquetasClient(srv.URL)),
		EstadoUC:       estado.NewUseCase(c, api.NewMetricasClient(cliente), time.Hour, 2*time.Second, 3, nil),
		Store:          store,
	})
	return app, store
}

func TestLoginGuardaCredencialYHabilitaLaAPI(t *testing.T) {
	tok := tokenBackend(t)
	app, store := armarApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token":"` + tok + `"}`))
		case "/facturas":
			w.Write([]byte(`{"data":[],"total_registros":0}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Sin sesión, la API protegida rechaza.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/facturas/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Login correcto persiste la credencial.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"usuario":"ana","password":"s3creta"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, store.Activa())

	var sesion map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sesion))
	assert.Equal(t, "Ana", sesion["nombre"])

	// Con credencial, la API protegida responde.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/facturas/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginRechazadoPropagaLaClase(t *testing.T) {
	app, store := armarApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"credenciales inválidas"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"usuario":"ana","password":"mala"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, store.Activa())
}

func TestErrorDelBackendSeMapeaABadGateway(t *testing.T) {
	tok := tokenBackend(t)
	app, store := armarApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"explotó"}`))
	})
	require.NoError(t, store.Save(tok))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nominas/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	cuerpo, _ := io.ReadAll(resp.Body)
	var e map[string]any
	require.NoError(t, json.Unmarshal(cuerpo, &e))
	assert.Equal(t, "ERROR_BACKEND", e["code"])
	assert.NotContains(t, e["message"], "explotó", "el detalle técnico no llega al usuario")
}

func TestLogoutDescartaLaCredencial(t *testing.T) {
	tok := tokenBackend(t)
	app, store := armarApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	require.NoError(t, store.Save(tok))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.False(t, store.Activa())
}
