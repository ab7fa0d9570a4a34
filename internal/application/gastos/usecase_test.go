package gastos_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/application/gastos"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// backendCaja backend falso de caja chica; crearGasto se controla por test.
type backendCaja struct {
	crearGasto http.HandlerFunc
}

func (b *backendCaja) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/gastos":
		w.Write([]byte(`{"data":[{"id":"g1","usuario_id":"u1","concepto":"taxi","monto":"80.00","estado":"pendiente"}],"total_registros":1}`))
	case r.Method == http.MethodGet && r.URL.Path == "/caja-chica/saldo":
		w.Write([]byte(`{"usuario_id":"u1","asignado":"1000.00","gastado":"80.00","disponible":"920.00"}`))
	case r.Method == http.MethodGet && r.URL.Path == "/gastos/estadisticas":
		w.Write([]byte(`{"total_mes":"80.00","num_gastos":1}`))
	case r.Method == http.MethodPost && r.URL.Path == "/gastos":
		b.crearGasto(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no existe"}`))
	}
}

func armar(t *testing.T, backend *backendCaja) (*gastos.UseCase, *cache.Cache) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "credencial"))
	cliente := api.NewClient(srv.URL, 2*time.Second, store, nil)
	c := cache.New(time.Minute, 0, nil)
	return gastos.NewUseCase(c, api.NewCajaChicaClient(cliente)), c
}

// sembrarVistas carga lista, saldo y estadísticas para observar el fan-out.
func sembrarVistas(t *testing.T, uc *gastos.UseCase) {
	t.Helper()
	ctx := context.Background()
	_, err := uc.Listar(ctx, api.FiltroGastos{Limit: 20})
	require.NoError(t, err)
	_, err = uc.Saldo(ctx, "u1")
	require.NoError(t, err)
	_, err = uc.Estadisticas(ctx)
	require.NoError(t, err)
}

func TestCrearGastoInvalidaTodasLasVistasDependientes(t *testing.T) {
	backend := &backendCaja{
		crearGasto: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"id":"g2","usuario_id":"u1","concepto":"papelería","monto":"50.00","estado":"pendiente"}}`))
		},
	}
	uc, c := armar(t, backend)
	sembrarVistas(t, uc)

	gasto, err := uc.Crear(context.Background(), api.CrearGastoRequest{Concepto: "papelería", Monto: "50.00"})
	require.NoError(t, err)
	assert.Equal(t, "g2", gasto.ID)

	// El gasto altera saldo, estado del fondo, sesión y estadísticas: todas
	// las vistas declaradas quedan stale en un solo paso.
	assert.False(t, c.Inspeccionar(claves.Gastos(20, 0, "", "", "", "", "")).Fresca)
	assert.False(t, c.Inspeccionar(claves.SaldoCaja("u1")).Fresca)
	assert.False(t, c.Inspeccionar(claves.EstadisticasGastos()).Fresca)
}

func TestCrearGastoRechazadoPorSaldoNoTocaElCache(t *testing.T) {
	backend := &backendCaja{
		crearGasto: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"saldo de caja chica insuficiente"}`))
		},
	}
	uc, c := armar(t, backend)
	sembrarVistas(t, uc)

	_, err := uc.Crear(context.Background(), api.CrearGastoRequest{Concepto: "mueble", Monto: "5000.00"})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflicto, domain.AsAPIError(err).Kind)

	// La regla de negocio la decide el backend; un rechazo no invalida nada.
	assert.True(t, c.Inspeccionar(claves.Gastos(20, 0, "", "", "", "", "")).Fresca)
	assert.True(t, c.Inspeccionar(claves.SaldoCaja("u1")).Fresca)
}

func TestSaldoLoCalculaElServidor(t *testing.T) {
	backend := &backendCaja{}
	uc, _ := armar(t, backend)

	saldo, err := uc.Saldo(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "920", saldo.Disponible.String())
	assert.Equal(t, "1000", saldo.Asignado.String())
}
