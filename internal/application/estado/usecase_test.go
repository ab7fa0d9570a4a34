package estado

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

func armar(t *testing.T, backend http.HandlerFunc, timeout time.Duration) *UseCase {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "credencial"))
	cliente := api.NewClient(srv.URL, 2*time.Second, store, nil)
	c := cache.New(time.Minute, 0, nil)
	return NewUseCase(c, api.NewMetricasClient(cliente), time.Hour, timeout, 3, nil)
}

func TestRefrescarPropagaElFalloDelBackend(t *testing.T) {
	var caido atomic.Bool
	uc := armar(t, func(w http.ResponseWriter, r *http.Request) {
		if caido.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"explotó"}`))
			return
		}
		w.Write([]byte(`{"uptime_seconds":120,"peticiones":42}`))
	}, 0)

	require.NoError(t, uc.refrescar(context.Background()))

	// Con el backend caído la ronda debe fallar de forma observable; es lo
	// que permite al poller contar fallos consecutivos y entrar en backoff.
	caido.Store(true)
	err := uc.refrescar(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindServidor, domain.AsAPIError(err).Kind)

	// La vista conserva la última ronda buena con el indicador de error.
	info := uc.Estado()
	require.True(t, info.HayDato)
	assert.Equal(t, int64(120), info.Data.(entity.Metricas).UptimeSegundos)
	assert.Error(t, info.Err)
}

func TestRefrescarRespetaElTimeoutDelPolling(t *testing.T) {
	uc := armar(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"uptime_seconds":1}`))
	}, 50*time.Millisecond)

	inicio := time.Now()
	err := uc.refrescar(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindTimeout, domain.AsAPIError(err).Kind)
	assert.Less(t, time.Since(inicio), 400*time.Millisecond, "la ronda debe cortarse con su propio timeout, no con el del cliente")
}

func TestMetricasConsultaSiNoHayRondaPrevia(t *testing.T) {
	uc := armar(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"uptime_seconds":7,"extra_desconocido":{"a":1}}`))
	}, 0)

	m, err := uc.Metricas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.UptimeSegundos)
}
