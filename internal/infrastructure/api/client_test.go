package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/super-backoffice/internal/domain"
)

// credencialFake almacén de sesión en memoria para los tests del cliente.
type credencialFake struct {
	token    atomic.Value
	limpiada atomic.Bool
}

func nuevaCredencialFake(token string) *credencialFake {
	c := &credencialFake{}
	c.token.Store(token)
	return c
}

func (c *credencialFake) Token() string {
	s, _ := c.token.Load().(string)
	return s
}

func (c *credencialFake) Clear() error {
	c.limpiada.Store(true)
	c.token.Store("")
	return nil
}

func clientePrueba(t *testing.T, handler http.HandlerFunc) (*Client, *credencialFake) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cred := nuevaCredencialFake("token-1")
	return NewClient(srv.URL, 2*time.Second, cred, nil), cred
}

func TestClientEnviaBearerLeidoEnCadaPeticion(t *testing.T) {
	var autorizaciones []string
	c, cred := clientePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		autorizaciones = append(autorizaciones, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})

	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/x", nil, &out))

	// Una credencial nueva se usa sin reconstruir el cliente.
	cred.token.Store("token-2")
	require.NoError(t, c.Get(context.Background(), "/x", nil, &out))

	assert.Equal(t, []string{"Bearer token-1", "Bearer token-2"}, autorizaciones)
}

func TestClientNormalizaSobreAnidado(t *testing.T) {
	c, _ := clientePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"code":"VALIDACION","message":"monto inválido","details":{"monto":"debe ser positivo"}}}`))
	})

	err := c.Get(context.Background(), "/notas-credito", nil, &struct{}{})
	require.Error(t, err)

	apiErr := domain.AsAPIError(err)
	assert.Equal(t, domain.KindValidacion, apiErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "VALIDACION", apiErr.Code)
	assert.Equal(t, "monto inválido", apiErr.Message)
	assert.Equal(t, map[string]string{"monto": "debe ser positivo"}, apiErr.Detalles)
}

func TestClientNormalizaSobrePlano(t *testing.T) {
	c, _ := clientePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"saldo de caja chica insuficiente"}`))
	})

	err := c.Post(context.Background(), "/gastos", map[string]string{}, nil)
	apiErr := domain.AsAPIError(err)
	assert.Equal(t, domain.KindConflicto, apiErr.Kind)
	assert.Equal(t, "saldo de caja chica insuficiente", apiErr.Message)
}

func TestClientCuerpoDeErrorIlegibleConservaElStatus(t *testing.T) {
	c, _ := clientePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>pánico</html>`))
	})

	apiErr := domain.AsAPIError(c.Get(context.Background(), "/x", nil, &struct{}{}))
	assert.Equal(t, domain.KindServidor, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestClientLimpiaCredencialTras401(t *testing.T) {
	c, cred := clientePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expirado"}`))
	})

	err := c.Get(context.Background(), "/facturas", nil, &struct{}{})
	apiErr := domain.AsAPIError(err)
	assert.Equal(t, domain.KindAutenticacion, apiErr.Kind)
	assert.True(t, cred.limpiada.Load(), "un 401 invalida la credencial almacenada")
}

func TestClient403NoLimpiaCredencial(t *testing.T) {
	c, cred := clientePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"rol insuficiente"}`))
	})

	apiErr := domain.AsAPIError(c.Get(context.Background(), "/nominas", nil, &struct{}{}))
	assert.Equal(t, domain.KindPermiso, apiErr.Kind)
	assert.False(t, cred.limpiada.Load(), "un 403 mantiene la sesión")
}

func TestClientClasificaTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 50*time.Millisecond, nuevaCredencialFake(""), nil)

	apiErr := domain.AsAPIError(c.Get(context.Background(), "/metrics", nil, &struct{}{}))
	assert.Equal(t, domain.KindTimeout, apiErr.Kind)
	assert.True(t, apiErr.Recuperable())
}

func TestClientClasificaFallaDeConexion(t *testing.T) {
	// Puerto cerrado: nadie escucha.
	c := NewClient("http://127.0.0.1:1", time.Second, nuevaCredencialFake(""), nil)

	apiErr := domain.AsAPIError(c.Get(context.Background(), "/x", nil, &struct{}{}))
	assert.Equal(t, domain.KindRed, apiErr.Kind)
	assert.True(t, apiErr.Recuperable())
}
