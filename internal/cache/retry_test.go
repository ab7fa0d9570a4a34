package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/super-backoffice/internal/domain"
)

func TestConReintentosReintentaErroresRecuperables(t *testing.T) {
	intentos := 0
	v, err := conReintentos(context.Background(), func(ctx context.Context) (any, error) {
		intentos++
		if intentos < 2 {
			return nil, &domain.APIError{Kind: domain.KindServidor, Status: 502}
		}
		return "ok", nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, intentos)
}

func TestConReintentosNoReintentaErroresDeCliente(t *testing.T) {
	intentos := 0
	fallo := &domain.APIError{Kind: domain.KindValidacion, Status: 422}
	_, err := conReintentos(context.Background(), func(ctx context.Context) (any, error) {
		intentos++
		return nil, fallo
	}, 3)

	assert.ErrorIs(t, err, fallo)
	assert.Equal(t, 1, intentos, "un 4xx no se arregla repitiéndolo")
}

func TestConReintentosReintenta429(t *testing.T) {
	intentos := 0
	v, err := conReintentos(context.Background(), func(ctx context.Context) (any, error) {
		intentos++
		if intentos == 1 {
			return nil, &domain.APIError{Kind: domain.KindDesconocido, Status: 429}
		}
		return "ok", nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, intentos)
}

func TestConReintentosRespetaElMaximo(t *testing.T) {
	intentos := 0
	_, err := conReintentos(context.Background(), func(ctx context.Context) (any, error) {
		intentos++
		return nil, &domain.APIError{Kind: domain.KindRed}
	}, 2)

	require.Error(t, err)
	assert.Equal(t, 3, intentos, "intento inicial + 2 reintentos")
}

func TestConReintentosSinReintentosEsUnSoloIntento(t *testing.T) {
	intentos := 0
	_, err := conReintentos(context.Background(), func(ctx context.Context) (any, error) {
		intentos++
		return nil, &domain.APIError{Kind: domain.KindServidor}
	}, 0)

	require.Error(t, err)
	assert.Equal(t, 1, intentos)
}
