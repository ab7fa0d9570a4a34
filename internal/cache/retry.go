package cache

import (
	"context"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain"
)

const (
	backoffBase = 200 * time.Millisecond
	backoffTope = 3 * time.Second
)

// conReintentos ejecuta el loader reintentando solo errores recuperables
// (5xx, red, timeout, 408/429) con backoff exponencial acotado. Un 4xx de
// cliente no se reintenta: repetir la misma petición no lo arregla.
func conReintentos(ctx context.Context, loader Loader, maxReintentos int) (any, error) {
	var ultimo error
	for intento := 0; ; intento++ {
		v, err := loader(ctx)
		if err == nil {
			return v, nil
		}
		ultimo = err
		if intento >= maxReintentos || !domain.AsAPIError(err).Recuperable() {
			return nil, ultimo
		}
		espera := backoffBase << intento
		if espera > backoffTope {
			espera = backoffTope
		}
		select {
		case <-ctx.Done():
			return nil, ultimo
		case <-time.After(espera):
		}
	}
}
