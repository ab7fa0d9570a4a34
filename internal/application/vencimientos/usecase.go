package vencimientos

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de la auditoría de fechas de caducidad.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.VencimientosClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.VencimientosClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// Listar caducidades con cache.
func (uc *UseCase) Listar(ctx context.Context, f api.FiltroVencimientos) (api.Pagina[entity.Vencimiento], error) {
	key := claves.Vencimientos(f.Limit, f.Offset, f.Local, f.Estado, f.DiasMax)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.Vencimiento], error) {
		return uc.api.Listar(ctx, f)
	}, uc.opts)
}

// Registrar da de alta un producto próximo a caducar.
func (uc *UseCase) Registrar(ctx context.Context, req api.RegistrarVencimientoRequest) (entity.Vencimiento, error) {
	v, err := uc.api.Registrar(ctx, req)
	if err != nil {
		return entity.Vencimiento{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutRegistrarVencimiento)
	return v, nil
}

// ActualizarEstado marca revisado/retirado; retirar invalida también los
// movimientos (el retiro genera una merma del lado del servidor).
func (uc *UseCase) ActualizarEstado(ctx context.Context, id, estado string) (entity.Vencimiento, error) {
	v, err := uc.api.ActualizarEstado(ctx, id, estado)
	if err != nil {
		return entity.Vencimiento{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutActualizarVencimiento)
	return v, nil
}
