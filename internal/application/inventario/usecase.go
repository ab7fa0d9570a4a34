package inventario

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de movimientos de inventario. La aritmética de
// stock es del backend; aquí solo captura y consulta.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.InventarioClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.InventarioClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// ListarMovimientos movimientos con cache.
func (uc *UseCase) ListarMovimientos(ctx context.Context, f api.FiltroMovimientos) (api.Pagina[entity.MovimientoInventario], error) {
	key := claves.Movimientos(f.Limit, f.Offset, f.Local, f.Tipo, f.Desde, f.Hasta)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.MovimientoInventario], error) {
		return uc.api.ListarMovimientos(ctx, f)
	}, uc.opts)
}

// Registrar captura un movimiento e invalida sus vistas.
func (uc *UseCase) Registrar(ctx context.Context, req api.RegistrarMovimientoRequest) (entity.MovimientoInventario, error) {
	mov, err := uc.api.RegistrarMovimiento(ctx, req)
	if err != nil {
		return entity.MovimientoInventario{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutRegistrarMovimiento)
	return mov, nil
}
