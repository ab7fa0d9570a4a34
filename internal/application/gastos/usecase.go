package gastos

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de caja chica. Una mutación de gasto toca
// varios recursos juntados del lado del servidor, así que el fan-out de
// invalidación (lista, saldo, estado del fondo, sesión, estadísticas) viene
// completo de la tabla declarada.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.CajaChicaClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.CajaChicaClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// Listar gastos con cache.
func (uc *UseCase) Listar(ctx context.Context, f api.FiltroGastos) (api.Pagina[entity.Gasto], error) {
	key := claves.Gastos(f.Limit, f.Offset, f.UsuarioID, f.Local, f.Estado, f.Desde, f.Hasta)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.Gasto], error) {
		return uc.api.ListarGastos(ctx, f)
	}, uc.opts)
}

// Saldo saldo del fondo del usuario (cacheado).
func (uc *UseCase) Saldo(ctx context.Context, usuarioID string) (entity.SaldoCajaChica, error) {
	return cache.FetchAs(ctx, uc.cache, claves.SaldoCaja(usuarioID), func(ctx context.Context) (entity.SaldoCajaChica, error) {
		return uc.api.Saldo(ctx, usuarioID)
	}, uc.opts)
}

// Estado estado operativo del fondo (cacheado).
func (uc *UseCase) Estado(ctx context.Context) (entity.EstadoCajaChica, error) {
	return cache.FetchAs(ctx, uc.cache, claves.EstadoCaja(), func(ctx context.Context) (entity.EstadoCajaChica, error) {
		return uc.api.Estado(ctx)
	}, uc.opts)
}

// Estadisticas agregados del tablero (cacheado).
func (uc *UseCase) Estadisticas(ctx context.Context) (api.ResumenGastos, error) {
	return cache.FetchAs(ctx, uc.cache, claves.EstadisticasGastos(), func(ctx context.Context) (api.ResumenGastos, error) {
		return uc.api.Estadisticas(ctx)
	}, uc.opts)
}

// Crear registra un gasto. El backend valida el saldo (puede rechazar con
// regla de negocio); en éxito se invalida el conjunto completo de vistas
// dependientes declarado en la tabla.
func (uc *UseCase) Crear(ctx context.Context, req api.CrearGastoRequest) (entity.Gasto, error) {
	gasto, err := uc.api.CrearGasto(ctx, req)
	if err != nil {
		return entity.Gasto{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutCrearGasto)
	return gasto, nil
}

// ActualizarEstado aprueba o rechaza un gasto pendiente, con el mismo fan-out.
func (uc *UseCase) ActualizarEstado(ctx context.Context, id, estado string) (entity.Gasto, error) {
	gasto, err := uc.api.ActualizarEstadoGasto(ctx, id, estado)
	if err != nil {
		return entity.Gasto{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutActualizarEstadoGasto)
	return gasto, nil
}
