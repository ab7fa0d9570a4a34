package nominas

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de nóminas (conciliación de cheques).
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.NominasClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.NominasClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// Listar nóminas con cache.
func (uc *UseCase) Listar(ctx context.Context, f api.FiltroNominas) (api.Pagina[entity.Nomina], error) {
	key := claves.Nominas(f.Limit, f.Offset, f.Local, f.Desde, f.Hasta)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.Nomina], error) {
		return uc.api.Listar(ctx, f)
	}, uc.opts)
}

// Obtener una nómina con sus cheques (cacheada por ID).
func (uc *UseCase) Obtener(ctx context.Context, id string) (entity.Nomina, error) {
	return cache.FetchAs(ctx, uc.cache, claves.Nomina(id), func(ctx context.Context) (entity.Nomina, error) {
		return uc.api.Obtener(ctx, id)
	}, uc.opts)
}

// ConciliarCheque marca un cheque como cotejado e invalida la familia de
// vistas de nóminas (lista y detalle).
func (uc *UseCase) ConciliarCheque(ctx context.Context, nominaID string, numeroCheque int) (entity.Nomina, error) {
	nomina, err := uc.api.ConciliarCheque(ctx, nominaID, numeroCheque)
	if err != nil {
		return entity.Nomina{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutConciliarCheque)
	return nomina, nil
}
