package facturas

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de facturas de proveedor.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.FacturasClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.FacturasClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// Listar facturas con cache.
func (uc *UseCase) Listar(ctx context.Context, f api.FiltroFacturas) (api.Pagina[entity.Factura], error) {
	key := claves.Facturas(f.Limit, f.Offset, f.Local, f.ProveedorID, f.Desde, f.Hasta)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.Factura], error) {
		return uc.api.Listar(ctx, f)
	}, uc.opts)
}

// BuscarPorFolio busca una factura por folio (cacheado por folio).
func (uc *UseCase) BuscarPorFolio(ctx context.Context, folio string) (entity.Factura, error) {
	return cache.FetchAs(ctx, uc.cache, claves.FacturaPorFolio(folio), func(ctx context.Context) (entity.Factura, error) {
		return uc.api.ObtenerPorFolio(ctx, folio)
	}, uc.opts)
}

// Crear registra una factura e invalida sus vistas.
func (uc *UseCase) Crear(ctx context.Context, req api.CrearFacturaRequest) (entity.Factura, error) {
	factura, err := uc.api.Crear(ctx, req)
	if err != nil {
		return entity.Factura{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutCrearFactura)
	return factura, nil
}
