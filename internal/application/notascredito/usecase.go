package notascredito

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de notas de crédito. El editor de monto aplica
// la escritura de forma optimista: la vista ve el estado "actualizando" de
// inmediato y, si el servidor rechaza, el cache vuelve exactamente al estado
// previo.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.NotasCreditoClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.NotasCreditoClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// Listar notas de crédito con cache (stale-while-revalidate). La clave
// incluye todos los filtros activos.
func (uc *UseCase) Listar(ctx context.Context, f api.FiltroNotas) (api.Pagina[entity.NotaCredito], error) {
	key := claves.NotasCredito(f.Limit, f.Offset, f.Local, f.UsuarioID, f.ProveedorID)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.NotaCredito], error) {
		return uc.api.Listar(ctx, f)
	}, uc.opts)
}

// ActualizarMonto cambia el monto de la nota con actualización optimista:
//
//  1. snapshot de todas las vistas de notas cacheadas y marca especulativa
//     (Actualizando + MontoPendiente, el confirmado queda intacto);
//  2. escritura al backend;
//  3. éxito: se aplica el valor QUE EL SERVIDOR DEVOLVIÓ (puede venir
//     normalizado) y se invalida la familia de vistas;
//  4. error: restauración verbatim de los snapshots y propagación del error.
func (uc *UseCase) ActualizarMonto(ctx context.Context, id string, monto decimal.Decimal) (entity.NotaCredito, error) {
	prefijos := uc.tabla.Prefijos(claves.MutActualizarMontoNota)
	m := uc.cache.IniciarMutacion(prefijos, transformarNota(id, func(n entity.NotaCredito) entity.NotaCredito {
		return n.ConPendiente(monto)
	}))

	confirmada, err := uc.api.ActualizarMonto(ctx, id, monto)
	if err != nil {
		m.Revertir()
		return entity.NotaCredito{}, err
	}

	m.Confirmar(transformarNota(id, func(entity.NotaCredito) entity.NotaCredito {
		return confirmada
	}))
	uc.tabla.Aplicar(uc.cache, claves.MutActualizarMontoNota)
	return confirmada, nil
}

// Crear registra una nota nueva e invalida las vistas dependientes (también
// las de facturas: el contador de notas por factura cambia).
func (uc *UseCase) Crear(ctx context.Context, req api.CrearNotaRequest) (entity.NotaCredito, error) {
	nota, err := uc.api.Crear(ctx, req)
	if err != nil {
		return entity.NotaCredito{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutCrearNota)
	return nota, nil
}

// FiltrarPorProveedor filtro local de la vista: casa el término contra el
// nombre del proveedor sin distinguir mayúsculas ni acentos.
func FiltrarPorProveedor(pag api.Pagina[entity.NotaCredito], termino string) api.Pagina[entity.NotaCredito] {
	t := api.NormalizarBusqueda(termino)
	if t == "" {
		return pag
	}
	items := make([]entity.NotaCredito, 0, len(pag.Items))
	for _, n := range pag.Items {
		if api.ContieneNormalizado(n.Proveedor, t) {
			items = append(items, n)
		}
	}
	return api.Pagina[entity.NotaCredito]{Items: items, Total: len(items)}
}

// transformarNota aplica f a la nota con el ID dado dentro de cualquier
// página cacheada, devolviendo una página nueva (nunca se muta en sitio).
func transformarNota(id string, f func(entity.NotaCredito) entity.NotaCredito) cache.Transformacion {
	return func(data any) any {
		pag, ok := data.(api.Pagina[entity.NotaCredito])
		if !ok {
			return data
		}
		items := make([]entity.NotaCredito, len(pag.Items))
		for i, n := range pag.Items {
			if n.ID == id {
				n = f(n)
			}
			items[i] = n
		}
		pag.Items = items
		return pag
	}
}
