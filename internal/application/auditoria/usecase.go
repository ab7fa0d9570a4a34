package auditoria

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase vistas y mutaciones de la auditoría de precios/señalización.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.AuditoriaClient
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.AuditoriaClient) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, opts: cache.Opciones{Retry: -1}}
}

// Listar cotejos de precio con cache.
func (uc *UseCase) Listar(ctx context.Context, f api.FiltroAuditorias) (api.Pagina[entity.AuditoriaPrecio], error) {
	key := claves.Auditorias(f.Limit, f.Offset, f.Local, f.Desde, f.Hasta)
	return cache.FetchAs(ctx, uc.cache, key, func(ctx context.Context) (api.Pagina[entity.AuditoriaPrecio], error) {
		return uc.api.Listar(ctx, f)
	}, uc.opts)
}

// Registrar da de alta un cotejo e invalida sus vistas.
func (uc *UseCase) Registrar(ctx context.Context, req api.RegistrarAuditoriaRequest) (entity.AuditoriaPrecio, error) {
	a, err := uc.api.Registrar(ctx, req)
	if err != nil {
		return entity.AuditoriaPrecio{}, err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutRegistrarAuditoria)
	return a, nil
}

// SoloDiscrepancias filtro local de la vista: deja únicamente los cotejos
// cuya diferencia redondeada a centavos no es cero. La misma regla existe
// del lado del servidor; aquí solo se usa para resaltar, nunca para decidir.
func SoloDiscrepancias(pag api.Pagina[entity.AuditoriaPrecio]) api.Pagina[entity.AuditoriaPrecio] {
	items := make([]entity.AuditoriaPrecio, 0, len(pag.Items))
	for _, a := range pag.Items {
		if a.TieneDiscrepancia() {
			items = append(items, a)
		}
	}
	return api.Pagina[entity.AuditoriaPrecio]{Items: items, Total: len(items)}
}
