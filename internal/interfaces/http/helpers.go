package http

import (
	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// paginar adapta una página de entidades a su lista de respuesta.
func paginar[T, U any](pag api.Pagina[T], fn func(T) U) dto.ListResponse[U] {
	items := make([]U, 0, len(pag.Items))
	for _, it := range pag.Items {
		items = append(items, fn(it))
	}
	return dto.ListResponse[U]{Items: items, Total: pag.Total}
}
