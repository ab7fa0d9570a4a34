package etiquetas

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// UseCase previsualización de etiquetas ZPL. No pasa por el cache: el PNG
// depende solo del cuerpo enviado y el usuario espera ver cada edición.
type UseCase struct {
	api *api.EtiquetasClient
}

// NewUseCase construye el caso de uso.
func NewUseCase(cliente *api.EtiquetasClient) *UseCase {
	return &UseCase{api: cliente}
}

// Previsualizar renderiza el ZPL y devuelve la imagen PNG.
func (uc *UseCase) Previsualizar(ctx context.Context, zpl string) ([]byte, error) {
	return uc.api.Render(ctx, zpl)
}
