package dto

import (
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// VencimientoResponse salida de un registro de caducidad. DiasRestantes se
// calcula al responder, no se cachea.
type VencimientoResponse struct {
	ID             string    `json:"id"`
	Local          string    `json:"local"`
	CodigoBarras   string    `json:"codigo_barras"`
	Producto       string    `json:"producto"`
	FechaCaducidad time.Time `json:"fecha_caducidad"`
	Cantidad       int       `json:"cantidad"`
	Estado         string    `json:"estado"`
	RegistradoPor  string    `json:"registrado_por"`
	Fecha          time.Time `json:"fecha"`
	DiasRestantes  int       `json:"dias_restantes"`
}

// FromVencimiento adapta la entidad a su DTO de respuesta.
func FromVencimiento(v entity.Vencimiento) VencimientoResponse {
	return VencimientoResponse{
		ID:             v.ID,
		Local:          v.Local,
		CodigoBarras:   v.CodigoBarras,
		Producto:       v.Producto,
		FechaCaducidad: v.FechaCaducidad,
		Cantidad:       v.Cantidad,
		Estado:         v.Estado,
		RegistradoPor:  v.RegistradoPor,
		Fecha:          v.Fecha,
		DiasRestantes:  v.DiasRestantes(time.Now()),
	}
}
