package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// MovimientoResponse salida de un movimiento de inventario.
type MovimientoResponse struct {
	ID           string          `json:"id"`
	Local        string          `json:"local"`
	CodigoBarras string          `json:"codigo_barras"`
	Producto     string          `json:"producto"`
	Tipo         string          `json:"tipo"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Referencia   string          `json:"referencia,omitempty"`
	Fecha        time.Time       `json:"fecha"`
	CreadoPor    string          `json:"creado_por"`
}

// FromMovimiento adapta la entidad a su DTO de respuesta.
func FromMovimiento(m entity.MovimientoInventario) MovimientoResponse {
	return MovimientoResponse{
		ID:           m.ID,
		Local:        m.Local,
		CodigoBarras: m.CodigoBarras,
		Producto:     m.Producto,
		Tipo:         m.Tipo,
		Cantidad:     m.Cantidad,
		Referencia:   m.Referencia,
		Fecha:        m.Fecha,
		CreadoPor:    m.CreadoPor,
	}
}
