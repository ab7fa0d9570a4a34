package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// AuditoriaResponse salida de un cotejo de precio. Discrepancia viene
// redondeada a centavos; un precio de sistema en cero no cuenta como
// discrepancia (registro incompleto).
type AuditoriaResponse struct {
	ID                string          `json:"id"`
	Local             string          `json:"local"`
	CodigoBarras      string          `json:"codigo_barras"`
	Producto          string          `json:"producto"`
	PrecioEtiqueta    decimal.Decimal `json:"precio_etiqueta"`
	PrecioSistema     decimal.Decimal `json:"precio_sistema"`
	Fecha             time.Time       `json:"fecha"`
	Auditor           string          `json:"auditor"`
	Discrepancia      decimal.Decimal `json:"discrepancia"`
	TieneDiscrepancia bool            `json:"tiene_discrepancia"`
}

// FromAuditoria adapta la entidad a su DTO de respuesta.
func FromAuditoria(a entity.AuditoriaPrecio) AuditoriaResponse {
	return AuditoriaResponse{
		ID:                a.ID,
		Local:             a.Local,
		CodigoBarras:      a.CodigoBarras,
		Producto:          a.Producto,
		PrecioEtiqueta:    a.PrecioEtiqueta,
		PrecioSistema:     a.PrecioSistema,
		Fecha:             a.Fecha,
		Auditor:           a.Auditor,
		Discrepancia:      a.Discrepancia(),
		TieneDiscrepancia: a.TieneDiscrepancia(),
	}
}
