package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditoriaPrecio un cotejo de precio de anaquel contra el precio del sistema,
// levantado durante la auditoría de precios/señalización de un local.
type AuditoriaPrecio struct {
	ID             string
	Local          string
	CodigoBarras   string
	Producto       string
	PrecioEtiqueta decimal.Decimal // lo que dice la etiqueta en anaquel
	PrecioSistema  decimal.Decimal // lo que cobra el punto de venta
	Fecha          time.Time
	Auditor        string
}

// Discrepancia diferencia etiqueta-sistema redondeada a centavos.
//
// Esta regla de redondeo/cero también existe del lado del servidor; el valor
// del servidor gana siempre al confirmar, así que aquí solo se usa para
// filtrado y resaltado en la vista.
func (a AuditoriaPrecio) Discrepancia() decimal.Decimal {
	return a.PrecioEtiqueta.Sub(a.PrecioSistema).Round(2)
}

// TieneDiscrepancia true si la diferencia redondeada no es cero. Un precio de
// sistema en cero se trata como registro incompleto, no como discrepancia.
func (a AuditoriaPrecio) TieneDiscrepancia() bool {
	if a.PrecioSistema.IsZero() {
		return false
	}
	return !a.Discrepancia().IsZero()
}
