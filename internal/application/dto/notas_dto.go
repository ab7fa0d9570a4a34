package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// ActualizarMontoRequest entrada del editor de monto de una nota.
type ActualizarMontoRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

// NotaCreditoResponse salida de una nota de crédito. MontoVisible es el que
// la vista pinta como vigente; mientras Actualizando es true, MontoPendiente
// trae el valor especulativo y Monto conserva el último confirmado.
type NotaCreditoResponse struct {
	ID             string           `json:"id"`
	Folio          string           `json:"folio"`
	ProveedorID    string           `json:"proveedor_id"`
	Proveedor      string           `json:"proveedor"`
	FacturaID      string           `json:"factura_id,omitempty"`
	Local          string           `json:"local"`
	UsuarioID      string           `json:"usuario_id"`
	Concepto       string           `json:"concepto"`
	Fecha          time.Time        `json:"fecha"`
	Aplicada       bool             `json:"aplicada"`
	Monto          decimal.Decimal  `json:"monto"`
	MontoPendiente *decimal.Decimal `json:"monto_pendiente,omitempty"`
	Actualizando   bool             `json:"actualizando"`
	MontoVisible   decimal.Decimal  `json:"monto_visible"`
}

// FromNotaCredito adapta la entidad a su DTO de respuesta.
func FromNotaCredito(n entity.NotaCredito) NotaCreditoResponse {
	return NotaCreditoResponse{
		ID:             n.ID,
		Folio:          n.Folio,
		ProveedorID:    n.ProveedorID,
		Proveedor:      n.Proveedor,
		FacturaID:      n.FacturaID,
		Local:          n.Local,
		UsuarioID:      n.UsuarioID,
		Concepto:       n.Concepto,
		Fecha:          n.Fecha,
		Aplicada:       n.Aplicada,
		Monto:          n.Monto,
		MontoPendiente: n.MontoPendiente,
		Actualizando:   n.Actualizando,
		MontoVisible:   n.MontoVisible(),
	}
}
